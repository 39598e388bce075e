package service

import (
	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/metrics"
	"github.com/MKhiriev/go-wallet-issuer/internal/push"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

// Dependencies are the per-kind engines built at start-up.
type Dependencies struct {
	Signers    map[models.Kind]bundle.Signer
	Transports map[models.Kind]push.Transport
	Metrics    *metrics.Metrics
}

type Services struct {
	AppInfoService         AppInfoService
	BundleService          BundleService
	ItemService            ItemService
	RegistrationService    RegistrationService
	NotificationService    NotificationService
	PersonalizationService PersonalizationService
	ErrorLogService        ErrorLogService
}

func NewServices(repos *store.Repositories, deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	enabled := newWallets(cfg)

	notificationService := NewNotificationService(repos.RegistrationRepository, deps.Transports, cfg.Push.Concurrency, cfg.Push.Timeout, deps.Metrics, logger)

	resolver := NewStoreContentResolver(repos.ItemRepository, repos.PersonalizationRepository, enabled)
	bundleService := NewBundleService(resolver, deps.Signers, enabled, cfg.Workers.BundleConcurrency, deps.Metrics, logger)

	itemService := NewItemValidationService().Wrap(
		NewItemService(repos.ItemRepository, notificationService, enabled, logger),
	)

	return &Services{
		AppInfoService:         appInfoService,
		BundleService:          bundleService,
		ItemService:            itemService,
		RegistrationService:    NewRegistrationService(repos.RegistrationRepository, deps.Metrics, logger),
		NotificationService:    notificationService,
		PersonalizationService: NewPersonalizationService(itemService, repos.ItemRepository, repos.PersonalizationRepository, bundleService, notificationService, logger),
		ErrorLogService:        NewErrorLogService(repos.ErrorLogRepository, logger),
	}, nil
}
