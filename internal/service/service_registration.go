package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/metrics"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/internal/validators"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

type registrationService struct {
	registrations store.RegistrationRepository
	validator     validators.Validator
	metrics       *metrics.Metrics

	now func() time.Time

	logger *logger.Logger
}

func NewRegistrationService(registrations store.RegistrationRepository, metrics *metrics.Metrics, logger *logger.Logger) RegistrationService {
	return &registrationService{
		registrations: registrations,
		validator:     validators.NewWalletValidator(),
		metrics:       metrics,
		now:           time.Now,
		logger:        logger,
	}
}

// Register subscribes the device to item. Repeating the call is harmless
// and reports [models.RegistrationAlreadyExists].
func (s *registrationService) Register(ctx context.Context, item models.Item, libraryID string, req models.RegistrationRequest) (models.RegistrationStatus, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("error during registration validation: %w", err)
	}

	status, err := s.registrations.RegisterDevice(ctx, libraryID, req.PushToken, item.ItemID(), s.now().UTC())
	if err != nil {
		return 0, err
	}

	s.metrics.ObserveRegistration(item.ItemKind(), status)
	return status, nil
}

func (s *registrationService) Unregister(ctx context.Context, item models.Item, libraryID string) error {
	return s.registrations.Unregister(ctx, libraryID, item.ItemID())
}

func (s *registrationService) ChangedSince(ctx context.Context, kind models.Kind, typeID, libraryID string, since time.Time) (models.ChangedItems, error) {
	return s.registrations.ItemsChangedSince(ctx, kind, typeID, libraryID, since)
}

func (s *registrationService) PushTokens(ctx context.Context, item models.Item) ([]string, error) {
	devices, err := s.registrations.DevicesFor(ctx, item.ItemID())
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.DevicePushToken())
	}
	return tokens, nil
}

func (s *registrationService) SweepOrphanDevices(ctx context.Context) (int64, error) {
	return s.registrations.DeleteOrphanDevices(ctx)
}
