package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/internal/validators"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

type personalizationService struct {
	items           ItemService
	contents        store.ItemRepository
	personalization store.PersonalizationRepository
	bundles         BundleService
	notifier        NotificationService
	validator       validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewPersonalizationService(items ItemService, contents store.ItemRepository, personalization store.PersonalizationRepository, bundles BundleService, notifier NotificationService, logger *logger.Logger) PersonalizationService {
	return &personalizationService{
		items:           items,
		contents:        contents,
		personalization: personalization,
		bundles:         bundles,
		notifier:        notifier,
		validator:       validators.NewWalletValidator(),
		now:             time.Now,
		logger:          logger,
	}
}

// Personalize signs the personalization token first, so a signing failure
// leaves the pass unpersonalized. Once the info is stored the pass is
// touched: its next bundle no longer offers personalization.
func (s *personalizationService) Personalize(ctx context.Context, kind models.Kind, typeID, serial string, req models.PersonalizationRequest) ([]byte, error) {
	if spec, ok := kind.Spec(); !ok || !spec.SupportsPersonalization {
		return nil, fmt.Errorf("%w: kind %q", ErrPersonalizationUnsupported, kind)
	}

	item, err := s.items.GetItem(ctx, kind, typeID, serial)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).WithItem(item)

	if err = s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during personalization validation: %w", err)
	}

	content, err := s.contents.GetContent(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if len(content.Personalization) == 0 {
		return nil, ErrPersonalizationUnsupported
	}

	signature, err := s.bundles.SignToken(ctx, kind, []byte(req.PersonalizationToken))
	if err != nil {
		log.Err(err).Str("func", "personalizationService.Personalize").Msg("failed to sign personalization token")
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	info := req.RequiredPersonalizationInfo
	info.ItemID = item.ID
	info.CreatedAt = now
	if err = s.personalization.SavePersonalization(ctx, info); err != nil {
		return nil, err
	}

	item.UpdatedAt, err = s.contents.Touch(ctx, item.ID, now)
	if err != nil {
		return nil, err
	}
	if err = s.notifier.NotifyAsync(item); err != nil {
		log.Warn().Err(err).Str("func", "personalizationService.Personalize").Msg("update notification was not scheduled")
	}

	log.Info().Str("func", "personalizationService.Personalize").Msg("pass personalized")
	return signature, nil
}
