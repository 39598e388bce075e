// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

type itemService struct {
	items    store.ItemRepository
	notifier NotificationService
	wallets  wallets

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewItemService(items store.ItemRepository, notifier NotificationService, wallets map[models.Kind]config.Wallet, logger *logger.Logger) ItemService {
	return &itemService{
		items:    items,
		notifier: notifier,
		wallets:  wallets,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

// CreateItem issues a new serial (and a token when none is given) and
// stores the item with its content row.
func (s *itemService) CreateItem(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error) {
	if err := s.wallets.checkTemplate(kind, req.Template); err != nil {
		return models.WalletItem{}, err
	}

	now := s.timestamp()
	item := models.WalletItem{
		ID:                  s.ids.Generate(),
		Kind:                kind,
		TypeIdentifier:      req.TypeIdentifier,
		AuthenticationToken: req.AuthenticationToken,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if item.AuthenticationToken == "" {
		item.AuthenticationToken = s.ids.AuthToken()
	}

	content := models.ItemContent{
		Template:        req.Template,
		Properties:      req.Properties,
		Personalization: req.Personalization,
		UpdatedAt:       now,
	}

	if err := s.items.CreateItem(ctx, item, content); err != nil {
		return models.WalletItem{}, err
	}

	logger.FromContext(ctx).WithItem(item).Info().Str("func", "itemService.CreateItem").Msg("item created")
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, kind models.Kind, typeID, serial string) (models.WalletItem, error) {
	if _, _, err := s.wallets.get(kind); err != nil {
		return models.WalletItem{}, err
	}
	id, err := parseSerial(serial)
	if err != nil {
		return models.WalletItem{}, err
	}
	return s.items.GetItem(ctx, kind, typeID, id)
}

func (s *itemService) GetItems(ctx context.Context, kind models.Kind, typeID string, serials []string) ([]models.WalletItem, error) {
	if _, _, err := s.wallets.get(kind); err != nil {
		return nil, err
	}
	if len(serials) == 0 {
		return nil, ErrInvalidNumberOfItems
	}

	ids := make([]uuid.UUID, 0, len(serials))
	for _, serial := range serials {
		id, err := parseSerial(serial)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return s.items.GetItems(ctx, kind, typeID, ids)
}

// UpdateItem commits the content change first; the notification is best
// effort and never undoes the write.
func (s *itemService) UpdateItem(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error) {
	item, err := s.GetItem(ctx, kind, typeID, serial)
	if err != nil {
		return models.WalletItem{}, err
	}
	if req.Template != nil {
		if err = s.wallets.checkTemplate(kind, *req.Template); err != nil {
			return models.WalletItem{}, err
		}
	}

	item.UpdatedAt, err = s.items.UpdateContent(ctx, item.ID, req, s.timestamp())
	if err != nil {
		return models.WalletItem{}, err
	}

	log := logger.FromContext(ctx).WithItem(item)
	if err = s.notifier.NotifyAsync(item); err != nil {
		log.Warn().Err(err).Str("func", "itemService.UpdateItem").Msg("update notification was not scheduled")
	}

	log.Info().Str("func", "itemService.UpdateItem").Time("updated_at", item.UpdatedAt).Msg("item updated")
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, kind models.Kind, typeID, serial string) error {
	item, err := s.GetItem(ctx, kind, typeID, serial)
	if err != nil {
		return err
	}
	return s.items.DeleteItem(ctx, item.ID)
}

func (s *itemService) Authorize(ctx context.Context, kind models.Kind, typeID, serial, authorization string) (models.WalletItem, error) {
	item, err := s.GetItem(ctx, kind, typeID, serial)
	if err != nil {
		return models.WalletItem{}, err
	}

	token, err := utils.ParseAuthorization(authorization, kind.MustSpec().AuthScheme)
	if err != nil {
		return models.WalletItem{}, errors.Join(ErrUnauthorized, err)
	}
	if !utils.SecureCompare(token, item.AuthenticationToken) {
		return models.WalletItem{}, ErrUnauthorized
	}

	return item, nil
}

// timestamp is the current time at storage precision.
func (s *itemService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
