package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository persists items together with their caller-owned content.
type ItemRepository interface {
	// CreateItem stores item and its content row atomically.
	CreateItem(ctx context.Context, item models.WalletItem, content models.ItemContent) error
	GetItem(ctx context.Context, kind models.Kind, typeID string, id uuid.UUID) (models.WalletItem, error)
	// GetItems returns the items in the order of ids. A missing id fails
	// the whole call with [ErrItemNotFound].
	GetItems(ctx context.Context, kind models.Kind, typeID string, ids []uuid.UUID) ([]models.WalletItem, error)
	GetContent(ctx context.Context, itemID uuid.UUID) (models.ItemContent, error)
	// UpdateContent applies update to the content row and touches the item.
	// It returns the new modification time of the item.
	UpdateContent(ctx context.Context, itemID uuid.UUID, update models.UpdateItemRequest, now time.Time) (time.Time, error)
	// Touch bumps the modification time of the item to at least now and
	// strictly past its previous value.
	Touch(ctx context.Context, itemID uuid.UUID, now time.Time) (time.Time, error)
	// DeleteItem removes the item; content, registrations and
	// personalization rows cascade.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// RegistrationRepository is the device ⇄ item subscription store.
type RegistrationRepository interface {
	RegisterDevice(ctx context.Context, libraryID, pushToken string, itemID uuid.UUID, now time.Time) (models.RegistrationStatus, error)
	// Unregister removes every registration of the device library for the
	// item. [ErrRegistrationNotFound] is returned when none existed.
	Unregister(ctx context.Context, libraryID string, itemID uuid.UUID) error
	// ItemsChangedSince lists the items of one kind and type identifier the
	// device is registered for whose modification time is strictly after
	// since.
	ItemsChangedSince(ctx context.Context, kind models.Kind, typeID, libraryID string, since time.Time) (models.ChangedItems, error)
	DevicesFor(ctx context.Context, itemID uuid.UUID) ([]models.Device, error)
	DeleteRegistration(ctx context.Context, deviceID int64, itemID uuid.UUID) error
	// DeleteOrphanDevices removes devices without any registration and
	// returns how many were removed.
	DeleteOrphanDevices(ctx context.Context) (int64, error)
}

// ErrorLogRepository stores client-submitted log lines.
type ErrorLogRepository interface {
	SaveLogs(ctx context.Context, kind models.Kind, messages []string, now time.Time) error
}

// PersonalizationRepository stores personalization info, at most one row
// per item.
type PersonalizationRepository interface {
	SavePersonalization(ctx context.Context, info models.PersonalizationInfo) error
	IsPersonalized(ctx context.Context, itemID uuid.UUID) (bool, error)
}
