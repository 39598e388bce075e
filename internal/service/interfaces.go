package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

// BundleService turns items into signed bundles. Bundles are never cached:
// every call regenerates from the current content.
type BundleService interface {
	// Generate builds the signed bundle of item.
	Generate(ctx context.Context, item models.Item) ([]byte, error)

	// GenerateBatch builds every item concurrently and packs the bundles
	// into one outer archive in input order. The first failure aborts the
	// whole batch.
	GenerateBatch(ctx context.Context, items []models.Item) ([]byte, error)

	// SignToken returns a detached signature over token made with the
	// signing identity of kind.
	SignToken(ctx context.Context, kind models.Kind, token []byte) ([]byte, error)
}

// ContentResolver supplies the template directory and caller content of
// an item to the bundle pipeline.
type ContentResolver interface {
	Resolve(ctx context.Context, item models.Item) (bundle.Source, error)
}

// ItemService manages items and their content rows.
type ItemService interface {
	CreateItem(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error)
	GetItem(ctx context.Context, kind models.Kind, typeID, serial string) (models.WalletItem, error)
	GetItems(ctx context.Context, kind models.Kind, typeID string, serials []string) ([]models.WalletItem, error)

	// UpdateItem changes the content row, touches the item and schedules
	// an update notification. It returns the item as stored afterwards.
	UpdateItem(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error)
	DeleteItem(ctx context.Context, kind models.Kind, typeID, serial string) error

	// Authorize resolves the item and checks the Authorization header a
	// device sent for it. A missing item is reported before any token
	// comparison takes place.
	Authorize(ctx context.Context, kind models.Kind, typeID, serial, authorization string) (models.WalletItem, error)
}

// ItemServiceWrapper defines middleware composition for ItemService.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// RegistrationService is the device side of the subscription protocol.
type RegistrationService interface {
	Register(ctx context.Context, item models.Item, libraryID string, req models.RegistrationRequest) (models.RegistrationStatus, error)
	Unregister(ctx context.Context, item models.Item, libraryID string) error
	ChangedSince(ctx context.Context, kind models.Kind, typeID, libraryID string, since time.Time) (models.ChangedItems, error)
	PushTokens(ctx context.Context, item models.Item) ([]string, error)
	SweepOrphanDevices(ctx context.Context) (int64, error)
}

// NotifyReport summarizes one fan-out.
type NotifyReport struct {
	Attempted int `json:"attempted"`
	Delivered int `json:"delivered"`
	Pruned    int `json:"pruned"`
	Failed    int `json:"failed"`
}

// NotificationService tells registered devices that an item changed.
type NotificationService interface {
	// Notify pushes to every device registered for item and removes the
	// registrations whose tokens the push service rejected.
	Notify(ctx context.Context, item models.Item) (NotifyReport, error)

	// NotifyAsync schedules Notify on the dispatcher pool, detached from
	// the caller's context.
	NotifyAsync(item models.Item) error

	// Stop waits for scheduled notifications and rejects new ones.
	Stop()
}

// PersonalizationService handles the personalize endpoint of passes.
type PersonalizationService interface {
	// Personalize stores the holder info and returns the signed
	// personalization token.
	Personalize(ctx context.Context, kind models.Kind, typeID, serial string, req models.PersonalizationRequest) ([]byte, error)
}

type ErrorLogService interface {
	SaveLogs(ctx context.Context, kind models.Kind, req models.LogsRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
