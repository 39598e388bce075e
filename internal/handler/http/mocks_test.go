package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

// ─────────────────────────────────────────────
// Service mocks. A nil function field panics when called, which flags
// an unexpected call in a test.
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockItemService struct {
	createFn    func(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error)
	getFn       func(ctx context.Context, kind models.Kind, typeID, serial string) (models.WalletItem, error)
	getManyFn   func(ctx context.Context, kind models.Kind, typeID string, serials []string) ([]models.WalletItem, error)
	updateFn    func(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error)
	deleteFn    func(ctx context.Context, kind models.Kind, typeID, serial string) error
	authorizeFn func(ctx context.Context, kind models.Kind, typeID, serial, authorization string) (models.WalletItem, error)
}

func (m *mockItemService) CreateItem(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error) {
	return m.createFn(ctx, kind, req)
}

func (m *mockItemService) GetItem(ctx context.Context, kind models.Kind, typeID, serial string) (models.WalletItem, error) {
	return m.getFn(ctx, kind, typeID, serial)
}

func (m *mockItemService) GetItems(ctx context.Context, kind models.Kind, typeID string, serials []string) ([]models.WalletItem, error) {
	return m.getManyFn(ctx, kind, typeID, serials)
}

func (m *mockItemService) UpdateItem(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error) {
	return m.updateFn(ctx, kind, typeID, serial, req)
}

func (m *mockItemService) DeleteItem(ctx context.Context, kind models.Kind, typeID, serial string) error {
	return m.deleteFn(ctx, kind, typeID, serial)
}

func (m *mockItemService) Authorize(ctx context.Context, kind models.Kind, typeID, serial, authorization string) (models.WalletItem, error) {
	return m.authorizeFn(ctx, kind, typeID, serial, authorization)
}

type mockBundleService struct {
	generateFn func(ctx context.Context, item models.Item) ([]byte, error)
	batchFn    func(ctx context.Context, items []models.Item) ([]byte, error)
}

func (m *mockBundleService) Generate(ctx context.Context, item models.Item) ([]byte, error) {
	return m.generateFn(ctx, item)
}

func (m *mockBundleService) GenerateBatch(ctx context.Context, items []models.Item) ([]byte, error) {
	return m.batchFn(ctx, items)
}

func (m *mockBundleService) SignToken(context.Context, models.Kind, []byte) ([]byte, error) {
	panic("unexpected SignToken call")
}

type mockRegistrationService struct {
	registerFn     func(ctx context.Context, item models.Item, libraryID string, req models.RegistrationRequest) (models.RegistrationStatus, error)
	unregisterFn   func(ctx context.Context, item models.Item, libraryID string) error
	changedSinceFn func(ctx context.Context, kind models.Kind, typeID, libraryID string, since time.Time) (models.ChangedItems, error)
	pushTokensFn   func(ctx context.Context, item models.Item) ([]string, error)
	sweepFn        func(ctx context.Context) (int64, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, item models.Item, libraryID string, req models.RegistrationRequest) (models.RegistrationStatus, error) {
	return m.registerFn(ctx, item, libraryID, req)
}

func (m *mockRegistrationService) Unregister(ctx context.Context, item models.Item, libraryID string) error {
	return m.unregisterFn(ctx, item, libraryID)
}

func (m *mockRegistrationService) ChangedSince(ctx context.Context, kind models.Kind, typeID, libraryID string, since time.Time) (models.ChangedItems, error) {
	return m.changedSinceFn(ctx, kind, typeID, libraryID, since)
}

func (m *mockRegistrationService) PushTokens(ctx context.Context, item models.Item) ([]string, error) {
	return m.pushTokensFn(ctx, item)
}

func (m *mockRegistrationService) SweepOrphanDevices(ctx context.Context) (int64, error) {
	return m.sweepFn(ctx)
}

type mockNotificationService struct {
	notifyFn func(ctx context.Context, item models.Item) (service.NotifyReport, error)
}

func (m *mockNotificationService) Notify(ctx context.Context, item models.Item) (service.NotifyReport, error) {
	return m.notifyFn(ctx, item)
}

func (m *mockNotificationService) NotifyAsync(models.Item) error { return nil }

func (m *mockNotificationService) Stop() {}

type mockPersonalizationService struct {
	personalizeFn func(ctx context.Context, kind models.Kind, typeID, serial string, req models.PersonalizationRequest) ([]byte, error)
}

func (m *mockPersonalizationService) Personalize(ctx context.Context, kind models.Kind, typeID, serial string, req models.PersonalizationRequest) ([]byte, error) {
	return m.personalizeFn(ctx, kind, typeID, serial, req)
}

type mockErrorLogService struct {
	saveFn func(ctx context.Context, kind models.Kind, req models.LogsRequest) error
}

func (m *mockErrorLogService) SaveLogs(ctx context.Context, kind models.Kind, req models.LogsRequest) error {
	return m.saveFn(ctx, kind, req)
}
