package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

const (
	testPassType    = "pass.com.example.event"
	testOrderType   = "order.com.example.shop"
	testToken       = "0123456789abcdef0123"
	testAdminSecret = "s3cret-admin"
	testAdminHeader = "X-Admin-Secret"
	testDevice      = "device-library-1"
)

var testUpdatedAt = time.Date(2026, 3, 14, 15, 9, 26, 535897000, time.UTC)

func testAppConfig() config.App {
	return config.App{
		AdminSecret:       testAdminSecret,
		AdminSecretHeader: testAdminHeader,
		Version:           "1.0.0",
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "1.0.0"}
	}
	return NewHandler(svcs, testAppConfig(), nil, logger.Nop())
}

func testWalletItem(kind models.Kind, typeID string) models.WalletItem {
	return models.WalletItem{
		ID:                  uuid.MustParse("0195f1b2-7c7e-7a3c-9d2e-3b1f0a9c8d7e"),
		Kind:                kind,
		TypeIdentifier:      typeID,
		AuthenticationToken: testToken,
		CreatedAt:           testUpdatedAt,
		UpdatedAt:           testUpdatedAt,
	}
}

// authorizingItems accepts only item and testToken.
func authorizingItems(item models.WalletItem) *mockItemService {
	return &mockItemService{
		authorizeFn: func(_ context.Context, kind models.Kind, typeID, serial, authorization string) (models.WalletItem, error) {
			if kind != item.Kind || typeID != item.TypeIdentifier || serial != item.ID.String() {
				return models.WalletItem{}, store.ErrItemNotFound
			}
			if authorization != item.Kind.MustSpec().AuthScheme+" "+testToken {
				return models.WalletItem{}, service.ErrUnauthorized
			}
			return item, nil
		},
		getFn: func(_ context.Context, kind models.Kind, typeID, serial string) (models.WalletItem, error) {
			if kind != item.Kind || typeID != item.TypeIdentifier || serial != item.ID.String() {
				return models.WalletItem{}, store.ErrItemNotFound
			}
			return item, nil
		},
	}
}

func serve(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func deviceAuth(kind models.Kind) map[string]string {
	return map[string]string{"Authorization": kind.MustSpec().AuthScheme + " " + testToken}
}

func adminAuth() map[string]string {
	return map[string]string{testAdminHeader: testAdminSecret}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func record(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
