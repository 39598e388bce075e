package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrItemNotFound), http.StatusNotFound},
		{"unauthorized joined with header error", errors.Join(service.ErrUnauthorized, utils.ErrInvalidAuthorization), http.StatusUnauthorized},
		{"kind not served", service.ErrKindNotSupported, http.StatusNotFound},
		{"duplicate item", store.ErrItemAlreadyExists, http.StatusConflict},
		{"validation", fmt.Errorf("error during registration validation: %w", validators.ErrEmptyPushToken), http.StatusBadRequest},
		{"duplicate serial in batch", validators.ErrDuplicateSerialNumber, http.StatusBadRequest},
		{"bad cursor", ErrInvalidCursor, http.StatusBadRequest},
		{"bad json", ErrInvalidJSON, http.StatusBadRequest},
		{"admin secret", ErrAdminSecretMismatch, http.StatusUnauthorized},
		{"push failed", service.ErrPushFailed, http.StatusBadGateway},
		{"signing timeout", bundle.ErrSigningTimedOut, http.StatusServiceUnavailable},
		{"signing failure", bundle.ErrSigningFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("select from items where id=42: %w", store.ErrItemNotFound), "test")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusNotFound)+"\n", rec.Body.String())
}
