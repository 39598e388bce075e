package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	for _, want := range []string{"1.2.3", "", "v2.0.0-beta+build.42"} {
		t.Run(want, func(t *testing.T) {
			h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: want}})

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: "3.0.0"}})

	rec := serve(t, h, http.MethodGet, "/api/version/", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
}
