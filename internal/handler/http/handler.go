package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	adminSecret       string
	adminSecretHeader string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// /metrics is not served.
func NewHandler(services *service.Services, cfg config.App, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		metrics:           metrics,
		adminSecret:       cfg.AdminSecret,
		adminSecretHeader: cfg.AdminSecretHeader,
		logger:            logger,
	}
}
