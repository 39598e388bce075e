package handler

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	myHTTP "github.com/MKhiriev/go-wallet-issuer/internal/handler/http"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
)

type Handlers struct {
	HTTP *myHTTP.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. metrics may be
// nil.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, metrics http.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = myHTTP.NewHandler(services, cfg.App, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
