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

type errorLogService struct {
	logs      store.ErrorLogRepository
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewErrorLogService(logs store.ErrorLogRepository, logger *logger.Logger) ErrorLogService {
	return &errorLogService{
		logs:      logs,
		validator: validators.NewWalletValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// SaveLogs stores the lines a wallet client reported and mirrors them to
// the service log.
func (s *errorLogService) SaveLogs(ctx context.Context, kind models.Kind, req models.LogsRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during logs validation: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, line := range req.Logs {
		log.Warn().Str("kind", kind.String()).Str("client_log", line).Msg("wallet client log")
	}

	return s.logs.SaveLogs(ctx, kind, req.Logs, s.now().UTC())
}
