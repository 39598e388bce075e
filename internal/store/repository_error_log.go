package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

type errorLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewErrorLogRepository constructs an [ErrorLogRepository] backed by db.
func NewErrorLogRepository(db *DB, logger *logger.Logger) ErrorLogRepository {
	return &errorLogRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLogs stores one row per message with a single INSERT. An empty
// slice is a no-op.
func (r *errorLogRepository) SaveLogs(ctx context.Context, kind models.Kind, messages []string, now time.Time) error {
	if len(messages) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildInsertErrorLogsQuery(r.dialect, kind, messages, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "errorLogRepository.SaveLogs").
			Str("kind", kind.String()).
			Int("count", len(messages)).
			Msg("failed to save client logs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
