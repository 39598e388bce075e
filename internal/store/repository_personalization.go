package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

type personalizationRepository struct {
	*DB
	logger *logger.Logger
}

// NewPersonalizationRepository constructs a [PersonalizationRepository]
// backed by db.
func NewPersonalizationRepository(db *DB, logger *logger.Logger) PersonalizationRepository {
	return &personalizationRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePersonalization stores info. A second row for the same item yields
// [ErrAlreadyPersonalized]; an unknown item yields [ErrItemNotFound].
func (r *personalizationRepository) SavePersonalization(ctx context.Context, info models.PersonalizationInfo) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPersonalizationQuery(r.dialect, info)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrAlreadyPersonalized
		case isForeignKeyViolation(err):
			return ErrItemNotFound
		}
		log.Err(err).
			Str("func", "personalizationRepository.SavePersonalization").
			Str("serial", info.ItemID.String()).
			Msg("failed to save personalization info")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *personalizationRepository) IsPersonalized(ctx context.Context, itemID uuid.UUID) (bool, error) {
	query, args, err := buildCountPersonalizationQuery(r.dialect, itemID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count > 0, nil
}
