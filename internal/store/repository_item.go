// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

// itemRepository is the SQL implementation of [ItemRepository] over the
// "items" and "item_contents" tables.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem inserts the item and its content row in one transaction.
//
// Error handling:
//   - unique violation on the serial → [ErrItemAlreadyExists].
//   - any other failure → wrapped [ErrExecutingStatement].
func (r *itemRepository) CreateItem(ctx context.Context, item models.WalletItem, content models.ItemContent) error {
	log := logger.FromContext(ctx).WithItem(item)

	itemQuery, itemArgs, err := buildInsertItemQuery(r.dialect, item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	content.ItemID = item.ID
	contentQuery, contentArgs, err := buildInsertContentQuery(r.dialect, content)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, itemQuery, itemArgs...); err != nil {
			if isUniqueViolation(err) {
				return ErrItemAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err := tx.ExecContext(ctx, contentQuery, contentArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "itemRepository.CreateItem").Msg("failed to create item")
		return err
	}

	return nil
}

// GetItem returns one item or [ErrItemNotFound].
func (r *itemRepository) GetItem(ctx context.Context, kind models.Kind, typeID string, id uuid.UUID) (models.WalletItem, error) {
	items, err := r.selectItems(ctx, kind, typeID, id)
	if err != nil {
		return models.WalletItem{}, err
	}
	if len(items) == 0 {
		return models.WalletItem{}, ErrItemNotFound
	}
	return items[0], nil
}

// GetItems returns the requested items in the order of ids.
func (r *itemRepository) GetItems(ctx context.Context, kind models.Kind, typeID string, ids []uuid.UUID) ([]models.WalletItem, error) {
	log := logger.FromContext(ctx)

	found, err := r.selectItems(ctx, kind, typeID, ids...)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.WalletItem, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}

	items := make([]models.WalletItem, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			log.Warn().
				Str("func", "itemRepository.GetItems").
				Str("kind", kind.String()).
				Str("type_identifier", typeID).
				Str("serial", id.String()).
				Msg("item not found")
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *itemRepository) selectItems(ctx context.Context, kind models.Kind, typeID string, ids ...uuid.UUID) ([]models.WalletItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(r.dialect, kind, typeID, ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.selectItems").
			Str("kind", kind.String()).
			Str("type_identifier", typeID).
			Msg("failed to execute query for getting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.WalletItem, 0, len(ids))
	for rows.Next() {
		var (
			item                 models.WalletItem
			kindName             string
			createdAt, updatedAt int64
		)
		if err = rows.Scan(&item.ID, &kindName, &item.TypeIdentifier, &item.AuthenticationToken, &createdAt, &updatedAt); err != nil {
			log.Err(err).Str("func", "itemRepository.selectItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Kind = models.Kind(kindName)
		item.CreatedAt = fromMicros(createdAt)
		item.UpdatedAt = fromMicros(updatedAt)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "itemRepository.selectItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetContent returns the content row of the item or [ErrContentNotFound].
func (r *itemRepository) GetContent(ctx context.Context, itemID uuid.UUID) (models.ItemContent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentQuery(r.dialect, itemID)
	if err != nil {
		return models.ItemContent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		content         models.ItemContent
		properties      string
		personalization sql.NullString
		updatedAt       int64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&content.ID, &content.ItemID, &content.Template, &properties, &personalization, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ItemContent{}, ErrContentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetContent").
			Str("serial", itemID.String()).
			Msg("failed to get item content")
		return models.ItemContent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	content.Properties = []byte(properties)
	if personalization.Valid {
		content.Personalization = []byte(personalization.String)
	}
	content.UpdatedAt = fromMicros(updatedAt)

	return content, nil
}

// UpdateContent updates the content row and touches the item in one
// transaction.
func (r *itemRepository) UpdateContent(ctx context.Context, itemID uuid.UUID, update models.UpdateItemRequest, now time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	contentQuery, contentArgs, err := buildUpdateContentQuery(r.dialect, itemID, update, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	touchQuery, touchArgs, err := buildTouchItemQuery(r.dialect, itemID, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedAt int64
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, contentQuery, contentArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrItemNotFound
		}

		return r.touch(ctx, tx, touchQuery, touchArgs, &updatedAt)
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateContent").
			Str("serial", itemID.String()).
			Msg("failed to update item content")
		return time.Time{}, err
	}

	return fromMicros(updatedAt), nil
}

// Touch bumps the modification time of the item.
func (r *itemRepository) Touch(ctx context.Context, itemID uuid.UUID, now time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchItemQuery(r.dialect, itemID, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedAt int64
	if err = r.touch(ctx, r.DB, query, args, &updatedAt); err != nil {
		log.Err(err).
			Str("func", "itemRepository.Touch").
			Str("serial", itemID.String()).
			Msg("failed to touch item")
		return time.Time{}, err
	}

	return fromMicros(updatedAt), nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *itemRepository) touch(ctx context.Context, q rowQuerier, query string, args []any, updatedAt *int64) error {
	err := q.QueryRowContext(ctx, query, args...).Scan(updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// DeleteItem deletes the item; dependent rows cascade.
func (r *itemRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.dialect, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Str("serial", itemID.String()).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrItemNotFound
	}

	log.Info().
		Str("func", "itemRepository.DeleteItem").
		Str("serial", itemID.String()).
		Msg("item deleted")
	return nil
}
