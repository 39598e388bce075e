// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testWalletItem() models.WalletItem {
	now := time.UnixMicro(1_700_000_000_000_000).UTC()
	return models.WalletItem{
		ID:                  uuid.New(),
		Kind:                models.KindPass,
		TypeIdentifier:      "pass.com.example.event",
		AuthenticationToken: "token-1234567890abcdef",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

var itemRowColumns = []string{"id", "kind", "type_identifier", "authentication_token", "created_at", "updated_at"}

// ─────────────────────────────────────────────
// CreateItem
// ─────────────────────────────────────────────

func TestItemRepository_CreateItem_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())
	item := testWalletItem()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").
		WithArgs(item.ID.String(), "pass", item.TypeIdentifier, item.AuthenticationToken, item.CreatedAt.UnixMicro(), item.UpdatedAt.UnixMicro()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO item_contents").
		WithArgs(item.ID.String(), "event", `{"description":"x"}`, nil, item.UpdatedAt.UnixMicro()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateItem(context.Background(), item, models.ItemContent{
		Template:   "event",
		Properties: json.RawMessage(`{"description":"x"}`),
		UpdatedAt:  item.UpdatedAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_CreateItem_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.CreateItem(context.Background(), testWalletItem(), models.ItemContent{Properties: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrItemAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_CreateItem_ContentFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO item_contents").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.CreateItem(context.Background(), testWalletItem(), models.ItemContent{Properties: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_CreateItem_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("conn closed"))

	err := repo.CreateItem(context.Background(), testWalletItem(), models.ItemContent{})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ─────────────────────────────────────────────
// GetItem / GetItems
// ─────────────────────────────────────────────

func TestItemRepository_GetItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())
	item := testWalletItem()

	mock.ExpectQuery("SELECT id, kind, type_identifier, authentication_token, created_at, updated_at FROM items").
		WithArgs(item.ID.String(), "pass", item.TypeIdentifier).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(item.ID.String(), "pass", item.TypeIdentifier, item.AuthenticationToken, item.CreatedAt.UnixMicro(), item.UpdatedAt.UnixMicro()))

	got, err := repo.GetItem(context.Background(), models.KindPass, item.TypeIdentifier, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestItemRepository_GetItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("FROM items").WillReturnRows(sqlmock.NewRows(itemRowColumns))

	_, err := repo.GetItem(context.Background(), models.KindPass, "pass.com.example", uuid.New())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemRepository_GetItem_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("FROM items").WillReturnError(errors.New("boom"))

	_, err := repo.GetItem(context.Background(), models.KindPass, "pass.com.example", uuid.New())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestItemRepository_GetItems_KeepsRequestOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	a, b := testWalletItem(), testWalletItem()
	rows := sqlmock.NewRows(itemRowColumns).
		AddRow(a.ID.String(), "pass", a.TypeIdentifier, "t", int64(1), int64(1)).
		AddRow(b.ID.String(), "pass", b.TypeIdentifier, "t", int64(1), int64(1))
	mock.ExpectQuery("FROM items").WillReturnRows(rows)

	items, err := repo.GetItems(context.Background(), models.KindPass, a.TypeIdentifier, []uuid.UUID{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)
}

func TestItemRepository_GetItems_MissingFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	a := testWalletItem()
	mock.ExpectQuery("FROM items").WillReturnRows(sqlmock.NewRows(itemRowColumns).
		AddRow(a.ID.String(), "pass", a.TypeIdentifier, "t", int64(1), int64(1)))

	_, err := repo.GetItems(context.Background(), models.KindPass, a.TypeIdentifier, []uuid.UUID{a.ID, uuid.New()})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

// ─────────────────────────────────────────────
// Content
// ─────────────────────────────────────────────

func TestItemRepository_GetContent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())
	id := uuid.New()

	mock.ExpectQuery("FROM item_contents").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "template", "properties", "personalization", "updated_at"}).
			AddRow(int64(3), id.String(), "event", `{"a":1}`, nil, int64(10)))

	content, err := repo.GetContent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "event", content.Template)
	assert.JSONEq(t, `{"a":1}`, string(content.Properties))
	assert.Nil(t, content.Personalization)
	assert.Equal(t, id, content.ItemID)
}

func TestItemRepository_GetContent_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("FROM item_contents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "template", "properties", "personalization", "updated_at"}))

	_, err := repo.GetContent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestItemRepository_UpdateContent_TouchesItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())
	id := uuid.New()
	now := time.UnixMicro(2_000_000)
	props := json.RawMessage(`{"b":2}`)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE item_contents SET").
		WithArgs(now.UnixMicro(), `{"b":2}`, id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE items SET updated_at = GREATEST\(updated_at \+ 1, \$1\)`).
		WithArgs(now.UnixMicro(), id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now.UnixMicro()))
	mock.ExpectCommit()

	updatedAt, err := repo.UpdateContent(context.Background(), id, models.UpdateItemRequest{Properties: &props}, now)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMicro(), updatedAt.UnixMicro())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UpdateContent_UnknownItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE item_contents").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateContent(context.Background(), uuid.New(), models.UpdateItemRequest{}, time.Now())
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())
	id := uuid.New()

	mock.ExpectExec("DELETE FROM items WHERE id = \\$1").WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteItem(context.Background(), id))

	mock.ExpectExec("DELETE FROM items").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteItem(context.Background(), id), ErrItemNotFound)
}
