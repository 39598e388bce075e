// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// connectTimeout bounds the retried start-up ping.
const connectTimeout = 30 * time.Second

// DB wraps *sql.DB with the dialect it talks to and the error classifier
// used to decide whether a failed operation is worth retrying.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.DSN and pings it. Transient
// failures (as reported by the dialect's classifier) are retried with
// exponential backoff for up to connectTimeout.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, driver, dataSource, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("invalid database dsn")
		return nil, err
	}

	conn, err := sql.Open(driver, dataSource)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	db := &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: newErrorClassifier(dialect),
		logger:             log,
	}

	switch dialect {
	case DialectPostgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	case DialectSQLite:
		conn.SetMaxOpenConns(4)
	}

	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewDB").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return db, nil
}

func (db *DB) ping(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = connectTimeout

	return backoff.RetryNotify(func() error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) == NonRetryable {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		db.logger.Warn().Err(err).Str("func", "DB.ping").Dur("retry_in", next).Msg("database is not ready, retrying")
	})
}

// Dialect returns the backend db talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the db dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func (db *DB) builder() sq.StatementBuilderType {
	return db.dialect.builder()
}

// inTx runs fn in a transaction, committing when fn returns nil.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
