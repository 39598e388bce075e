// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// sqlite connection parameters: foreign keys must be enabled per connection
// for ON DELETE CASCADE to work; immediate transactions take the write lock
// up front so concurrent writers wait on the busy timeout instead of failing.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"

// ParseDSN selects the backend for dsn and returns the driver name and the
// data source to open.
//
//	postgres://... | postgresql://...  → pgx
//	sqlite://path | file:path | path   → sqlite3
func ParseDSN(dsn string) (Dialect, string, string, error) {
	switch {
	case dsn == "":
		return "", "", "", ErrEmptyDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, "pgx", dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, "sqlite3", sqliteDataSource(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.Contains(dsn, "://"):
		return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		return DialectSQLite, "sqlite3", sqliteDataSource(dsn), nil
	}
}

func sqliteDataSource(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}

// builder returns a squirrel statement builder with the placeholder format
// of d.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// greatest is the scalar maximum function of d.
func (d Dialect) greatest() string {
	if d == DialectPostgres {
		return "GREATEST"
	}
	return "MAX"
}
