// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/migrations"
)

// Driver names registered with database/sql. They double as goose dialects.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// DB wraps *sql.DB with the dialect-specific query builder.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewDB opens the database named by cfg.DSN. DSNs starting with
// postgres:// or postgresql:// use the pgx driver, anything else is
// treated as a SQLite file path.
func NewDB(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg.DSN, log)
	}

	return NewConnectSQLite(ctx, cfg.DSN, log)
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Dialect returns the driver name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
