package kv

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// IsPostgresDSN reports whether dsn points at a PostgreSQL server rather
// than a SQLite file.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// RunMigrations applies the embedded goose migrations using the given goose
// dialect ("sqlite3" or "postgres").
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open connects to dsn, migrates the schema and returns a ready SQLStore.
// postgres:// and postgresql:// DSNs use pgx; anything else is a SQLite path.
func Open(ctx context.Context, dsn string) (*SQLStore, error) {
	driver, newStore := "sqlite", NewSQLiteStore
	if IsPostgresDSN(dsn) {
		driver, newStore = "pgx", NewPostgresStore
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// a single writer avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}

	store := newStore(db)
	if err := RunMigrations(ctx, db, store.dialect.name); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}
