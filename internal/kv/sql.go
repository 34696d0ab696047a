package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellkeeper/internal/dbx"
)

type dialect struct {
	name  string
	get   string
	set   string
	del   string
	list  string
	clear string
}

var (
	sqliteDialect = dialect{
		name: "sqlite3",
		get:  `SELECT value FROM kv_store WHERE key = ?`,
		set: `INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		del:   `DELETE FROM kv_store WHERE key = ?`,
		list:  `SELECT key, value FROM kv_store`,
		clear: `DELETE FROM kv_store`,
	}

	postgresDialect = dialect{
		name: "postgres",
		get:  `SELECT value FROM kv_store WHERE key = $1`,
		set: `INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		del:   `DELETE FROM kv_store WHERE key = $1`,
		list:  `SELECT key, value FROM kv_store`,
		clear: `DELETE FROM kv_store`,
	}
)

// SQLStore implements Store on a kv_store table.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLiteStore returns a SQLStore speaking the SQLite placeholder syntax.
func NewSQLiteStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, dialect: sqliteDialect}
}

// NewPostgresStore returns a SQLStore speaking the PostgreSQL placeholder syntax.
func NewPostgresStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, dialect: postgresDialect}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if _, err := db.ExecContext(ctx, s.dialect.set, key, string(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

// SetMany writes all items in a single transaction.
func (s *SQLStore) SetMany(ctx context.Context, items map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range items {
			if err := s.set(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.del, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.clear); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (s *SQLStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.list)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = []byte(value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}

	return result, nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
