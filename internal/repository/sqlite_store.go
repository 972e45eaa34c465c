package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikolayk812/fyf-cart/internal/port"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS cart_state (
	key        TEXT    PRIMARY KEY,
	value      BLOB    NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore is a KeyValueStore backed by a single SQLite table.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database file at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlDB.Ping: %w", err)
	}

	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM cart_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select cart_state: %w", err)
	}

	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO cart_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert cart_state: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) (bool, error) {
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cart_state WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("delete cart_state: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
