package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/maisondeculture/leguide/internal/shared"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements SessionStore using SQLite.
type SQLiteStore struct {
	db    *sql.DB
	retry shared.RetryPolicy
}

// NewSQLite opens (or creates) the session database at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL lets the CLI and a concurrent reader share the file.
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db, retry: shared.DefaultRetryPolicy}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS chat_sessions (
		session_key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load implements SessionStore.
func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM chat_sessions WHERE session_key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", key, err)
	}
	return payload, nil
}

// Save implements SessionStore.
func (s *SQLiteStore) Save(ctx context.Context, key string, data []byte) error {
	query := `
	INSERT INTO chat_sessions (session_key, payload, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(session_key) DO UPDATE SET
		payload = excluded.payload,
		updated_at = excluded.updated_at`

	err := shared.RetryOnConflict(ctx, "save session", s.retry, func() error {
		_, err := s.db.ExecContext(ctx, query, key, data, time.Now().Unix())
		return err
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", key, err)
	}
	return nil
}

// Clear implements SessionStore.
func (s *SQLiteStore) Clear(ctx context.Context, key string) error {
	err := shared.RetryOnConflict(ctx, "clear session", s.retry, func() error {
		_, err := s.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE session_key = ?`, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear session %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
