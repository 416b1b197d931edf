// Package sqlite provides a single-file counter store for always-on servers.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-backend/application/ports"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS visitor_counters (
	id    TEXT PRIMARY KEY,
	count INTEGER NOT NULL DEFAULT 0
)`

const incrementQuery = `INSERT INTO visitor_counters (id, count) VALUES (?, 1)
ON CONFLICT(id) DO UPDATE SET count = visitor_counters.count + 1
RETURNING count`

// CounterStore keeps visitor counters in a SQLite table
type CounterStore struct {
	db *sql.DB
}

var _ ports.CounterBackend = (*CounterStore)(nil)

// Open opens the SQLite database at path, creating its directory and schema.
func Open(path string) (*CounterStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer keeps the upsert serialised inside this process.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &CounterStore{db: db}, nil
}

// Close closes the underlying database
func (s *CounterStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Increment upserts the row and returns the new count in one statement
func (s *CounterStore) Increment(ctx context.Context, id string) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, incrementQuery, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", id, err)
	}
	return count, nil
}

// Get returns the stored count, zero when the row is absent
func (s *CounterStore) Get(ctx context.Context, id string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT count FROM visitor_counters WHERE id = ?`, id).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get counter %s: %w", id, err)
	}
	return count, nil
}

// Put overwrites the stored count
func (s *CounterStore) Put(ctx context.Context, id string, count int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitor_counters (id, count) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET count = excluded.count`, id, count)
	if err != nil {
		return fmt.Errorf("put counter %s: %w", id, err)
	}
	return nil
}
