// Package bolt provides an embedded key/value counter store.
package bolt

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-backend/application/ports"

	"go.etcd.io/bbolt"
)

var counterBucket = []byte("visitor_counters")

// CounterStore keeps counters as big-endian uint64 values in a bbolt bucket
type CounterStore struct {
	db *bbolt.DB
}

var _ ports.CounterBackend = (*CounterStore)(nil)

// Open opens a BoltDB-backed store at the provided path.
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

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(counterBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &CounterStore{db: db}, nil
}

// Close closes the underlying BoltDB database.
func (s *CounterStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func decode(raw []byte) int {
	if len(raw) != 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(raw))
}

func encode(count int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(count))
	return buf
}

// Increment reads and writes inside one write transaction; bbolt allows a single writer.
func (s *CounterStore) Increment(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var count int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(counterBucket)
		count = decode(bucket.Get([]byte(id))) + 1
		return bucket.Put([]byte(id), encode(count))
	})
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", id, err)
	}
	return count, nil
}

// Get returns the stored count, zero when absent
func (s *CounterStore) Get(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = decode(tx.Bucket(counterBucket).Get([]byte(id)))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("get counter %s: %w", id, err)
	}
	return count, nil
}

// Put overwrites the stored count
func (s *CounterStore) Put(ctx context.Context, id string, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", count)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(counterBucket).Put([]byte(id), encode(count))
	})
	if err != nil {
		return fmt.Errorf("put counter %s: %w", id, err)
	}
	return nil
}
