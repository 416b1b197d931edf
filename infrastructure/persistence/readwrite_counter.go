// Package persistence holds the counter storage adapters and the strategies that combine them.
package persistence

import (
	"context"
	"fmt"

	"resume-backend/application/ports"
	"resume-backend/domain/core/entities"
)

// Counter modes
const (
	// ModeAtomic increments with a single store-side atomic operation
	ModeAtomic = "atomic"

	// ModeReadWrite reads, increments in process and writes back.
	// Two concurrent increments can read the same value and lose one update.
	ModeReadWrite = "read-write"
)

// ReadWriteCounter increments with a separate read and an unconditional write.
// There is no transaction or version check between the two calls.
type ReadWriteCounter struct {
	rw ports.CounterReadWriter
}

var _ ports.CounterStore = (*ReadWriteCounter)(nil)

// NewReadWriteCounter creates a read-then-write counter over rw
func NewReadWriteCounter(rw ports.CounterReadWriter) *ReadWriteCounter {
	return &ReadWriteCounter{rw: rw}
}

// Increment reads the current count, adds one and stores the result.
// A failed read returns before the write path is reached.
func (c *ReadWriteCounter) Increment(ctx context.Context, id string) (int, error) {
	current, err := c.rw.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", id, err)
	}

	counter, err := entities.NewVisitorCounter(id, current)
	if err != nil {
		return 0, err
	}
	next := counter.Increment()

	if err := c.rw.Put(ctx, id, next); err != nil {
		return 0, fmt.Errorf("failed to write counter %s: %w", id, err)
	}
	return next, nil
}

// Get returns the current count
func (c *ReadWriteCounter) Get(ctx context.Context, id string) (int, error) {
	return c.rw.Get(ctx, id)
}

// WithMode returns the counter store for the configured mode
func WithMode(backend ports.CounterBackend, mode string) (ports.CounterStore, error) {
	switch mode {
	case "", ModeAtomic:
		return backend, nil
	case ModeReadWrite:
		return NewReadWriteCounter(backend), nil
	default:
		return nil, fmt.Errorf("unknown counter mode %q", mode)
	}
}
