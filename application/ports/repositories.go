package ports

import (
	"context"
)

// CounterStore persists the visitor counter record.
// This is a port in hexagonal architecture - the services don't know which database backs it.
type CounterStore interface {
	// Increment adds one to the counter and returns the new value.
	// A missing record counts as zero, so the first call returns 1.
	Increment(ctx context.Context, id string) (int, error)

	// Get returns the current value, zero when the record does not exist
	Get(ctx context.Context, id string) (int, error)
}

// CounterReadWriter exposes the separate read and write halves of a counter backend
type CounterReadWriter interface {
	// Get returns the current value, zero when the record does not exist
	Get(ctx context.Context, id string) (int, error)

	// Put overwrites the stored value unconditionally
	Put(ctx context.Context, id string, count int) error
}

// CounterBackend is implemented by every storage adapter
type CounterBackend interface {
	CounterStore
	CounterReadWriter
}
