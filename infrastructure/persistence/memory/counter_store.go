// Package memory provides an in-process counter store for single-process deployments and tests.
package memory

import (
	"context"
	"sync"

	"resume-backend/application/ports"
)

// CounterStore keeps counters in a mutex-guarded map
type CounterStore struct {
	mu     sync.Mutex
	counts map[string]int
}

var _ ports.CounterBackend = (*CounterStore)(nil)

// NewCounterStore creates an empty store
func NewCounterStore() *CounterStore {
	return &CounterStore{counts: make(map[string]int)}
}

// Increment adds one under the store lock
func (s *CounterStore) Increment(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[id]++
	return s.counts[id], nil
}

// Get returns the stored count, zero when absent
func (s *CounterStore) Get(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counts[id], nil
}

// Put overwrites the stored count
func (s *CounterStore) Put(ctx context.Context, id string, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[id] = count
	return nil
}
