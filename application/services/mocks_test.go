package services

import (
	"context"
	"sync"

	"resume-backend/application/ports"
	"resume-backend/domain/events"

	"github.com/stretchr/testify/mock"
)

type mockCounterStore struct {
	mock.Mock
}

func (m *mockCounterStore) Increment(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockCounterStore) Get(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, email ports.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

type recordingMetrics struct {
	mu    sync.Mutex
	names []string
}

func (m *recordingMetrics) IncrementCounter(ctx context.Context, name string, dimensions map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = append(m.names, name)
}
