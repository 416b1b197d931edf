package ports

import (
	"context"

	"resume-backend/domain/core/valueobjects"
	"resume-backend/domain/events"
)

// VisitorCounter is the visitor operation shared by every hosting shape
type VisitorCounter interface {
	GetAndIncrementVisitorCount(ctx context.Context) (int, error)
}

// ContactDispatcher is the contact operation shared by every hosting shape
type ContactDispatcher interface {
	DispatchContactMessage(ctx context.Context, name, email, message string) (valueobjects.Receipt, error)
}

// Email is a plaintext message handed to a Mailer
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Mailer delivers email through an external mail-sending capability
type Mailer interface {
	// Send delivers the email and returns the provider's message ID
	Send(ctx context.Context, email Email) (string, error)
}

// CodedError is a mail failure that carries the provider's error code
type CodedError interface {
	error
	ErrorCode() string
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// Metrics records business counters
type Metrics interface {
	IncrementCounter(ctx context.Context, name string, dimensions map[string]string)
}
