package events

import (
	"time"

	"github.com/google/uuid"
)

// SourceBackend is the EventBridge source for events raised by this service
const SourceBackend = "resume.backend"

// Event types
const (
	EventTypeVisitorCounted           = "visitor.counted"
	EventTypeContactMessageDispatched = "contact.dispatched"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func newBaseEvent(aggregateID, eventType string, timestamp time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Timestamp:   timestamp,
		Version:     1,
	}
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// VisitorCounted is raised after the visitor counter was incremented
type VisitorCounted struct {
	BaseEvent
	CounterID string `json:"counter_id"`
	Count     int    `json:"count"`
}

// NewVisitorCounted creates a VisitorCounted event
func NewVisitorCounted(counterID string, count int, timestamp time.Time) VisitorCounted {
	return VisitorCounted{
		BaseEvent: newBaseEvent(counterID, EventTypeVisitorCounted, timestamp),
		CounterID: counterID,
		Count:     count,
	}
}

// ContactMessageDispatched is raised after a contact email was handed to the mail service.
// It deliberately carries no part of the submitted message.
type ContactMessageDispatched struct {
	BaseEvent
	Recipient string `json:"recipient"`
	MessageID string `json:"message_id,omitempty"`
}

// NewContactMessageDispatched creates a ContactMessageDispatched event
func NewContactMessageDispatched(recipient, messageID string, timestamp time.Time) ContactMessageDispatched {
	return ContactMessageDispatched{
		BaseEvent: newBaseEvent(recipient, EventTypeContactMessageDispatched, timestamp),
		Recipient: recipient,
		MessageID: messageID,
	}
}
