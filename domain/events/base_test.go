package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVisitorCounted(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := NewVisitorCounted("resume", 7, now)

	assert.NotEmpty(t, event.GetEventID())
	assert.Equal(t, "resume", event.GetAggregateID())
	assert.Equal(t, EventTypeVisitorCounted, event.GetEventType())
	assert.Equal(t, now, event.GetTimestamp())
	assert.Equal(t, 1, event.GetVersion())
	assert.Equal(t, 7, event.Count)
}

func TestNewContactMessageDispatched(t *testing.T) {
	event := NewContactMessageDispatched("me@example.com", "msg-1", time.Now())

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "me@example.com", decoded["recipient"])
	assert.Equal(t, "msg-1", decoded["message_id"])
	assert.Equal(t, EventTypeContactMessageDispatched, decoded["event_type"])
	assert.NotContains(t, decoded, "message")
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewVisitorCounted("resume", 1, time.Now())
	b := NewVisitorCounted("resume", 1, time.Now())
	assert.NotEqual(t, a.GetEventID(), b.GetEventID())
}
