package entities

import (
	"fmt"
)

// DefaultCounterID is the key of the page view counter record
const DefaultCounterID = "resume"

// VisitorCounter is the single persisted record tracking total page views
type VisitorCounter struct {
	id    string
	count int
}

// NewVisitorCounter rebuilds a counter from stored state
func NewVisitorCounter(id string, count int) (*VisitorCounter, error) {
	if id == "" {
		return nil, fmt.Errorf("counter ID cannot be empty")
	}
	if count < 0 {
		return nil, fmt.Errorf("counter %s has negative count %d", id, count)
	}
	return &VisitorCounter{id: id, count: count}, nil
}

// ID returns the counter key
func (c *VisitorCounter) ID() string {
	return c.id
}

// Count returns the current number of page views
func (c *VisitorCounter) Count() int {
	return c.count
}

// Increment records one page view and returns the new count
func (c *VisitorCounter) Increment() int {
	c.count++
	return c.count
}
