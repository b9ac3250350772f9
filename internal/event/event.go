package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types published after successful admin writes
const (
	JobCreated     Type = "job.created"
	JobUpdated     Type = "job.updated"
	JobDeleted     Type = "job.deleted"
	ContactUpdated Type = "contact.updated"
)

// JobTypes lists every job posting event type.
var JobTypes = []Type{JobCreated, JobUpdated, JobDeleted}

// JobChangedPayloadV1 is the typed payload for job posting events.
// PreviousSlug is set on updates that changed the slug.
type JobChangedPayloadV1 struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	PreviousSlug string `json:"previous_slug,omitempty"`
	Category     string `json:"category,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// ContactUpdatedPayloadV1 is the typed payload for contact info events
type ContactUpdatedPayloadV1 struct {
	ID        int64 `json:"id"`
	Created   bool  `json:"created"`
	Timestamp int64 `json:"timestamp"`
}

// NewJobEvent creates a job posting event with a type-safe payload
func NewJobEvent(eventType Type, id int64, slug, previousSlug, category string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: JobChangedPayloadV1{
			ID:           id,
			Slug:         slug,
			PreviousSlug: previousSlug,
			Category:     category,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewContactUpdatedEvent creates a contact info event
func NewContactUpdatedEvent(id int64, created bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContactUpdated,
		Payload: ContactUpdatedPayloadV1{
			ID:        id,
			Created:   created,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publishing goroutine.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Every handler runs even if
// an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
