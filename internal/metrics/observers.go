package metrics

import (
	"context"
	"strings"

	"github.com/dewinson2/MJCL/internal/event"
)

// SlugObserver records slug generator collisions and fallbacks, and writes
// retried after a slug conflict
type SlugObserver struct{}

func (SlugObserver) SlugCollision() {
	SlugCollisions.Inc()
}

func (SlugObserver) SlugFallback(reason string) {
	SlugFallbacks.WithLabelValues(reason).Inc()
}

func (SlugObserver) SlugRetry() {
	SlugRetries.Inc()
}

// EventMetricsCollector subscribes to write events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every write event
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range event.JobTypes {
		bus.Subscribe(t, e.HandleEvent)
	}
	bus.Subscribe(event.ContactUpdated, e.HandleEvent)
}

// HandleEvent updates the counters for a single event
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ContactUpdated:
		ContactUpdates.Inc()
	default:
		// "job.created" -> "created"
		action := strings.TrimPrefix(string(evt.Type), "job.")
		JobWrites.WithLabelValues(action).Inc()
	}
	return nil
}
