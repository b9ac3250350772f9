package cache

import (
	"context"

	"github.com/dewinson2/MJCL/internal/event"
	"github.com/dewinson2/MJCL/internal/logger"
)

// RegisterInvalidation drops cached public responses whenever a write event
// is published, so readers see the change on their next request.
func RegisterInvalidation(bus event.Bus, c Cache) {
	for _, t := range event.JobTypes {
		bus.Subscribe(t, func(ctx context.Context, evt event.Event) error {
			log := logger.FromContext(ctx).With("event_type", evt.Type)
			if p, err := event.DecodePayload[event.JobChangedPayloadV1](evt.Payload); err == nil {
				log = log.With("job_id", p.ID, "slug", p.Slug)
			}
			log.Debug("Invalidating cached job responses")
			c.Invalidate(ctx, PrefixJobs)
			return nil
		})
	}
	bus.Subscribe(event.ContactUpdated, func(ctx context.Context, evt event.Event) error {
		logger.FromContext(ctx).Debug("Invalidating cached contact responses", "event_type", evt.Type)
		c.Invalidate(ctx, PrefixContact)
		return nil
	})
}
