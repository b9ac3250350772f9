package bootstrap

import (
	"log/slog"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/event"
	"github.com/dewinson2/MJCL/internal/metrics"
)

// InitializeEventSystem creates the event bus and subscribes the handlers
// that react to writes: metrics counters and response cache invalidation.
func InitializeEventSystem(c cache.Cache) event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	cache.RegisterInvalidation(bus, c)

	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
