package event

import (
	"context"

	"github.com/dewinson2/MJCL/internal/logger"
)

// PublishBestEffort publishes and logs handler failures instead of returning
// them. Writes that already succeeded must not be reported as failed because
// a subscriber could not keep up.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
