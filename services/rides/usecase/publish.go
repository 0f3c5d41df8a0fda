package usecase

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/metrics"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
)

// publishEvent hands an event to the notifier after the owning transaction
// has committed. Failures never undo the committed change.
func publishEvent(ctx context.Context, gw rides.RideGW, subject string, event models.RideEvent) {
	if err := gw.PublishRideEvent(context.WithoutCancel(ctx), subject, event); err != nil {
		metrics.EventsPublishFailed.WithLabelValues(subject).Inc()
		logger.WarnCtx(ctx, "Failed to publish ride event",
			logger.String("subject", subject),
			logger.String("status", string(event.Status)),
			logger.Err(err))
	}
}
