package service

import (
	"context"

	"go.uber.org/zap"

	"feedback-board-api/internal/event"
	"feedback-board-api/internal/metrics"
)

// eventEmitter publishes live update events on a best-effort basis.
// A failed publish is logged and counted, the caller never sees it.
type eventEmitter struct {
	publisher event.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func newEventEmitter(publisher event.Publisher, m *metrics.Metrics, logger *zap.Logger) eventEmitter {
	if publisher == nil {
		publisher = event.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return eventEmitter{publisher: publisher, metrics: m, logger: logger}
}

func (e eventEmitter) emit(ctx context.Context, evt event.Event) {
	err := e.publisher.Publish(ctx, evt)
	if e.metrics != nil {
		e.metrics.RecordEventPublished(string(evt.Type), err)
	}
	if err != nil {
		e.logger.Warn("Failed to publish live update event",
			zap.String("type", string(evt.Type)),
			zap.Uint("feedback_id", evt.FeedbackID),
			zap.Error(err),
		)
	}
}
