package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/maintenance-dashboard/internal/events"
	"github.com/spec-kit/maintenance-dashboard/internal/observability"
	"github.com/spec-kit/maintenance-dashboard/internal/source"
)

// RegisterRefreshObservers logs refresh outcomes and records them in metrics.
func RegisterRefreshObservers(dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) func() {
	unsubOK := dispatcher.Subscribe(events.EventTicketsRefreshed, func(ctx context.Context, e events.Event) error {
		payload, _ := e.Payload.(events.TicketsRefreshedPayload)
		metrics.RecordRefresh(!payload.FromCache, payload.Count)
		logger.Info("tickets refreshed",
			zap.String("event_id", e.ID),
			zap.Uint64("version", payload.Version),
			zap.Int("count", payload.Count),
			zap.Duration("duration", payload.Duration),
			zap.Bool("from_cache", payload.FromCache))
		return nil
	})
	unsubFailed := dispatcher.Subscribe(events.EventTicketsRefreshFailed, func(ctx context.Context, e events.Event) error {
		payload, _ := e.Payload.(events.TicketsRefreshFailedPayload)
		metrics.RecordRefresh(false, 0)
		logger.Warn("tickets refresh failed",
			zap.String("event_id", e.ID),
			zap.String("error", payload.Error),
			zap.Duration("duration", payload.Duration))
		return nil
	})
	return func() {
		unsubOK()
		unsubFailed()
	}
}

// StartTicketRefresher registers observers and runs the periodic refresh
// until ctx is cancelled. The returned channel closes when the loop exits.
func StartTicketRefresher(ctx context.Context, src *source.TicketSource, interval time.Duration, metrics *observability.Metrics, logger *zap.Logger) <-chan struct{} {
	unsubscribe := RegisterRefreshObservers(src.Dispatcher(), metrics, logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer unsubscribe()
		logger.Info("ticket refresher started", zap.Duration("interval", interval))
		src.Run(ctx, interval)
		logger.Info("ticket refresher stopped")
	}()
	return done
}
