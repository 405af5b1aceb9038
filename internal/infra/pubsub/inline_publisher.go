package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"nudge/internal/domain/service"
)

// inlinePublisher hands events to an in-process handler on a detached goroutine,
// so the publishing request returns before the dispatch runs.
type inlinePublisher struct {
	handler service.DispatchEventHandler
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewInlinePublisher creates a publisher for single-process deployments
func NewInlinePublisher(handler service.DispatchEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{
		handler: handler,
		logger:  logger,
	}
}

func (p *inlinePublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	detached := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if err := p.handler.HandleDispatchEvent(detached, event); err != nil {
			p.logger.Error("[InlinePubSub] Dispatch event failed",
				slog.String("event_id", event.EventID),
				slog.String("type", event.Type),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for in-flight events
func (p *inlinePublisher) Close() error {
	p.wg.Wait()

	return nil
}
