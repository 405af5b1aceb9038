package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"nudge/config"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSendTimeout    = 10 * time.Second
	defaultMaxConcurrency = 32
)

// DeliveryEngine fans a payload out to every endpoint of a recipient set.
// A failed endpoint never stops delivery to the others.
type DeliveryEngine struct {
	subscriptionRepo repository.PushSubscriptionRepository
	transport        service.PushTransport
	observer         service.DeliveryObserver
	sendTimeout      time.Duration
	maxConcurrency   int
	logger           *slog.Logger
}

// DeliveryEngineParams holds dependencies for DeliveryEngine, injected by Fx.
type DeliveryEngineParams struct {
	fx.In

	SubscriptionRepo repository.PushSubscriptionRepository
	Transport        service.PushTransport
	Observer         service.DeliveryObserver `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDeliveryEngine creates the engine shared by every dispatch path.
func NewDeliveryEngine(params DeliveryEngineParams) *DeliveryEngine {
	engine := &DeliveryEngine{
		subscriptionRepo: params.SubscriptionRepo,
		transport:        params.Transport,
		observer:         params.Observer,
		sendTimeout:      defaultSendTimeout,
		maxConcurrency:   defaultMaxConcurrency,
		logger:           params.Logger,
	}

	if params.Config != nil {
		if params.Config.Dispatch.SendTimeout > 0 {
			engine.sendTimeout = params.Config.Dispatch.SendTimeout
		}
		if params.Config.Dispatch.MaxConcurrency > 0 {
			engine.maxConcurrency = params.Config.Dispatch.MaxConcurrency
		}
	}

	if engine.logger == nil {
		engine.logger = slog.Default()
	}

	return engine
}

func (e *DeliveryEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// DeliverToUsers sends payload to every endpoint of userIDs.
// An empty recipient set returns without touching the subscription store.
func (e *DeliveryEngine) DeliverToUsers(ctx context.Context, userIDs []uuid.UUID, payload entity.PushPayload) (entity.DeliveryResult, error) {
	if len(userIDs) == 0 {
		return entity.DeliveryResult{}, nil
	}

	subs, err := e.subscriptionRepo.FindSubscriptionsByUserIDs(ctx, userIDs)
	if err != nil {
		return entity.DeliveryResult{}, errors.Wrap(err, "failed to load recipient subscriptions")
	}

	return e.deliver(ctx, subs, payload), nil
}

// DeliverToAll sends payload to every endpoint in the store.
func (e *DeliveryEngine) DeliverToAll(ctx context.Context, payload entity.PushPayload) (entity.DeliveryResult, error) {
	subs, err := e.subscriptionRepo.FindAllSubscriptions(ctx)
	if err != nil {
		return entity.DeliveryResult{}, errors.Wrap(err, "failed to load subscriptions")
	}

	return e.deliver(ctx, subs, payload), nil
}

func (e *DeliveryEngine) deliver(ctx context.Context, subs []*entity.PushSubscription, payload entity.PushPayload) entity.DeliveryResult {
	if len(subs) == 0 {
		return entity.DeliveryResult{}
	}

	var sent, failed, pruned atomic.Int64

	// Sends never return an error to the group; outcomes are counted instead.
	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)

	for _, sub := range subs {
		g.Go(func() error {
			switch e.send(ctx, sub, payload) {
			case service.SendOutcomeSent:
				sent.Add(1)
			case service.SendOutcomePermanent:
				failed.Add(1)
				if e.prune(ctx, sub) {
					pruned.Add(1)
				}
			default:
				failed.Add(1)
			}

			return nil
		})
	}

	_ = g.Wait()

	return entity.DeliveryResult{
		Sent:   int(sent.Load()),
		Failed: int(failed.Load()),
		Pruned: int(pruned.Load()),
	}
}

// send performs one bounded transport call and classifies its outcome.
func (e *DeliveryEngine) send(ctx context.Context, sub *entity.PushSubscription, payload entity.PushPayload) string {
	sendCtx, cancel := context.WithTimeout(ctx, e.sendTimeout)
	defer cancel()

	outcome := service.SendOutcomeSent
	err := e.transport.Send(sendCtx, sub, payload)

	switch {
	case err == nil:
	case domainerrors.IsPermanentDelivery(err):
		outcome = service.SendOutcomePermanent
		e.log(ctx).Info("[Delivery] Push endpoint gone, removing subscription",
			slog.String("subscriptionID", sub.ID.String()),
			slog.String("kind", string(sub.Kind)),
			slog.Any("error", err),
		)
	default:
		outcome = service.SendOutcomeTransient
		e.log(ctx).Warn("[Delivery] Push delivery failed",
			slog.String("subscriptionID", sub.ID.String()),
			slog.String("kind", string(sub.Kind)),
			slog.Any("error", err),
		)
	}

	if e.observer != nil {
		e.observer.ObserveSend(sub.Kind, outcome)
	}

	return outcome
}

// prune removes a dead endpoint. A failed delete is logged and left for the next permanent failure to retry.
func (e *DeliveryEngine) prune(ctx context.Context, sub *entity.PushSubscription) bool {
	if err := e.subscriptionRepo.DeleteSubscription(ctx, sub.ID); err != nil {
		e.log(ctx).Error("[Delivery] Failed to remove dead subscription",
			slog.String("subscriptionID", sub.ID.String()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}
