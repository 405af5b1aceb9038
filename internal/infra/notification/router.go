// Package notification implements the push transports.
package notification

import (
	"context"
	"log/slog"

	"nudge/config"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/service"
	"nudge/internal/errors"

	"go.uber.org/fx"
)

// Router picks the transport for a subscription by its kind.
type Router struct {
	transports map[entity.SubscriptionKind]service.PushTransport
}

// NewRouter builds a router over the given transports; nil entries are skipped.
func NewRouter(transports map[entity.SubscriptionKind]service.PushTransport) *Router {
	r := &Router{transports: make(map[entity.SubscriptionKind]service.PushTransport, len(transports))}
	for kind, transport := range transports {
		if transport != nil {
			r.transports[kind] = transport
		}
	}

	return r
}

func (r *Router) Send(ctx context.Context, sub *entity.PushSubscription, payload entity.PushPayload) error {
	transport, ok := r.transports[sub.Kind]
	if !ok {
		return domainerrors.NewTransientDeliveryError(0, errors.Errorf("no transport configured for %q subscriptions", sub.Kind))
	}

	return transport.Send(ctx, sub, payload)
}

// Params holds dependencies for the push transports, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New wires the configured transports. Missing credentials disable a kind
// instead of failing startup; sends to that kind are then counted as failed.
func New(params Params) (service.PushTransport, error) {
	transports := map[entity.SubscriptionKind]service.PushTransport{}

	if cfg := params.Config.WebPush; cfg != nil && cfg.VAPIDPublicKey != "" {
		transport, err := NewWebPushTransport(cfg, nil)
		if err != nil {
			return nil, err
		}
		transports[entity.SubscriptionKindWebPush] = transport
	} else {
		params.Logger.Warn("Web Push not configured, browser subscriptions will not receive messages")
	}

	if cfg := params.Config.Firebase; cfg != nil && cfg.CredentialsPath != "" {
		transport, err := NewFirebaseTransport(params.Ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		transports[entity.SubscriptionKindFCM] = transport
	} else {
		params.Logger.Info("Firebase not configured, native subscriptions will not receive messages")
	}

	return NewRouter(transports), nil
}

// Module provides the push transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
