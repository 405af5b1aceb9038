package service

import (
	"context"

	"nudge/internal/domain/entity"
)

// PushTransport delivers one payload to one device endpoint.
// A failed send returns *errors.DeliveryError; Permanent is set when the
// push service reports the endpoint as gone.
type PushTransport interface {
	Send(ctx context.Context, sub *entity.PushSubscription, payload entity.PushPayload) error
}

// DeliveryObserver receives per-endpoint and per-invocation outcomes for metrics.
type DeliveryObserver interface {
	ObserveSend(kind entity.SubscriptionKind, outcome string)
	ObserveDispatch(dispatchType entity.DispatchType, result entity.DeliveryResult)
}

// Send outcomes reported to a DeliveryObserver.
const (
	SendOutcomeSent      = "sent"
	SendOutcomeTransient = "transient"
	SendOutcomePermanent = "permanent"
)
