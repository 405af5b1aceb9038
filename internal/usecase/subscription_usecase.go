package usecase

import (
	"context"

	"nudge/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionInput is a device endpoint as registered by a client.
type SubscriptionInput struct {
	Kind       entity.SubscriptionKind
	Endpoint   string
	P256dh     string
	Auth       string
	DeviceName string
}

// SubscriptionUsecase manages a user's push endpoints and opt-in preference.
type SubscriptionUsecase interface {
	// Subscribe registers or refreshes an endpoint. The first subscription of a
	// user also creates an enabled preference; an existing opt-out is kept.
	Subscribe(ctx context.Context, userID uuid.UUID, input *SubscriptionInput) (*entity.PushSubscription, error)

	// Unsubscribe removes one of the user's endpoints.
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error

	// ListSubscriptions returns every endpoint of the user.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// GetPreference returns the user's opt-in state. A user without a row is reported as disabled.
	GetPreference(ctx context.Context, userID uuid.UUID) (*entity.AlertPreference, error)

	// SetPreference turns scheduled reminders on or off.
	SetPreference(ctx context.Context, userID uuid.UUID, enabled bool) (*entity.AlertPreference, error)

	// SendTest delivers a test notification to every endpoint of the user.
	SendTest(ctx context.Context, userID uuid.UUID) (*entity.DispatchSummary, error)
}
