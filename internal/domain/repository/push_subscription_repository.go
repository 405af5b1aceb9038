// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nudge/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("push subscription not found")
)

// PushSubscriptionRepository is the Subscription Store.
type PushSubscriptionRepository interface {
	// UpsertSubscription registers an endpoint for a user. Registering the same
	// (user, endpoint) again refreshes keys and device name instead of adding a row.
	UpsertSubscription(ctx context.Context, sub *entity.PushSubscription) error

	// FindSubscriptionsByUser retrieves every endpoint of one user.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// FindSubscriptionsByUserIDs retrieves the endpoints of a recipient set with a single IN query.
	FindSubscriptionsByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error)

	// FindAllSubscriptions retrieves every endpoint in the store.
	FindAllSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error)

	// DeleteSubscription removes a row by id. Deleting a missing row is not an error.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	// DeleteSubscriptionByEndpoint removes a user's endpoint. Returns ErrSubscriptionNotFound when absent.
	DeleteSubscriptionByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error
}
