package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionKind identifies the transport that serves an endpoint.
type SubscriptionKind string

const (
	// SubscriptionKindWebPush is a browser endpoint signed with VAPID.
	SubscriptionKindWebPush SubscriptionKind = "webpush"
	// SubscriptionKindFCM is a native device addressed by its FCM registration token.
	SubscriptionKindFCM SubscriptionKind = "fcm"
)

// IsValid checks if the kind is a supported transport.
func (k SubscriptionKind) IsValid() bool {
	switch k {
	case SubscriptionKindWebPush, SubscriptionKindFCM:
		return true
	default:
		return false
	}
}

// PushSubscription is one device endpoint registered by a user.
// (UserID, Endpoint) is unique; re-registering updates the keys in place.
type PushSubscription struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"`
	Kind       SubscriptionKind `json:"kind"`
	Endpoint   string           `json:"endpoint"` // Push service URL, or the FCM token for native devices.
	P256dh     string           `json:"-"`        // Client public key, web push only.
	Auth       string           `json:"-"`        // Client auth secret, web push only.
	DeviceName string           `json:"device_name"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
