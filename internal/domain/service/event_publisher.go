package service

import (
	"context"
)

// DispatchEvent is a queued dispatch request, processed outside the write that produced it.
type DispatchEvent struct {
	RequestID       string   `json:"request_id,omitempty"` // For distributed tracing
	EventID         string   `json:"event_id"`
	Type            string   `json:"type"`
	OwnerID         string   `json:"owner_id,omitempty"`
	UserID          string   `json:"user_id,omitempty"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	URL             string   `json:"url,omitempty"`
	TargetClientIDs []string `json:"target_client_ids,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent submits a dispatch for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// DispatchEventHandler consumes a queued dispatch event.
// Errors are retryable: the caller may redeliver the event.
type DispatchEventHandler interface {
	HandleDispatchEvent(ctx context.Context, event *DispatchEvent) error
}
