package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AnnouncementInput is a one-off message from a coach to their clients.
type AnnouncementInput struct {
	Title string
	Body  string
	URL   string
	// TargetClientIDs narrows the audience; empty means every client of the coach.
	TargetClientIDs []uuid.UUID
}

// AnnouncementUsecase queues coach announcements for asynchronous dispatch.
type AnnouncementUsecase interface {
	// QueueAnnouncement publishes the announcement as a dispatch event and returns its event ID.
	// The request ID carried by ctx travels with the event.
	QueueAnnouncement(ctx context.Context, ownerID uuid.UUID, input *AnnouncementInput) (string, error)
}
