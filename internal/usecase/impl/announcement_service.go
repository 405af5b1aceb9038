package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/service"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// announcementService implements AnnouncementUsecase by emitting dispatch events.
// The caller's write completes whether or not the announcement is later delivered.
type announcementService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &announcementService{
		publisher: params.Publisher,
		logger:    logger,
	}
}

// QueueAnnouncement publishes the announcement for asynchronous dispatch.
func (s *announcementService) QueueAnnouncement(ctx context.Context, ownerID uuid.UUID, input *usecase.AnnouncementInput) (string, error) {
	if input == nil || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("title and body are required")
	}

	eventID, err := uuid.NewV7()
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to generate event id")
	}

	targets := make([]string, 0, len(input.TargetClientIDs))
	for _, id := range input.TargetClientIDs {
		targets = append(targets, id.String())
	}

	event := &service.DispatchEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventID:         eventID.String(),
		Type:            string(entity.DispatchTypeAnnouncement),
		OwnerID:         ownerID.String(),
		Title:           input.Title,
		Body:            input.Body,
		URL:             input.URL,
		TargetClientIDs: targets,
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		logger.Error("Failed to queue announcement",
			slog.String("eventID", event.EventID),
			slog.String("ownerID", ownerID.String()),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrEventPublishFailed.WrapMessage(err.Error())
	}

	logger.Info("Announcement queued",
		slog.String("eventID", event.EventID),
		slog.String("ownerID", ownerID.String()),
		slog.Int("targets", len(targets)),
	)

	return event.EventID, nil
}
