package handler

import (
	"log/slog"
	"net/http"

	"nudge/internal/delivery/api/response"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnnouncementHandlerParams holds dependencies for AnnouncementHandler, injected by Fx.
type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// AnnouncementHandler queues coach announcements
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler
func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUC: params.AnnouncementUC,
		logger:         params.Logger,
	}
}

// AnnouncementRequest represents the request body for an announcement
type AnnouncementRequest struct {
	Title           string      `json:"title" validate:"required,max=100"`
	Body            string      `json:"body" validate:"required,max=500"`
	URL             string      `json:"url" validate:"max=2048"`
	TargetClientIDs []uuid.UUID `json:"target_client_ids"`
}

// QueueAnnouncement accepts an announcement for asynchronous delivery
func (h *AnnouncementHandler) QueueAnnouncement(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	eventID, err := h.announcementUC.QueueAnnouncement(c.Request().Context(), ownerID, &usecase.AnnouncementInput{
		Title:           req.Title,
		Body:            req.Body,
		URL:             req.URL,
		TargetClientIDs: req.TargetClientIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"event_id": eventID})
}
