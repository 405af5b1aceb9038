package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nudge/internal/delivery/api/response"
	"nudge/internal/domain/entity"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultDispatchPageSize = 20

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler serves the administrative dispatch trigger and its history
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// DispatchRequest is the body of POST /api/v1/dispatch.
// Field requirements depend on the type and are checked by the usecase.
type DispatchRequest struct {
	Type            string   `json:"type"`
	UserID          string   `json:"user_id"`
	OwnerID         string   `json:"owner_id"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	URL             string   `json:"url"`
	TargetClientIDs []string `json:"target_client_ids"`
	SimulatedTime   string   `json:"simulated_time"`
}

// Dispatch runs one dispatch invocation and answers with its counts
func (h *DispatchHandler) Dispatch(c echo.Context) error {
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.DispatchError(c, http.StatusBadRequest, "invalid JSON body")
	}

	summary, err := h.dispatchUC.Dispatch(c.Request().Context(), &usecase.DispatchCommand{
		Type:            entity.DispatchType(req.Type),
		UserID:          req.UserID,
		OwnerID:         req.OwnerID,
		Title:           req.Title,
		Body:            req.Body,
		URL:             req.URL,
		TargetClientIDs: req.TargetClientIDs,
		SimulatedTime:   req.SimulatedTime,
	})
	if err != nil {
		return response.HandleDispatchError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// ListDispatches returns recent dispatch records, newest first
func (h *DispatchHandler) ListDispatches(c echo.Context) error {
	limit, err := queryInt(c, "limit", defaultDispatchPageSize)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be an integer")
	}

	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "offset must be an integer")
	}

	records, err := h.dispatchUC.ListDispatchRecords(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
