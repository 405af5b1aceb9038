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

// RuleHandlerParams holds dependencies for RuleHandler, injected by Fx.
type RuleHandlerParams struct {
	fx.In

	RuleUC usecase.RuleUsecase
	Logger *slog.Logger
}

// RuleHandler serves coach-authored reminder rules
type RuleHandler struct {
	ruleUC usecase.RuleUsecase
	logger *slog.Logger
}

// NewRuleHandler is the constructor for RuleHandler
func NewRuleHandler(params RuleHandlerParams) *RuleHandler {
	return &RuleHandler{
		ruleUC: params.RuleUC,
		logger: params.Logger,
	}
}

// RuleRequest represents the request body for creating or replacing a rule
type RuleRequest struct {
	TargetID  *uuid.UUID `json:"target_id"`
	TimeOfDay string     `json:"time_of_day" validate:"required,hhmm"`
	Title     string     `json:"title" validate:"max=100"`
	Message   string     `json:"message" validate:"required,max=500"`
	URL       string     `json:"url" validate:"max=2048"`
}

func (r *RuleRequest) toInput() *usecase.RuleInput {
	return &usecase.RuleInput{
		TargetID:  r.TargetID,
		TimeOfDay: r.TimeOfDay,
		Title:     r.Title,
		Message:   r.Message,
		URL:       r.URL,
	}
}

// CreateRule handles rule creation
func (h *RuleHandler) CreateRule(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	rule, err := h.ruleUC.CreateRule(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rule)
}

// ListRules returns the caller's rules
func (h *RuleHandler) ListRules(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rules, err := h.ruleUC.ListRules(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rules)
}

// UpdateRule replaces the editable fields of one rule
func (h *RuleHandler) UpdateRule(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rule ID")
	}

	var req RuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	rule, err := h.ruleUC.UpdateRule(c.Request().Context(), ownerID, ruleID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rule)
}

// DeleteRule removes one rule
func (h *RuleHandler) DeleteRule(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rule ID")
	}

	if err := h.ruleUC.DeleteRule(c.Request().Context(), ownerID, ruleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Rule deleted successfully"})
}
