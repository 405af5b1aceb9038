package handler

import (
	"log/slog"
	"net/http"

	"nudge/config"
	"nudge/internal/delivery/api/response"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for device subscription handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	vapidPublicKey string
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	h := &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
	if params.Config.WebPush != nil {
		h.vapidPublicKey = params.Config.WebPush.VAPIDPublicKey
	}

	return h
}

// SubscriptionKeys mirrors PushSubscription.toJSON().keys in the browser
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// SubscribeRequest represents the request body for registering a device endpoint
type SubscribeRequest struct {
	Kind       entity.SubscriptionKind `json:"kind" validate:"omitempty,oneof=webpush fcm"`
	Endpoint   string                  `json:"endpoint" validate:"required"`
	Keys       SubscriptionKeys        `json:"keys"`
	DeviceName string                  `json:"device_name" validate:"max=100"`
}

// UnsubscribeRequest represents the request body for removing a device endpoint
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// PreferenceRequest represents the request body for the reminder opt-in switch
type PreferenceRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// GetVAPIDPublicKey returns the application server key browsers subscribe with
func (h *SubscriptionHandler) GetVAPIDPublicKey(c echo.Context) error {
	if h.vapidPublicKey == "" {
		return response.HandleAppError(c, domainerrors.ErrPushNotConfigured)
	}

	return response.Success(c, http.StatusOK, map[string]string{"public_key": h.vapidPublicKey})
}

// Subscribe registers or refreshes the caller's device endpoint
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sub, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, &usecase.SubscriptionInput{
		Kind:       req.Kind,
		Endpoint:   req.Endpoint,
		P256dh:     req.Keys.P256dh,
		Auth:       req.Keys.Auth,
		DeviceName: req.DeviceName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sub)
}

// ListSubscriptions returns the caller's registered endpoints
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	subs, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subs)
}

// Unsubscribe removes one of the caller's endpoints
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed successfully"})
}

// GetPreference returns the caller's reminder opt-in state
func (h *SubscriptionHandler) GetPreference(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pref, err := h.subscriptionUC.GetPreference(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}

// SetPreference switches scheduled reminders on or off for the caller
func (h *SubscriptionHandler) SetPreference(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pref, err := h.subscriptionUC.SetPreference(c.Request().Context(), userID, *req.Enabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}

// SendTest pushes a test notification to every endpoint of the caller
func (h *SubscriptionHandler) SendTest(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summary, err := h.subscriptionUC.SendTest(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
