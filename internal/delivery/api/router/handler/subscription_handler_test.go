package handler

import (
	"net/http"
	"testing"

	"nudge/config"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	mockUC "nudge/internal/mocks/usecase"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriptionHandler(t *testing.T, vapidKey string) (*SubscriptionHandler, *mockUC.MockSubscriptionUsecase) {
	t.Helper()

	cfg := &config.Config{WebPush: &config.WebPushConfig{VAPIDPublicKey: vapidKey}}
	uc := mockUC.NewMockSubscriptionUsecase(t)

	return NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: uc,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	}), uc
}

func TestSubscriptionHandler_GetVAPIDPublicKey(t *testing.T) {
	e := newTestEcho()

	t.Run("configured", func(t *testing.T) {
		h, _ := newTestSubscriptionHandler(t, "BPublicKey")
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/push/vapid-public-key", "", nil)

		require.NoError(t, h.GetVAPIDPublicKey(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"public_key":"BPublicKey"`)
	})

	t.Run("not configured", func(t *testing.T) {
		h, _ := newTestSubscriptionHandler(t, "")
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/push/vapid-public-key", "", nil)

		require.NoError(t, h.GetVAPIDPublicKey(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.ErrPushNotConfigured.ErrorCode())
	})
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()

	t.Run("maps browser keys into the input", func(t *testing.T) {
		h, uc := newTestSubscriptionHandler(t, "k")
		uc.EXPECT().
			Subscribe(mock.Anything, userID, &usecase.SubscriptionInput{
				Endpoint:   "https://push.example.com/abc",
				P256dh:     "p256",
				Auth:       "secret",
				DeviceName: "laptop",
			}).
			Return(&entity.PushSubscription{ID: uuid.New(), UserID: userID, Endpoint: "https://push.example.com/abc"}, nil)

		body := `{"endpoint":"https://push.example.com/abc","keys":{"p256dh":"p256","auth":"secret"},"device_name":"laptop"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/push/subscriptions", body, &userID, entity.RoleClient)

		require.NoError(t, h.Subscribe(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("requires an endpoint", func(t *testing.T) {
		h, _ := newTestSubscriptionHandler(t, "k")
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/push/subscriptions", `{"keys":{}}`, &userID, entity.RoleClient)

		require.NoError(t, h.Subscribe(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		h, _ := newTestSubscriptionHandler(t, "k")
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/push/subscriptions", `{"kind":"sms","endpoint":"x"}`, &userID, entity.RoleClient)

		require.NoError(t, h.Subscribe(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("passes the transport kind through", func(t *testing.T) {
		h, uc := newTestSubscriptionHandler(t, "k")
		uc.EXPECT().
			Subscribe(mock.Anything, userID, &usecase.SubscriptionInput{
				Kind:       entity.SubscriptionKindFCM,
				Endpoint:   "fcm-token",
				DeviceName: "phone",
			}).
			Return(&entity.PushSubscription{ID: uuid.New(), UserID: userID, Kind: entity.SubscriptionKindFCM, Endpoint: "fcm-token"}, nil)

		body := `{"kind":"fcm","endpoint":"fcm-token","device_name":"phone"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/push/subscriptions", body, &userID, entity.RoleClient)

		require.NoError(t, h.Subscribe(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"fcm"`)
	})

	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newTestSubscriptionHandler(t, "k")
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/push/subscriptions", `{"endpoint":"x"}`, nil)

		require.NoError(t, h.Subscribe(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()

	t.Run("unknown endpoint", func(t *testing.T) {
		h, uc := newTestSubscriptionHandler(t, "k")
		uc.EXPECT().Unsubscribe(mock.Anything, userID, "https://push.example.com/gone").Return(domainerrors.ErrSubscriptionNotFound)

		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/push/subscriptions", `{"endpoint":"https://push.example.com/gone"}`, &userID)

		require.NoError(t, h.Unsubscribe(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("removes the endpoint", func(t *testing.T) {
		h, uc := newTestSubscriptionHandler(t, "k")
		uc.EXPECT().Unsubscribe(mock.Anything, userID, "https://push.example.com/abc").Return(nil)

		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/push/subscriptions", `{"endpoint":"https://push.example.com/abc"}`, &userID)

		require.NoError(t, h.Unsubscribe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSubscriptionHandler_SetPreference(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()

	t.Run("explicit false is honoured", func(t *testing.T) {
		h, uc := newTestSubscriptionHandler(t, "k")
		uc.EXPECT().SetPreference(mock.Anything, userID, false).Return(&entity.AlertPreference{UserID: userID}, nil)

		c, rec := newJSONContext(e, http.MethodPut, "/api/v1/push/preference", `{"enabled":false}`, &userID)

		require.NoError(t, h.SetPreference(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_enabled":false`)
	})

	t.Run("missing flag is rejected", func(t *testing.T) {
		h, _ := newTestSubscriptionHandler(t, "k")

		c, rec := newJSONContext(e, http.MethodPut, "/api/v1/push/preference", `{}`, &userID)

		require.NoError(t, h.SetPreference(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubscriptionHandler_SendTest(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()

	h, uc := newTestSubscriptionHandler(t, "k")
	uc.EXPECT().SendTest(mock.Anything, userID).Return(nil, domainerrors.ErrNoSubscriptions)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/push/test", "", &userID)

	require.NoError(t, h.SendTest(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_SUBSCRIPTIONS")
}
