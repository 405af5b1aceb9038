package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nudge/config"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/constants"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/service"
	"nudge/internal/infra/pubsub"
	mockSvc "nudge/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockDispatchEventHandler) {
	t.Helper()

	eventHandler := mockSvc.NewMockDispatchEventHandler(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		EventHandler: eventHandler,
	})

	return h, eventHandler
}

func newPushContext(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func encodePushMessage(t *testing.T, event *service.DispatchEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.DispatchEvent{
		RequestID: "req-123",
		EventID:   "evt-1",
		Type:      "announcement",
		OwnerID:   "0190c2a4-7d7e-7a4e-8a3b-1f5f2a9d2c11",
		Title:     "Gym closed",
		Body:      "See you Monday",
	}

	t.Run("hands the event over with the request id", func(t *testing.T) {
		h, eventHandler := newTestPushHandler(t, &config.Config{})
		eventHandler.EXPECT().
			HandleDispatchEvent(mock.Anything, mock.MatchedBy(func(got *service.DispatchEvent) bool {
				return got.EventID == event.EventID && got.Title == event.Title
			})).
			Run(func(ctx context.Context, _ *service.DispatchEvent) {
				assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil)

		c, rec := newPushContext(t, encodePushMessage(t, event))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("handler failure asks for redelivery", func(t *testing.T) {
		h, eventHandler := newTestPushHandler(t, &config.Config{})
		eventHandler.EXPECT().
			HandleDispatchEvent(mock.Anything, mock.Anything).
			Return(domainerrors.NewDatabaseExecuteError(errors.New("db down"), "resolve recipients"))

		c, rec := newPushContext(t, encodePushMessage(t, event))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("undecodable data is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		c, rec := newPushContext(t, []byte(`{"message":{"data":"%%%"}}`))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-JSON event is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		// base64("not json")
		c, rec := newPushContext(t, []byte(`{"message":{"data":"bm90IGpzb24="}}`))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unverified push is refused", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = "production"

		h, _ := newTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)
		h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

		c, rec := newPushContext(t, encodePushMessage(t, event))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("development skips verification", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvDevelop

		h, _ := newTestPushHandler(t, cfg)
		assert.False(t, h.verifyPushAuth)
	})
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	var withAttr PubSubMessage
	withAttr.Message.Attributes = map[string]string{constants.AttributeRequestID: "from-attr"}

	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &withAttr, &service.DispatchEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &PubSubMessage{}, &service.DispatchEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-ctx", h.extractRequestID(ctx, &PubSubMessage{}, &service.DispatchEvent{}))
	assert.NotEmpty(t, h.extractRequestID(context.Background(), &PubSubMessage{}, &service.DispatchEvent{}))
}
