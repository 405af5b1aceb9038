package notification

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"nudge/config"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebPushTransport(t *testing.T) *WebPushTransport {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	transport, err := NewWebPushTransport(&config.WebPushConfig{
		VAPIDPublicKey:  publicKey,
		VAPIDPrivateKey: privateKey,
		Subscriber:      "mailto:ops@example.com",
		TTL:             60,
	}, nil)
	require.NoError(t, err)

	return transport
}

func newTestBrowserSubscription(t *testing.T, endpoint string) *entity.PushSubscription {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	authSecret := make([]byte, 16)
	_, err = rand.Read(authSecret)
	require.NoError(t, err)

	return &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Kind:     entity.SubscriptionKindWebPush,
		Endpoint: endpoint,
		P256dh:   base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		Auth:     base64.RawURLEncoding.EncodeToString(authSecret),
	}
}

func newPushService(t *testing.T, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") == "" || r.Header.Get("Content-Encoding") != "aes128gcm" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestWebPushTransport_Send(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantErr       bool
		wantPermanent bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "gone", status: http.StatusGone, wantErr: true, wantPermanent: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true, wantPermanent: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := newPushService(t, tt.status, &hits)
			transport := newTestWebPushTransport(t)
			sub := newTestBrowserSubscription(t, srv.URL+"/push/"+uuid.NewString())

			err := transport.Send(context.Background(), sub, entity.NewPushPayload("Reminder", "Drink water", ""))

			assert.Equal(t, int32(1), hits.Load())
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantPermanent, domainerrors.IsPermanentDelivery(err))

			deliveryErr, ok := errors.AsType[*domainerrors.DeliveryError](err)
			require.True(t, ok)
			assert.Equal(t, tt.status, deliveryErr.StatusCode)
		})
	}
}

func TestWebPushTransport_MalformedKeysAreTransient(t *testing.T) {
	var hits atomic.Int32
	srv := newPushService(t, http.StatusCreated, &hits)
	transport := newTestWebPushTransport(t)

	sub := newTestBrowserSubscription(t, srv.URL+"/push/bad")
	sub.P256dh = "not-a-key"

	err := transport.Send(context.Background(), sub, entity.NewPushPayload("", "body", ""))
	require.Error(t, err)
	assert.False(t, domainerrors.IsPermanentDelivery(err))
	assert.Equal(t, int32(0), hits.Load())
}

func TestNewWebPushTransport_RequiresKeys(t *testing.T) {
	_, err := NewWebPushTransport(&config.WebPushConfig{VAPIDPublicKey: "pub"}, nil)
	assert.Error(t, err)

	_, err = NewWebPushTransport(nil, nil)
	assert.Error(t, err)
}
