package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/errors"

	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// fcmResponder answers every FCM call with a fixed status and body.
type fcmResponder struct {
	status int
	body   string
}

func (r fcmResponder) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: r.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func fcmError(status int, statusName, errorCode string) string {
	return fmt.Sprintf(`{"error":{"code":%d,"message":"fcm error","status":%q,`+
		`"details":[{"@type":"type.googleapis.com/google.firebase.fcm.v1.FcmError","errorCode":%q}]}}`,
		status, statusName, errorCode)
}

func newTestFirebaseTransport(t *testing.T, responder fcmResponder) *FirebaseTransport {
	t.Helper()

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: "nudge-test"},
		option.WithHTTPClient(&http.Client{Transport: responder}),
	)
	require.NoError(t, err)

	client, err := app.Messaging(ctx)
	require.NoError(t, err)

	return &FirebaseTransport{client: client}
}

func TestFirebaseTransport_ClassifiesFCMErrors(t *testing.T) {
	sub := &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Kind:     entity.SubscriptionKindFCM,
		Endpoint: "fcm-token",
	}
	payload := entity.NewPushPayload("Check in", "How did today go?", "/today")

	tests := []struct {
		name          string
		responder     fcmResponder
		wantErr       bool
		wantPermanent bool
	}{
		{
			name:      "accepted",
			responder: fcmResponder{status: http.StatusOK, body: `{"name":"projects/nudge-test/messages/1"}`},
		},
		{
			name:          "unregistered token is permanent",
			responder:     fcmResponder{status: http.StatusNotFound, body: fcmError(http.StatusNotFound, "NOT_FOUND", "UNREGISTERED")},
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:          "malformed token is permanent",
			responder:     fcmResponder{status: http.StatusBadRequest, body: fcmError(http.StatusBadRequest, "INVALID_ARGUMENT", "INVALID_ARGUMENT")},
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:      "auth failure is transient",
			responder: fcmResponder{status: http.StatusUnauthorized, body: fcmError(http.StatusUnauthorized, "UNAUTHENTICATED", "THIRD_PARTY_AUTH_ERROR")},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := newTestFirebaseTransport(t, tt.responder)

			err := transport.Send(context.Background(), sub, payload)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			_, isDelivery := errors.AsType[*domainerrors.DeliveryError](err)
			assert.True(t, isDelivery)
			assert.Equal(t, tt.wantPermanent, domainerrors.IsPermanentDelivery(err))
		})
	}
}
