package notification

import (
	"context"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of *messaging.Client the transport uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FirebaseTransport delivers to native devices through FCM registration tokens.
type FirebaseTransport struct {
	client messageSender
}

// NewFirebaseTransport creates the FCM client from a service account file.
func NewFirebaseTransport(ctx context.Context, credentialsPath string) (*FirebaseTransport, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &FirebaseTransport{client: client}, nil
}

// Send delivers payload to the token stored as the subscription endpoint.
// An unregistered or malformed token is permanent; anything else is transient.
func (t *FirebaseTransport) Send(ctx context.Context, sub *entity.PushSubscription, payload entity.PushPayload) error {
	_, err := t.client.Send(ctx, &messaging.Message{
		Token: sub.Endpoint,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: map[string]string{
			"url": payload.URL,
		},
	})
	if err == nil {
		return nil
	}

	if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
		return domainerrors.NewPermanentDeliveryError(0, err)
	}

	return domainerrors.NewTransientDeliveryError(0, errors.Wrap(err, "failed to send notification"))
}
