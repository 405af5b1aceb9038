package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"nudge/config"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// WebPushTransport sends VAPID-signed, encrypted messages to browser push services.
type WebPushTransport struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
	urgency    webpush.Urgency
	client     webpush.HTTPClient
}

// NewWebPushTransport builds the transport from the process VAPID credentials.
// A nil client uses http.DefaultClient.
func NewWebPushTransport(cfg *config.WebPushConfig, client webpush.HTTPClient) (*WebPushTransport, error) {
	if cfg == nil || cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("vapid key pair is required for web push")
	}

	if client == nil {
		client = http.DefaultClient
	}

	urgency := webpush.UrgencyNormal
	if cfg.Urgency != "" {
		urgency = webpush.Urgency(cfg.Urgency)
	}

	return &WebPushTransport{
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		subscriber: cfg.Subscriber,
		ttl:        cfg.TTL,
		urgency:    urgency,
		client:     client,
	}, nil
}

// Send delivers payload to one browser endpoint.
// 404 and 410 mean the subscription is gone; every other failure is transient.
func (t *WebPushTransport) Send(ctx context.Context, sub *entity.PushSubscription, payload entity.PushPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return domainerrors.NewTransientDeliveryError(0, errors.Wrap(err, "marshal payload"))
	}

	resp, err := webpush.SendNotificationWithContext(ctx, data, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      t.client,
		Subscriber:      t.subscriber,
		TTL:             t.ttl,
		Urgency:         t.urgency,
		VAPIDPublicKey:  t.publicKey,
		VAPIDPrivateKey: t.privateKey,
	})
	if err != nil {
		return domainerrors.NewTransientDeliveryError(0, errors.Wrap(err, "send web push"))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return domainerrors.NewPermanentDeliveryError(resp.StatusCode, errors.New("push subscription expired"))
	case resp.StatusCode >= http.StatusBadRequest:
		return domainerrors.NewTransientDeliveryError(resp.StatusCode, errors.Errorf("push service returned %d", resp.StatusCode))
	}

	return nil
}
