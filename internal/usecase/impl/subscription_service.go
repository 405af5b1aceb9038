package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	testNotificationTitle = "Test notification"
	testNotificationBody  = "Push notifications are working on this device."

	msgTestSent = "Test notification sent"
)

// subscriptionService implements SubscriptionUsecase.
type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.PushSubscriptionRepository
	preferenceRepo   repository.PreferenceRepository
	engine           *DeliveryEngine
	observer         service.DeliveryObserver
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.PushSubscriptionRepository
	PreferenceRepo   repository.PreferenceRepository
	Engine           *DeliveryEngine
	Observer         service.DeliveryObserver `optional:"true"`
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		preferenceRepo:   params.PreferenceRepo,
		engine:           params.Engine,
		observer:         params.Observer,
		logger:           logger,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Subscribe registers the endpoint and lazily creates the user's preference in one transaction.
func (s *subscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, input *usecase.SubscriptionInput) (*entity.PushSubscription, error) {
	sub, err := buildSubscription(userID, input)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPushSubscriptionRepository().UpsertSubscription(ctx, sub); err != nil {
			return errors.Wrap(err, "failed to save subscription")
		}

		if err := repoFactory.NewPreferenceRepository().EnsurePreference(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to create alert preference")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to register push subscription",
			slog.String("userID", userID.String()),
			slog.String("kind", string(sub.Kind)),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).Info("Push subscription registered",
		slog.String("userID", userID.String()),
		slog.String("subscriptionID", sub.ID.String()),
		slog.String("kind", string(sub.Kind)),
	)

	return sub, nil
}

func buildSubscription(userID uuid.UUID, input *usecase.SubscriptionInput) (*entity.PushSubscription, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subscription is required")
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.SubscriptionKindWebPush
	}
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported subscription kind")
	}

	endpoint := strings.TrimSpace(input.Endpoint)
	if endpoint == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	}

	if kind == entity.SubscriptionKindWebPush && (input.P256dh == "" || input.Auth == "") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("web push subscriptions require p256dh and auth keys")
	}

	return &entity.PushSubscription{
		UserID:     userID,
		Kind:       kind,
		Endpoint:   endpoint,
		P256dh:     input.P256dh,
		Auth:       input.Auth,
		DeviceName: input.DeviceName,
	}, nil
}

// Unsubscribe removes one endpoint of the user.
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	}

	err := s.subscriptionRepo.DeleteSubscriptionByEndpoint(ctx, userID, endpoint)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return domainerrors.ErrSubscriptionNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// ListSubscriptions returns the user's endpoints.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	subs, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subs, nil
}

// GetPreference reports the user's opt-in state. A missing row reads as disabled,
// matching how scheduled sweeps treat it.
func (s *subscriptionService) GetPreference(ctx context.Context, userID uuid.UUID) (*entity.AlertPreference, error) {
	pref, err := s.preferenceRepo.FindPreference(ctx, userID)
	if errors.Is(err, repository.ErrPreferenceNotFound) {
		return &entity.AlertPreference{UserID: userID, IsEnabled: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alert preference")
	}

	return pref, nil
}

// SetPreference creates or overwrites the user's opt-in state.
func (s *subscriptionService) SetPreference(ctx context.Context, userID uuid.UUID, enabled bool) (*entity.AlertPreference, error) {
	pref := &entity.AlertPreference{UserID: userID, IsEnabled: enabled}
	if err := s.preferenceRepo.UpsertPreference(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to save alert preference")
	}

	s.log(ctx).Info("Alert preference updated", slog.String("userID", userID.String()), slog.Bool("enabled", enabled))

	return pref, nil
}

// SendTest delivers a test message to the caller's own devices. The user asked
// for it, so alert preferences are not consulted.
func (s *subscriptionService) SendTest(ctx context.Context, userID uuid.UUID) (*entity.DispatchSummary, error) {
	payload := entity.NewPushPayload(testNotificationTitle, testNotificationBody, "")

	result, err := s.engine.DeliverToUsers(ctx, []uuid.UUID{userID}, payload)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to send test notification")
	}

	if s.observer != nil {
		s.observer.ObserveDispatch(entity.DispatchTypeTest, result)
	}

	if result.Sent+result.Failed == 0 {
		return nil, domainerrors.ErrNoSubscriptions
	}

	return &entity.DispatchSummary{
		Message: msgTestSent,
		Sent:    result.Sent,
		Failed:  result.Failed,
	}, nil
}
