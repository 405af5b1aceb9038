package impl

import (
	"io"
	"log/slog"
	"slices"
	"time"

	"nudge/config"
	"nudge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(timezone string) *config.Config {
	return &config.Config{
		Dispatch: config.DispatchConfig{
			Timezone:          timezone,
			SendTimeout:       time.Second,
			InvocationTimeout: 5 * time.Second,
			MaxConcurrency:    4,
		},
	}
}

func newWebPushSub(userID uuid.UUID, endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		Kind:     entity.SubscriptionKindWebPush,
		Endpoint: endpoint,
		P256dh:   "p256dh",
		Auth:     "auth",
	}
}

// sameUsers matches a []uuid.UUID argument holding exactly want, in any order.
func sameUsers(want ...uuid.UUID) any {
	return mock.MatchedBy(func(got []uuid.UUID) bool {
		if len(got) != len(want) {
			return false
		}
		for _, id := range want {
			if !slices.Contains(got, id) {
				return false
			}
		}

		return true
	})
}
