package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"nudge/config"
	"nudge/internal/domain/entity"
	mockUC "nudge/internal/mocks/usecase"
	"nudge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, timezone string, enabled bool) (*sweepScheduler, *mockUC.MockDispatchUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Dispatch.Timezone = timezone
	cfg.Dispatch.Scheduler.Enabled = enabled
	cfg.Dispatch.Scheduler.Interval = time.Hour

	uc := mockUC.NewMockDispatchUsecase(t)
	s := newSweepScheduler(SchedulerParams{
		Cfg:        cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: uc,
	})

	return s, uc
}

func sweepAt(minute string) any {
	return mock.MatchedBy(func(cmd *usecase.DispatchCommand) bool {
		return cmd.Type == entity.DispatchTypeSweep && cmd.SimulatedTime == minute
	})
}

func TestSweepScheduler_Tick(t *testing.T) {
	t.Run("sweeps each minute once", func(t *testing.T) {
		s, uc := newTestScheduler(t, "UTC", true)
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("07:30")).Return(&entity.DispatchSummary{}, nil).Once()
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("07:31")).Return(&entity.DispatchSummary{}, nil).Once()

		clock := time.Date(2026, 3, 2, 7, 30, 5, 0, time.UTC)
		s.now = func() time.Time { return clock }

		s.tick(context.Background())
		clock = clock.Add(20 * time.Second)
		s.tick(context.Background())
		clock = clock.Add(40 * time.Second)
		s.tick(context.Background())
		s.inflight.Wait()
	})

	t.Run("reads the clock in the dispatch timezone", func(t *testing.T) {
		s, uc := newTestScheduler(t, "Asia/Taipei", true)
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("08:00")).Return(&entity.DispatchSummary{}, nil).Once()

		s.now = func() time.Time { return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) }

		s.tick(context.Background())
		s.inflight.Wait()
	})

	t.Run("a failed sweep is not retried within the minute", func(t *testing.T) {
		s, uc := newTestScheduler(t, "UTC", true)
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("12:00")).Return(nil, errors.New("store down")).Once()

		s.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }

		s.tick(context.Background())
		s.tick(context.Background())
		s.inflight.Wait()
	})

	t.Run("a slow sweep does not hold back the next minute", func(t *testing.T) {
		s, uc := newTestScheduler(t, "UTC", true)

		release := make(chan struct{})
		started := make(chan struct{})
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("09:00")).
			RunAndReturn(func(context.Context, *usecase.DispatchCommand) (*entity.DispatchSummary, error) {
				close(started)
				<-release

				return &entity.DispatchSummary{}, nil
			}).Once()
		nextSwept := make(chan struct{})
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("09:01")).
			RunAndReturn(func(context.Context, *usecase.DispatchCommand) (*entity.DispatchSummary, error) {
				close(nextSwept)

				return &entity.DispatchSummary{}, nil
			}).Once()

		clock := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return clock }

		s.tick(context.Background())
		<-started

		clock = clock.Add(70 * time.Second)
		s.tick(context.Background())

		select {
		case <-nextSwept:
		case <-time.After(time.Second):
			t.Fatal("09:01 was not swept while 09:00 was still running")
		}

		close(release)
		s.inflight.Wait()
	})

	t.Run("minutes missed between ticks are caught up", func(t *testing.T) {
		s, uc := newTestScheduler(t, "UTC", true)
		for _, minute := range []string{"09:00", "09:01", "09:02"} {
			uc.EXPECT().Dispatch(mock.Anything, sweepAt(minute)).Return(&entity.DispatchSummary{}, nil).Once()
		}

		clock := time.Date(2026, 3, 2, 9, 0, 30, 0, time.UTC)
		s.now = func() time.Time { return clock }

		s.tick(context.Background())
		clock = clock.Add(115 * time.Second)
		s.tick(context.Background())
		s.inflight.Wait()
	})

	t.Run("a long stall replays at most the bounded window", func(t *testing.T) {
		s, uc := newTestScheduler(t, "UTC", true)
		uc.EXPECT().Dispatch(mock.Anything, sweepAt("06:00")).Return(&entity.DispatchSummary{}, nil).Once()
		uc.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(&entity.DispatchSummary{}, nil).Times(maxCatchUp)

		clock := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return clock }

		s.tick(context.Background())
		clock = clock.Add(5 * time.Hour)
		s.tick(context.Background())
		s.inflight.Wait()
	})
}

func TestSweepScheduler_Serve(t *testing.T) {
	t.Run("disabled returns at once", func(t *testing.T) {
		s, _ := newTestScheduler(t, "UTC", false)

		require.NoError(t, s.Serve(context.Background()))
		require.NoError(t, s.stop(context.Background()))
	})

	t.Run("stop ends the loop", func(t *testing.T) {
		s, uc := newTestScheduler(t, "UTC", true)
		uc.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(&entity.DispatchSummary{}, nil).Once()

		served := make(chan error, 1)
		go func() { served <- s.Serve(context.Background()) }()

		assert.Eventually(t, func() bool { return s.running.Load() }, time.Second, 5*time.Millisecond)
		require.NoError(t, s.stop(context.Background()))

		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop")
		}
	})
}
