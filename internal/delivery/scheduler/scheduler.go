// Package scheduler runs rule sweeps from an in-process clock.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"nudge/config"
	"nudge/internal/delivery"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/constants"
	"nudge/internal/domain/entity"
	"nudge/internal/domain/lifecycle"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sweepScheduler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
	enabled    bool
	interval   time.Duration
	location   *time.Location
	now        func() time.Time

	lastMinute time.Time
	inflight   sync.WaitGroup
	running    atomic.Bool
	stopOnce   sync.Once
	stopCh     chan struct{}
	doneCh     chan struct{}
}

// SchedulerParams holds dependencies for the sweep scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewScheduler polls the clock every dispatch.scheduler.interval and sweeps
// once for every new HH:MM seen in the dispatch timezone.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newSweepScheduler(params)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newSweepScheduler(params SchedulerParams) *sweepScheduler {
	return &sweepScheduler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
		enabled:    params.Cfg.Dispatch.Scheduler.Enabled,
		interval:   params.Cfg.Dispatch.Scheduler.Interval,
		location:   params.Cfg.Dispatch.Location(),
		now:        time.Now,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// maxCatchUp bounds how many missed minutes one tick replays after a stall.
const maxCatchUp = 60

// Serve blocks until the scheduler is stopped and its sweeps have returned.
// A disabled scheduler returns at once.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	defer close(s.doneCh)
	defer s.inflight.Wait()

	if !s.enabled {
		s.logger.Info("[Scheduler] Sweep scheduler disabled")

		return nil
	}

	s.running.Store(true)
	s.logger.Info("[Scheduler] Starting sweep scheduler",
		slog.Duration("interval", s.interval),
		slog.String("timezone", s.location.String()),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick starts one concurrent sweep for every minute since the last one it saw.
func (s *sweepScheduler) tick(ctx context.Context) {
	current := s.now().Truncate(time.Minute)
	if !s.lastMinute.IsZero() && !current.After(s.lastMinute) {
		return
	}

	next := current
	if !s.lastMinute.IsZero() {
		next = s.lastMinute.Add(time.Minute)
		if earliest := current.Add(-(maxCatchUp - 1) * time.Minute); next.Before(earliest) {
			s.logger.Warn("[Scheduler] Clock jumped, skipping missed minutes",
				slog.Time("from", next),
				slog.Time("to", earliest),
			)
			next = earliest
		}
	}
	s.lastMinute = current

	for minute := next; !minute.After(current); minute = minute.Add(time.Minute) {
		s.inflight.Add(1)
		go func(minute string) {
			defer s.inflight.Done()
			s.sweep(ctx, minute)
		}(minute.In(s.location).Format(constants.TimeOfDayLayout))
	}
}

func (s *sweepScheduler) sweep(ctx context.Context, minute string) {
	requestID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	summary, err := s.dispatchUC.Dispatch(ctx, &usecase.DispatchCommand{
		Type:          entity.DispatchTypeSweep,
		SimulatedTime: minute,
	})
	if err != nil {
		// The minute stays marked; the next sweep is the next minute
		logger.Error("[Scheduler] Scheduled sweep failed", slog.String("time", minute), slog.Any("error", err))

		return
	}

	logger.Debug("[Scheduler] Scheduled sweep finished",
		slog.String("time", minute),
		slog.String("message", summary.Message),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)
}

func (s *sweepScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	if !s.running.Load() {
		return nil
	}

	s.logger.Info("[Scheduler] Stopping sweep scheduler")

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.doneCh:
		return nil
	case <-shutdownCtx.Done():
		return errors.WithStack(shutdownCtx.Err())
	}
}
