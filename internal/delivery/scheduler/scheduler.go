// Package scheduler runs periodic engine jobs on in-process tickers.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"geolead/config"
	"geolead/internal/delivery"
	"geolead/internal/usecase"

	"go.uber.org/fx"
)

type retentionScheduler struct {
	interval   time.Duration
	logger     *slog.Logger
	retention  usecase.RetentionUsecase
	supervisor usecase.Supervisor
	newTicker  func(d time.Duration) (<-chan time.Time, func())

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Params holds dependencies for the scheduler
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	Retention  usecase.RetentionUsecase
	Supervisor usecase.Supervisor
}

// NewRetentionScheduler creates the delivery that sweeps expired merchant
// alerts every alertRetentionInterval.
func NewRetentionScheduler(params Params) delivery.Delivery {
	s := newRetentionScheduler(params.Config.Engine.AlertRetentionInterval, params.Logger, params.Retention, params.Supervisor)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newRetentionScheduler(interval time.Duration, logger *slog.Logger, retention usecase.RetentionUsecase, supervisor usecase.Supervisor) *retentionScheduler {
	if interval <= 0 {
		interval = config.DefaultAlertRetentionInterval
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &retentionScheduler{
		interval:   interval,
		logger:     logger,
		retention:  retention,
		supervisor: supervisor,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)

			return t.C, t.Stop
		},
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Serve sweeps once on start, then on every tick until stopped.
func (s *retentionScheduler) Serve(_ context.Context) error {
	defer close(s.done)

	ticks, stopTicker := s.newTicker(s.interval)
	defer stopTicker()

	s.logger.Info("[Scheduler] Alert retention started", slog.Duration("interval", s.interval))

	// Alerts left by a previous process do not wait a full interval.
	s.sweep()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("[Scheduler] Alert retention stopped")

			return nil
		case <-ticks:
			s.sweep()
		}
	}
}

func (s *retentionScheduler) sweep() {
	s.supervisor.Resolve(s.ctx, s.retention.SweepExpiredAlerts(s.ctx))
}

func (s *retentionScheduler) stop(ctx context.Context) error {
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
