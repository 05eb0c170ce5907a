package worker

import (
	"context"
	"log/slog"
	"time"

	"nexus/config"
	"nexus/internal/delivery"
	"nexus/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the retry sweeper
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Runner usecase.JobRunner
	Riders usecase.RiderUsecase
}

// sweeper periodically runs due jobs and expires rider boosts.
// It is the only path for jobs when no publisher is configured.
type sweeper struct {
	interval time.Duration
	logger   *slog.Logger
	runner   usecase.JobRunner
	riders   usecase.RiderUsecase

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(params SweeperParams) delivery.Delivery {
	ctx, cancel := context.WithCancel(context.Background())
	s := &sweeper{
		interval: params.Cfg.Jobs.SweepInterval,
		logger:   params.Logger,
		runner:   params.Runner,
		riders:   params.Riders,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func (s *sweeper) Serve(_ context.Context) error {
	defer close(s.done)

	s.logger.Info("Starting job sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(s.ctx)
		}
	}
}

// sweep never fails the worker; errors are logged and retried next tick.
func (s *sweeper) sweep(ctx context.Context) {
	processed, err := s.runner.RunDue(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.ErrorContext(ctx, "[Worker] Job sweep failed", slog.Int("processed", processed), slog.Any("error", err))
	} else if processed > 0 {
		s.logger.InfoContext(ctx, "[Worker] Job sweep finished", slog.Int("processed", processed))
	}

	expired, err := s.riders.ExpireBoosts(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.ErrorContext(ctx, "[Worker] Boost expiry failed", slog.Any("error", err))
	} else if expired > 0 {
		s.logger.InfoContext(ctx, "[Worker] Expired rider boosts", slog.Int64("count", expired))
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
