// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// OverdueExpirer marks running timers past their end time as expired.
type OverdueExpirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}

// TimerSweeper periodically expires overdue safety timers.
type TimerSweeper struct {
	cron    *cron.Cron
	expirer OverdueExpirer
	logger  *slog.Logger
}

// NewTimerSweeper registers the sweep job on the configured schedule.
func NewTimerSweeper(schedule string, expirer OverdueExpirer, logger *slog.Logger) (*TimerSweeper, error) {
	s := &TimerSweeper{
		cron:    cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		expirer: expirer,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", schedule)
	}

	return s, nil
}

// Sweep runs one expiry pass.
func (s *TimerSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	expired, err := s.expirer.ExpireOverdue(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Timer sweep failed", slog.Any("error", err))

		return
	}
	if expired > 0 {
		s.logger.InfoContext(ctx, "Expired overdue safety timers", slog.Int("count", expired))
	}
}

func (s *TimerSweeper) Start() { s.cron.Start() }

// Stop waits for a running sweep to finish.
func (s *TimerSweeper) Stop() { <-s.cron.Stop().Done() }

// Params holds dependencies for the sweeper, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Expirer OverdueExpirer
	Logger  *slog.Logger
}

// New creates the sweeper and ties it to the application lifecycle.
func New(params Params) (*TimerSweeper, error) {
	sweeper, err := NewTimerSweeper(params.Config.Timer.SweepSchedule, params.Expirer, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Starting timer sweeper",
				slog.String("schedule", params.Config.Timer.SweepSchedule),
			)
			sweeper.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()

			return nil
		},
	})

	return sweeper, nil
}
