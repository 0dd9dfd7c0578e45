// Package scheduler runs the reminder polling loop as a delivery: a
// long-running loop that wakes on each tick and asks the alarm state machine
// to evaluate due reminders.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"medi/config"
	"medi/internal/delivery"
	"medi/internal/domain/service"
	"medi/internal/usecase"

	"go.uber.org/fx"
)

type schedulerLoop struct {
	interval time.Duration
	enabled  bool
	initial  bool
	alarmUC  usecase.AlarmUsecase
	clock    service.Clock
	logger   *slog.Logger
}

// Params holds dependencies for the scheduler loop, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	AlarmUC usecase.AlarmUsecase
	Clock   service.Clock
	Logger  *slog.Logger
}

// New creates the reminder scheduler delivery.
func New(params Params) delivery.Delivery {
	cfg := params.Config.Scheduler

	return &schedulerLoop{
		interval: cfg.PollInterval,
		enabled:  cfg.Enabled,
		initial:  cfg.AlarmsEnabled,
		alarmUC:  params.AlarmUC,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

// Serve runs the polling loop until the context is canceled. Ticks that fire
// while an evaluation is still running queue at most one deep in the ticker
// channel; minutes missed under load are skipped, not replayed.
func (s *schedulerLoop) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Reminder scheduler disabled")

		return nil
	}

	s.alarmUC.SetEnabled(ctx, s.initial)

	s.logger.Info("Starting reminder scheduler",
		slog.Duration("pollInterval", s.interval),
		slog.Bool("alarmsEnabled", s.initial))

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Reminder scheduler stopped")

			return nil
		case tick := <-ticker.C():
			if _, err := s.alarmUC.EvaluateTick(ctx, tick); err != nil {
				s.logger.ErrorContext(ctx, "scheduler tick failed", slog.Any("error", err))
			}
		}
	}
}
