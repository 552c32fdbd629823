package bootstrap

import (
	"context"

	"rentigo/internal/pkg/config"
	"rentigo/internal/scheduler"
	"rentigo/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewScheduler(cfg config.Config, rentals commands.RentalCommands) *scheduler.Scheduler {
	return scheduler.New(cfg.Scheduler, rentals)
}

func registerScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
