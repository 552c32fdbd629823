package scheduler

import (
	"context"
	"log/slog"

	"rentigo/internal/pkg/config"
	"rentigo/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the background jobs the rental lifecycle needs; today that
// is only the sweep cancelling bookings whose deposit checkout went stale.
type Scheduler struct {
	cron    *cron.Cron
	cfg     config.SchedulerConfig
	rentals commands.RentalCommands
}

func New(cfg config.SchedulerConfig, rentals commands.RentalCommands) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		cfg:     cfg,
		rentals: rentals,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.ExpireUnpaidRentals, s.expireUnpaidRentals)
	if err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("scheduler started", "expire_spec", s.cfg.ExpireUnpaidRentals, "unpaid_ttl", s.cfg.UnpaidRentalTTL)
	return nil
}

// Stop waits for a running job to finish before returning.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) expireUnpaidRentals() {
	cancelled, err := s.rentals.ExpireStalePendingPayments(context.Background(), s.cfg.UnpaidRentalTTL)
	if err != nil {
		slog.Error("failed to expire unpaid rentals", "error", err.Error())
		return
	}
	if cancelled > 0 {
		slog.Info("expired unpaid rentals", "count", cancelled)
	}
}
