package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type LendingService interface {
	RunOverdueSweep(ctx context.Context, asOf time.Time) (int64, error)
	SendDueReminders(ctx context.Context, asOf time.Time) (int, error)
}

// Sweeper triggers the overdue sweep on a fixed interval, once a day by
// default. It runs independently of request handling and mutates only loan
// status, through the service's conditional sweep.
type Sweeper struct {
	svc      LendingService
	log      *zap.Logger
	interval time.Duration
}

func New(svc LendingService, log *zap.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Sweeper{
		svc:      svc,
		log:      log.Named("sweeper"),
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. The first tick fires immediately so a
// restarted service does not wait a full interval to reclassify stale loans.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			s.log.Debug("sweeper stopped")
			return ctx.Err()
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	now := time.Now()
	if _, err := s.svc.RunOverdueSweep(ctx, now); err != nil {
		s.log.Error("overdue sweep", zap.Error(err))
	}
	// reminders are best effort and never block the sweep
	if _, err := s.svc.SendDueReminders(ctx, now); err != nil {
		s.log.Warn("due reminders", zap.Error(err))
	}
}
