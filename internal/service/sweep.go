package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/model"
)

// RunOverdueSweep reclassifies every open loan past due as of asOf to
// OVERDUE. Idempotent: it only forces a status value, never increments
// anything, and never touches closed, return_date, late_fee or due_date.
func (s *Service) RunOverdueSweep(ctx context.Context, asOf time.Time) (int64, error) {
	count, err := s.repo.MarkOverdue(ctx, asOf)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Warn("overdue sweep", zap.Int64("transitioned", count), zap.Time("asOf", asOf))
	} else {
		s.log.Debug("overdue sweep: nothing to do", zap.Time("asOf", asOf))
	}
	return count, nil
}

// SendDueReminders logs a reminder for every open loan due within one day of
// asOf. Pure observer: no state mutation, and failures here must not block
// the sweep.
func (s *Service) SendDueReminders(ctx context.Context, asOf time.Time) (int, error) {
	due, err := s.repo.LoansDueWithin(ctx, asOf, 1)
	if err != nil {
		return 0, err
	}
	for _, loan := range due {
		s.log.Info("due-date reminder",
			zap.String("loanUid", loan.LoanUid),
			zap.Int64("itemID", loan.ItemID),
			zap.Int64("borrowerID", loan.BorrowerID),
			zap.Time("dueDate", loan.DueDate))
		s.publish(model.EventDueReminder, loan)
	}
	return len(due), nil
}
