package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/penalty"
	"github.com/Astemirdum/lending-service/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/kafka"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	now      func() time.Time
}

type Option func(*Service)

// WithProducer enables best-effort lending-event publication.
func WithProducer(p sarama.SyncProducer) Option {
	return func(s *Service) { s.producer = p }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenLoan opens a loan for borrowerID on itemID. The whole transition runs
// in one transaction with the item and borrower rows locked; a concurrent
// open racing on the same item trips the open-loan unique index, in which
// case the preconditions are retried once against fresh state.
func (s *Service) OpenLoan(ctx context.Context, itemID, borrowerID int64) (model.Loan, error) {
	loan, err := s.openLoan(ctx, itemID, borrowerID)
	if repository.IsUniqueViolation(err) {
		s.log.Warn("OpenLoan conflict, retrying",
			zap.Int64("itemID", itemID), zap.Int64("borrowerID", borrowerID))
		loan, err = s.openLoan(ctx, itemID, borrowerID)
		if repository.IsUniqueViolation(err) {
			return model.Loan{}, errs.ErrItemUnavailable
		}
	}
	if err != nil {
		return model.Loan{}, err
	}
	s.log.Info("loan opened",
		zap.String("loanUid", loan.LoanUid),
		zap.Int64("itemID", itemID), zap.Int64("borrowerID", borrowerID),
		zap.Time("dueDate", loan.DueDate))
	s.publish(model.EventLoanOpened, loan)
	return loan, nil
}

func (s *Service) openLoan(ctx context.Context, itemID, borrowerID int64) (model.Loan, error) {
	var loan model.Loan
	err := s.repo.WithTx(ctx, func(st repository.Store) error {
		item, err := st.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item.Availability != model.AvailabilityAvailable {
			return errs.ErrItemUnavailable
		}
		borrower, err := st.GetBorrowerForUpdate(ctx, borrowerID)
		if err != nil {
			return err
		}
		if borrower.MembershipStatus != model.MembershipActive {
			return errs.ErrBorrowerNotEligible
		}
		now := s.now()
		open, err := st.OpenLoansForBorrower(ctx, borrowerID)
		if err != nil {
			return err
		}
		for _, l := range open {
			// overdue-ness is re-derived from dates, stored status is advisory
			if penalty.IsOverdue(l.DueDate, now, l.Closed) {
				return errs.ErrBorrowerOverdue
			}
		}
		loan, err = st.InsertLoan(ctx, model.Loan{
			LoanUid:    uuid.NewString(),
			ItemID:     itemID,
			BorrowerID: borrowerID,
			LoanDate:   now,
			DueDate:    now.AddDate(0, 0, penalty.LoanTermDays),
			Status:     model.LoanStatusOpen,
		})
		if err != nil {
			return err
		}
		if err := st.SetItemAvailability(ctx, itemID, model.AvailabilityOnLoan); err != nil {
			return err
		}
		return st.IncrementTotalLoans(ctx, borrowerID)
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// CloseLoan returns the item. The late fee is fixed once here, from the gap
// between the current due date and the close date, and never recomputed.
func (s *Service) CloseLoan(ctx context.Context, itemID, borrowerID int64) (model.Loan, error) {
	var loan model.Loan
	err := s.repo.WithTx(ctx, func(st repository.Store) error {
		open, err := st.GetOpenLoanForItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if open.BorrowerID != borrowerID {
			return errs.ErrLoanMismatch
		}
		now := s.now()
		var fee float64
		if penalty.IsOverdue(open.DueDate, now, open.Closed) {
			fee = penalty.LateFee(open.DueDate, now)
			s.log.Info("late fee charged",
				zap.String("loanUid", open.LoanUid), zap.Float64("fee", fee))
		}
		loan, err = st.CloseLoan(ctx, open.ID, now, fee)
		if err != nil {
			return err
		}
		return st.SetItemAvailability(ctx, itemID, model.AvailabilityAvailable)
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.log.Info("loan closed", zap.String("loanUid", loan.LoanUid), zap.Int64("itemID", itemID))
	s.publish(model.EventLoanReturned, loan)
	return loan, nil
}

// ExtendLoan pushes the due date forward. An overdue loan must be returned
// first: extension is a forward-looking grace period, not forgiveness.
func (s *Service) ExtendLoan(ctx context.Context, loanUid string, days int) (model.Loan, error) {
	if days <= 0 {
		days = penalty.DefaultExtensionDays
	}
	var loan model.Loan
	err := s.repo.WithTx(ctx, func(st repository.Store) error {
		cur, err := st.GetLoanByUidForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if cur.Closed {
			return errors.Wrap(errs.ErrInvalidOperation, "cannot extend a returned loan")
		}
		if penalty.IsOverdue(cur.DueDate, s.now(), cur.Closed) {
			return errors.Wrap(errs.ErrInvalidOperation, "cannot extend an overdue loan; return it first")
		}
		loan, err = st.ExtendLoan(ctx, cur.ID, cur.DueDate.AddDate(0, 0, days))
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.log.Info("loan extended",
		zap.String("loanUid", loan.LoanUid), zap.Int("days", days), zap.Time("dueDate", loan.DueDate))
	s.publish(model.EventLoanExtended, loan)
	return loan, nil
}

func (s *Service) CurrentLoanForItem(ctx context.Context, itemID int64) (model.Loan, error) {
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return model.Loan{}, err
	}
	return s.repo.GetOpenLoanForItem(ctx, itemID)
}

func (s *Service) OpenLoansForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error) {
	if _, err := s.repo.GetBorrower(ctx, borrowerID); err != nil {
		return nil, err
	}
	return s.repo.OpenLoansForBorrower(ctx, borrowerID)
}

func (s *Service) LoanHistoryForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error) {
	if _, err := s.repo.GetBorrower(ctx, borrowerID); err != nil {
		return nil, err
	}
	return s.repo.LoansForBorrower(ctx, borrowerID)
}

func (s *Service) LoanHistoryForItem(ctx context.Context, itemID int64) ([]model.Loan, error) {
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.LoansForItem(ctx, itemID)
}

func (s *Service) OverdueLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.OverdueLoans(ctx, s.now())
}

func (s *Service) BorrowerStats(ctx context.Context, borrowerID int64) (model.BorrowerStats, error) {
	borrower, err := s.repo.GetBorrower(ctx, borrowerID)
	if err != nil {
		return model.BorrowerStats{}, err
	}
	held, overdue, err := s.repo.BorrowerLoanCounts(ctx, borrowerID, s.now())
	if err != nil {
		return model.BorrowerStats{}, err
	}
	return model.BorrowerStats{
		BorrowerID:       borrower.ID,
		FullName:         borrower.FullName(),
		MembershipStatus: borrower.MembershipStatus,
		MembershipDate:   borrower.MembershipDate,
		TotalLoans:       borrower.TotalLoans,
		CurrentlyHeld:    held,
		CurrentlyOverdue: overdue,
	}, nil
}

func (s *Service) DailyStats(ctx context.Context) (model.DailyStats, error) {
	return s.repo.DailyStats(ctx, s.now())
}

func (s *Service) publish(eventType string, loan model.Loan) {
	if s.producer == nil {
		return
	}
	data, err := json.Marshal(model.LendingEvent{
		Type:       eventType,
		LoanUid:    loan.LoanUid,
		ItemID:     loan.ItemID,
		BorrowerID: loan.BorrowerID,
		DueDate:    loan.DueDate,
		OccurredAt: s.now(),
	})
	if err != nil {
		s.log.Error("publish marshal", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.LendingTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Warn("publish", zap.String("type", eventType), zap.Error(err))
	}
}
