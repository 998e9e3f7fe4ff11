package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

const loanColumns = `id, loan_uid, item_id, borrower_id, loan_date, due_date, return_date, closed, status, late_fee, notes, created_at`

func (s *store) InsertLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "item_id", "borrower_id", "loan_date", "due_date", "status", "notes").
		Values(loan.LoanUid, loan.ItemID, loan.BorrowerID,
			loan.LoanDate.Format(time.DateOnly), loan.DueDate.Format(time.DateOnly),
			loan.Status, loan.Notes).
		Suffix("returning " + loanColumns).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var res model.Loan
	if err := sqlx.GetContext(ctx, s.ext, &res, q, args...); err != nil {
		s.log.Error("InsertLoan", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Loan{}, err
	}
	return res, nil
}

func (s *store) getLoanByUid(ctx context.Context, loanUid string, forUpdate bool) (model.Loan, error) {
	b := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"loan_uid": loanUid})
	if forUpdate {
		b = b.Suffix("for update")
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, s.ext, &loan, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrLoanNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (s *store) GetLoanByUid(ctx context.Context, loanUid string) (model.Loan, error) {
	return s.getLoanByUid(ctx, loanUid, false)
}

func (s *store) GetLoanByUidForUpdate(ctx context.Context, loanUid string) (model.Loan, error) {
	return s.getLoanByUid(ctx, loanUid, true)
}

func (s *store) getOpenLoanForItem(ctx context.Context, itemID int64, forUpdate bool) (model.Loan, error) {
	b := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"item_id": itemID, "closed": false})
	if forUpdate {
		b = b.Suffix("for update")
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, s.ext, &loan, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNoActiveLoan
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (s *store) GetOpenLoanForItem(ctx context.Context, itemID int64) (model.Loan, error) {
	return s.getOpenLoanForItem(ctx, itemID, false)
}

func (s *store) GetOpenLoanForItemForUpdate(ctx context.Context, itemID int64) (model.Loan, error) {
	return s.getOpenLoanForItem(ctx, itemID, true)
}

func (s *store) OpenLoansForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error) {
	q, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"borrower_id": borrowerID, "closed": false}).
		OrderBy("due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *store) LoansForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error) {
	q, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"borrower_id": borrowerID}).
		OrderBy("loan_date desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *store) LoansForItem(ctx context.Context, itemID int64) ([]model.Loan, error) {
	q, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("loan_date desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *store) CloseLoan(ctx context.Context, id int64, returnDate time.Time, fee float64) (model.Loan, error) {
	q := `
update loans
	set return_date = $2,
	    closed = true,
	    status = $3,
	    late_fee = $4
where id = $1 and not closed
returning ` + loanColumns
	var loan model.Loan
	err := sqlx.GetContext(ctx, s.ext, &loan, q,
		id, returnDate.Format(time.DateOnly), model.LoanStatusReturned, fee)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNoActiveLoan
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (s *store) ExtendLoan(ctx context.Context, id int64, newDue time.Time) (model.Loan, error) {
	q := `
update loans
	set due_date = $2,
	    status = $3
where id = $1 and not closed
returning ` + loanColumns
	var loan model.Loan
	err := sqlx.GetContext(ctx, s.ext, &loan, q,
		id, newDue.Format(time.DateOnly), model.LoanStatusExtended)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrLoanNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// MarkOverdue is the sweep: a conditional update keyed on the latest committed
// state, so it composes with concurrent closes and extensions per record.
func (s *store) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	q := `
update loans
	set status = $1
where not closed and due_date < $2 and status <> $1`
	res, err := s.ext.ExecContext(ctx, q, model.LoanStatusOverdue, asOf.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *store) OverdueLoans(ctx context.Context, asOf time.Time) ([]model.Loan, error) {
	q, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"closed": false}).
		Where(sq.Lt{"due_date": asOf.Format(time.DateOnly)}).
		OrderBy("due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *store) LoansDueWithin(ctx context.Context, asOf time.Time, days int) ([]model.Loan, error) {
	q := `
select ` + loanColumns + ` from loans
where not closed and due_date >= $1 and due_date <= $2
order by due_date`
	from := asOf.Format(time.DateOnly)
	till := asOf.AddDate(0, 0, days).Format(time.DateOnly)
	loans := make([]model.Loan, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, from, till); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *store) BorrowerLoanCounts(ctx context.Context, borrowerID int64, asOf time.Time) (int, int, error) {
	q := `
select count(*) filter (where not closed)                      as held,
       count(*) filter (where not closed and due_date < $2)    as overdue
from loans
where borrower_id = $1`
	row := s.ext.QueryRowxContext(ctx, q, borrowerID, asOf.Format(time.DateOnly))
	var held, overdue int
	if err := row.Scan(&held, &overdue); err != nil {
		return 0, 0, err
	}
	return held, overdue, nil
}

func (s *store) DailyStats(ctx context.Context, asOf time.Time) (model.DailyStats, error) {
	q := `
select count(*) filter (where loan_date = $1)                  as opened_today,
       count(*) filter (where return_date = $1)                as returned_today,
       count(*) filter (where not closed and due_date < $1)    as currently_overdue,
       count(*) filter (where not closed)                      as active_loans
from loans`
	day := asOf.Format(time.DateOnly)
	row := s.ext.QueryRowxContext(ctx, q, day)
	stats := model.DailyStats{Date: day}
	if err := row.Scan(&stats.OpenedToday, &stats.ReturnedToday, &stats.CurrentlyOverdue, &stats.ActiveLoans); err != nil {
		return model.DailyStats{}, err
	}
	return stats, nil
}
