package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
)

// Store is the set of record operations. Outside a transaction they run on
// the pool; inside WithTx they run on the transaction, so *ForUpdate methods
// hold their row locks until commit.
type Store interface {
	CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	GetItemForUpdate(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context, page, size int) (model.ListItems, error)
	UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	SetItemAvailability(ctx context.Context, id int64, av model.Availability) error

	CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest, membershipDate time.Time) (model.Borrower, error)
	GetBorrower(ctx context.Context, id int64) (model.Borrower, error)
	GetBorrowerForUpdate(ctx context.Context, id int64) (model.Borrower, error)
	ListBorrowers(ctx context.Context, page, size int) (model.ListBorrowers, error)
	UpdateBorrower(ctx context.Context, id int64, req model.UpdateBorrowerRequest) (model.Borrower, error)
	DeleteBorrower(ctx context.Context, id int64) error
	IncrementTotalLoans(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)

	InsertLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	GetLoanByUid(ctx context.Context, loanUid string) (model.Loan, error)
	GetLoanByUidForUpdate(ctx context.Context, loanUid string) (model.Loan, error)
	GetOpenLoanForItem(ctx context.Context, itemID int64) (model.Loan, error)
	GetOpenLoanForItemForUpdate(ctx context.Context, itemID int64) (model.Loan, error)
	OpenLoansForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error)
	LoansForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error)
	LoansForItem(ctx context.Context, itemID int64) ([]model.Loan, error)
	CloseLoan(ctx context.Context, id int64, returnDate time.Time, fee float64) (model.Loan, error)
	ExtendLoan(ctx context.Context, id int64, newDue time.Time) (model.Loan, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
	OverdueLoans(ctx context.Context, asOf time.Time) ([]model.Loan, error)
	LoansDueWithin(ctx context.Context, asOf time.Time, days int) ([]model.Loan, error)
	BorrowerLoanCounts(ctx context.Context, borrowerID int64, asOf time.Time) (held, overdue int, err error)
	DailyStats(ctx context.Context, asOf time.Time) (model.DailyStats, error)
}

// Repository adds the atomic-commit boundary on top of Store.
type Repository interface {
	Store
	WithTx(ctx context.Context, fn func(s Store) error) error
}

type store struct {
	ext sqlx.ExtContext
	log *zap.Logger
}

type repository struct {
	store
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		store: store{ext: db, log: log.Named("repo")},
		db:    db,
	}, nil
}

const (
	itemsTableName     = `items`
	borrowersTableName = `borrowers`
	loansTableName     = `loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// WithTx runs fn within a single transaction; every Store call made through
// fn's argument sees and holds that transaction.
func (r *repository) WithTx(ctx context.Context, fn func(s Store) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(&store{ext: tx, log: r.log}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation, e.g. a concurrent open racing on the open-loan index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

const itemColumns = `id, title, author, isbn, publication_year, publisher, description, availability, version, created_at, updated_at`

func (s *store) CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error) {
	q, args, err := qb.Insert(itemsTableName).
		Columns("title", "author", "isbn", "publication_year", "publisher", "description").
		Values(req.Title, req.Author, req.ISBN, req.PublicationYear, req.Publisher, req.Description).
		Suffix("returning " + itemColumns).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := sqlx.GetContext(ctx, s.ext, &item, q, args...); err != nil {
		if IsUniqueViolation(err) {
			return model.Item{}, errs.ErrInvalidOperation
		}
		return model.Item{}, err
	}
	return item, nil
}

func (s *store) getItem(ctx context.Context, id int64, forUpdate bool) (model.Item, error) {
	b := qb.Select(itemColumns).
		From(itemsTableName).
		Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("for update")
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := sqlx.GetContext(ctx, s.ext, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (s *store) GetItem(ctx context.Context, id int64) (model.Item, error) {
	return s.getItem(ctx, id, false)
}

func (s *store) GetItemForUpdate(ctx context.Context, id int64) (model.Item, error) {
	return s.getItem(ctx, id, true)
}

func (s *store) ListItems(ctx context.Context, page, size int) (model.ListItems, error) {
	b := qb.Select(itemColumns).
		From(itemsTableName).
		OrderBy("id")
	if page != 0 && size != 0 {
		b = b.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.ListItems{}, err
	}
	items := make([]model.Item, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &items, q, args...); err != nil {
		return model.ListItems{}, err
	}
	return model.ListItems{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}

func (s *store) UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (model.Item, error) {
	b := qb.Update(itemsTableName).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.Title != nil {
		b = b.Set("title", *req.Title)
	}
	if req.Author != nil {
		b = b.Set("author", *req.Author)
	}
	if req.Publisher != nil {
		b = b.Set("publisher", *req.Publisher)
	}
	if req.Description != nil {
		b = b.Set("description", *req.Description)
	}
	if req.Availability != nil {
		b = b.Set("availability", *req.Availability)
	}
	q, args, err := b.Suffix("returning " + itemColumns).ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := sqlx.GetContext(ctx, s.ext, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (s *store) DeleteItem(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := s.ext.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrItemNotFound
	}
	return nil
}

func (s *store) SetItemAvailability(ctx context.Context, id int64, av model.Availability) error {
	q, args, err := qb.Update(itemsTableName).
		Set("availability", av).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := s.ext.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrItemNotFound
	}
	return nil
}

const borrowerColumns = `id, first_name, last_name, email, phone, address, membership_date, membership_status, total_loans, version, created_at, updated_at`

func (s *store) CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest, membershipDate time.Time) (model.Borrower, error) {
	q, args, err := qb.Insert(borrowersTableName).
		Columns("first_name", "last_name", "email", "phone", "address", "membership_date").
		Values(req.FirstName, req.LastName, req.Email, req.Phone, req.Address, membershipDate.Format(time.DateOnly)).
		Suffix("returning " + borrowerColumns).
		ToSql()
	if err != nil {
		return model.Borrower{}, err
	}
	var br model.Borrower
	if err := sqlx.GetContext(ctx, s.ext, &br, q, args...); err != nil {
		if IsUniqueViolation(err) {
			return model.Borrower{}, errs.ErrEmailTaken
		}
		return model.Borrower{}, err
	}
	return br, nil
}

func (s *store) getBorrower(ctx context.Context, id int64, forUpdate bool) (model.Borrower, error) {
	b := qb.Select(borrowerColumns).
		From(borrowersTableName).
		Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("for update")
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.Borrower{}, err
	}
	var br model.Borrower
	if err := sqlx.GetContext(ctx, s.ext, &br, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrower{}, errs.ErrBorrowerNotFound
		}
		return model.Borrower{}, err
	}
	return br, nil
}

func (s *store) GetBorrower(ctx context.Context, id int64) (model.Borrower, error) {
	return s.getBorrower(ctx, id, false)
}

func (s *store) GetBorrowerForUpdate(ctx context.Context, id int64) (model.Borrower, error) {
	return s.getBorrower(ctx, id, true)
}

func (s *store) ListBorrowers(ctx context.Context, page, size int) (model.ListBorrowers, error) {
	b := qb.Select(borrowerColumns).
		From(borrowersTableName).
		OrderBy("id")
	if page != 0 && size != 0 {
		b = b.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.ListBorrowers{}, err
	}
	items := make([]model.Borrower, 0)
	if err := sqlx.SelectContext(ctx, s.ext, &items, q, args...); err != nil {
		return model.ListBorrowers{}, err
	}
	return model.ListBorrowers{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}

func (s *store) UpdateBorrower(ctx context.Context, id int64, req model.UpdateBorrowerRequest) (model.Borrower, error) {
	b := qb.Update(borrowersTableName).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.FirstName != nil {
		b = b.Set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		b = b.Set("last_name", *req.LastName)
	}
	if req.Email != nil {
		b = b.Set("email", *req.Email)
	}
	if req.Phone != nil {
		b = b.Set("phone", *req.Phone)
	}
	if req.Address != nil {
		b = b.Set("address", *req.Address)
	}
	if req.MembershipStatus != nil {
		b = b.Set("membership_status", *req.MembershipStatus)
	}
	q, args, err := b.Suffix("returning " + borrowerColumns).ToSql()
	if err != nil {
		return model.Borrower{}, err
	}
	var br model.Borrower
	if err := sqlx.GetContext(ctx, s.ext, &br, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrower{}, errs.ErrBorrowerNotFound
		}
		if IsUniqueViolation(err) {
			return model.Borrower{}, errs.ErrEmailTaken
		}
		return model.Borrower{}, err
	}
	return br, nil
}

func (s *store) DeleteBorrower(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(borrowersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := s.ext.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrBorrowerNotFound
	}
	return nil
}

func (s *store) IncrementTotalLoans(ctx context.Context, id int64) error {
	q := `
update borrowers
	set total_loans = total_loans + 1,
	    version = version + 1,
	    updated_at = now()
where id = $1`
	_, err := s.ext.ExecContext(ctx, q, id)
	return err
}

func (s *store) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := `select exists(select 1 from borrowers where email = $1 and id <> $2)`
	row := s.ext.QueryRowxContext(ctx, q, email, excludeID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
