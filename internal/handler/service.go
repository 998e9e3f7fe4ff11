package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	OpenLoan(ctx context.Context, itemID, borrowerID int64) (model.Loan, error)
	CloseLoan(ctx context.Context, itemID, borrowerID int64) (model.Loan, error)
	ExtendLoan(ctx context.Context, loanUid string, days int) (model.Loan, error)
	RunOverdueSweep(ctx context.Context, asOf time.Time) (int64, error)

	CurrentLoanForItem(ctx context.Context, itemID int64) (model.Loan, error)
	OpenLoansForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error)
	LoanHistoryForBorrower(ctx context.Context, borrowerID int64) ([]model.Loan, error)
	LoanHistoryForItem(ctx context.Context, itemID int64) ([]model.Loan, error)
	OverdueLoans(ctx context.Context) ([]model.Loan, error)
	BorrowerStats(ctx context.Context, borrowerID int64) (model.BorrowerStats, error)
	DailyStats(ctx context.Context) (model.DailyStats, error)

	CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context, page, size int) (model.ListItems, error)
	UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (model.Borrower, error)
	GetBorrower(ctx context.Context, id int64) (model.Borrower, error)
	ListBorrowers(ctx context.Context, page, size int) (model.ListBorrowers, error)
	UpdateBorrower(ctx context.Context, id int64, req model.UpdateBorrowerRequest) (model.Borrower, error)
	DeleteBorrower(ctx context.Context, id int64) error
}

var _ LendingService = (*service.Service)(nil)
