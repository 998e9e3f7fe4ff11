package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/penalty"
	"github.com/Astemirdum/lending-service/internal/repository"
)

// fakeRepo is an in-memory repository.Repository. WithTx serializes callers
// and applies mutations copy-on-write, so a failed transaction leaves no
// partial state, mirroring the atomic-commit contract of the real store.
type fakeRepo struct {
	mu sync.Mutex
	fakeStore

	// conflictOpens makes the next n InsertLoan calls fail with a
	// unique-violation, simulating a lost commit race on the open-loan index.
	conflictOpens int
}

type fakeStore struct {
	parent *fakeRepo

	items      map[int64]model.Item
	borrowers  map[int64]model.Borrower
	loans      map[int64]model.Loan
	nextItemID int64
	nextBorrID int64
	nextLoanID int64
}

func newFakeRepo() *fakeRepo {
	f := &fakeRepo{
		fakeStore: fakeStore{
			items:     make(map[int64]model.Item),
			borrowers: make(map[int64]model.Borrower),
			loans:     make(map[int64]model.Loan),
		},
	}
	f.fakeStore.parent = f
	return f
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uq_loans_open_item"}
}

func (f *fakeRepo) WithTx(_ context.Context, fn func(s repository.Store) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := fakeStore{
		parent:     f,
		items:      make(map[int64]model.Item, len(f.items)),
		borrowers:  make(map[int64]model.Borrower, len(f.borrowers)),
		loans:      make(map[int64]model.Loan, len(f.loans)),
		nextItemID: f.nextItemID,
		nextBorrID: f.nextBorrID,
		nextLoanID: f.nextLoanID,
	}
	for k, v := range f.items {
		clone.items[k] = v
	}
	for k, v := range f.borrowers {
		clone.borrowers[k] = v
	}
	for k, v := range f.loans {
		clone.loans[k] = v
	}
	if err := fn(&clone); err != nil {
		return err
	}
	clone.parent = nil
	f.fakeStore = clone
	f.fakeStore.parent = f
	return nil
}

func (f *fakeRepo) addItem(av model.Availability) model.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextItemID++
	item := model.Item{ID: f.nextItemID, Title: "item", Availability: av}
	f.items[item.ID] = item
	return item
}

func (f *fakeRepo) addBorrower(st model.MembershipStatus) model.Borrower {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextBorrID++
	br := model.Borrower{ID: f.nextBorrID, FirstName: "Jo", LastName: "Doe", MembershipStatus: st}
	f.borrowers[br.ID] = br
	return br
}

func (f *fakeRepo) item(id int64) model.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id]
}

func (f *fakeRepo) borrower(id int64) model.Borrower {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.borrowers[id]
}

func (f *fakeRepo) loan(id int64) model.Loan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loans[id]
}

func (f *fakeRepo) openLoanCountForItem(itemID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.loans {
		if l.ItemID == itemID && !l.Closed {
			n++
		}
	}
	return n
}

func (s *fakeStore) CreateItem(_ context.Context, req model.CreateItemRequest) (model.Item, error) {
	s.nextItemID++
	item := model.Item{
		ID:           s.nextItemID,
		Title:        req.Title,
		Author:       req.Author,
		ISBN:         req.ISBN,
		Publisher:    req.Publisher,
		Description:  req.Description,
		Availability: model.AvailabilityAvailable,
	}
	s.items[item.ID] = item
	return item, nil
}

func (s *fakeStore) GetItem(_ context.Context, id int64) (model.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return model.Item{}, errs.ErrItemNotFound
	}
	return item, nil
}

func (s *fakeStore) GetItemForUpdate(ctx context.Context, id int64) (model.Item, error) {
	return s.GetItem(ctx, id)
}

func (s *fakeStore) ListItems(_ context.Context, page, size int) (model.ListItems, error) {
	items := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return model.ListItems{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}

func (s *fakeStore) UpdateItem(_ context.Context, id int64, req model.UpdateItemRequest) (model.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return model.Item{}, errs.ErrItemNotFound
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Author != nil {
		item.Author = *req.Author
	}
	if req.Publisher != nil {
		item.Publisher = *req.Publisher
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Availability != nil {
		item.Availability = *req.Availability
	}
	item.Version++
	s.items[id] = item
	return item, nil
}

func (s *fakeStore) DeleteItem(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return errs.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakeStore) SetItemAvailability(_ context.Context, id int64, av model.Availability) error {
	item, ok := s.items[id]
	if !ok {
		return errs.ErrItemNotFound
	}
	item.Availability = av
	item.Version++
	s.items[id] = item
	return nil
}

func (s *fakeStore) CreateBorrower(_ context.Context, req model.CreateBorrowerRequest, membershipDate time.Time) (model.Borrower, error) {
	for _, br := range s.borrowers {
		if br.Email == req.Email {
			return model.Borrower{}, errs.ErrEmailTaken
		}
	}
	s.nextBorrID++
	br := model.Borrower{
		ID:               s.nextBorrID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		MembershipDate:   membershipDate,
		MembershipStatus: model.MembershipActive,
	}
	s.borrowers[br.ID] = br
	return br, nil
}

func (s *fakeStore) GetBorrower(_ context.Context, id int64) (model.Borrower, error) {
	br, ok := s.borrowers[id]
	if !ok {
		return model.Borrower{}, errs.ErrBorrowerNotFound
	}
	return br, nil
}

func (s *fakeStore) GetBorrowerForUpdate(ctx context.Context, id int64) (model.Borrower, error) {
	return s.GetBorrower(ctx, id)
}

func (s *fakeStore) ListBorrowers(_ context.Context, page, size int) (model.ListBorrowers, error) {
	borrowers := make([]model.Borrower, 0, len(s.borrowers))
	for _, br := range s.borrowers {
		borrowers = append(borrowers, br)
	}
	return model.ListBorrowers{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(borrowers)},
		Items:  borrowers,
	}, nil
}

func (s *fakeStore) UpdateBorrower(_ context.Context, id int64, req model.UpdateBorrowerRequest) (model.Borrower, error) {
	br, ok := s.borrowers[id]
	if !ok {
		return model.Borrower{}, errs.ErrBorrowerNotFound
	}
	if req.FirstName != nil {
		br.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		br.LastName = *req.LastName
	}
	if req.Email != nil {
		br.Email = *req.Email
	}
	if req.MembershipStatus != nil {
		br.MembershipStatus = *req.MembershipStatus
	}
	br.Version++
	s.borrowers[id] = br
	return br, nil
}

func (s *fakeStore) DeleteBorrower(_ context.Context, id int64) error {
	if _, ok := s.borrowers[id]; !ok {
		return errs.ErrBorrowerNotFound
	}
	delete(s.borrowers, id)
	return nil
}

func (s *fakeStore) IncrementTotalLoans(_ context.Context, id int64) error {
	br, ok := s.borrowers[id]
	if !ok {
		return errs.ErrBorrowerNotFound
	}
	br.TotalLoans++
	br.Version++
	s.borrowers[id] = br
	return nil
}

func (s *fakeStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, br := range s.borrowers {
		if br.Email == email && br.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) InsertLoan(_ context.Context, loan model.Loan) (model.Loan, error) {
	if s.parent != nil && s.parent.conflictOpens > 0 {
		s.parent.conflictOpens--
		return model.Loan{}, uniqueViolation()
	}
	for _, l := range s.loans {
		if l.ItemID == loan.ItemID && !l.Closed {
			return model.Loan{}, uniqueViolation()
		}
	}
	s.nextLoanID++
	loan.ID = s.nextLoanID
	s.loans[loan.ID] = loan
	return loan, nil
}

func (s *fakeStore) GetLoanByUid(_ context.Context, loanUid string) (model.Loan, error) {
	for _, l := range s.loans {
		if l.LoanUid == loanUid {
			return l, nil
		}
	}
	return model.Loan{}, errs.ErrLoanNotFound
}

func (s *fakeStore) GetLoanByUidForUpdate(ctx context.Context, loanUid string) (model.Loan, error) {
	return s.GetLoanByUid(ctx, loanUid)
}

func (s *fakeStore) GetOpenLoanForItem(_ context.Context, itemID int64) (model.Loan, error) {
	for _, l := range s.loans {
		if l.ItemID == itemID && !l.Closed {
			return l, nil
		}
	}
	return model.Loan{}, errs.ErrNoActiveLoan
}

func (s *fakeStore) GetOpenLoanForItemForUpdate(ctx context.Context, itemID int64) (model.Loan, error) {
	return s.GetOpenLoanForItem(ctx, itemID)
}

func (s *fakeStore) OpenLoansForBorrower(_ context.Context, borrowerID int64) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	for _, l := range s.loans {
		if l.BorrowerID == borrowerID && !l.Closed {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (s *fakeStore) LoansForBorrower(_ context.Context, borrowerID int64) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	for _, l := range s.loans {
		if l.BorrowerID == borrowerID {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (s *fakeStore) LoansForItem(_ context.Context, itemID int64) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	for _, l := range s.loans {
		if l.ItemID == itemID {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (s *fakeStore) CloseLoan(_ context.Context, id int64, returnDate time.Time, fee float64) (model.Loan, error) {
	loan, ok := s.loans[id]
	if !ok || loan.Closed {
		return model.Loan{}, errs.ErrNoActiveLoan
	}
	rd := returnDate
	loan.ReturnDate = &rd
	loan.Closed = true
	loan.Status = model.LoanStatusReturned
	loan.LateFee = fee
	s.loans[id] = loan
	return loan, nil
}

func (s *fakeStore) ExtendLoan(_ context.Context, id int64, newDue time.Time) (model.Loan, error) {
	loan, ok := s.loans[id]
	if !ok || loan.Closed {
		return model.Loan{}, errs.ErrLoanNotFound
	}
	loan.DueDate = newDue
	loan.Status = model.LoanStatusExtended
	s.loans[id] = loan
	return loan, nil
}

func (s *fakeStore) MarkOverdue(_ context.Context, asOf time.Time) (int64, error) {
	var count int64
	for id, l := range s.loans {
		if penalty.IsOverdue(l.DueDate, asOf, l.Closed) && l.Status != model.LoanStatusOverdue {
			l.Status = model.LoanStatusOverdue
			s.loans[id] = l
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) OverdueLoans(_ context.Context, asOf time.Time) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	for _, l := range s.loans {
		if penalty.IsOverdue(l.DueDate, asOf, l.Closed) {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (s *fakeStore) LoansDueWithin(_ context.Context, asOf time.Time, days int) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	till := asOf.AddDate(0, 0, days)
	for _, l := range s.loans {
		if !l.Closed && !l.DueDate.Before(asOf) && !l.DueDate.After(till) {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (s *fakeStore) BorrowerLoanCounts(_ context.Context, borrowerID int64, asOf time.Time) (int, int, error) {
	var held, overdue int
	for _, l := range s.loans {
		if l.BorrowerID != borrowerID || l.Closed {
			continue
		}
		held++
		if penalty.IsOverdue(l.DueDate, asOf, l.Closed) {
			overdue++
		}
	}
	return held, overdue, nil
}

func (s *fakeStore) DailyStats(_ context.Context, asOf time.Time) (model.DailyStats, error) {
	stats := model.DailyStats{Date: asOf.Format(time.DateOnly)}
	for _, l := range s.loans {
		if !l.Closed {
			stats.ActiveLoans++
			if penalty.IsOverdue(l.DueDate, asOf, l.Closed) {
				stats.CurrentlyOverdue++
			}
		}
		if l.LoanDate.Format(time.DateOnly) == stats.Date {
			stats.OpenedToday++
		}
		if l.ReturnDate != nil && l.ReturnDate.Format(time.DateOnly) == stats.Date {
			stats.ReturnedToday++
		}
	}
	return stats, nil
}

var _ repository.Repository = (*fakeRepo)(nil)
