package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/internal/repository"
)

// Thin catalog/profile management. No lending logic here beyond the guards
// that keep item availability and borrower removal coherent with open loans.

func (s *Service) CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error) {
	return s.repo.CreateItem(ctx, req)
}

func (s *Service) GetItem(ctx context.Context, id int64) (model.Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, page, size int) (model.ListItems, error) {
	return s.repo.ListItems(ctx, page, size)
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (model.Item, error) {
	if req.Availability == nil {
		return s.repo.UpdateItem(ctx, id, req)
	}
	// availability edits go through the same locking discipline as lending
	var item model.Item
	err := s.repo.WithTx(ctx, func(st repository.Store) error {
		cur, err := st.GetItemForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur.Availability == model.AvailabilityOnLoan {
			return errors.Wrap(errs.ErrItemHasOpenLoan, "return the item first")
		}
		item, err = st.UpdateItem(ctx, id, req)
		return err
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.WithTx(ctx, func(st repository.Store) error {
		if _, err := st.GetItemForUpdate(ctx, id); err != nil {
			return err
		}
		if _, err := st.GetOpenLoanForItem(ctx, id); err == nil {
			return errs.ErrItemHasOpenLoan
		} else if !errors.Is(err, errs.ErrNoActiveLoan) {
			return err
		}
		return st.DeleteItem(ctx, id)
	})
}

func (s *Service) CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (model.Borrower, error) {
	return s.repo.CreateBorrower(ctx, req, s.now())
}

func (s *Service) GetBorrower(ctx context.Context, id int64) (model.Borrower, error) {
	return s.repo.GetBorrower(ctx, id)
}

func (s *Service) ListBorrowers(ctx context.Context, page, size int) (model.ListBorrowers, error) {
	return s.repo.ListBorrowers(ctx, page, size)
}

func (s *Service) UpdateBorrower(ctx context.Context, id int64, req model.UpdateBorrowerRequest) (model.Borrower, error) {
	if req.Email != nil {
		taken, err := s.repo.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return model.Borrower{}, err
		}
		if taken {
			return model.Borrower{}, errs.ErrEmailTaken
		}
	}
	return s.repo.UpdateBorrower(ctx, id, req)
}

func (s *Service) DeleteBorrower(ctx context.Context, id int64) error {
	return s.repo.WithTx(ctx, func(st repository.Store) error {
		if _, err := st.GetBorrowerForUpdate(ctx, id); err != nil {
			return err
		}
		open, err := st.OpenLoansForBorrower(ctx, id)
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return errs.ErrBorrowerHasOpenLoans
		}
		return st.DeleteBorrower(ctx, id)
	})
}
