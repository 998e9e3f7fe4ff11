package errs

import (
	"errors"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrBorrowerNotFound = errors.New("borrower not found")
	ErrLoanNotFound     = errors.New("loan not found")

	ErrItemUnavailable     = errors.New("item is not available for lending")
	ErrBorrowerNotEligible = errors.New("borrower is not active")
	ErrBorrowerOverdue     = errors.New("borrower has overdue loans")
	ErrNoActiveLoan        = errors.New("no active loan for item")
	ErrLoanMismatch        = errors.New("item was loaned to another borrower")
	ErrInvalidOperation    = errors.New("invalid loan operation")

	ErrItemHasOpenLoan      = errors.New("item has an open loan")
	ErrBorrowerHasOpenLoans = errors.New("borrower has open loans")
	ErrEmailTaken           = errors.New("email already registered")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
