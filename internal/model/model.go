package model

import (
	"time"
)

type Availability string

const (
	AvailabilityAvailable Availability = "AVAILABLE"
	AvailabilityOnLoan    Availability = "ON_LOAN"
	AvailabilityLost      Availability = "LOST"
	AvailabilityDamaged   Availability = "DAMAGED"
	AvailabilityInRepair  Availability = "IN_REPAIR"
	AvailabilityReserved  Availability = "RESERVED"
	AvailabilityWithdrawn Availability = "WITHDRAWN"
)

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "ACTIVE"
	MembershipSuspended MembershipStatus = "SUSPENDED"
	MembershipExpired   MembershipStatus = "EXPIRED"
	MembershipCancelled MembershipStatus = "CANCELLED"
	MembershipPending   MembershipStatus = "PENDING"
)

type LoanStatus string

const (
	LoanStatusOpen     LoanStatus = "OPEN"
	LoanStatusReturned LoanStatus = "RETURNED"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
	LoanStatusLost     LoanStatus = "LOST"
	LoanStatusExtended LoanStatus = "EXTENDED"
)

type Item struct {
	ID              int64        `json:"id" db:"id"`
	Title           string       `json:"title" db:"title"`
	Author          string       `json:"author" db:"author"`
	ISBN            string       `json:"isbn" db:"isbn"`
	PublicationYear *int         `json:"publicationYear,omitempty" db:"publication_year"`
	Publisher       string       `json:"publisher" db:"publisher"`
	Description     string       `json:"description,omitempty" db:"description"`
	Availability    Availability `json:"availability" db:"availability"`
	Version         int64        `json:"-" db:"version"`
	CreatedAt       time.Time    `json:"-" db:"created_at"`
	UpdatedAt       time.Time    `json:"-" db:"updated_at"`
}

type Borrower struct {
	ID               int64            `json:"id" db:"id"`
	FirstName        string           `json:"firstName" db:"first_name"`
	LastName         string           `json:"lastName" db:"last_name"`
	Email            string           `json:"email" db:"email"`
	Phone            string           `json:"phone,omitempty" db:"phone"`
	Address          string           `json:"address,omitempty" db:"address"`
	MembershipDate   time.Time        `json:"membershipDate" db:"membership_date"`
	MembershipStatus MembershipStatus `json:"membershipStatus" db:"membership_status"`
	TotalLoans       int              `json:"totalLoans" db:"total_loans"`
	Version          int64            `json:"-" db:"version"`
	CreatedAt        time.Time        `json:"-" db:"created_at"`
	UpdatedAt        time.Time        `json:"-" db:"updated_at"`
}

func (b Borrower) FullName() string {
	return b.FirstName + " " + b.LastName
}

type Loan struct {
	ID         int64      `json:"id" db:"id"`
	LoanUid    string     `json:"loanUid" db:"loan_uid"`
	ItemID     int64      `json:"itemId" db:"item_id"`
	BorrowerID int64      `json:"borrowerId" db:"borrower_id"`
	LoanDate   time.Time  `json:"loanDate" db:"loan_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Closed     bool       `json:"closed" db:"closed"`
	Status     LoanStatus `json:"status" db:"status"`
	LateFee    float64    `json:"lateFee" db:"late_fee"`
	Notes      string     `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time  `json:"-" db:"created_at"`
}

type OpenLoanRequest struct {
	ItemID     int64 `json:"itemId" validate:"required,gt=0"`
	BorrowerID int64 `json:"borrowerId" validate:"required,gt=0"`
}

type CloseLoanRequest struct {
	BorrowerID int64 `json:"borrowerId" validate:"required,gt=0"`
}

type ExtendLoanRequest struct {
	Days int `json:"days" validate:"omitempty,gt=0,lte=90"`
}

type CreateItemRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Author          string `json:"author" validate:"required,max=100"`
	ISBN            string `json:"isbn" validate:"required,max=20"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,gte=1000,lte=2100"`
	Publisher       string `json:"publisher" validate:"max=100"`
	Description     string `json:"description"`
}

type UpdateItemRequest struct {
	Title        *string       `json:"title" validate:"omitempty,max=200"`
	Author       *string       `json:"author" validate:"omitempty,max=100"`
	Publisher    *string       `json:"publisher" validate:"omitempty,max=100"`
	Description  *string       `json:"description"`
	Availability *Availability `json:"availability" validate:"omitempty,oneof=AVAILABLE LOST DAMAGED IN_REPAIR RESERVED WITHDRAWN"`
}

type CreateBorrowerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Address   string `json:"address" validate:"omitempty,max=200"`
}

type UpdateBorrowerRequest struct {
	FirstName        *string           `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName         *string           `json:"lastName" validate:"omitempty,min=2,max=50"`
	Email            *string           `json:"email" validate:"omitempty,email,max=100"`
	Phone            *string           `json:"phone" validate:"omitempty,max=20"`
	Address          *string           `json:"address" validate:"omitempty,max=200"`
	MembershipStatus *MembershipStatus `json:"membershipStatus" validate:"omitempty,oneof=ACTIVE SUSPENDED EXPIRED CANCELLED PENDING"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListItems struct {
	Paging `json:",inline"`
	Items  []Item `json:"items"`
}

type ListBorrowers struct {
	Paging `json:",inline"`
	Items  []Borrower `json:"items"`
}

type BorrowerStats struct {
	BorrowerID       int64            `json:"borrowerId"`
	FullName         string           `json:"fullName"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
	MembershipDate   time.Time        `json:"membershipDate"`
	TotalLoans       int              `json:"totalLoans"`
	CurrentlyHeld    int              `json:"currentlyHeld"`
	CurrentlyOverdue int              `json:"currentlyOverdue"`
}

type DailyStats struct {
	Date             string `json:"date"`
	OpenedToday      int    `json:"openedToday"`
	ReturnedToday    int    `json:"returnedToday"`
	CurrentlyOverdue int    `json:"currentlyOverdue"`
	ActiveLoans      int    `json:"activeLoans"`
}

type LendingEvent struct {
	Type       string    `json:"type"`
	LoanUid    string    `json:"loanUid"`
	ItemID     int64     `json:"itemId"`
	BorrowerID int64     `json:"borrowerId"`
	DueDate    time.Time `json:"dueDate"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	EventLoanOpened   = "loan-opened"
	EventLoanReturned = "loan-returned"
	EventLoanExtended = "loan-extended"
	EventDueReminder  = "due-reminder"
)
