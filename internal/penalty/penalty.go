// Package penalty computes overdue state and late fees for loan records.
// All functions are pure: the reference date is always an explicit argument,
// which keeps fee computation and the overdue sweep idempotent.
package penalty

import (
	"time"
)

const (
	// LoanTermDays is the default lending period.
	LoanTermDays = 14
	// DefaultExtensionDays is applied when an extension request carries no length.
	DefaultExtensionDays = 7
	// UnitFee is the per-day late fee in currency units.
	UnitFee = 0.50
)

// truncate drops the time-of-day part; due dates compare at calendar-date granularity.
func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsOverdue reports whether an open loan is past its due date as of asOf.
// A closed loan is never overdue.
func IsOverdue(due, asOf time.Time, closed bool) bool {
	return !closed && truncate(asOf).After(truncate(due))
}

// DaysOverdue returns the number of whole days asOf is past due, never negative.
func DaysOverdue(due, asOf time.Time) int {
	days := int(truncate(asOf).Sub(truncate(due)) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

// LateFee returns the fee accrued between due and asOf at UnitFee per day.
// The fee is always computed against the current due date, so an extension
// that moves the due date later reduces liability accordingly.
func LateFee(due, asOf time.Time) float64 {
	return float64(DaysOverdue(due, asOf)) * UnitFee
}
