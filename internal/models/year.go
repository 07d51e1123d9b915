package models

import "time"

// FinancialYear represents an accounting period. At most one financial
// year is active at a time; the store enforces the singleton when the
// active year is switched.
type FinancialYear struct {
	// ID is the unique identifier for the financial year (UUID format).
	ID string

	// Name is the display name (e.g., "FY 2024-25").
	Name string

	// StartDate is the first day of the period (date precision only).
	StartDate time.Time

	// EndDate is the last day of the period, inclusive.
	EndDate time.Time

	// IsActive marks the year new entries are posted against.
	IsActive bool

	// CreatedAt is the Unix timestamp when the year was created.
	CreatedAt int64
}
