package models

import "github.com/shopspring/decimal"

// Ledger represents an account that accumulates debit/credit movement.
type Ledger struct {
	// ID is the unique identifier for the ledger (UUID format).
	ID string

	// Name is the display name of the ledger (e.g., "Cash", "Sales").
	Name string

	// GroupID is the group this ledger is classified under.
	GroupID string

	// ContactID optionally links the ledger to a contact. Empty when
	// the ledger is not tied to anyone.
	ContactID string

	// OpeningBalance is the non-negative starting magnitude of the
	// ledger, carried with 2 fractional digits.
	OpeningBalance decimal.Decimal

	// OpeningBalanceType is the side the opening balance sits on. It
	// fixes the sign convention for all later balance math on this
	// ledger.
	OpeningBalanceType BalanceType

	// CreatedAt is the Unix timestamp when the ledger was created.
	CreatedAt int64
}
