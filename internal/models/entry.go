package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents an immutable accounting event. It is created
// atomically with at least two detail lines whose debits and credits
// balance, and is never updated afterwards: a mistake is fixed by a
// new correction entry that references the original.
type Entry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string

	// EntryNumber is the system-generated, unique, human-readable
	// number ("TXN-000042"; corrections use the "COR-" prefix).
	EntryNumber string

	// EntryDate is the accounting date of the event (date precision).
	EntryDate time.Time

	// Description is the narration for the entry.
	Description string

	// TotalAmount is the sum of the detail debit amounts. It is
	// derived at write time and never independently settable.
	TotalAmount decimal.Decimal

	// IsCorrection marks entries that amend a prior entry.
	IsCorrection bool

	// OriginalEntryID is the entry a correction amends, empty for
	// normal entries.
	OriginalEntryID string

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64

	// Details are the entry's lines. The entry owns them: they are
	// written and deleted with it.
	Details []EntryDetail
}

// EntryDetail is one line of an entry: a movement against one ledger.
// Debit and credit are both non-negative; the balance invariant is
// enforced at the entry level, not per line.
type EntryDetail struct {
	// ID is the unique identifier for the line (UUID format).
	ID string

	// EntryID is the owning entry.
	EntryID string

	// LedgerID is the ledger the movement applies to.
	LedgerID string

	// DebitAmount is the debit side of the line (>= 0).
	DebitAmount decimal.Decimal

	// CreditAmount is the credit side of the line (>= 0).
	CreditAmount decimal.Decimal

	// Description is an optional line-level narration.
	Description string
}
