// Package accounting implements the bookkeeping computation core:
// validation of balanced double-entry transactions and the aggregation
// that turns raw debit/credit rows into trial balances, profit & loss
// statements, and balance sheets.
//
// The package is pure computation — no I/O. Callers fetch master data
// and detail rows from storage and hand them in.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/munimapp/munim/internal/apperr"
)

// Epsilon is the tolerance for the entry-level debit==credit check.
// It exists to absorb rounding on user input; it is never applied to
// stored amounts.
var Epsilon = decimal.New(1, -2) // 0.01

// Line is one proposed movement of a draft entry.
type Line struct {
	LedgerID    string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// LedgerChecker tests whether a ledger ID exists in the master data.
type LedgerChecker interface {
	Exists(id string) bool
}

// LedgerSet is a LedgerChecker over an in-memory id set.
type LedgerSet map[string]bool

// Exists implements LedgerChecker.
func (s LedgerSet) Exists(id string) bool { return s[id] }

// ValidateLines checks a proposed entry before anything is written:
//
//  1. at least 2 lines, every amount non-negative with at most 2
//     decimal places;
//  2. every referenced ledger exists (ReferenceError naming the first
//     missing id otherwise);
//  3. sum(debits) == sum(credits) within Epsilon;
//  4. the entry moves money at all (an all-zero entry balances
//     trivially but records nothing, so it is rejected).
//
// The first violation found is returned.
func ValidateLines(lines []Line, ledgers LedgerChecker) error {
	if len(lines) < 2 {
		return apperr.Validation("entry requires at least 2 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if line.Debit.IsNegative() {
			return apperr.Validation("line %d: debit amount %s is negative", i+1, line.Debit)
		}
		if line.Credit.IsNegative() {
			return apperr.Validation("line %d: credit amount %s is negative", i+1, line.Credit)
		}
		if line.Debit.Exponent() < -2 && !line.Debit.Equal(line.Debit.Round(2)) {
			return apperr.Validation("line %d: debit amount %s has more than 2 decimal places", i+1, line.Debit)
		}
		if line.Credit.Exponent() < -2 && !line.Credit.Equal(line.Credit.Round(2)) {
			return apperr.Validation("line %d: credit amount %s has more than 2 decimal places", i+1, line.Credit)
		}
		if !ledgers.Exists(line.LedgerID) {
			return &apperr.ReferenceError{LedgerID: line.LedgerID}
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(Epsilon) {
		return apperr.Validation("unbalanced entry: debits (%s) != credits (%s)",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2))
	}
	if totalDebit.IsZero() && totalCredit.IsZero() {
		return apperr.Validation("entry has no movement")
	}

	return nil
}

// Total returns the entry total: the sum of the debit amounts.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Debit)
	}
	return total
}
