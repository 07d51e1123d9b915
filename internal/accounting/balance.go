package accounting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/munimapp/munim/internal/models"
)

// DetailRow is one entry line joined with its owning entry and ledger,
// as the store returns it for reporting.
type DetailRow struct {
	EntryID          string
	EntryNumber      string
	EntryDate        time.Time
	EntryDescription string
	IsCorrection     bool
	LedgerID         string
	LedgerName       string
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Description      string
}

// Movement is the net activity of one ledger over a row set.
type Movement struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// add folds one row into the movement.
func (m Movement) add(debit, credit decimal.Decimal) Movement {
	return Movement{
		TotalDebit:  m.TotalDebit.Add(debit),
		TotalCredit: m.TotalCredit.Add(credit),
	}
}

// zeroMovement has decimal zeros rather than the zero value so callers
// can format totals without nil-safety checks.
var zeroMovement = Movement{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}

// MovementByLedger sums debits and credits per ledger over a row set.
func MovementByLedger(rows []DetailRow) map[string]Movement {
	movements := make(map[string]Movement)
	for _, row := range rows {
		m, ok := movements[row.LedgerID]
		if !ok {
			m = zeroMovement
		}
		movements[row.LedgerID] = m.add(row.Debit, row.Credit)
	}
	return movements
}

// Balance is a sign-agnostic magnitude plus the side it sits on,
// matching conventional ledger presentation.
type Balance struct {
	Amount decimal.Decimal
	Type   models.BalanceType
}

// ClosingBalance derives a ledger's closing balance from its opening
// balance and the movement up to the reporting boundary. The opening
// balance type fixes the sign convention: movement toward it adds,
// movement away subtracts. A net-negative signed balance flips the
// reported side (a debit-normal account gone net negative is shown as
// a credit balance of the absolute value).
func ClosingBalance(ledger models.Ledger, m Movement) Balance {
	var signed decimal.Decimal
	if ledger.OpeningBalanceType == models.BalanceDebit {
		signed = ledger.OpeningBalance.Add(m.TotalDebit).Sub(m.TotalCredit)
	} else {
		signed = ledger.OpeningBalance.Add(m.TotalCredit).Sub(m.TotalDebit)
	}

	balanceType := ledger.OpeningBalanceType
	if signed.Sign() < 0 {
		balanceType = balanceType.Opposite()
	}
	return Balance{Amount: signed.Abs(), Type: balanceType}
}
