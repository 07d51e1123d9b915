package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/munimapp/munim/internal/models"
)

// TrialBalanceRow is one ledger's line on the trial balance.
type TrialBalanceRow struct {
	LedgerID       string
	LedgerName     string
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ClosingBalance decimal.Decimal
	ClosingType    models.BalanceType
}

// TrialBalance computes closing balances for every ledger from the
// detail rows dated up to the reporting date. It is exhaustive: a
// ledger with no activity and no opening balance still gets a row.
// Rows are ordered by ledger name.
func TrialBalance(ledgers []models.Ledger, rows []DetailRow) []TrialBalanceRow {
	movements := MovementByLedger(rows)

	out := make([]TrialBalanceRow, 0, len(ledgers))
	for _, ledger := range ledgers {
		m, ok := movements[ledger.ID]
		if !ok {
			m = zeroMovement
		}
		closing := ClosingBalance(ledger, m)
		out = append(out, TrialBalanceRow{
			LedgerID:       ledger.ID,
			LedgerName:     ledger.Name,
			TotalDebit:     m.TotalDebit,
			TotalCredit:    m.TotalCredit,
			ClosingBalance: closing.Amount,
			ClosingType:    closing.Type,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LedgerName < out[j].LedgerName })
	return out
}

// StatementLine is one ledger's contribution to a P&L or balance sheet
// bucket.
type StatementLine struct {
	LedgerID   string
	LedgerName string
	Amount     decimal.Decimal
}

// ProfitAndLossStatement is the flow statement over a date window.
type ProfitAndLossStatement struct {
	Income        []StatementLine
	Expenses      []StatementLine
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	NetLoss       decimal.Decimal
}

// ProfitAndLoss classifies each ledger's net movement inside the
// window: net credit movement is income, net debit movement is
// expense, zero net movement drops the ledger from the statement.
// Opening balances are excluded — this is a flow statement. The
// classification looks only at the movement sign, not the ledger's
// group.
func ProfitAndLoss(ledgers []models.Ledger, rows []DetailRow) ProfitAndLossStatement {
	movements := MovementByLedger(rows)

	stmt := ProfitAndLossStatement{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, ledger := range sortByName(ledgers) {
		m, ok := movements[ledger.ID]
		if !ok {
			continue
		}
		net := m.TotalCredit.Sub(m.TotalDebit)
		switch {
		case net.Sign() > 0:
			stmt.Income = append(stmt.Income, StatementLine{ledger.ID, ledger.Name, net})
			stmt.TotalIncome = stmt.TotalIncome.Add(net)
		case net.Sign() < 0:
			stmt.Expenses = append(stmt.Expenses, StatementLine{ledger.ID, ledger.Name, net.Abs()})
			stmt.TotalExpenses = stmt.TotalExpenses.Add(net.Abs())
		}
	}

	stmt.NetProfit = stmt.TotalIncome.Sub(stmt.TotalExpenses)
	stmt.NetLoss = decimal.Zero
	if stmt.NetProfit.Sign() < 0 {
		stmt.NetLoss = stmt.NetProfit.Neg()
	}
	return stmt
}

// BalanceSheetLine is one ledger's line on the balance sheet.
type BalanceSheetLine struct {
	LedgerID   string
	LedgerName string
	Amount     decimal.Decimal
	Type       models.BalanceType
}

// BalanceSheetStatement is the point-in-time statement of closing
// balances. A non-zero Difference signals unbalanced books; it is
// reported, not rejected.
type BalanceSheetStatement struct {
	Assets           []BalanceSheetLine
	Liabilities      []BalanceSheetLine
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Difference       decimal.Decimal
}

// BalanceSheet derives each ledger's closing balance cumulative to the
// reporting date (opening balance included, same math as the trial
// balance), drops immaterial balances (<= Epsilon), and buckets the
// rest by closing polarity: debit balances are assets, credit balances
// are liabilities. A flipped polarity moves the ledger to the other
// side, which keeps the treatment symmetric for accounts that have
// gone net negative.
func BalanceSheet(ledgers []models.Ledger, rows []DetailRow) BalanceSheetStatement {
	movements := MovementByLedger(rows)

	stmt := BalanceSheetStatement{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}
	for _, ledger := range sortByName(ledgers) {
		m, ok := movements[ledger.ID]
		if !ok {
			m = zeroMovement
		}
		closing := ClosingBalance(ledger, m)
		if closing.Amount.LessThanOrEqual(Epsilon) {
			continue
		}
		line := BalanceSheetLine{ledger.ID, ledger.Name, closing.Amount, closing.Type}
		if closing.Type == models.BalanceDebit {
			stmt.Assets = append(stmt.Assets, line)
			stmt.TotalAssets = stmt.TotalAssets.Add(closing.Amount)
		} else {
			stmt.Liabilities = append(stmt.Liabilities, line)
			stmt.TotalLiabilities = stmt.TotalLiabilities.Add(closing.Amount)
		}
	}
	stmt.Difference = stmt.TotalAssets.Sub(stmt.TotalLiabilities)
	return stmt
}

func sortByName(ledgers []models.Ledger) []models.Ledger {
	sorted := make([]models.Ledger, len(ledgers))
	copy(sorted, ledgers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}
