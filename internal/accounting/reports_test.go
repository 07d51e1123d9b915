package accounting

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/munimapp/munim/internal/models"
)

func ledger(id, name string, opening string, side models.BalanceType) models.Ledger {
	return models.Ledger{
		ID:                 id,
		Name:               name,
		OpeningBalance:     dec(opening),
		OpeningBalanceType: side,
	}
}

func row(ledgerID string, debit, credit string) DetailRow {
	return DetailRow{LedgerID: ledgerID, Debit: dec(debit), Credit: dec(credit)}
}

func TestClosingBalance(t *testing.T) {
	t.Run("debit-normal ledger accumulates debits", func(t *testing.T) {
		cash := ledger("cash", "Cash", "1000", models.BalanceDebit)
		b := ClosingBalance(cash, Movement{TotalDebit: dec("500"), TotalCredit: dec("300")})
		if !b.Amount.Equal(dec("1200")) || b.Type != models.BalanceDebit {
			t.Errorf("got %s %s, want 1200 debit", b.Amount, b.Type)
		}
	})

	t.Run("credit-normal ledger accumulates credits", func(t *testing.T) {
		loan := ledger("loan", "Bank Loan", "5000", models.BalanceCredit)
		b := ClosingBalance(loan, Movement{TotalDebit: dec("1000"), TotalCredit: dec("250")})
		if !b.Amount.Equal(dec("4250")) || b.Type != models.BalanceCredit {
			t.Errorf("got %s %s, want 4250 credit", b.Amount, b.Type)
		}
	})

	t.Run("polarity flips when signed balance goes negative", func(t *testing.T) {
		supplier := ledger("sup", "Supplier", "0", models.BalanceCredit)
		b := ClosingBalance(supplier, Movement{TotalDebit: dec("700"), TotalCredit: dec("200")})
		if !b.Amount.Equal(dec("500")) || b.Type != models.BalanceDebit {
			t.Errorf("got %s %s, want 500 debit (flipped)", b.Amount, b.Type)
		}
	})
}

func TestTrialBalance(t *testing.T) {
	ledgers := []models.Ledger{
		ledger("cash", "Cash", "10000", models.BalanceDebit),
		ledger("sales", "Sales", "0", models.BalanceCredit),
		ledger("idle", "Dormant", "0", models.BalanceDebit),
	}
	rows := []DetailRow{
		row("cash", "5000", "0"),
		row("cash", "0", "3000"),
		row("sales", "0", "2000"),
	}

	tb := TrialBalance(ledgers, rows)

	if len(tb) != 3 {
		t.Fatalf("trial balance has %d rows, want 3 (exhaustive over all ledgers)", len(tb))
	}

	// Ordered by ledger name: Cash, Dormant, Sales.
	if tb[0].LedgerName != "Cash" || tb[1].LedgerName != "Dormant" || tb[2].LedgerName != "Sales" {
		t.Fatalf("unexpected order: %s, %s, %s", tb[0].LedgerName, tb[1].LedgerName, tb[2].LedgerName)
	}

	cash := tb[0]
	if !cash.TotalDebit.Equal(dec("5000")) || !cash.TotalCredit.Equal(dec("3000")) {
		t.Errorf("Cash movement = %s/%s, want 5000/3000", cash.TotalDebit, cash.TotalCredit)
	}
	if !cash.ClosingBalance.Equal(dec("12000")) || cash.ClosingType != models.BalanceDebit {
		t.Errorf("Cash closing = %s %s, want 12000 debit", cash.ClosingBalance, cash.ClosingType)
	}

	dormant := tb[1]
	if !dormant.ClosingBalance.IsZero() {
		t.Errorf("Dormant closing = %s, want 0", dormant.ClosingBalance)
	}
}

func TestProfitAndLoss(t *testing.T) {
	ledgers := []models.Ledger{
		ledger("sales", "Sales", "0", models.BalanceCredit),
		ledger("rent", "Rent", "0", models.BalanceDebit),
		ledger("cash", "Cash", "9999", models.BalanceDebit),
	}
	rows := []DetailRow{
		row("sales", "0", "5000"),
		row("rent", "1200", "0"),
		// Cash nets to zero inside the window.
		row("cash", "5000", "0"),
		row("cash", "0", "5000"),
	}

	pl := ProfitAndLoss(ledgers, rows)

	if len(pl.Income) != 1 || pl.Income[0].LedgerName != "Sales" || !pl.Income[0].Amount.Equal(dec("5000")) {
		t.Errorf("income = %+v, want single Sales line of 5000", pl.Income)
	}
	if len(pl.Expenses) != 1 || pl.Expenses[0].LedgerName != "Rent" || !pl.Expenses[0].Amount.Equal(dec("1200")) {
		t.Errorf("expenses = %+v, want single Rent line of 1200", pl.Expenses)
	}
	if !pl.TotalIncome.Equal(dec("5000")) || !pl.TotalExpenses.Equal(dec("1200")) {
		t.Errorf("totals = %s/%s, want 5000/1200", pl.TotalIncome, pl.TotalExpenses)
	}
	if !pl.NetProfit.Equal(pl.TotalIncome.Sub(pl.TotalExpenses)) {
		t.Error("net profit identity broken")
	}
	if !pl.NetLoss.IsZero() {
		t.Errorf("net loss = %s, want 0", pl.NetLoss)
	}
}

func TestProfitAndLossNetLoss(t *testing.T) {
	ledgers := []models.Ledger{
		ledger("rent", "Rent", "0", models.BalanceDebit),
	}
	rows := []DetailRow{row("rent", "800", "0")}

	pl := ProfitAndLoss(ledgers, rows)
	if !pl.NetProfit.Equal(dec("-800")) {
		t.Errorf("net profit = %s, want -800", pl.NetProfit)
	}
	if !pl.NetLoss.Equal(dec("800")) {
		t.Errorf("net loss = %s, want 800", pl.NetLoss)
	}
}

func TestBalanceSheet(t *testing.T) {
	ledgers := []models.Ledger{
		ledger("cash", "Cash", "1000", models.BalanceDebit),
		ledger("loan", "Loan", "400", models.BalanceCredit),
		ledger("tiny", "Rounding", "0.01", models.BalanceDebit),
		ledger("flip", "Overdrawn Supplier", "0", models.BalanceCredit),
	}
	rows := []DetailRow{
		row("cash", "200", "0"),
		// Supplier paid more than owed: credit-normal gone net debit.
		row("flip", "150", "0"),
	}

	bs := BalanceSheet(ledgers, rows)

	if len(bs.Assets) != 2 {
		t.Fatalf("assets = %+v, want Cash and flipped supplier", bs.Assets)
	}
	if bs.Assets[0].LedgerName != "Cash" || !bs.Assets[0].Amount.Equal(dec("1200")) {
		t.Errorf("asset[0] = %+v, want Cash 1200", bs.Assets[0])
	}
	if bs.Assets[1].LedgerName != "Overdrawn Supplier" || bs.Assets[1].Type != models.BalanceDebit {
		t.Errorf("asset[1] = %+v, want flipped supplier on debit side", bs.Assets[1])
	}
	if len(bs.Liabilities) != 1 || !bs.Liabilities[0].Amount.Equal(dec("400")) {
		t.Errorf("liabilities = %+v, want single Loan of 400", bs.Liabilities)
	}

	// |closing| <= 0.01 is immaterial and excluded from both sides.
	for _, line := range append(bs.Assets, bs.Liabilities...) {
		if line.LedgerID == "tiny" {
			t.Error("immaterial ledger appeared on the balance sheet")
		}
	}

	if !bs.TotalAssets.Equal(dec("1350")) || !bs.TotalLiabilities.Equal(dec("400")) {
		t.Errorf("totals = %s/%s, want 1350/400", bs.TotalAssets, bs.TotalLiabilities)
	}
	if !bs.Difference.Equal(dec("950")) {
		t.Errorf("difference = %s, want 950", bs.Difference)
	}
}

func TestMovementByLedgerSumsExactly(t *testing.T) {
	// 0.1 + 0.2 style inputs must not pick up float error.
	rows := []DetailRow{
		row("cash", "0.10", "0"),
		row("cash", "0.20", "0"),
		row("cash", "0.30", "0"),
	}
	m := MovementByLedger(rows)["cash"]
	if !m.TotalDebit.Equal(decimal.RequireFromString("0.60")) {
		t.Errorf("total debit = %s, want exactly 0.60", m.TotalDebit)
	}
}
