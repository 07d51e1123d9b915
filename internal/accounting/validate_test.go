package accounting

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/munimapp/munim/internal/apperr"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateLines(t *testing.T) {
	ledgers := LedgerSet{"cash": true, "sales": true, "rent": true}

	t.Run("balanced entry passes", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("100.00"), Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("100.00")},
		}
		if err := ValidateLines(lines, ledgers); err != nil {
			t.Fatalf("ValidateLines failed: %v", err)
		}
	})

	t.Run("fewer than 2 lines rejected", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("100.00"), Credit: decimal.Zero},
		}
		err := ValidateLines(lines, ledgers)
		if !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown ledger rejected with its id", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("50.00"), Credit: decimal.Zero},
			{LedgerID: "missing", Debit: decimal.Zero, Credit: dec("50.00")},
		}
		err := ValidateLines(lines, ledgers)
		var re *apperr.ReferenceError
		if !errors.As(err, &re) {
			t.Fatalf("expected ReferenceError, got %v", err)
		}
		if re.LedgerID != "missing" {
			t.Errorf("ReferenceError names %q, want %q", re.LedgerID, "missing")
		}
		if !apperr.IsValidation(err) {
			t.Error("ReferenceError should count as a validation failure")
		}
	})

	t.Run("unbalanced entry rejected", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("100.00"), Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("99.50")},
		}
		err := ValidateLines(lines, ledgers)
		if !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("imbalance within epsilon tolerated", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("100.00"), Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("100.01")},
		}
		if err := ValidateLines(lines, ledgers); err != nil {
			t.Fatalf("0.01 difference should pass the epsilon check: %v", err)
		}
	})

	t.Run("imbalance just past epsilon rejected", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("100.00"), Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("100.02")},
		}
		if err := ValidateLines(lines, ledgers); err == nil {
			t.Fatal("0.02 difference should fail the epsilon check")
		}
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("-10.00"), Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("-10.00")},
		}
		if err := ValidateLines(lines, ledgers); !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("more than 2 decimal places rejected", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("10.005"), Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("10.005")},
		}
		if err := ValidateLines(lines, ledgers); !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("zero-movement entry rejected", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: decimal.Zero, Credit: decimal.Zero},
			{LedgerID: "sales", Debit: decimal.Zero, Credit: decimal.Zero},
		}
		if err := ValidateLines(lines, ledgers); !apperr.IsValidation(err) {
			t.Fatalf("expected validation error for all-zero entry, got %v", err)
		}
	})

	t.Run("both sides on one line allowed when entry balances", func(t *testing.T) {
		lines := []Line{
			{LedgerID: "cash", Debit: dec("30.00"), Credit: dec("10.00")},
			{LedgerID: "rent", Debit: decimal.Zero, Credit: dec("20.00")},
		}
		if err := ValidateLines(lines, ledgers); err != nil {
			t.Fatalf("ValidateLines failed: %v", err)
		}
	})
}

func TestTotal(t *testing.T) {
	lines := []Line{
		{LedgerID: "cash", Debit: dec("70.25"), Credit: decimal.Zero},
		{LedgerID: "rent", Debit: dec("29.75"), Credit: decimal.Zero},
		{LedgerID: "sales", Debit: decimal.Zero, Credit: dec("100.00")},
	}
	if got := Total(lines); !got.Equal(dec("100.00")) {
		t.Errorf("Total = %s, want 100.00", got)
	}
}
