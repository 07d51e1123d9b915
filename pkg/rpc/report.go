package rpc

import "github.com/shopspring/decimal"

// DetailRow is one entry line joined with its entry and ledger, the
// unit of the daybook and ledger reports.
type DetailRow struct {
	EntryId          string          `json:"entry_id"`
	EntryNumber      string          `json:"entry_number"`
	EntryDate        string          `json:"entry_date"`
	EntryDescription string          `json:"entry_description"`
	IsCorrection     bool            `json:"is_correction"`
	LedgerId         string          `json:"ledger_id"`
	LedgerName       string          `json:"ledger_name"`
	DebitAmount      decimal.Decimal `json:"debit_amount"`
	CreditAmount     decimal.Decimal `json:"credit_amount"`
	LineDescription  string          `json:"line_description,omitempty"`
}

// TrialBalanceRow is one ledger's line on the trial balance.
type TrialBalanceRow struct {
	LedgerId       string          `json:"ledger_id"`
	LedgerName     string          `json:"ledger_name"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ClosingType    string          `json:"closing_balance_type"`
}

type TrialBalanceRequest struct {
	AsOnDate string `json:"as_on_date"`
}

type TrialBalanceResponse struct {
	Rows []*TrialBalanceRow `json:"rows"`
}

type LedgerReportRequest struct {
	LedgerId  string `json:"ledger_id,omitempty"`
	GroupId   string `json:"group_id,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type LedgerReportResponse struct {
	Rows []*DetailRow `json:"rows"`
}

type DaybookRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// Period and DaySummary are presentation hints bucketing the same
	// row set client-side (daily/weekly/monthly); they do not change
	// which rows are returned.
	Period     string `json:"period,omitempty"`
	DaySummary bool   `json:"day_summary,omitempty"`
}

type DaybookResponse struct {
	Rows []*DetailRow `json:"rows"`
}

// StatementLine is one ledger's contribution to a P&L bucket.
type StatementLine struct {
	LedgerId   string          `json:"ledger_id"`
	LedgerName string          `json:"ledger_name"`
	Amount     decimal.Decimal `json:"amount"`
}

type ProfitAndLossRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ProfitAndLossResponse struct {
	Income        []*StatementLine `json:"income"`
	Expenses      []*StatementLine `json:"expenses"`
	TotalIncome   decimal.Decimal  `json:"total_income"`
	TotalExpenses decimal.Decimal  `json:"total_expenses"`
	NetProfit     decimal.Decimal  `json:"net_profit"`
	NetLoss       decimal.Decimal  `json:"net_loss"`
}

// BalanceSheetLine is one ledger's line on the balance sheet.
type BalanceSheetLine struct {
	LedgerId   string          `json:"ledger_id"`
	LedgerName string          `json:"ledger_name"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
}

type BalanceSheetRequest struct {
	AsOnDate string `json:"as_on_date"`
}

type BalanceSheetResponse struct {
	Assets           []*BalanceSheetLine `json:"assets"`
	Liabilities      []*BalanceSheetLine `json:"liabilities"`
	TotalAssets      decimal.Decimal     `json:"total_assets"`
	TotalLiabilities decimal.Decimal     `json:"total_liabilities"`
	// Difference is assets minus liabilities; non-zero means the
	// books are unbalanced and is reported, not rejected.
	Difference decimal.Decimal `json:"difference"`
}
