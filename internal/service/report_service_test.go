package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/pkg/rpc"
)

// seedBooks posts a small set of books used by the report tests:
//
//	Cash       opening 10000 debit
//	Purchases  opening 0 debit
//	Sales      opening 0 credit
//	2024-04-05 cash sale      Cash 5000 dr / Sales 5000 cr
//	2024-04-10 stock purchase Purchases 3000 dr / Cash 3000 cr
func seedBooks(t *testing.T, c testClients) (cash, purchases, sales string) {
	t.Helper()
	groupID := createGroup(t, c, "Primary")
	cash = createLedger(t, c, "Cash", groupID, "10000", "debit")
	purchases = createLedger(t, c, "Purchases", groupID, "0", "debit")
	sales = createLedger(t, c, "Sales", groupID, "0", "credit")

	entries := []*rpc.CreateEntryRequest{
		{
			EntryDate:   "2024-04-05",
			Description: "Cash sale",
			Lines: []*rpc.EntryLine{
				line(cash, "5000", "0"),
				line(sales, "0", "5000"),
			},
		},
		{
			EntryDate:   "2024-04-10",
			Description: "Stock purchase",
			Lines: []*rpc.EntryLine{
				line(purchases, "3000", "0"),
				line(cash, "0", "3000"),
			},
		},
	}
	for _, req := range entries {
		if _, err := c.entry.CreateEntry(context.Background(), connect.NewRequest(req)); err != nil {
			t.Fatalf("CreateEntry(%s) failed: %v", req.Description, err)
		}
	}
	return cash, purchases, sales
}

func TestTrialBalance(t *testing.T) {
	c := setupTestServer(t)
	seedBooks(t, c)

	resp, err := c.report.TrialBalance(context.Background(), connect.NewRequest(&rpc.TrialBalanceRequest{
		AsOnDate: "2024-04-30",
	}))
	if err != nil {
		t.Fatalf("TrialBalance failed: %v", err)
	}

	rows := resp.Msg.Rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Rows are ordered by ledger name.
	want := []struct {
		name    string
		closing string
		typ     string
	}{
		{"Cash", "12000", "debit"},
		{"Purchases", "3000", "debit"},
		{"Sales", "5000", "credit"},
	}
	for i, w := range want {
		if rows[i].LedgerName != w.name {
			t.Errorf("row %d: expected ledger %s, got %s", i, w.name, rows[i].LedgerName)
			continue
		}
		if !rows[i].ClosingBalance.Equal(dec(t, w.closing)) {
			t.Errorf("%s: expected closing %s, got %s", w.name, w.closing, rows[i].ClosingBalance)
		}
		if rows[i].ClosingType != w.typ {
			t.Errorf("%s: expected closing type %s, got %s", w.name, w.typ, rows[i].ClosingType)
		}
	}
}

func TestTrialBalanceIdempotent(t *testing.T) {
	c := setupTestServer(t)
	seedBooks(t, c)

	req := &rpc.TrialBalanceRequest{AsOnDate: "2024-04-30"}
	first, err := c.report.TrialBalance(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("TrialBalance failed: %v", err)
	}
	second, err := c.report.TrialBalance(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("TrialBalance failed: %v", err)
	}

	if len(first.Msg.Rows) != len(second.Msg.Rows) {
		t.Fatalf("row counts differ: %d vs %d", len(first.Msg.Rows), len(second.Msg.Rows))
	}
	for i := range first.Msg.Rows {
		a, b := first.Msg.Rows[i], second.Msg.Rows[i]
		if a.LedgerId != b.LedgerId || !a.ClosingBalance.Equal(b.ClosingBalance) || a.ClosingType != b.ClosingType {
			t.Errorf("row %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestProfitAndLoss(t *testing.T) {
	c := setupTestServer(t)
	_, purchases, sales := seedBooks(t, c)

	resp, err := c.report.ProfitAndLoss(context.Background(), connect.NewRequest(&rpc.ProfitAndLossRequest{
		StartDate: "2024-04-01",
		EndDate:   "2024-04-30",
	}))
	if err != nil {
		t.Fatalf("ProfitAndLoss failed: %v", err)
	}

	stmt := resp.Msg
	if len(stmt.Income) != 1 || stmt.Income[0].LedgerId != sales {
		t.Fatalf("expected Sales as the only income line, got %+v", stmt.Income)
	}
	if !stmt.Income[0].Amount.Equal(dec(t, "5000")) {
		t.Errorf("income: expected 5000, got %s", stmt.Income[0].Amount)
	}
	if len(stmt.Expenses) != 1 || stmt.Expenses[0].LedgerId != purchases {
		t.Fatalf("expected Purchases as the only expense line, got %+v", stmt.Expenses)
	}
	if !stmt.Expenses[0].Amount.Equal(dec(t, "3000")) {
		t.Errorf("expense: expected 3000, got %s", stmt.Expenses[0].Amount)
	}
	if !stmt.NetProfit.Equal(dec(t, "2000")) {
		t.Errorf("net profit: expected 2000, got %s", stmt.NetProfit)
	}
	if !stmt.NetLoss.IsZero() {
		t.Errorf("net loss: expected 0, got %s", stmt.NetLoss)
	}

	// Cash moved on both sides but nets to +2000 debit, so it shows up
	// as neither income nor expense in this seed; the identity
	// income - expenses == net profit must hold regardless.
	if !stmt.TotalIncome.Sub(stmt.TotalExpenses).Equal(stmt.NetProfit) {
		t.Errorf("identity violated: %s - %s != %s", stmt.TotalIncome, stmt.TotalExpenses, stmt.NetProfit)
	}
}

func TestBalanceSheet(t *testing.T) {
	c := setupTestServer(t)
	seedBooks(t, c)

	resp, err := c.report.BalanceSheet(context.Background(), connect.NewRequest(&rpc.BalanceSheetRequest{
		AsOnDate: "2024-04-30",
	}))
	if err != nil {
		t.Fatalf("BalanceSheet failed: %v", err)
	}

	stmt := resp.Msg
	if len(stmt.Assets) != 2 {
		t.Fatalf("expected 2 asset lines (Cash, Purchases), got %d", len(stmt.Assets))
	}
	if len(stmt.Liabilities) != 1 {
		t.Fatalf("expected 1 liability line (Sales), got %d", len(stmt.Liabilities))
	}
	if !stmt.TotalAssets.Equal(dec(t, "15000")) {
		t.Errorf("total assets: expected 15000, got %s", stmt.TotalAssets)
	}
	if !stmt.TotalLiabilities.Equal(dec(t, "5000")) {
		t.Errorf("total liabilities: expected 5000, got %s", stmt.TotalLiabilities)
	}
	// The 10000 opening balance has no counter-entry in this seed, so
	// the sheet reports the gap instead of rejecting it.
	if !stmt.Difference.Equal(dec(t, "10000")) {
		t.Errorf("difference: expected 10000, got %s", stmt.Difference)
	}
}

func TestLedgerReport(t *testing.T) {
	c := setupTestServer(t)
	cash, _, _ := seedBooks(t, c)

	resp, err := c.report.LedgerReport(context.Background(), connect.NewRequest(&rpc.LedgerReportRequest{
		LedgerId:  cash,
		StartDate: "2024-04-01",
		EndDate:   "2024-04-30",
	}))
	if err != nil {
		t.Fatalf("LedgerReport failed: %v", err)
	}

	rows := resp.Msg.Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 cash rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.LedgerId != cash {
			t.Errorf("expected only cash rows, got ledger %s", r.LedgerId)
		}
	}

	// Unknown ledger is a not-found, not an empty report.
	_, err = c.report.LedgerReport(context.Background(), connect.NewRequest(&rpc.LedgerReportRequest{
		LedgerId:  "missing",
		StartDate: "2024-04-01",
		EndDate:   "2024-04-30",
	}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected CodeNotFound, got %v", connect.CodeOf(err))
	}
}

func TestDaybook(t *testing.T) {
	c := setupTestServer(t)
	seedBooks(t, c)

	resp, err := c.report.Daybook(context.Background(), connect.NewRequest(&rpc.DaybookRequest{
		StartDate: "2024-04-01",
		EndDate:   "2024-04-30",
	}))
	if err != nil {
		t.Fatalf("Daybook failed: %v", err)
	}

	rows := resp.Msg.Rows
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].EntryDate < rows[i-1].EntryDate {
			t.Errorf("rows out of date order at %d: %s before %s", i, rows[i-1].EntryDate, rows[i].EntryDate)
		}
	}

	// A window with no activity is an empty report, not an error.
	empty, err := c.report.Daybook(context.Background(), connect.NewRequest(&rpc.DaybookRequest{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-31",
	}))
	if err != nil {
		t.Fatalf("Daybook failed: %v", err)
	}
	if len(empty.Msg.Rows) != 0 {
		t.Errorf("expected empty daybook, got %d rows", len(empty.Msg.Rows))
	}
}

func TestReportDateValidation(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.report.Daybook(context.Background(), connect.NewRequest(&rpc.DaybookRequest{
		StartDate: "2024-04-30",
		EndDate:   "2024-04-01",
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("inverted window: expected CodeInvalidArgument, got %v", connect.CodeOf(err))
	}

	_, err = c.report.TrialBalance(context.Background(), connect.NewRequest(&rpc.TrialBalanceRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("missing date: expected CodeInvalidArgument, got %v", connect.CodeOf(err))
	}
}
