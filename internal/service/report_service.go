package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/internal/accounting"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/pkg/rpc"
)

// ReportService implements the ReportService RPC interface. Reports
// are pure reads: the store supplies joined detail rows, the
// accounting package does the aggregation. Running the same report
// twice against unchanged data yields identical results.
type ReportService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewReportService creates a new report service.
func NewReportService(store storage.Store, logger *slog.Logger) *ReportService {
	return &ReportService{store: store, logger: logger}
}

// TrialBalance lists every ledger with its movement and closing
// balance as on the given date.
func (s *ReportService) TrialBalance(ctx context.Context, req *connect.Request[rpc.TrialBalanceRequest]) (*connect.Response[rpc.TrialBalanceResponse], error) {
	asOn, err := parseDate("as_on_date", req.Msg.AsOnDate)
	if err != nil {
		return nil, err
	}

	ledgers, rows, err := s.fetch(ctx, storage.DetailQuery{To: asOn, Order: storage.OrderByLedger})
	if err != nil {
		return nil, err
	}

	report := accounting.TrialBalance(ledgers, rows)
	out := make([]*rpc.TrialBalanceRow, 0, len(report))
	for _, r := range report {
		out = append(out, &rpc.TrialBalanceRow{
			LedgerId:       r.LedgerID,
			LedgerName:     r.LedgerName,
			TotalDebit:     r.TotalDebit,
			TotalCredit:    r.TotalCredit,
			ClosingBalance: r.ClosingBalance,
			ClosingType:    string(r.ClosingType),
		})
	}
	return connect.NewResponse(&rpc.TrialBalanceResponse{Rows: out}), nil
}

// LedgerReport lists the detail rows for one ledger, or for all
// ledgers under a group, over a date window.
func (s *ReportService) LedgerReport(ctx context.Context, req *connect.Request[rpc.LedgerReportRequest]) (*connect.Response[rpc.LedgerReportResponse], error) {
	start, end, err := parseDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, err
	}
	if req.Msg.LedgerId != "" {
		if _, err := s.store.GetLedger(ctx, req.Msg.LedgerId); err != nil {
			return nil, asConnectError(err)
		}
	}
	if req.Msg.GroupId != "" {
		if _, err := s.store.GetGroup(ctx, req.Msg.GroupId); err != nil {
			return nil, asConnectError(err)
		}
	}

	rows, err := s.store.DetailRows(ctx, storage.DetailQuery{
		From:     start,
		To:       end,
		LedgerID: req.Msg.LedgerId,
		GroupID:  req.Msg.GroupId,
		Order:    storage.OrderByLedger,
	})
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.LedgerReportResponse{Rows: toRPCDetailRows(rows)}), nil
}

// Daybook lists every detail row in the window in chronological order.
func (s *ReportService) Daybook(ctx context.Context, req *connect.Request[rpc.DaybookRequest]) (*connect.Response[rpc.DaybookResponse], error) {
	start, end, err := parseDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.DetailRows(ctx, storage.DetailQuery{
		From:  start,
		To:    end,
		Order: storage.OrderByDate,
	})
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.DaybookResponse{Rows: toRPCDetailRows(rows)}), nil
}

// ProfitAndLoss classifies net ledger movement inside the window into
// income and expenses. Opening balances are excluded.
func (s *ReportService) ProfitAndLoss(ctx context.Context, req *connect.Request[rpc.ProfitAndLossRequest]) (*connect.Response[rpc.ProfitAndLossResponse], error) {
	start, end, err := parseDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, err
	}

	ledgers, rows, err := s.fetch(ctx, storage.DetailQuery{From: start, To: end, Order: storage.OrderByLedger})
	if err != nil {
		return nil, err
	}

	stmt := accounting.ProfitAndLoss(ledgers, rows)
	return connect.NewResponse(&rpc.ProfitAndLossResponse{
		Income:        toRPCStatementLines(stmt.Income),
		Expenses:      toRPCStatementLines(stmt.Expenses),
		TotalIncome:   stmt.TotalIncome,
		TotalExpenses: stmt.TotalExpenses,
		NetProfit:     stmt.NetProfit,
		NetLoss:       stmt.NetLoss,
	}), nil
}

// BalanceSheet buckets material closing balances as on the given date
// into assets and liabilities.
func (s *ReportService) BalanceSheet(ctx context.Context, req *connect.Request[rpc.BalanceSheetRequest]) (*connect.Response[rpc.BalanceSheetResponse], error) {
	asOn, err := parseDate("as_on_date", req.Msg.AsOnDate)
	if err != nil {
		return nil, err
	}

	ledgers, rows, err := s.fetch(ctx, storage.DetailQuery{To: asOn, Order: storage.OrderByLedger})
	if err != nil {
		return nil, err
	}

	stmt := accounting.BalanceSheet(ledgers, rows)
	resp := &rpc.BalanceSheetResponse{
		TotalAssets:      stmt.TotalAssets,
		TotalLiabilities: stmt.TotalLiabilities,
		Difference:       stmt.Difference,
	}
	for _, l := range stmt.Assets {
		resp.Assets = append(resp.Assets, toRPCBalanceSheetLine(l))
	}
	for _, l := range stmt.Liabilities {
		resp.Liabilities = append(resp.Liabilities, toRPCBalanceSheetLine(l))
	}
	return connect.NewResponse(resp), nil
}

// fetch loads the ledger master and the detail rows a report needs.
func (s *ReportService) fetch(ctx context.Context, q storage.DetailQuery) ([]models.Ledger, []accounting.DetailRow, error) {
	ledgers, err := s.store.ListLedgers(ctx, "")
	if err != nil {
		return nil, nil, asConnectError(err)
	}
	rows, err := s.store.DetailRows(ctx, q)
	if err != nil {
		return nil, nil, asConnectError(err)
	}
	return ledgers, rows, nil
}

func toRPCDetailRows(rows []accounting.DetailRow) []*rpc.DetailRow {
	out := make([]*rpc.DetailRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &rpc.DetailRow{
			EntryId:          r.EntryID,
			EntryNumber:      r.EntryNumber,
			EntryDate:        r.EntryDate.Format(rpc.DateLayout),
			EntryDescription: r.EntryDescription,
			IsCorrection:     r.IsCorrection,
			LedgerId:         r.LedgerID,
			LedgerName:       r.LedgerName,
			DebitAmount:      r.Debit,
			CreditAmount:     r.Credit,
			LineDescription:  r.Description,
		})
	}
	return out
}

func toRPCStatementLines(lines []accounting.StatementLine) []*rpc.StatementLine {
	out := make([]*rpc.StatementLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, &rpc.StatementLine{
			LedgerId:   l.LedgerID,
			LedgerName: l.LedgerName,
			Amount:     l.Amount,
		})
	}
	return out
}

func toRPCBalanceSheetLine(l accounting.BalanceSheetLine) *rpc.BalanceSheetLine {
	return &rpc.BalanceSheetLine{
		LedgerId:   l.LedgerID,
		LedgerName: l.LedgerName,
		Amount:     l.Amount,
		Type:       string(l.Type),
	}
}
