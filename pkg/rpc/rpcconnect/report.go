package rpcconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/pkg/rpc"
)

// ReportServiceName is the fully-qualified name of the ReportService.
const ReportServiceName = "munim.v1.ReportService"

const (
	ReportServiceTrialBalanceProcedure  = "/munim.v1.ReportService/TrialBalance"
	ReportServiceLedgerReportProcedure  = "/munim.v1.ReportService/LedgerReport"
	ReportServiceDaybookProcedure       = "/munim.v1.ReportService/Daybook"
	ReportServiceProfitAndLossProcedure = "/munim.v1.ReportService/ProfitAndLoss"
	ReportServiceBalanceSheetProcedure  = "/munim.v1.ReportService/BalanceSheet"
)

// ReportServiceHandler is the server API for the ReportService.
type ReportServiceHandler interface {
	TrialBalance(context.Context, *connect.Request[rpc.TrialBalanceRequest]) (*connect.Response[rpc.TrialBalanceResponse], error)
	LedgerReport(context.Context, *connect.Request[rpc.LedgerReportRequest]) (*connect.Response[rpc.LedgerReportResponse], error)
	Daybook(context.Context, *connect.Request[rpc.DaybookRequest]) (*connect.Response[rpc.DaybookResponse], error)
	ProfitAndLoss(context.Context, *connect.Request[rpc.ProfitAndLossRequest]) (*connect.Response[rpc.ProfitAndLossResponse], error)
	BalanceSheet(context.Context, *connect.Request[rpc.BalanceSheetRequest]) (*connect.Response[rpc.BalanceSheetResponse], error)
}

// NewReportServiceHandler builds an HTTP handler from the service
// implementation, returning the mount path and handler.
func NewReportServiceHandler(svc ReportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(rpc.Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(ReportServiceTrialBalanceProcedure, connect.NewUnaryHandler(
		ReportServiceTrialBalanceProcedure, svc.TrialBalance, opts...))
	mux.Handle(ReportServiceLedgerReportProcedure, connect.NewUnaryHandler(
		ReportServiceLedgerReportProcedure, svc.LedgerReport, opts...))
	mux.Handle(ReportServiceDaybookProcedure, connect.NewUnaryHandler(
		ReportServiceDaybookProcedure, svc.Daybook, opts...))
	mux.Handle(ReportServiceProfitAndLossProcedure, connect.NewUnaryHandler(
		ReportServiceProfitAndLossProcedure, svc.ProfitAndLoss, opts...))
	mux.Handle(ReportServiceBalanceSheetProcedure, connect.NewUnaryHandler(
		ReportServiceBalanceSheetProcedure, svc.BalanceSheet, opts...))
	return "/munim.v1.ReportService/", mux
}

// ReportServiceClient is a client for the ReportService.
type ReportServiceClient interface {
	TrialBalance(context.Context, *connect.Request[rpc.TrialBalanceRequest]) (*connect.Response[rpc.TrialBalanceResponse], error)
	LedgerReport(context.Context, *connect.Request[rpc.LedgerReportRequest]) (*connect.Response[rpc.LedgerReportResponse], error)
	Daybook(context.Context, *connect.Request[rpc.DaybookRequest]) (*connect.Response[rpc.DaybookResponse], error)
	ProfitAndLoss(context.Context, *connect.Request[rpc.ProfitAndLossRequest]) (*connect.Response[rpc.ProfitAndLossResponse], error)
	BalanceSheet(context.Context, *connect.Request[rpc.BalanceSheetRequest]) (*connect.Response[rpc.BalanceSheetResponse], error)
}

// NewReportServiceClient constructs a client for the ReportService.
func NewReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReportServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(rpc.Codec{})}, opts...)
	return &reportServiceClient{
		trialBalance: connect.NewClient[rpc.TrialBalanceRequest, rpc.TrialBalanceResponse](
			httpClient, baseURL+ReportServiceTrialBalanceProcedure, opts...),
		ledgerReport: connect.NewClient[rpc.LedgerReportRequest, rpc.LedgerReportResponse](
			httpClient, baseURL+ReportServiceLedgerReportProcedure, opts...),
		daybook: connect.NewClient[rpc.DaybookRequest, rpc.DaybookResponse](
			httpClient, baseURL+ReportServiceDaybookProcedure, opts...),
		profitAndLoss: connect.NewClient[rpc.ProfitAndLossRequest, rpc.ProfitAndLossResponse](
			httpClient, baseURL+ReportServiceProfitAndLossProcedure, opts...),
		balanceSheet: connect.NewClient[rpc.BalanceSheetRequest, rpc.BalanceSheetResponse](
			httpClient, baseURL+ReportServiceBalanceSheetProcedure, opts...),
	}
}

type reportServiceClient struct {
	trialBalance  *connect.Client[rpc.TrialBalanceRequest, rpc.TrialBalanceResponse]
	ledgerReport  *connect.Client[rpc.LedgerReportRequest, rpc.LedgerReportResponse]
	daybook       *connect.Client[rpc.DaybookRequest, rpc.DaybookResponse]
	profitAndLoss *connect.Client[rpc.ProfitAndLossRequest, rpc.ProfitAndLossResponse]
	balanceSheet  *connect.Client[rpc.BalanceSheetRequest, rpc.BalanceSheetResponse]
}

func (c *reportServiceClient) TrialBalance(ctx context.Context, req *connect.Request[rpc.TrialBalanceRequest]) (*connect.Response[rpc.TrialBalanceResponse], error) {
	return c.trialBalance.CallUnary(ctx, req)
}

func (c *reportServiceClient) LedgerReport(ctx context.Context, req *connect.Request[rpc.LedgerReportRequest]) (*connect.Response[rpc.LedgerReportResponse], error) {
	return c.ledgerReport.CallUnary(ctx, req)
}

func (c *reportServiceClient) Daybook(ctx context.Context, req *connect.Request[rpc.DaybookRequest]) (*connect.Response[rpc.DaybookResponse], error) {
	return c.daybook.CallUnary(ctx, req)
}

func (c *reportServiceClient) ProfitAndLoss(ctx context.Context, req *connect.Request[rpc.ProfitAndLossRequest]) (*connect.Response[rpc.ProfitAndLossResponse], error) {
	return c.profitAndLoss.CallUnary(ctx, req)
}

func (c *reportServiceClient) BalanceSheet(ctx context.Context, req *connect.Request[rpc.BalanceSheetRequest]) (*connect.Response[rpc.BalanceSheetResponse], error) {
	return c.balanceSheet.CallUnary(ctx, req)
}
