package rpcconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/pkg/rpc"
)

// EntryServiceName is the fully-qualified name of the EntryService.
const EntryServiceName = "munim.v1.EntryService"

const (
	EntryServiceCreateEntryProcedure  = "/munim.v1.EntryService/CreateEntry"
	EntryServiceCorrectEntryProcedure = "/munim.v1.EntryService/CorrectEntry"
	EntryServiceGetEntryProcedure     = "/munim.v1.EntryService/GetEntry"
	EntryServiceDeleteEntryProcedure  = "/munim.v1.EntryService/DeleteEntry"
	EntryServiceListEntriesProcedure  = "/munim.v1.EntryService/ListEntries"
)

// EntryServiceHandler is the server API for the EntryService.
type EntryServiceHandler interface {
	CreateEntry(context.Context, *connect.Request[rpc.CreateEntryRequest]) (*connect.Response[rpc.CreateEntryResponse], error)
	CorrectEntry(context.Context, *connect.Request[rpc.CorrectEntryRequest]) (*connect.Response[rpc.CorrectEntryResponse], error)
	GetEntry(context.Context, *connect.Request[rpc.GetEntryRequest]) (*connect.Response[rpc.GetEntryResponse], error)
	DeleteEntry(context.Context, *connect.Request[rpc.DeleteEntryRequest]) (*connect.Response[rpc.DeleteEntryResponse], error)
	ListEntries(context.Context, *connect.Request[rpc.ListEntriesRequest]) (*connect.Response[rpc.ListEntriesResponse], error)
}

// NewEntryServiceHandler builds an HTTP handler from the service
// implementation, returning the mount path and handler.
func NewEntryServiceHandler(svc EntryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(rpc.Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(EntryServiceCreateEntryProcedure, connect.NewUnaryHandler(
		EntryServiceCreateEntryProcedure, svc.CreateEntry, opts...))
	mux.Handle(EntryServiceCorrectEntryProcedure, connect.NewUnaryHandler(
		EntryServiceCorrectEntryProcedure, svc.CorrectEntry, opts...))
	mux.Handle(EntryServiceGetEntryProcedure, connect.NewUnaryHandler(
		EntryServiceGetEntryProcedure, svc.GetEntry, opts...))
	mux.Handle(EntryServiceDeleteEntryProcedure, connect.NewUnaryHandler(
		EntryServiceDeleteEntryProcedure, svc.DeleteEntry, opts...))
	mux.Handle(EntryServiceListEntriesProcedure, connect.NewUnaryHandler(
		EntryServiceListEntriesProcedure, svc.ListEntries, opts...))
	return "/munim.v1.EntryService/", mux
}

// EntryServiceClient is a client for the EntryService.
type EntryServiceClient interface {
	CreateEntry(context.Context, *connect.Request[rpc.CreateEntryRequest]) (*connect.Response[rpc.CreateEntryResponse], error)
	CorrectEntry(context.Context, *connect.Request[rpc.CorrectEntryRequest]) (*connect.Response[rpc.CorrectEntryResponse], error)
	GetEntry(context.Context, *connect.Request[rpc.GetEntryRequest]) (*connect.Response[rpc.GetEntryResponse], error)
	DeleteEntry(context.Context, *connect.Request[rpc.DeleteEntryRequest]) (*connect.Response[rpc.DeleteEntryResponse], error)
	ListEntries(context.Context, *connect.Request[rpc.ListEntriesRequest]) (*connect.Response[rpc.ListEntriesResponse], error)
}

// NewEntryServiceClient constructs a client for the EntryService.
func NewEntryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EntryServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(rpc.Codec{})}, opts...)
	return &entryServiceClient{
		createEntry: connect.NewClient[rpc.CreateEntryRequest, rpc.CreateEntryResponse](
			httpClient, baseURL+EntryServiceCreateEntryProcedure, opts...),
		correctEntry: connect.NewClient[rpc.CorrectEntryRequest, rpc.CorrectEntryResponse](
			httpClient, baseURL+EntryServiceCorrectEntryProcedure, opts...),
		getEntry: connect.NewClient[rpc.GetEntryRequest, rpc.GetEntryResponse](
			httpClient, baseURL+EntryServiceGetEntryProcedure, opts...),
		deleteEntry: connect.NewClient[rpc.DeleteEntryRequest, rpc.DeleteEntryResponse](
			httpClient, baseURL+EntryServiceDeleteEntryProcedure, opts...),
		listEntries: connect.NewClient[rpc.ListEntriesRequest, rpc.ListEntriesResponse](
			httpClient, baseURL+EntryServiceListEntriesProcedure, opts...),
	}
}

type entryServiceClient struct {
	createEntry  *connect.Client[rpc.CreateEntryRequest, rpc.CreateEntryResponse]
	correctEntry *connect.Client[rpc.CorrectEntryRequest, rpc.CorrectEntryResponse]
	getEntry     *connect.Client[rpc.GetEntryRequest, rpc.GetEntryResponse]
	deleteEntry  *connect.Client[rpc.DeleteEntryRequest, rpc.DeleteEntryResponse]
	listEntries  *connect.Client[rpc.ListEntriesRequest, rpc.ListEntriesResponse]
}

func (c *entryServiceClient) CreateEntry(ctx context.Context, req *connect.Request[rpc.CreateEntryRequest]) (*connect.Response[rpc.CreateEntryResponse], error) {
	return c.createEntry.CallUnary(ctx, req)
}

func (c *entryServiceClient) CorrectEntry(ctx context.Context, req *connect.Request[rpc.CorrectEntryRequest]) (*connect.Response[rpc.CorrectEntryResponse], error) {
	return c.correctEntry.CallUnary(ctx, req)
}

func (c *entryServiceClient) GetEntry(ctx context.Context, req *connect.Request[rpc.GetEntryRequest]) (*connect.Response[rpc.GetEntryResponse], error) {
	return c.getEntry.CallUnary(ctx, req)
}

func (c *entryServiceClient) DeleteEntry(ctx context.Context, req *connect.Request[rpc.DeleteEntryRequest]) (*connect.Response[rpc.DeleteEntryResponse], error) {
	return c.deleteEntry.CallUnary(ctx, req)
}

func (c *entryServiceClient) ListEntries(ctx context.Context, req *connect.Request[rpc.ListEntriesRequest]) (*connect.Response[rpc.ListEntriesResponse], error) {
	return c.listEntries.CallUnary(ctx, req)
}
