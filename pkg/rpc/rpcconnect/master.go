package rpcconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/pkg/rpc"
)

// MasterServiceName is the fully-qualified name of the MasterService,
// which owns the master data: contacts, groups, ledgers, and financial
// years.
const MasterServiceName = "munim.v1.MasterService"

const (
	MasterServiceCreateContactProcedure = "/munim.v1.MasterService/CreateContact"
	MasterServiceGetContactProcedure    = "/munim.v1.MasterService/GetContact"
	MasterServiceUpdateContactProcedure = "/munim.v1.MasterService/UpdateContact"
	MasterServiceDeleteContactProcedure = "/munim.v1.MasterService/DeleteContact"
	MasterServiceListContactsProcedure  = "/munim.v1.MasterService/ListContacts"

	MasterServiceCreateGroupProcedure = "/munim.v1.MasterService/CreateGroup"
	MasterServiceGetGroupProcedure    = "/munim.v1.MasterService/GetGroup"
	MasterServiceUpdateGroupProcedure = "/munim.v1.MasterService/UpdateGroup"
	MasterServiceDeleteGroupProcedure = "/munim.v1.MasterService/DeleteGroup"
	MasterServiceListGroupsProcedure  = "/munim.v1.MasterService/ListGroups"

	MasterServiceCreateLedgerProcedure = "/munim.v1.MasterService/CreateLedger"
	MasterServiceGetLedgerProcedure    = "/munim.v1.MasterService/GetLedger"
	MasterServiceUpdateLedgerProcedure = "/munim.v1.MasterService/UpdateLedger"
	MasterServiceDeleteLedgerProcedure = "/munim.v1.MasterService/DeleteLedger"
	MasterServiceListLedgersProcedure  = "/munim.v1.MasterService/ListLedgers"

	MasterServiceCreateFinancialYearProcedure    = "/munim.v1.MasterService/CreateFinancialYear"
	MasterServiceGetFinancialYearProcedure       = "/munim.v1.MasterService/GetFinancialYear"
	MasterServiceUpdateFinancialYearProcedure    = "/munim.v1.MasterService/UpdateFinancialYear"
	MasterServiceDeleteFinancialYearProcedure    = "/munim.v1.MasterService/DeleteFinancialYear"
	MasterServiceListFinancialYearsProcedure     = "/munim.v1.MasterService/ListFinancialYears"
	MasterServiceSetActiveFinancialYearProcedure = "/munim.v1.MasterService/SetActiveFinancialYear"
)

// MasterServiceHandler is the server API for the MasterService.
type MasterServiceHandler interface {
	CreateContact(context.Context, *connect.Request[rpc.CreateContactRequest]) (*connect.Response[rpc.CreateContactResponse], error)
	GetContact(context.Context, *connect.Request[rpc.GetContactRequest]) (*connect.Response[rpc.GetContactResponse], error)
	UpdateContact(context.Context, *connect.Request[rpc.UpdateContactRequest]) (*connect.Response[rpc.UpdateContactResponse], error)
	DeleteContact(context.Context, *connect.Request[rpc.DeleteContactRequest]) (*connect.Response[rpc.DeleteContactResponse], error)
	ListContacts(context.Context, *connect.Request[rpc.ListContactsRequest]) (*connect.Response[rpc.ListContactsResponse], error)

	CreateGroup(context.Context, *connect.Request[rpc.CreateGroupRequest]) (*connect.Response[rpc.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[rpc.GetGroupRequest]) (*connect.Response[rpc.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[rpc.UpdateGroupRequest]) (*connect.Response[rpc.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[rpc.DeleteGroupRequest]) (*connect.Response[rpc.DeleteGroupResponse], error)
	ListGroups(context.Context, *connect.Request[rpc.ListGroupsRequest]) (*connect.Response[rpc.ListGroupsResponse], error)

	CreateLedger(context.Context, *connect.Request[rpc.CreateLedgerRequest]) (*connect.Response[rpc.CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[rpc.GetLedgerRequest]) (*connect.Response[rpc.GetLedgerResponse], error)
	UpdateLedger(context.Context, *connect.Request[rpc.UpdateLedgerRequest]) (*connect.Response[rpc.UpdateLedgerResponse], error)
	DeleteLedger(context.Context, *connect.Request[rpc.DeleteLedgerRequest]) (*connect.Response[rpc.DeleteLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[rpc.ListLedgersRequest]) (*connect.Response[rpc.ListLedgersResponse], error)

	CreateFinancialYear(context.Context, *connect.Request[rpc.CreateFinancialYearRequest]) (*connect.Response[rpc.CreateFinancialYearResponse], error)
	GetFinancialYear(context.Context, *connect.Request[rpc.GetFinancialYearRequest]) (*connect.Response[rpc.GetFinancialYearResponse], error)
	UpdateFinancialYear(context.Context, *connect.Request[rpc.UpdateFinancialYearRequest]) (*connect.Response[rpc.UpdateFinancialYearResponse], error)
	DeleteFinancialYear(context.Context, *connect.Request[rpc.DeleteFinancialYearRequest]) (*connect.Response[rpc.DeleteFinancialYearResponse], error)
	ListFinancialYears(context.Context, *connect.Request[rpc.ListFinancialYearsRequest]) (*connect.Response[rpc.ListFinancialYearsResponse], error)
	SetActiveFinancialYear(context.Context, *connect.Request[rpc.SetActiveFinancialYearRequest]) (*connect.Response[rpc.SetActiveFinancialYearResponse], error)
}

// NewMasterServiceHandler builds an HTTP handler from the service
// implementation, returning the mount path and handler.
func NewMasterServiceHandler(svc MasterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(rpc.Codec{})}, opts...)
	mux := http.NewServeMux()

	mux.Handle(MasterServiceCreateContactProcedure, connect.NewUnaryHandler(
		MasterServiceCreateContactProcedure, svc.CreateContact, opts...))
	mux.Handle(MasterServiceGetContactProcedure, connect.NewUnaryHandler(
		MasterServiceGetContactProcedure, svc.GetContact, opts...))
	mux.Handle(MasterServiceUpdateContactProcedure, connect.NewUnaryHandler(
		MasterServiceUpdateContactProcedure, svc.UpdateContact, opts...))
	mux.Handle(MasterServiceDeleteContactProcedure, connect.NewUnaryHandler(
		MasterServiceDeleteContactProcedure, svc.DeleteContact, opts...))
	mux.Handle(MasterServiceListContactsProcedure, connect.NewUnaryHandler(
		MasterServiceListContactsProcedure, svc.ListContacts, opts...))

	mux.Handle(MasterServiceCreateGroupProcedure, connect.NewUnaryHandler(
		MasterServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(MasterServiceGetGroupProcedure, connect.NewUnaryHandler(
		MasterServiceGetGroupProcedure, svc.GetGroup, opts...))
	mux.Handle(MasterServiceUpdateGroupProcedure, connect.NewUnaryHandler(
		MasterServiceUpdateGroupProcedure, svc.UpdateGroup, opts...))
	mux.Handle(MasterServiceDeleteGroupProcedure, connect.NewUnaryHandler(
		MasterServiceDeleteGroupProcedure, svc.DeleteGroup, opts...))
	mux.Handle(MasterServiceListGroupsProcedure, connect.NewUnaryHandler(
		MasterServiceListGroupsProcedure, svc.ListGroups, opts...))

	mux.Handle(MasterServiceCreateLedgerProcedure, connect.NewUnaryHandler(
		MasterServiceCreateLedgerProcedure, svc.CreateLedger, opts...))
	mux.Handle(MasterServiceGetLedgerProcedure, connect.NewUnaryHandler(
		MasterServiceGetLedgerProcedure, svc.GetLedger, opts...))
	mux.Handle(MasterServiceUpdateLedgerProcedure, connect.NewUnaryHandler(
		MasterServiceUpdateLedgerProcedure, svc.UpdateLedger, opts...))
	mux.Handle(MasterServiceDeleteLedgerProcedure, connect.NewUnaryHandler(
		MasterServiceDeleteLedgerProcedure, svc.DeleteLedger, opts...))
	mux.Handle(MasterServiceListLedgersProcedure, connect.NewUnaryHandler(
		MasterServiceListLedgersProcedure, svc.ListLedgers, opts...))

	mux.Handle(MasterServiceCreateFinancialYearProcedure, connect.NewUnaryHandler(
		MasterServiceCreateFinancialYearProcedure, svc.CreateFinancialYear, opts...))
	mux.Handle(MasterServiceGetFinancialYearProcedure, connect.NewUnaryHandler(
		MasterServiceGetFinancialYearProcedure, svc.GetFinancialYear, opts...))
	mux.Handle(MasterServiceUpdateFinancialYearProcedure, connect.NewUnaryHandler(
		MasterServiceUpdateFinancialYearProcedure, svc.UpdateFinancialYear, opts...))
	mux.Handle(MasterServiceDeleteFinancialYearProcedure, connect.NewUnaryHandler(
		MasterServiceDeleteFinancialYearProcedure, svc.DeleteFinancialYear, opts...))
	mux.Handle(MasterServiceListFinancialYearsProcedure, connect.NewUnaryHandler(
		MasterServiceListFinancialYearsProcedure, svc.ListFinancialYears, opts...))
	mux.Handle(MasterServiceSetActiveFinancialYearProcedure, connect.NewUnaryHandler(
		MasterServiceSetActiveFinancialYearProcedure, svc.SetActiveFinancialYear, opts...))

	return "/munim.v1.MasterService/", mux
}

// MasterServiceClient is a client for the MasterService.
type MasterServiceClient interface {
	CreateContact(context.Context, *connect.Request[rpc.CreateContactRequest]) (*connect.Response[rpc.CreateContactResponse], error)
	GetContact(context.Context, *connect.Request[rpc.GetContactRequest]) (*connect.Response[rpc.GetContactResponse], error)
	UpdateContact(context.Context, *connect.Request[rpc.UpdateContactRequest]) (*connect.Response[rpc.UpdateContactResponse], error)
	DeleteContact(context.Context, *connect.Request[rpc.DeleteContactRequest]) (*connect.Response[rpc.DeleteContactResponse], error)
	ListContacts(context.Context, *connect.Request[rpc.ListContactsRequest]) (*connect.Response[rpc.ListContactsResponse], error)

	CreateGroup(context.Context, *connect.Request[rpc.CreateGroupRequest]) (*connect.Response[rpc.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[rpc.GetGroupRequest]) (*connect.Response[rpc.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[rpc.UpdateGroupRequest]) (*connect.Response[rpc.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[rpc.DeleteGroupRequest]) (*connect.Response[rpc.DeleteGroupResponse], error)
	ListGroups(context.Context, *connect.Request[rpc.ListGroupsRequest]) (*connect.Response[rpc.ListGroupsResponse], error)

	CreateLedger(context.Context, *connect.Request[rpc.CreateLedgerRequest]) (*connect.Response[rpc.CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[rpc.GetLedgerRequest]) (*connect.Response[rpc.GetLedgerResponse], error)
	UpdateLedger(context.Context, *connect.Request[rpc.UpdateLedgerRequest]) (*connect.Response[rpc.UpdateLedgerResponse], error)
	DeleteLedger(context.Context, *connect.Request[rpc.DeleteLedgerRequest]) (*connect.Response[rpc.DeleteLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[rpc.ListLedgersRequest]) (*connect.Response[rpc.ListLedgersResponse], error)

	CreateFinancialYear(context.Context, *connect.Request[rpc.CreateFinancialYearRequest]) (*connect.Response[rpc.CreateFinancialYearResponse], error)
	GetFinancialYear(context.Context, *connect.Request[rpc.GetFinancialYearRequest]) (*connect.Response[rpc.GetFinancialYearResponse], error)
	UpdateFinancialYear(context.Context, *connect.Request[rpc.UpdateFinancialYearRequest]) (*connect.Response[rpc.UpdateFinancialYearResponse], error)
	DeleteFinancialYear(context.Context, *connect.Request[rpc.DeleteFinancialYearRequest]) (*connect.Response[rpc.DeleteFinancialYearResponse], error)
	ListFinancialYears(context.Context, *connect.Request[rpc.ListFinancialYearsRequest]) (*connect.Response[rpc.ListFinancialYearsResponse], error)
	SetActiveFinancialYear(context.Context, *connect.Request[rpc.SetActiveFinancialYearRequest]) (*connect.Response[rpc.SetActiveFinancialYearResponse], error)
}

// NewMasterServiceClient constructs a client for the MasterService.
func NewMasterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MasterServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(rpc.Codec{})}, opts...)
	return &masterServiceClient{
		createContact: connect.NewClient[rpc.CreateContactRequest, rpc.CreateContactResponse](
			httpClient, baseURL+MasterServiceCreateContactProcedure, opts...),
		getContact: connect.NewClient[rpc.GetContactRequest, rpc.GetContactResponse](
			httpClient, baseURL+MasterServiceGetContactProcedure, opts...),
		updateContact: connect.NewClient[rpc.UpdateContactRequest, rpc.UpdateContactResponse](
			httpClient, baseURL+MasterServiceUpdateContactProcedure, opts...),
		deleteContact: connect.NewClient[rpc.DeleteContactRequest, rpc.DeleteContactResponse](
			httpClient, baseURL+MasterServiceDeleteContactProcedure, opts...),
		listContacts: connect.NewClient[rpc.ListContactsRequest, rpc.ListContactsResponse](
			httpClient, baseURL+MasterServiceListContactsProcedure, opts...),
		createGroup: connect.NewClient[rpc.CreateGroupRequest, rpc.CreateGroupResponse](
			httpClient, baseURL+MasterServiceCreateGroupProcedure, opts...),
		getGroup: connect.NewClient[rpc.GetGroupRequest, rpc.GetGroupResponse](
			httpClient, baseURL+MasterServiceGetGroupProcedure, opts...),
		updateGroup: connect.NewClient[rpc.UpdateGroupRequest, rpc.UpdateGroupResponse](
			httpClient, baseURL+MasterServiceUpdateGroupProcedure, opts...),
		deleteGroup: connect.NewClient[rpc.DeleteGroupRequest, rpc.DeleteGroupResponse](
			httpClient, baseURL+MasterServiceDeleteGroupProcedure, opts...),
		listGroups: connect.NewClient[rpc.ListGroupsRequest, rpc.ListGroupsResponse](
			httpClient, baseURL+MasterServiceListGroupsProcedure, opts...),
		createLedger: connect.NewClient[rpc.CreateLedgerRequest, rpc.CreateLedgerResponse](
			httpClient, baseURL+MasterServiceCreateLedgerProcedure, opts...),
		getLedger: connect.NewClient[rpc.GetLedgerRequest, rpc.GetLedgerResponse](
			httpClient, baseURL+MasterServiceGetLedgerProcedure, opts...),
		updateLedger: connect.NewClient[rpc.UpdateLedgerRequest, rpc.UpdateLedgerResponse](
			httpClient, baseURL+MasterServiceUpdateLedgerProcedure, opts...),
		deleteLedger: connect.NewClient[rpc.DeleteLedgerRequest, rpc.DeleteLedgerResponse](
			httpClient, baseURL+MasterServiceDeleteLedgerProcedure, opts...),
		listLedgers: connect.NewClient[rpc.ListLedgersRequest, rpc.ListLedgersResponse](
			httpClient, baseURL+MasterServiceListLedgersProcedure, opts...),
		createFinancialYear: connect.NewClient[rpc.CreateFinancialYearRequest, rpc.CreateFinancialYearResponse](
			httpClient, baseURL+MasterServiceCreateFinancialYearProcedure, opts...),
		getFinancialYear: connect.NewClient[rpc.GetFinancialYearRequest, rpc.GetFinancialYearResponse](
			httpClient, baseURL+MasterServiceGetFinancialYearProcedure, opts...),
		updateFinancialYear: connect.NewClient[rpc.UpdateFinancialYearRequest, rpc.UpdateFinancialYearResponse](
			httpClient, baseURL+MasterServiceUpdateFinancialYearProcedure, opts...),
		deleteFinancialYear: connect.NewClient[rpc.DeleteFinancialYearRequest, rpc.DeleteFinancialYearResponse](
			httpClient, baseURL+MasterServiceDeleteFinancialYearProcedure, opts...),
		listFinancialYears: connect.NewClient[rpc.ListFinancialYearsRequest, rpc.ListFinancialYearsResponse](
			httpClient, baseURL+MasterServiceListFinancialYearsProcedure, opts...),
		setActiveFinancialYear: connect.NewClient[rpc.SetActiveFinancialYearRequest, rpc.SetActiveFinancialYearResponse](
			httpClient, baseURL+MasterServiceSetActiveFinancialYearProcedure, opts...),
	}
}

type masterServiceClient struct {
	createContact *connect.Client[rpc.CreateContactRequest, rpc.CreateContactResponse]
	getContact    *connect.Client[rpc.GetContactRequest, rpc.GetContactResponse]
	updateContact *connect.Client[rpc.UpdateContactRequest, rpc.UpdateContactResponse]
	deleteContact *connect.Client[rpc.DeleteContactRequest, rpc.DeleteContactResponse]
	listContacts  *connect.Client[rpc.ListContactsRequest, rpc.ListContactsResponse]

	createGroup *connect.Client[rpc.CreateGroupRequest, rpc.CreateGroupResponse]
	getGroup    *connect.Client[rpc.GetGroupRequest, rpc.GetGroupResponse]
	updateGroup *connect.Client[rpc.UpdateGroupRequest, rpc.UpdateGroupResponse]
	deleteGroup *connect.Client[rpc.DeleteGroupRequest, rpc.DeleteGroupResponse]
	listGroups  *connect.Client[rpc.ListGroupsRequest, rpc.ListGroupsResponse]

	createLedger *connect.Client[rpc.CreateLedgerRequest, rpc.CreateLedgerResponse]
	getLedger    *connect.Client[rpc.GetLedgerRequest, rpc.GetLedgerResponse]
	updateLedger *connect.Client[rpc.UpdateLedgerRequest, rpc.UpdateLedgerResponse]
	deleteLedger *connect.Client[rpc.DeleteLedgerRequest, rpc.DeleteLedgerResponse]
	listLedgers  *connect.Client[rpc.ListLedgersRequest, rpc.ListLedgersResponse]

	createFinancialYear    *connect.Client[rpc.CreateFinancialYearRequest, rpc.CreateFinancialYearResponse]
	getFinancialYear       *connect.Client[rpc.GetFinancialYearRequest, rpc.GetFinancialYearResponse]
	updateFinancialYear    *connect.Client[rpc.UpdateFinancialYearRequest, rpc.UpdateFinancialYearResponse]
	deleteFinancialYear    *connect.Client[rpc.DeleteFinancialYearRequest, rpc.DeleteFinancialYearResponse]
	listFinancialYears     *connect.Client[rpc.ListFinancialYearsRequest, rpc.ListFinancialYearsResponse]
	setActiveFinancialYear *connect.Client[rpc.SetActiveFinancialYearRequest, rpc.SetActiveFinancialYearResponse]
}

func (c *masterServiceClient) CreateContact(ctx context.Context, req *connect.Request[rpc.CreateContactRequest]) (*connect.Response[rpc.CreateContactResponse], error) {
	return c.createContact.CallUnary(ctx, req)
}

func (c *masterServiceClient) GetContact(ctx context.Context, req *connect.Request[rpc.GetContactRequest]) (*connect.Response[rpc.GetContactResponse], error) {
	return c.getContact.CallUnary(ctx, req)
}

func (c *masterServiceClient) UpdateContact(ctx context.Context, req *connect.Request[rpc.UpdateContactRequest]) (*connect.Response[rpc.UpdateContactResponse], error) {
	return c.updateContact.CallUnary(ctx, req)
}

func (c *masterServiceClient) DeleteContact(ctx context.Context, req *connect.Request[rpc.DeleteContactRequest]) (*connect.Response[rpc.DeleteContactResponse], error) {
	return c.deleteContact.CallUnary(ctx, req)
}

func (c *masterServiceClient) ListContacts(ctx context.Context, req *connect.Request[rpc.ListContactsRequest]) (*connect.Response[rpc.ListContactsResponse], error) {
	return c.listContacts.CallUnary(ctx, req)
}

func (c *masterServiceClient) CreateGroup(ctx context.Context, req *connect.Request[rpc.CreateGroupRequest]) (*connect.Response[rpc.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *masterServiceClient) GetGroup(ctx context.Context, req *connect.Request[rpc.GetGroupRequest]) (*connect.Response[rpc.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *masterServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[rpc.UpdateGroupRequest]) (*connect.Response[rpc.UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *masterServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[rpc.DeleteGroupRequest]) (*connect.Response[rpc.DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *masterServiceClient) ListGroups(ctx context.Context, req *connect.Request[rpc.ListGroupsRequest]) (*connect.Response[rpc.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *masterServiceClient) CreateLedger(ctx context.Context, req *connect.Request[rpc.CreateLedgerRequest]) (*connect.Response[rpc.CreateLedgerResponse], error) {
	return c.createLedger.CallUnary(ctx, req)
}

func (c *masterServiceClient) GetLedger(ctx context.Context, req *connect.Request[rpc.GetLedgerRequest]) (*connect.Response[rpc.GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *masterServiceClient) UpdateLedger(ctx context.Context, req *connect.Request[rpc.UpdateLedgerRequest]) (*connect.Response[rpc.UpdateLedgerResponse], error) {
	return c.updateLedger.CallUnary(ctx, req)
}

func (c *masterServiceClient) DeleteLedger(ctx context.Context, req *connect.Request[rpc.DeleteLedgerRequest]) (*connect.Response[rpc.DeleteLedgerResponse], error) {
	return c.deleteLedger.CallUnary(ctx, req)
}

func (c *masterServiceClient) ListLedgers(ctx context.Context, req *connect.Request[rpc.ListLedgersRequest]) (*connect.Response[rpc.ListLedgersResponse], error) {
	return c.listLedgers.CallUnary(ctx, req)
}

func (c *masterServiceClient) CreateFinancialYear(ctx context.Context, req *connect.Request[rpc.CreateFinancialYearRequest]) (*connect.Response[rpc.CreateFinancialYearResponse], error) {
	return c.createFinancialYear.CallUnary(ctx, req)
}

func (c *masterServiceClient) GetFinancialYear(ctx context.Context, req *connect.Request[rpc.GetFinancialYearRequest]) (*connect.Response[rpc.GetFinancialYearResponse], error) {
	return c.getFinancialYear.CallUnary(ctx, req)
}

func (c *masterServiceClient) UpdateFinancialYear(ctx context.Context, req *connect.Request[rpc.UpdateFinancialYearRequest]) (*connect.Response[rpc.UpdateFinancialYearResponse], error) {
	return c.updateFinancialYear.CallUnary(ctx, req)
}

func (c *masterServiceClient) DeleteFinancialYear(ctx context.Context, req *connect.Request[rpc.DeleteFinancialYearRequest]) (*connect.Response[rpc.DeleteFinancialYearResponse], error) {
	return c.deleteFinancialYear.CallUnary(ctx, req)
}

func (c *masterServiceClient) ListFinancialYears(ctx context.Context, req *connect.Request[rpc.ListFinancialYearsRequest]) (*connect.Response[rpc.ListFinancialYearsResponse], error) {
	return c.listFinancialYears.CallUnary(ctx, req)
}

func (c *masterServiceClient) SetActiveFinancialYear(ctx context.Context, req *connect.Request[rpc.SetActiveFinancialYearRequest]) (*connect.Response[rpc.SetActiveFinancialYearResponse], error) {
	return c.setActiveFinancialYear.CallUnary(ctx, req)
}
