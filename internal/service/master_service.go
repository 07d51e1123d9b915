package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/munimapp/munim/internal/apperr"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/pkg/rpc"
)

// MasterService implements the MasterService RPC interface: CRUD over
// contacts, groups, ledgers, and financial years.
type MasterService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewMasterService creates a new master data service.
func NewMasterService(store storage.Store, logger *slog.Logger) *MasterService {
	return &MasterService{store: store, logger: logger}
}

// Contacts.

func (s *MasterService) CreateContact(ctx context.Context, req *connect.Request[rpc.CreateContactRequest]) (*connect.Response[rpc.CreateContactResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("contact name is required"))
	}

	contact := &models.Contact{
		Name:    req.Msg.Name,
		Email:   req.Msg.Email,
		Phone:   req.Msg.Phone,
		Address: req.Msg.Address,
	}
	if err := s.store.CreateContact(ctx, contact); err != nil {
		s.logger.Error("Failed to create contact", "name", req.Msg.Name, "error", err)
		return nil, asConnectError(err)
	}

	s.logger.Info("Contact created", "contact_id", contact.ID)
	return connect.NewResponse(&rpc.CreateContactResponse{Contact: toRPCContact(contact)}), nil
}

func (s *MasterService) GetContact(ctx context.Context, req *connect.Request[rpc.GetContactRequest]) (*connect.Response[rpc.GetContactResponse], error) {
	contact, err := s.store.GetContact(ctx, req.Msg.ContactId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.GetContactResponse{Contact: toRPCContact(contact)}), nil
}

func (s *MasterService) UpdateContact(ctx context.Context, req *connect.Request[rpc.UpdateContactRequest]) (*connect.Response[rpc.UpdateContactResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("contact name is required"))
	}

	contact := &models.Contact{
		ID:      req.Msg.ContactId,
		Name:    req.Msg.Name,
		Email:   req.Msg.Email,
		Phone:   req.Msg.Phone,
		Address: req.Msg.Address,
	}
	if err := s.store.UpdateContact(ctx, contact); err != nil {
		return nil, asConnectError(err)
	}

	updated, err := s.store.GetContact(ctx, req.Msg.ContactId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateContactResponse{Contact: toRPCContact(updated)}), nil
}

func (s *MasterService) DeleteContact(ctx context.Context, req *connect.Request[rpc.DeleteContactRequest]) (*connect.Response[rpc.DeleteContactResponse], error) {
	if err := s.store.DeleteContact(ctx, req.Msg.ContactId); err != nil {
		return nil, asConnectError(err)
	}
	s.logger.Info("Contact deleted", "contact_id", req.Msg.ContactId)
	return connect.NewResponse(&rpc.DeleteContactResponse{}), nil
}

func (s *MasterService) ListContacts(ctx context.Context, req *connect.Request[rpc.ListContactsRequest]) (*connect.Response[rpc.ListContactsResponse], error) {
	contacts, err := s.store.ListContacts(ctx, req.Msg.Query)
	if err != nil {
		return nil, asConnectError(err)
	}

	out := make([]*rpc.Contact, 0, len(contacts))
	for i := range contacts {
		out = append(out, toRPCContact(&contacts[i]))
	}
	return connect.NewResponse(&rpc.ListContactsResponse{Contacts: out}), nil
}

// Groups.

func (s *MasterService) CreateGroup(ctx context.Context, req *connect.Request[rpc.CreateGroupRequest]) (*connect.Response[rpc.CreateGroupResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("group name is required"))
	}

	group := &models.Group{
		Name:          req.Msg.Name,
		ParentGroupID: req.Msg.ParentGroupId,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("Failed to create group", "name", req.Msg.Name, "error", err)
		return nil, asConnectError(err)
	}

	s.logger.Info("Group created", "group_id", group.ID)
	return connect.NewResponse(&rpc.CreateGroupResponse{Group: toRPCGroup(group)}), nil
}

func (s *MasterService) GetGroup(ctx context.Context, req *connect.Request[rpc.GetGroupRequest]) (*connect.Response[rpc.GetGroupResponse], error) {
	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.GetGroupResponse{Group: toRPCGroup(group)}), nil
}

func (s *MasterService) UpdateGroup(ctx context.Context, req *connect.Request[rpc.UpdateGroupRequest]) (*connect.Response[rpc.UpdateGroupResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("group name is required"))
	}

	group := &models.Group{
		ID:            req.Msg.GroupId,
		Name:          req.Msg.Name,
		ParentGroupID: req.Msg.ParentGroupId,
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		return nil, asConnectError(err)
	}

	updated, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateGroupResponse{Group: toRPCGroup(updated)}), nil
}

func (s *MasterService) DeleteGroup(ctx context.Context, req *connect.Request[rpc.DeleteGroupRequest]) (*connect.Response[rpc.DeleteGroupResponse], error) {
	if err := s.store.DeleteGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, asConnectError(err)
	}
	s.logger.Info("Group deleted", "group_id", req.Msg.GroupId)
	return connect.NewResponse(&rpc.DeleteGroupResponse{}), nil
}

func (s *MasterService) ListGroups(ctx context.Context, req *connect.Request[rpc.ListGroupsRequest]) (*connect.Response[rpc.ListGroupsResponse], error) {
	groups, err := s.store.ListGroups(ctx, req.Msg.Query)
	if err != nil {
		return nil, asConnectError(err)
	}

	out := make([]*rpc.Group, 0, len(groups))
	for i := range groups {
		out = append(out, toRPCGroup(&groups[i]))
	}
	return connect.NewResponse(&rpc.ListGroupsResponse{Groups: out}), nil
}

// Ledgers.

func (s *MasterService) CreateLedger(ctx context.Context, req *connect.Request[rpc.CreateLedgerRequest]) (*connect.Response[rpc.CreateLedgerResponse], error) {
	ledger, err := s.ledgerFromRequest(ctx, "", req.Msg.Name, req.Msg.GroupId, req.Msg.ContactId,
		req.Msg.OpeningBalance, req.Msg.OpeningBalanceType)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateLedger(ctx, ledger); err != nil {
		s.logger.Error("Failed to create ledger", "name", req.Msg.Name, "error", err)
		return nil, asConnectError(err)
	}

	s.logger.Info("Ledger created", "ledger_id", ledger.ID)
	return connect.NewResponse(&rpc.CreateLedgerResponse{Ledger: toRPCLedger(ledger)}), nil
}

func (s *MasterService) GetLedger(ctx context.Context, req *connect.Request[rpc.GetLedgerRequest]) (*connect.Response[rpc.GetLedgerResponse], error) {
	ledger, err := s.store.GetLedger(ctx, req.Msg.LedgerId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.GetLedgerResponse{Ledger: toRPCLedger(ledger)}), nil
}

func (s *MasterService) UpdateLedger(ctx context.Context, req *connect.Request[rpc.UpdateLedgerRequest]) (*connect.Response[rpc.UpdateLedgerResponse], error) {
	ledger, err := s.ledgerFromRequest(ctx, req.Msg.LedgerId, req.Msg.Name, req.Msg.GroupId, req.Msg.ContactId,
		req.Msg.OpeningBalance, req.Msg.OpeningBalanceType)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateLedger(ctx, ledger); err != nil {
		return nil, asConnectError(err)
	}

	updated, err := s.store.GetLedger(ctx, req.Msg.LedgerId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateLedgerResponse{Ledger: toRPCLedger(updated)}), nil
}

func (s *MasterService) DeleteLedger(ctx context.Context, req *connect.Request[rpc.DeleteLedgerRequest]) (*connect.Response[rpc.DeleteLedgerResponse], error) {
	if err := s.store.DeleteLedger(ctx, req.Msg.LedgerId); err != nil {
		return nil, asConnectError(err)
	}
	s.logger.Info("Ledger deleted", "ledger_id", req.Msg.LedgerId)
	return connect.NewResponse(&rpc.DeleteLedgerResponse{}), nil
}

func (s *MasterService) ListLedgers(ctx context.Context, req *connect.Request[rpc.ListLedgersRequest]) (*connect.Response[rpc.ListLedgersResponse], error) {
	ledgers, err := s.store.ListLedgers(ctx, req.Msg.Query)
	if err != nil {
		return nil, asConnectError(err)
	}

	out := make([]*rpc.Ledger, 0, len(ledgers))
	for i := range ledgers {
		out = append(out, toRPCLedger(&ledgers[i]))
	}
	return connect.NewResponse(&rpc.ListLedgersResponse{Ledgers: out}), nil
}

// ledgerFromRequest validates the fields shared by ledger create and
// update and checks that the referenced group and contact exist.
func (s *MasterService) ledgerFromRequest(ctx context.Context, id, name, groupID, contactID string,
	openingBalance decimal.Decimal, openingBalanceType string) (*models.Ledger, error) {
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("ledger name is required"))
	}
	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("ledger group is required"))
	}

	balanceType := models.BalanceType(openingBalanceType)
	if balanceType == "" {
		balanceType = models.BalanceDebit
	}
	if !balanceType.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("opening balance type %q must be %q or %q",
				openingBalanceType, models.BalanceDebit, models.BalanceCredit))
	}
	if openingBalance.IsNegative() {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("opening balance %s is negative", openingBalance))
	}
	if openingBalance.Exponent() < -2 && !openingBalance.Equal(openingBalance.Round(2)) {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("opening balance %s has more than 2 decimal places", openingBalance))
	}

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, asConnectError(err)
	}
	if contactID != "" {
		if _, err := s.store.GetContact(ctx, contactID); err != nil {
			return nil, asConnectError(err)
		}
	}

	return &models.Ledger{
		ID:                 id,
		Name:               name,
		GroupID:            groupID,
		ContactID:          contactID,
		OpeningBalance:     openingBalance,
		OpeningBalanceType: balanceType,
	}, nil
}

// Financial years.

func (s *MasterService) CreateFinancialYear(ctx context.Context, req *connect.Request[rpc.CreateFinancialYearRequest]) (*connect.Response[rpc.CreateFinancialYearResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("financial year name is required"))
	}
	start, end, err := parseDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, err
	}

	year := &models.FinancialYear{
		Name:      req.Msg.Name,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.store.CreateFinancialYear(ctx, year); err != nil {
		s.logger.Error("Failed to create financial year", "name", req.Msg.Name, "error", err)
		return nil, asConnectError(err)
	}

	s.logger.Info("Financial year created", "financial_year_id", year.ID)
	return connect.NewResponse(&rpc.CreateFinancialYearResponse{FinancialYear: toRPCFinancialYear(year)}), nil
}

func (s *MasterService) GetFinancialYear(ctx context.Context, req *connect.Request[rpc.GetFinancialYearRequest]) (*connect.Response[rpc.GetFinancialYearResponse], error) {
	year, err := s.store.GetFinancialYear(ctx, req.Msg.FinancialYearId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.GetFinancialYearResponse{FinancialYear: toRPCFinancialYear(year)}), nil
}

func (s *MasterService) UpdateFinancialYear(ctx context.Context, req *connect.Request[rpc.UpdateFinancialYearRequest]) (*connect.Response[rpc.UpdateFinancialYearResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("financial year name is required"))
	}
	start, end, err := parseDateRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, err
	}

	year := &models.FinancialYear{
		ID:        req.Msg.FinancialYearId,
		Name:      req.Msg.Name,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.store.UpdateFinancialYear(ctx, year); err != nil {
		return nil, asConnectError(err)
	}

	updated, err := s.store.GetFinancialYear(ctx, req.Msg.FinancialYearId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateFinancialYearResponse{FinancialYear: toRPCFinancialYear(updated)}), nil
}

func (s *MasterService) DeleteFinancialYear(ctx context.Context, req *connect.Request[rpc.DeleteFinancialYearRequest]) (*connect.Response[rpc.DeleteFinancialYearResponse], error) {
	if err := s.store.DeleteFinancialYear(ctx, req.Msg.FinancialYearId); err != nil {
		return nil, asConnectError(err)
	}
	s.logger.Info("Financial year deleted", "financial_year_id", req.Msg.FinancialYearId)
	return connect.NewResponse(&rpc.DeleteFinancialYearResponse{}), nil
}

func (s *MasterService) ListFinancialYears(ctx context.Context, req *connect.Request[rpc.ListFinancialYearsRequest]) (*connect.Response[rpc.ListFinancialYearsResponse], error) {
	years, err := s.store.ListFinancialYears(ctx)
	if err != nil {
		return nil, asConnectError(err)
	}

	out := make([]*rpc.FinancialYear, 0, len(years))
	for i := range years {
		out = append(out, toRPCFinancialYear(&years[i]))
	}
	return connect.NewResponse(&rpc.ListFinancialYearsResponse{FinancialYears: out}), nil
}

func (s *MasterService) SetActiveFinancialYear(ctx context.Context, req *connect.Request[rpc.SetActiveFinancialYearRequest]) (*connect.Response[rpc.SetActiveFinancialYearResponse], error) {
	if err := s.store.SetActiveFinancialYear(ctx, req.Msg.FinancialYearId); err != nil {
		return nil, asConnectError(err)
	}

	year, err := s.store.GetFinancialYear(ctx, req.Msg.FinancialYearId)
	if err != nil {
		return nil, asConnectError(err)
	}
	s.logger.Info("Active financial year switched", "financial_year_id", year.ID)
	return connect.NewResponse(&rpc.SetActiveFinancialYearResponse{FinancialYear: toRPCFinancialYear(year)}), nil
}

// Wire conversions.

func toRPCContact(c *models.Contact) *rpc.Contact {
	return &rpc.Contact{
		Id:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func toRPCGroup(g *models.Group) *rpc.Group {
	return &rpc.Group{
		Id:            g.ID,
		Name:          g.Name,
		ParentGroupId: g.ParentGroupID,
		CreatedAt:     g.CreatedAt,
	}
}

func toRPCLedger(l *models.Ledger) *rpc.Ledger {
	return &rpc.Ledger{
		Id:                 l.ID,
		Name:               l.Name,
		GroupId:            l.GroupID,
		ContactId:          l.ContactID,
		OpeningBalance:     l.OpeningBalance,
		OpeningBalanceType: string(l.OpeningBalanceType),
		CreatedAt:          l.CreatedAt,
	}
}

func toRPCFinancialYear(y *models.FinancialYear) *rpc.FinancialYear {
	return &rpc.FinancialYear{
		Id:        y.ID,
		Name:      y.Name,
		StartDate: y.StartDate.Format(rpc.DateLayout),
		EndDate:   y.EndDate.Format(rpc.DateLayout),
		IsActive:  y.IsActive,
		CreatedAt: y.CreatedAt,
	}
}
