package rpc

import "github.com/shopspring/decimal"

// Contact is the wire representation of a contact.
type Contact struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// Group is the wire representation of a ledger group.
type Group struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	ParentGroupId string `json:"parent_group_id,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

// Ledger is the wire representation of a ledger account.
type Ledger struct {
	Id                 string          `json:"id"`
	Name               string          `json:"name"`
	GroupId            string          `json:"group_id"`
	ContactId          string          `json:"contact_id,omitempty"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceType string          `json:"opening_balance_type"`
	CreatedAt          int64           `json:"created_at"`
}

// FinancialYear is the wire representation of a financial year.
type FinancialYear struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

// Contacts.

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type CreateContactResponse struct {
	Contact *Contact `json:"contact"`
}

type GetContactRequest struct {
	ContactId string `json:"contact_id"`
}

type GetContactResponse struct {
	Contact *Contact `json:"contact"`
}

type UpdateContactRequest struct {
	ContactId string `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

type UpdateContactResponse struct {
	Contact *Contact `json:"contact"`
}

type DeleteContactRequest struct {
	ContactId string `json:"contact_id"`
}

type DeleteContactResponse struct{}

type ListContactsRequest struct {
	// Query optionally filters by name substring.
	Query string `json:"query,omitempty"`
}

type ListContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
}

// Groups.

type CreateGroupRequest struct {
	Name          string `json:"name"`
	ParentGroupId string `json:"parent_group_id,omitempty"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupId string `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type UpdateGroupRequest struct {
	GroupId       string `json:"group_id"`
	Name          string `json:"name"`
	ParentGroupId string `json:"parent_group_id,omitempty"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupId string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type ListGroupsRequest struct {
	Query string `json:"query,omitempty"`
}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

// Ledgers.

type CreateLedgerRequest struct {
	Name               string          `json:"name"`
	GroupId            string          `json:"group_id"`
	ContactId          string          `json:"contact_id,omitempty"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceType string          `json:"opening_balance_type"`
}

type CreateLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type GetLedgerRequest struct {
	LedgerId string `json:"ledger_id"`
}

type GetLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type UpdateLedgerRequest struct {
	LedgerId           string          `json:"ledger_id"`
	Name               string          `json:"name"`
	GroupId            string          `json:"group_id"`
	ContactId          string          `json:"contact_id,omitempty"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceType string          `json:"opening_balance_type"`
}

type UpdateLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type DeleteLedgerRequest struct {
	LedgerId string `json:"ledger_id"`
}

type DeleteLedgerResponse struct{}

type ListLedgersRequest struct {
	Query string `json:"query,omitempty"`
}

type ListLedgersResponse struct {
	Ledgers []*Ledger `json:"ledgers"`
}

// Financial years.

type CreateFinancialYearRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CreateFinancialYearResponse struct {
	FinancialYear *FinancialYear `json:"financial_year"`
}

type GetFinancialYearRequest struct {
	FinancialYearId string `json:"financial_year_id"`
}

type GetFinancialYearResponse struct {
	FinancialYear *FinancialYear `json:"financial_year"`
}

type UpdateFinancialYearRequest struct {
	FinancialYearId string `json:"financial_year_id"`
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

type UpdateFinancialYearResponse struct {
	FinancialYear *FinancialYear `json:"financial_year"`
}

type DeleteFinancialYearRequest struct {
	FinancialYearId string `json:"financial_year_id"`
}

type DeleteFinancialYearResponse struct{}

type ListFinancialYearsRequest struct{}

type ListFinancialYearsResponse struct {
	FinancialYears []*FinancialYear `json:"financial_years"`
}

type SetActiveFinancialYearRequest struct {
	FinancialYearId string `json:"financial_year_id"`
}

type SetActiveFinancialYearResponse struct {
	FinancialYear *FinancialYear `json:"financial_year"`
}
