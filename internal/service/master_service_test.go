package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/pkg/rpc"
)

func TestLedgerValidation(t *testing.T) {
	c := setupTestServer(t)
	groupID := createGroup(t, c, "Assets")

	tests := []struct {
		name string
		req  *rpc.CreateLedgerRequest
		code connect.Code
	}{
		{
			name: "missing name",
			req:  &rpc.CreateLedgerRequest{GroupId: groupID},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "missing group",
			req:  &rpc.CreateLedgerRequest{Name: "Cash"},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "unknown group",
			req:  &rpc.CreateLedgerRequest{Name: "Cash", GroupId: "missing"},
			code: connect.CodeNotFound,
		},
		{
			name: "negative opening balance",
			req: &rpc.CreateLedgerRequest{
				Name:           "Cash",
				GroupId:        groupID,
				OpeningBalance: dec(t, "-1"),
			},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "bad balance type",
			req: &rpc.CreateLedgerRequest{
				Name:               "Cash",
				GroupId:            groupID,
				OpeningBalanceType: "both",
			},
			code: connect.CodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.master.CreateLedger(context.Background(), connect.NewRequest(tt.req))
			if connect.CodeOf(err) != tt.code {
				t.Errorf("expected %v, got %v (%v)", tt.code, connect.CodeOf(err), err)
			}
		})
	}

	// Omitted balance type defaults to debit.
	resp, err := c.master.CreateLedger(context.Background(), connect.NewRequest(&rpc.CreateLedgerRequest{
		Name:    "Cash",
		GroupId: groupID,
	}))
	if err != nil {
		t.Fatalf("CreateLedger failed: %v", err)
	}
	if resp.Msg.Ledger.OpeningBalanceType != "debit" {
		t.Errorf("expected default balance type debit, got %s", resp.Msg.Ledger.OpeningBalanceType)
	}
}

func TestFinancialYearLifecycle(t *testing.T) {
	c := setupTestServer(t)

	create := func(name, start, end string) string {
		t.Helper()
		resp, err := c.master.CreateFinancialYear(context.Background(), connect.NewRequest(&rpc.CreateFinancialYearRequest{
			Name:      name,
			StartDate: start,
			EndDate:   end,
		}))
		if err != nil {
			t.Fatalf("CreateFinancialYear(%s) failed: %v", name, err)
		}
		if resp.Msg.FinancialYear.IsActive {
			t.Errorf("%s: new year must not be active", name)
		}
		return resp.Msg.FinancialYear.Id
	}

	fy24 := create("FY 2024-25", "2024-04-01", "2025-03-31")
	fy25 := create("FY 2025-26", "2025-04-01", "2026-03-31")

	// Inverted period is rejected.
	if _, err := c.master.CreateFinancialYear(context.Background(), connect.NewRequest(&rpc.CreateFinancialYearRequest{
		Name:      "Backwards",
		StartDate: "2025-03-31",
		EndDate:   "2024-04-01",
	})); connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("inverted period: expected CodeInvalidArgument, got %v", connect.CodeOf(err))
	}

	activate := func(id string) {
		t.Helper()
		resp, err := c.master.SetActiveFinancialYear(context.Background(), connect.NewRequest(&rpc.SetActiveFinancialYearRequest{
			FinancialYearId: id,
		}))
		if err != nil {
			t.Fatalf("SetActiveFinancialYear failed: %v", err)
		}
		if !resp.Msg.FinancialYear.IsActive {
			t.Error("activated year should report active")
		}
	}

	activate(fy24)
	activate(fy25)

	// Switching leaves exactly one active year.
	listResp, err := c.master.ListFinancialYears(context.Background(), connect.NewRequest(&rpc.ListFinancialYearsRequest{}))
	if err != nil {
		t.Fatalf("ListFinancialYears failed: %v", err)
	}
	active := 0
	for _, y := range listResp.Msg.FinancialYears {
		if y.IsActive {
			active++
			if y.Id != fy25 {
				t.Errorf("expected %s active, got %s", fy25, y.Id)
			}
		}
	}
	if active != 1 {
		t.Errorf("expected exactly 1 active year, got %d", active)
	}
}

func TestContactRoundTrip(t *testing.T) {
	c := setupTestServer(t)

	createResp, err := c.master.CreateContact(context.Background(), connect.NewRequest(&rpc.CreateContactRequest{
		Name:  "Acme Traders",
		Email: "accounts@acme.example",
		Phone: "+91 98765 43210",
	}))
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	id := createResp.Msg.Contact.Id

	if _, err := c.master.UpdateContact(context.Background(), connect.NewRequest(&rpc.UpdateContactRequest{
		ContactId: id,
		Name:      "Acme Traders Pvt Ltd",
	})); err != nil {
		t.Fatalf("UpdateContact failed: %v", err)
	}

	getResp, err := c.master.GetContact(context.Background(), connect.NewRequest(&rpc.GetContactRequest{ContactId: id}))
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if getResp.Msg.Contact.Name != "Acme Traders Pvt Ltd" {
		t.Errorf("name: expected updated name, got %s", getResp.Msg.Contact.Name)
	}

	// Name search matches substrings.
	listResp, err := c.master.ListContacts(context.Background(), connect.NewRequest(&rpc.ListContactsRequest{Query: "acme"}))
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if len(listResp.Msg.Contacts) != 1 {
		t.Errorf("expected 1 match, got %d", len(listResp.Msg.Contacts))
	}

	if _, err := c.master.DeleteContact(context.Background(), connect.NewRequest(&rpc.DeleteContactRequest{ContactId: id})); err != nil {
		t.Fatalf("DeleteContact failed: %v", err)
	}
	_, err = c.master.GetContact(context.Background(), connect.NewRequest(&rpc.GetContactRequest{ContactId: id}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected CodeNotFound after delete, got %v", connect.CodeOf(err))
	}
}
