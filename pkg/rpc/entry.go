package rpc

import "github.com/shopspring/decimal"

// EntryLine is one proposed line of a new entry.
type EntryLine struct {
	LedgerId     string          `json:"ledger_id"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Description  string          `json:"description,omitempty"`
}

// EntryDetail is one persisted line of an entry.
type EntryDetail struct {
	Id           string          `json:"id"`
	LedgerId     string          `json:"ledger_id"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Description  string          `json:"description,omitempty"`
}

// Entry is the wire representation of a transaction entry.
type Entry struct {
	Id              string          `json:"id"`
	EntryNumber     string          `json:"entry_number"`
	EntryDate       string          `json:"entry_date"`
	Description     string          `json:"description"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	IsCorrection    bool            `json:"is_correction"`
	OriginalEntryId string          `json:"original_entry_id,omitempty"`
	CreatedAt       int64           `json:"created_at"`
	Details         []*EntryDetail  `json:"details,omitempty"`
}

type CreateEntryRequest struct {
	EntryDate   string       `json:"entry_date"`
	Description string       `json:"description"`
	Lines       []*EntryLine `json:"lines"`
}

type CreateEntryResponse struct {
	Entry *Entry `json:"entry"`
}

type CorrectEntryRequest struct {
	OriginalEntryId string       `json:"original_entry_id"`
	EntryDate       string       `json:"entry_date"`
	Description     string       `json:"description"`
	Lines           []*EntryLine `json:"lines"`
}

type CorrectEntryResponse struct {
	Entry *Entry `json:"entry"`
}

type GetEntryRequest struct {
	EntryId string `json:"entry_id"`
}

type GetEntryResponse struct {
	Entry *Entry `json:"entry"`
}

type DeleteEntryRequest struct {
	EntryId string `json:"entry_id"`
}

type DeleteEntryResponse struct{}

type ListEntriesRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	// Corrections filters by the correction flag: "" (all),
	// "only", or "exclude".
	Corrections string `json:"corrections,omitempty"`
}

type ListEntriesResponse struct {
	Entries []*Entry `json:"entries"`
}
