// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/munimapp/munim/internal/accounting"
	"github.com/munimapp/munim/internal/models"
)

// DetailOrder selects the sort order for detail-row queries.
type DetailOrder int

const (
	// OrderByLedger sorts by ledger name, then entry date (ledger report).
	OrderByLedger DetailOrder = iota
	// OrderByDate sorts by entry date, then entry number (daybook).
	OrderByDate
)

// DetailQuery filters the detail rows returned for reports. Zero times
// leave that side of the window unbounded; empty ids skip that filter.
type DetailQuery struct {
	From     time.Time
	To       time.Time
	LedgerID string
	GroupID  string
	Order    DetailOrder
}

// EntryQuery filters entry listings. Corrections narrows by the
// is_correction flag when non-nil.
type EntryQuery struct {
	From        time.Time
	To          time.Time
	Corrections *bool
}

// Store defines the interface for bookkeeping storage operations. The
// abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// Contacts.
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContact(ctx context.Context, id string) (*models.Contact, error)
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, id string) error
	ListContacts(ctx context.Context, nameQuery string) ([]models.Contact, error)

	// Groups. Create/Update reject a parent assignment that would
	// close a cycle in the group tree.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id string) error
	ListGroups(ctx context.Context, nameQuery string) ([]models.Group, error)

	// Ledgers.
	CreateLedger(ctx context.Context, ledger *models.Ledger) error
	GetLedger(ctx context.Context, id string) (*models.Ledger, error)
	UpdateLedger(ctx context.Context, ledger *models.Ledger) error
	DeleteLedger(ctx context.Context, id string) error
	ListLedgers(ctx context.Context, nameQuery string) ([]models.Ledger, error)

	// Financial years. SetActiveFinancialYear deactivates every year
	// and activates the target inside one transaction, so at most one
	// year is ever active.
	CreateFinancialYear(ctx context.Context, year *models.FinancialYear) error
	GetFinancialYear(ctx context.Context, id string) (*models.FinancialYear, error)
	UpdateFinancialYear(ctx context.Context, year *models.FinancialYear) error
	DeleteFinancialYear(ctx context.Context, id string) error
	ListFinancialYears(ctx context.Context) ([]models.FinancialYear, error)
	SetActiveFinancialYear(ctx context.Context, id string) error

	// CreateEntry persists the entry and all its details atomically
	// and assigns the entry its unique entry number. Either every row
	// becomes visible or none do.
	CreateEntry(ctx context.Context, entry *models.Entry) error
	GetEntry(ctx context.Context, id string) (*models.Entry, error)
	// DeleteEntry removes the entry's details, then the entry, in one
	// transaction.
	DeleteEntry(ctx context.Context, id string) error
	ListEntries(ctx context.Context, q EntryQuery) ([]models.Entry, error)

	// DetailRows returns entry lines joined with their entry and
	// ledger for the aggregation layer. Date windows are inclusive on
	// both ends.
	DetailRows(ctx context.Context, q DetailQuery) ([]accounting.DetailRow, error)

	// Users.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
