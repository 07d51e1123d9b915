// Package events publishes audit events for entry lifecycle changes.
// Publishing is best-effort: a failed publish is logged by the caller
// and never fails the originating request.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EntryPosted is emitted after an entry and its details commit. Actor
// is the email of the authenticated caller, empty when unknown.
type EntryPosted struct {
	EntryID      string          `json:"entry_id"`
	EntryNumber  string          `json:"entry_number"`
	EntryDate    string          `json:"entry_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	IsCorrection bool            `json:"is_correction"`
	Lines        int             `json:"lines"`
	Actor        string          `json:"actor,omitempty"`
	PostedAt     time.Time       `json:"posted_at"`
}

// EntryDeleted is emitted after an entry and its details are removed.
type EntryDeleted struct {
	EntryID     string    `json:"entry_id"`
	EntryNumber string    `json:"entry_number"`
	Actor       string    `json:"actor,omitempty"`
	DeletedAt   time.Time `json:"deleted_at"`
}

// Publisher sends audit events to an external sink.
type Publisher interface {
	Publish(ctx context.Context, event any) error
	Close() error
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event any) error { return nil }
func (NoopPublisher) Close() error                                 { return nil }
