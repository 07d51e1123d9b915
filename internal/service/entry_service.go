package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/internal/accounting"
	"github.com/munimapp/munim/internal/apperr"
	"github.com/munimapp/munim/internal/events"
	"github.com/munimapp/munim/internal/middleware"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/pkg/rpc"
)

// EntryService implements the EntryService RPC interface. Entries are
// immutable: creation validates and writes atomically, mistakes are
// amended with correction entries, and there is no update operation.
type EntryService struct {
	store     storage.Store
	publisher events.Publisher
	logger    *slog.Logger
}

// NewEntryService creates a new entry service.
func NewEntryService(store storage.Store, publisher events.Publisher, logger *slog.Logger) *EntryService {
	return &EntryService{store: store, publisher: publisher, logger: logger}
}

// CreateEntry validates and posts a new transaction entry.
func (s *EntryService) CreateEntry(ctx context.Context, req *connect.Request[rpc.CreateEntryRequest]) (*connect.Response[rpc.CreateEntryResponse], error) {
	entry, err := s.postEntry(ctx, req.Msg.EntryDate, req.Msg.Description, req.Msg.Lines, "")
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.CreateEntryResponse{Entry: toRPCEntry(entry)}), nil
}

// CorrectEntry posts a correction entry referencing an existing entry.
// The original entry is left untouched.
func (s *EntryService) CorrectEntry(ctx context.Context, req *connect.Request[rpc.CorrectEntryRequest]) (*connect.Response[rpc.CorrectEntryResponse], error) {
	if req.Msg.OriginalEntryId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("original entry id is required"))
	}
	if _, err := s.store.GetEntry(ctx, req.Msg.OriginalEntryId); err != nil {
		return nil, asConnectError(err)
	}

	entry, err := s.postEntry(ctx, req.Msg.EntryDate, req.Msg.Description, req.Msg.Lines, req.Msg.OriginalEntryId)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.CorrectEntryResponse{Entry: toRPCEntry(entry)}), nil
}

// postEntry is the shared path for normal and correction entries:
// validate the lines against the ledger master, derive the total, and
// persist atomically. originalEntryID is empty for normal entries.
func (s *EntryService) postEntry(ctx context.Context, entryDate, description string, wireLines []*rpc.EntryLine, originalEntryID string) (*models.Entry, error) {
	date, err := parseDate("entry_date", entryDate)
	if err != nil {
		return nil, err
	}

	lines := make([]accounting.Line, 0, len(wireLines))
	for _, l := range wireLines {
		lines = append(lines, accounting.Line{
			LedgerID:    l.LedgerId,
			Debit:       l.DebitAmount,
			Credit:      l.CreditAmount,
			Description: l.Description,
		})
	}

	ledgers, err := s.store.ListLedgers(ctx, "")
	if err != nil {
		return nil, asConnectError(err)
	}
	known := make(accounting.LedgerSet, len(ledgers))
	for _, l := range ledgers {
		known[l.ID] = true
	}

	if err := accounting.ValidateLines(lines, known); err != nil {
		s.logger.Warn("Entry rejected", "error", err)
		return nil, asConnectError(err)
	}

	entry := &models.Entry{
		EntryDate:       date,
		Description:     description,
		TotalAmount:     accounting.Total(lines),
		IsCorrection:    originalEntryID != "",
		OriginalEntryID: originalEntryID,
	}
	for _, l := range lines {
		entry.Details = append(entry.Details, models.EntryDetail{
			LedgerID:     l.LedgerID,
			DebitAmount:  l.Debit,
			CreditAmount: l.Credit,
			Description:  l.Description,
		})
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		s.logger.Error("Failed to create entry", "error", err)
		return nil, asConnectError(err)
	}

	s.publish(ctx, events.EntryPosted{
		EntryID:      entry.ID,
		EntryNumber:  entry.EntryNumber,
		EntryDate:    entry.EntryDate.Format(rpc.DateLayout),
		TotalAmount:  entry.TotalAmount,
		IsCorrection: entry.IsCorrection,
		Lines:        len(entry.Details),
		Actor:        middleware.GetEmail(ctx),
		PostedAt:     time.Now().UTC(),
	})

	s.logger.Info("Entry posted",
		"entry_id", entry.ID,
		"entry_number", entry.EntryNumber,
		"total", entry.TotalAmount.StringFixed(2),
		"is_correction", entry.IsCorrection)
	return entry, nil
}

// GetEntry retrieves an entry with its detail lines.
func (s *EntryService) GetEntry(ctx context.Context, req *connect.Request[rpc.GetEntryRequest]) (*connect.Response[rpc.GetEntryResponse], error) {
	entry, err := s.store.GetEntry(ctx, req.Msg.EntryId)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&rpc.GetEntryResponse{Entry: toRPCEntry(entry)}), nil
}

// DeleteEntry removes an entry and its details.
func (s *EntryService) DeleteEntry(ctx context.Context, req *connect.Request[rpc.DeleteEntryRequest]) (*connect.Response[rpc.DeleteEntryResponse], error) {
	entry, err := s.store.GetEntry(ctx, req.Msg.EntryId)
	if err != nil {
		return nil, asConnectError(err)
	}
	if err := s.store.DeleteEntry(ctx, req.Msg.EntryId); err != nil {
		return nil, asConnectError(err)
	}

	s.publish(ctx, events.EntryDeleted{
		EntryID:     entry.ID,
		EntryNumber: entry.EntryNumber,
		Actor:       middleware.GetEmail(ctx),
		DeletedAt:   time.Now().UTC(),
	})

	s.logger.Info("Entry deleted", "entry_id", entry.ID, "entry_number", entry.EntryNumber)
	return connect.NewResponse(&rpc.DeleteEntryResponse{}), nil
}

// ListEntries lists entries, optionally filtered by date window and
// correction flag.
func (s *EntryService) ListEntries(ctx context.Context, req *connect.Request[rpc.ListEntriesRequest]) (*connect.Response[rpc.ListEntriesResponse], error) {
	from, err := parseOptionalDate("start_date", req.Msg.StartDate)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate("end_date", req.Msg.EndDate)
	if err != nil {
		return nil, err
	}

	q := storage.EntryQuery{From: from, To: to}
	switch req.Msg.Corrections {
	case "":
	case "only":
		only := true
		q.Corrections = &only
	case "exclude":
		exclude := false
		q.Corrections = &exclude
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument,
			apperr.Validation("corrections filter %q must be \"only\" or \"exclude\"", req.Msg.Corrections))
	}

	entries, err := s.store.ListEntries(ctx, q)
	if err != nil {
		return nil, asConnectError(err)
	}

	out := make([]*rpc.Entry, 0, len(entries))
	for i := range entries {
		out = append(out, toRPCEntry(&entries[i]))
	}
	return connect.NewResponse(&rpc.ListEntriesResponse{Entries: out}), nil
}

// publish sends an audit event. Publishing is best-effort: failures
// are logged and never fail the request, since the entry has already
// committed.
func (s *EntryService) publish(ctx context.Context, event any) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish audit event", "error", err)
	}
}

func toRPCEntry(e *models.Entry) *rpc.Entry {
	out := &rpc.Entry{
		Id:              e.ID,
		EntryNumber:     e.EntryNumber,
		EntryDate:       e.EntryDate.Format(rpc.DateLayout),
		Description:     e.Description,
		TotalAmount:     e.TotalAmount,
		IsCorrection:    e.IsCorrection,
		OriginalEntryId: e.OriginalEntryID,
		CreatedAt:       e.CreatedAt,
	}
	for _, d := range e.Details {
		out.Details = append(out.Details, &rpc.EntryDetail{
			Id:           d.ID,
			LedgerId:     d.LedgerID,
			DebitAmount:  d.DebitAmount,
			CreditAmount: d.CreditAmount,
			Description:  d.Description,
		})
	}
	return out
}
