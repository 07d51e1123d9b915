package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/munimapp/munim/internal/accounting"
	"github.com/munimapp/munim/internal/apperr"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

// CreateEntry persists the entry and all of its details in one
// transaction. The entry number comes from a counter row bumped inside
// the same transaction, so numbers stay unique and gapless under
// concurrent creates; the UNIQUE constraint on entry_number is the
// backstop.
func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *models.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	entry.EntryNumber, err = nextEntryNumber(ctx, tx, entry.IsCorrection)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO entries (id, entry_number, entry_date, description, total_amount, is_correction, original_entry_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.EntryNumber, formatDate(entry.EntryDate), entry.Description,
		entry.TotalAmount.StringFixed(2), boolToInt(entry.IsCorrection),
		nullable(entry.OriginalEntryID), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	for i := range entry.Details {
		detail := &entry.Details[i]
		if detail.ID == "" {
			detail.ID = uuid.New().String()
		}
		detail.EntryID = entry.ID

		_, err = tx.ExecContext(ctx,
			`INSERT INTO entry_details (id, entry_id, ledger_id, debit_amount, credit_amount, description)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			detail.ID, detail.EntryID, detail.LedgerID,
			detail.DebitAmount.StringFixed(2), detail.CreditAmount.StringFixed(2), detail.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// nextEntryNumber bumps the counter for the entry kind and formats the
// number. Corrections carry a distinguishing prefix.
func nextEntryNumber(ctx context.Context, tx *sql.Tx, correction bool) (string, error) {
	kind, prefix := "entry", "TXN"
	if correction {
		kind, prefix = "correction", "COR"
	}

	var seq int64
	err := tx.QueryRowContext(ctx,
		"UPDATE entry_counters SET value = value + 1 WHERE kind = ? RETURNING value", kind,
	).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("failed to advance entry counter: %w", err)
	}
	return fmt.Sprintf("%s-%06d", prefix, seq), nil
}

// GetEntry retrieves an entry with all of its details.
func (s *SQLiteStore) GetEntry(ctx context.Context, id string) (*models.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, entry_number, entry_date, description, total_amount, is_correction, original_entry_id, created_at
		 FROM entries WHERE id = ?`, id)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("entry", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	if err := s.loadDetails(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *SQLiteStore) loadDetails(ctx context.Context, entry *models.Entry) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, entry_id, ledger_id, debit_amount, credit_amount, description
		 FROM entry_details WHERE entry_id = ? ORDER BY rowid`, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to get entry details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.EntryDetail
		var debit, credit string
		if err := rows.Scan(&d.ID, &d.EntryID, &d.LedgerID, &debit, &credit, &d.Description); err != nil {
			return fmt.Errorf("failed to scan entry detail: %w", err)
		}
		if d.DebitAmount, err = parseAmount(debit); err != nil {
			return err
		}
		if d.CreditAmount, err = parseAmount(credit); err != nil {
			return err
		}
		entry.Details = append(entry.Details, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate entry details: %w", err)
	}
	return nil
}

// DeleteEntry removes an entry and its details in one transaction,
// details first to satisfy the foreign key. An entry that a correction
// still references is kept: the correction carries the audit trail and
// would dangle if its original disappeared.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var correction string
	err = tx.QueryRowContext(ctx,
		"SELECT entry_number FROM entries WHERE original_entry_id = ? ORDER BY entry_number LIMIT 1", id,
	).Scan(&correction)
	if err == nil {
		return apperr.Validation("entry %s is referenced by correction %s and cannot be deleted", id, correction)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check referencing corrections: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entry_details WHERE entry_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete entry details: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if err := requireRow(res, "entry", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListEntries returns entries (without details) matching the query,
// ordered by entry date then entry number.
func (s *SQLiteStore) ListEntries(ctx context.Context, q storage.EntryQuery) ([]models.Entry, error) {
	query := `SELECT id, entry_number, entry_date, description, total_amount, is_correction, original_entry_id, created_at
		 FROM entries`
	where, args := entryFilters(q)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY entry_date, entry_number"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

func entryFilters(q storage.EntryQuery) ([]string, []any) {
	var where []string
	var args []any
	if !q.From.IsZero() {
		where = append(where, "entry_date >= ?")
		args = append(args, formatDate(q.From))
	}
	if !q.To.IsZero() {
		where = append(where, "entry_date <= ?")
		args = append(args, formatDate(q.To))
	}
	if q.Corrections != nil {
		where = append(where, "is_correction = ?")
		args = append(args, boolToInt(*q.Corrections))
	}
	return where, args
}

// DetailRows returns entry lines joined with their owning entry and
// ledger, filtered and ordered for the reporting layer. Both ends of
// the date window are inclusive.
func (s *SQLiteStore) DetailRows(ctx context.Context, q storage.DetailQuery) ([]accounting.DetailRow, error) {
	query := `SELECT e.id, e.entry_number, e.entry_date, e.description, e.is_correction,
		 d.ledger_id, l.name, d.debit_amount, d.credit_amount, d.description
		 FROM entry_details d
		 JOIN entries e ON e.id = d.entry_id
		 JOIN ledgers l ON l.id = d.ledger_id`

	var where []string
	var args []any
	if !q.From.IsZero() {
		where = append(where, "e.entry_date >= ?")
		args = append(args, formatDate(q.From))
	}
	if !q.To.IsZero() {
		where = append(where, "e.entry_date <= ?")
		args = append(args, formatDate(q.To))
	}
	if q.LedgerID != "" {
		where = append(where, "d.ledger_id = ?")
		args = append(args, q.LedgerID)
	}
	if q.GroupID != "" {
		where = append(where, "l.group_id = ?")
		args = append(args, q.GroupID)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	switch q.Order {
	case storage.OrderByDate:
		query += " ORDER BY e.entry_date, e.entry_number, l.name"
	default:
		query += " ORDER BY l.name, e.entry_date, e.entry_number"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query detail rows: %w", err)
	}
	defer rows.Close()

	var details []accounting.DetailRow
	for rows.Next() {
		var r accounting.DetailRow
		var date, debit, credit string
		var correction int
		if err := rows.Scan(&r.EntryID, &r.EntryNumber, &date, &r.EntryDescription, &correction,
			&r.LedgerID, &r.LedgerName, &debit, &credit, &r.Description); err != nil {
			return nil, fmt.Errorf("failed to scan detail row: %w", err)
		}
		r.IsCorrection = correction == 1
		if r.EntryDate, err = parseDate(date); err != nil {
			return nil, err
		}
		if r.Debit, err = parseAmount(debit); err != nil {
			return nil, err
		}
		if r.Credit, err = parseAmount(credit); err != nil {
			return nil, err
		}
		details = append(details, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate detail rows: %w", err)
	}
	return details, nil
}

func scanEntry(scan func(dest ...any) error) (*models.Entry, error) {
	entry := &models.Entry{}
	var date, total string
	var correction int
	var original sql.NullString
	if err := scan(&entry.ID, &entry.EntryNumber, &date, &entry.Description, &total,
		&correction, &original, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.IsCorrection = correction == 1
	entry.OriginalEntryID = original.String

	var err error
	if entry.EntryDate, err = parseDate(date); err != nil {
		return nil, err
	}
	if entry.TotalAmount, err = parseAmount(total); err != nil {
		return nil, err
	}
	return entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
