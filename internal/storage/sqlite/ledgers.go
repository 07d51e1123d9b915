package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/munimapp/munim/internal/apperr"
	"github.com/munimapp/munim/internal/models"
)

// CreateLedger inserts a new ledger, generating its ID and timestamp.
// The opening balance is stored in its exact decimal form.
func (s *SQLiteStore) CreateLedger(ctx context.Context, ledger *models.Ledger) error {
	if ledger.ID == "" {
		ledger.ID = uuid.New().String()
	}
	if ledger.CreatedAt == 0 {
		ledger.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledgers (id, name, group_id, contact_id, opening_balance, opening_balance_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ledger.ID, ledger.Name, ledger.GroupID, nullable(ledger.ContactID),
		ledger.OpeningBalance.StringFixed(2), string(ledger.OpeningBalanceType), ledger.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger: %w", err)
	}
	return nil
}

// GetLedger retrieves a ledger by ID.
func (s *SQLiteStore) GetLedger(ctx context.Context, id string) (*models.Ledger, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, group_id, contact_id, opening_balance, opening_balance_type, created_at
		 FROM ledgers WHERE id = ?`, id)

	ledger, err := scanLedger(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("ledger", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return ledger, nil
}

// UpdateLedger updates an existing ledger. The opening balance type
// can change here, which redefines the ledger's sign convention for
// all later balance math.
func (s *SQLiteStore) UpdateLedger(ctx context.Context, ledger *models.Ledger) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE ledgers SET name = ?, group_id = ?, contact_id = ?, opening_balance = ?, opening_balance_type = ?
		 WHERE id = ?`,
		ledger.Name, ledger.GroupID, nullable(ledger.ContactID),
		ledger.OpeningBalance.StringFixed(2), string(ledger.OpeningBalanceType), ledger.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger: %w", err)
	}
	return requireRow(res, "ledger", ledger.ID)
}

// DeleteLedger removes a ledger by ID. Ledgers referenced by entry
// details are protected by the foreign key and cannot be deleted.
func (s *SQLiteStore) DeleteLedger(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM ledgers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger: %w", err)
	}
	return requireRow(res, "ledger", id)
}

// ListLedgers returns ledgers ordered by name, optionally filtered by
// a case-insensitive name substring.
func (s *SQLiteStore) ListLedgers(ctx context.Context, nameQuery string) ([]models.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, group_id, contact_id, opening_balance, opening_balance_type, created_at
		 FROM ledgers WHERE name LIKE ? ORDER BY name`,
		"%"+nameQuery+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []models.Ledger
	for rows.Next() {
		ledger, err := scanLedger(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, *ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledgers: %w", err)
	}
	return ledgers, nil
}

func scanLedger(scan func(dest ...any) error) (*models.Ledger, error) {
	ledger := &models.Ledger{}
	var contact sql.NullString
	var opening, openingType string
	if err := scan(&ledger.ID, &ledger.Name, &ledger.GroupID, &contact, &opening, &openingType, &ledger.CreatedAt); err != nil {
		return nil, err
	}
	ledger.ContactID = contact.String
	ledger.OpeningBalanceType = models.BalanceType(openingType)

	amount, err := parseAmount(opening)
	if err != nil {
		return nil, err
	}
	ledger.OpeningBalance = amount
	return ledger, nil
}
