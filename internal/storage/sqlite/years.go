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

// CreateFinancialYear inserts a new financial year. Years are created
// inactive; use SetActiveFinancialYear to switch the active year.
func (s *SQLiteStore) CreateFinancialYear(ctx context.Context, year *models.FinancialYear) error {
	if year.ID == "" {
		year.ID = uuid.New().String()
	}
	if year.CreatedAt == 0 {
		year.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO financial_years (id, name, start_date, end_date, is_active, created_at) VALUES (?, ?, ?, ?, 0, ?)",
		year.ID, year.Name, formatDate(year.StartDate), formatDate(year.EndDate), year.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert financial year: %w", err)
	}
	year.IsActive = false
	return nil
}

// GetFinancialYear retrieves a financial year by ID.
func (s *SQLiteStore) GetFinancialYear(ctx context.Context, id string) (*models.FinancialYear, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, start_date, end_date, is_active, created_at FROM financial_years WHERE id = ?", id)

	year, err := scanFinancialYear(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("financial year", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get financial year: %w", err)
	}
	return year, nil
}

// UpdateFinancialYear updates a year's name and dates. The active flag
// is only changed through SetActiveFinancialYear.
func (s *SQLiteStore) UpdateFinancialYear(ctx context.Context, year *models.FinancialYear) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE financial_years SET name = ?, start_date = ?, end_date = ? WHERE id = ?",
		year.Name, formatDate(year.StartDate), formatDate(year.EndDate), year.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update financial year: %w", err)
	}
	return requireRow(res, "financial year", year.ID)
}

// DeleteFinancialYear removes a financial year by ID.
func (s *SQLiteStore) DeleteFinancialYear(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM financial_years WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete financial year: %w", err)
	}
	return requireRow(res, "financial year", id)
}

// ListFinancialYears returns all financial years, newest first.
func (s *SQLiteStore) ListFinancialYears(ctx context.Context) ([]models.FinancialYear, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, start_date, end_date, is_active, created_at FROM financial_years ORDER BY start_date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list financial years: %w", err)
	}
	defer rows.Close()

	var years []models.FinancialYear
	for rows.Next() {
		year, err := scanFinancialYear(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan financial year: %w", err)
		}
		years = append(years, *year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate financial years: %w", err)
	}
	return years, nil
}

// SetActiveFinancialYear makes the given year the only active one. The
// deactivate-all-then-activate sequence runs in one transaction, and a
// partial unique index on is_active backs it up under concurrency.
func (s *SQLiteStore) SetActiveFinancialYear(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE financial_years SET is_active = 0 WHERE is_active = 1"); err != nil {
		return fmt.Errorf("failed to deactivate financial years: %w", err)
	}

	res, err := tx.ExecContext(ctx, "UPDATE financial_years SET is_active = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to activate financial year: %w", err)
	}
	if err := requireRow(res, "financial year", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func scanFinancialYear(scan func(dest ...any) error) (*models.FinancialYear, error) {
	year := &models.FinancialYear{}
	var start, end string
	var active int
	if err := scan(&year.ID, &year.Name, &start, &end, &active, &year.CreatedAt); err != nil {
		return nil, err
	}
	year.IsActive = active == 1

	var err error
	if year.StartDate, err = parseDate(start); err != nil {
		return nil, err
	}
	if year.EndDate, err = parseDate(end); err != nil {
		return nil, err
	}
	return year, nil
}
