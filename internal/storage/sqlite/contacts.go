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

// CreateContact inserts a new contact, generating its ID and timestamp.
func (s *SQLiteStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt == 0 {
		contact.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contacts (id, name, email, phone, address, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		contact.ID, contact.Name, contact.Email, contact.Phone, contact.Address, contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// GetContact retrieves a contact by ID.
func (s *SQLiteStore) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	contact := &models.Contact{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, address, created_at FROM contacts WHERE id = ?",
		id,
	).Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Address, &contact.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("contact", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// UpdateContact updates an existing contact.
func (s *SQLiteStore) UpdateContact(ctx context.Context, contact *models.Contact) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contacts SET name = ?, email = ?, phone = ?, address = ? WHERE id = ?",
		contact.Name, contact.Email, contact.Phone, contact.Address, contact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return requireRow(res, "contact", contact.ID)
}

// DeleteContact removes a contact by ID.
func (s *SQLiteStore) DeleteContact(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return requireRow(res, "contact", id)
}

// ListContacts returns contacts ordered by name, optionally filtered
// by a case-insensitive name substring.
func (s *SQLiteStore) ListContacts(ctx context.Context, nameQuery string) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, phone, address, created_at FROM contacts WHERE name LIKE ? ORDER BY name",
		"%"+nameQuery+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

// requireRow converts a zero-row write into a NotFoundError.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperr.NotFound(kind, id)
	}
	return nil
}
