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

// maxGroupDepth bounds the parent-chain walk in the cycle check.
const maxGroupDepth = 64

// CreateGroup inserts a new group, generating its ID and timestamp.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	if err := s.checkGroupParent(ctx, group.ID, group.ParentGroupID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (id, name, parent_group_id, created_at) VALUES (?, ?, ?, ?)",
		group.ID, group.Name, nullable(group.ParentGroupID), group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	group := &models.Group{}
	var parent sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, parent_group_id, created_at FROM groups WHERE id = ?",
		id,
	).Scan(&group.ID, &group.Name, &parent, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("group", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	group.ParentGroupID = parent.String
	return group, nil
}

// UpdateGroup updates an existing group.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	if err := s.checkGroupParent(ctx, group.ID, group.ParentGroupID); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, parent_group_id = ? WHERE id = ?",
		group.Name, nullable(group.ParentGroupID), group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireRow(res, "group", group.ID)
}

// DeleteGroup removes a group by ID.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return requireRow(res, "group", id)
}

// ListGroups returns groups ordered by name, optionally filtered by a
// case-insensitive name substring.
func (s *SQLiteStore) ListGroups(ctx context.Context, nameQuery string) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, parent_group_id, created_at FROM groups WHERE name LIKE ? ORDER BY name",
		"%"+nameQuery+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		var parent sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &parent, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		g.ParentGroupID = parent.String
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// checkGroupParent verifies the parent exists and that assigning it
// would not close a cycle, walking the parent chain to a depth bound.
func (s *SQLiteStore) checkGroupParent(ctx context.Context, groupID, parentID string) error {
	if parentID == "" {
		return nil
	}
	if parentID == groupID {
		return apperr.Validation("group cannot be its own parent")
	}

	current := parentID
	for depth := 0; depth < maxGroupDepth && current != ""; depth++ {
		var next sql.NullString
		err := s.db.QueryRowContext(ctx,
			"SELECT parent_group_id FROM groups WHERE id = ?", current,
		).Scan(&next)
		if err == sql.ErrNoRows {
			if current == parentID {
				return apperr.NotFound("group", parentID)
			}
			return nil // broken chain, but no cycle through us
		}
		if err != nil {
			return fmt.Errorf("failed to walk group parents: %w", err)
		}
		if next.String == groupID {
			return apperr.Validation("group parent %s would create a cycle", parentID)
		}
		current = next.String
	}
	return nil
}

// nullable maps an empty string to NULL for optional foreign keys.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
