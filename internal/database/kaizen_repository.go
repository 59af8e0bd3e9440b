package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// KaizenRepo provides data access for the kaizen backlog
type KaizenRepo struct {
	db *sql.DB
}

// Create adds a new backlog item with status open
func (r *KaizenRepo) Create(ctx context.Context, description string, impact, effort int, dueDate *time.Time, owner string) (*models.KaizenItem, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO kaizen_items (description, impact, effort, due_date, status, owner)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		description, impact, effort, dueDate, string(models.StatusOpen), owner,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single backlog item
func (r *KaizenRepo) GetByID(ctx context.Context, id int) (*models.KaizenItem, error) {
	k := &models.KaizenItem{}
	var status string
	var due sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, description, impact, effort, due_date, status, owner, created_at, updated_at
		 FROM kaizen_items WHERE id = ?`,
		id,
	).Scan(&k.ID, &k.Description, &k.Impact, &k.Effort, &due, &status, &k.Owner, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return nil, err
	}
	k.Status = models.KaizenStatus(status)
	k.DueDate = nullTimeToPtr(due)
	return k, nil
}

// GetAll retrieves the whole backlog in insertion order
func (r *KaizenRepo) GetAll(ctx context.Context) ([]*models.KaizenItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, impact, effort, due_date, status, owner, created_at, updated_at
		 FROM kaizen_items
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.KaizenItem
	for rows.Next() {
		k := &models.KaizenItem{}
		var status string
		var due sql.NullTime
		if err := rows.Scan(&k.ID, &k.Description, &k.Impact, &k.Effort, &due, &status, &k.Owner, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		k.Status = models.KaizenStatus(status)
		k.DueDate = nullTimeToPtr(due)
		items = append(items, k)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Update edits an item's fields in place
func (r *KaizenRepo) Update(ctx context.Context, id int, description string, impact, effort int, dueDate *time.Time, owner string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE kaizen_items
		 SET description = ?, impact = ?, effort = ?, due_date = ?, owner = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		description, impact, effort, dueDate, owner, id,
	)
	return err
}

// UpdateStatus changes an item's lifecycle status. Transition legality is
// enforced by the service layer, not here.
func (r *KaizenRepo) UpdateStatus(ctx context.Context, id int, status models.KaizenStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE kaizen_items
		 SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(status), id,
	)
	return err
}

// Delete removes an item from the backlog
func (r *KaizenRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM kaizen_items WHERE id = ?", id)
	return err
}
