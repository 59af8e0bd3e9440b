package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// WasteRepo provides data access for the waste observation log
type WasteRepo struct {
	db *sql.DB
}

// Create appends an observation to the log
func (r *WasteRepo) Create(ctx context.Context, area, shift string, category models.WasteCategory, count int, note string) (*models.WasteObservation, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO waste_observations (area, shift, category, count, note)
		 VALUES (?, ?, ?, ?, ?)`,
		area, shift, string(category), count, note,
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

// Import appends an observation with an explicit timestamp. Used by CSV
// import so round-tripped records keep their original creation time.
func (r *WasteRepo) Import(ctx context.Context, obs *models.WasteObservation) (*models.WasteObservation, error) {
	createdAt := obs.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO waste_observations (area, shift, category, count, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		obs.Area, obs.Shift, string(obs.Category), obs.Count, obs.Note, createdAt,
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

// GetByID retrieves a single observation
func (r *WasteRepo) GetByID(ctx context.Context, id int) (*models.WasteObservation, error) {
	o := &models.WasteObservation{}
	var category string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, area, shift, category, count, note, created_at
		 FROM waste_observations WHERE id = ?`,
		id,
	).Scan(&o.ID, &o.Area, &o.Shift, &category, &o.Count, &o.Note, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Category = models.WasteCategory(category)
	return o, nil
}

// GetAll retrieves all observations in insertion order
func (r *WasteRepo) GetAll(ctx context.Context) ([]*models.WasteObservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, area, shift, category, count, note, created_at
		 FROM waste_observations
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []*models.WasteObservation
	for rows.Next() {
		o := &models.WasteObservation{}
		var category string
		if err := rows.Scan(&o.ID, &o.Area, &o.Shift, &category, &o.Count, &o.Note, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Category = models.WasteCategory(category)
		observations = append(observations, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return observations, nil
}

// GetSummary aggregates observation counts by category, optionally filtered
// by area and/or shift. Output is ordered descending by count with ties
// broken by category name ascending, so chart and test output is stable.
func (r *WasteRepo) GetSummary(ctx context.Context, area, shift string) ([]*models.CategorySummary, error) {
	query := `SELECT category, SUM(count) AS total
		 FROM waste_observations`
	var args []any
	var conds []string
	if area != "" {
		conds = append(conds, "area = ?")
		args = append(args, area)
	}
	if shift != "" {
		conds = append(conds, "shift = ?")
		args = append(args, shift)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` GROUP BY category
		 ORDER BY total DESC, category ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summary []*models.CategorySummary
	for rows.Next() {
		row := &models.CategorySummary{}
		var category string
		if err := rows.Scan(&category, &row.Count); err != nil {
			return nil, err
		}
		row.Category = models.WasteCategory(category)
		summary = append(summary, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
