package database

import (
	"context"
	"database/sql"

	"github.com/aretedriver/gemba/internal/models"
)

// TaktRepo provides data access for takt scenario history
type TaktRepo struct {
	db *sql.DB
}

// Create appends a scenario to the takt history and returns it with its
// assigned ID and timestamp. Scenarios are never updated afterwards.
func (r *TaktRepo) Create(ctx context.Context, name string, availableMinutes float64, demand int, taktMinutes float64, cycleMinutes *float64) (*models.TaktScenario, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO takt_scenarios (name, available_minutes, demand, takt_minutes, cycle_minutes)
		 VALUES (?, ?, ?, ?, ?)`,
		name, availableMinutes, demand, taktMinutes, cycleMinutes,
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

// GetByID retrieves a single scenario
func (r *TaktRepo) GetByID(ctx context.Context, id int) (*models.TaktScenario, error) {
	s := &models.TaktScenario{}
	var cycle sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, available_minutes, demand, takt_minutes, cycle_minutes, created_at
		 FROM takt_scenarios WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.Name, &s.AvailableMinutes, &s.Demand, &s.TaktMinutes, &cycle, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.CycleMinutes = nullFloat64ToPtr(cycle)
	return s, nil
}

// GetHistory retrieves all scenarios in insertion order
func (r *TaktRepo) GetHistory(ctx context.Context) ([]*models.TaktScenario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, available_minutes, demand, takt_minutes, cycle_minutes, created_at
		 FROM takt_scenarios
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*models.TaktScenario
	for rows.Next() {
		s := &models.TaktScenario{}
		var cycle sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.Name, &s.AvailableMinutes, &s.Demand, &s.TaktMinutes, &cycle, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.CycleMinutes = nullFloat64ToPtr(cycle)
		history = append(history, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// CountScenarios returns the number of scenarios in the history
func (r *TaktRepo) CountScenarios(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM takt_scenarios").Scan(&count)
	return count, err
}
