package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the session-store schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Takt scenario history: append-only, never updated
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS takt_scenarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			available_minutes REAL NOT NULL,
			demand INTEGER NOT NULL,
			takt_minutes REAL NOT NULL,
			cycle_minutes REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Waste log: append-only gemba observations
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS waste_observations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			area TEXT NOT NULL DEFAULT '',
			shift TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 1,
			note TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Kaizen backlog: mutable, deletable
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kaizen_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			impact INTEGER NOT NULL,
			effort INTEGER NOT NULL,
			due_date DATETIME,
			status TEXT NOT NULL DEFAULT 'open',
			owner TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Index for the group-by-category aggregation
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_waste_category
		ON waste_observations(category)
	`)
	if err != nil {
		return err
	}

	return nil
}
