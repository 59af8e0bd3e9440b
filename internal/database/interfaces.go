// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the services, the TUI, and the CLI. Keeping it an interface lets tests
// substitute fakes without a live database.
type DataStore interface {
	// Takt scenario history (append-only)
	CreateTaktScenario(ctx context.Context, name string, availableMinutes float64, demand int, taktMinutes float64, cycleMinutes *float64) (*models.TaktScenario, error)
	GetTaktHistory(ctx context.Context) ([]*models.TaktScenario, error)
	CountTaktScenarios(ctx context.Context) (int, error)

	// Waste observation log (append-only)
	CreateWasteObservation(ctx context.Context, area, shift string, category models.WasteCategory, count int, note string) (*models.WasteObservation, error)
	ImportWasteObservation(ctx context.Context, obs *models.WasteObservation) (*models.WasteObservation, error)
	GetWasteObservations(ctx context.Context) ([]*models.WasteObservation, error)
	GetWasteSummary(ctx context.Context, area, shift string) ([]*models.CategorySummary, error)

	// Kaizen backlog (mutable)
	CreateKaizenItem(ctx context.Context, description string, impact, effort int, dueDate *time.Time, owner string) (*models.KaizenItem, error)
	GetKaizenItems(ctx context.Context) ([]*models.KaizenItem, error)
	GetKaizenItemByID(ctx context.Context, id int) (*models.KaizenItem, error)
	UpdateKaizenItem(ctx context.Context, id int, description string, impact, effort int, dueDate *time.Time, owner string) error
	UpdateKaizenStatus(ctx context.Context, id int, status models.KaizenStatus) error
	DeleteKaizenItem(ctx context.Context, id int) error
}
