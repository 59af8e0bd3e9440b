package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaktRepo
	*WasteRepo
	*KaizenRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaktRepo:   &TaktRepo{db: db},
		WasteRepo:  &WasteRepo{db: db},
		KaizenRepo: &KaizenRepo{db: db},
	}
}

// Wrapper methods for TaktRepo to maintain a flat API
func (r *Repository) CreateTaktScenario(ctx context.Context, name string, availableMinutes float64, demand int, taktMinutes float64, cycleMinutes *float64) (*models.TaktScenario, error) {
	return r.TaktRepo.Create(ctx, name, availableMinutes, demand, taktMinutes, cycleMinutes)
}

func (r *Repository) GetTaktHistory(ctx context.Context) ([]*models.TaktScenario, error) {
	return r.TaktRepo.GetHistory(ctx)
}

func (r *Repository) CountTaktScenarios(ctx context.Context) (int, error) {
	return r.TaktRepo.CountScenarios(ctx)
}

// Wrapper methods for WasteRepo
func (r *Repository) CreateWasteObservation(ctx context.Context, area, shift string, category models.WasteCategory, count int, note string) (*models.WasteObservation, error) {
	return r.WasteRepo.Create(ctx, area, shift, category, count, note)
}

func (r *Repository) ImportWasteObservation(ctx context.Context, obs *models.WasteObservation) (*models.WasteObservation, error) {
	return r.WasteRepo.Import(ctx, obs)
}

func (r *Repository) GetWasteObservations(ctx context.Context) ([]*models.WasteObservation, error) {
	return r.WasteRepo.GetAll(ctx)
}

func (r *Repository) GetWasteSummary(ctx context.Context, area, shift string) ([]*models.CategorySummary, error) {
	return r.WasteRepo.GetSummary(ctx, area, shift)
}

// Wrapper methods for KaizenRepo
func (r *Repository) CreateKaizenItem(ctx context.Context, description string, impact, effort int, dueDate *time.Time, owner string) (*models.KaizenItem, error) {
	return r.KaizenRepo.Create(ctx, description, impact, effort, dueDate, owner)
}

func (r *Repository) GetKaizenItems(ctx context.Context) ([]*models.KaizenItem, error) {
	return r.KaizenRepo.GetAll(ctx)
}

func (r *Repository) GetKaizenItemByID(ctx context.Context, id int) (*models.KaizenItem, error) {
	return r.KaizenRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateKaizenItem(ctx context.Context, id int, description string, impact, effort int, dueDate *time.Time, owner string) error {
	return r.KaizenRepo.Update(ctx, id, description, impact, effort, dueDate, owner)
}

func (r *Repository) UpdateKaizenStatus(ctx context.Context, id int, status models.KaizenStatus) error {
	return r.KaizenRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) DeleteKaizenItem(ctx context.Context, id int) error {
	return r.KaizenRepo.Delete(ctx, id)
}
