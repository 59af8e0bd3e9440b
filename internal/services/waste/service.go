// Package waste implements the gemba waste observation log and its
// group-by-category aggregation.
package waste

import (
	"context"
	"fmt"

	"github.com/aretedriver/gemba/internal/database"
	"github.com/aretedriver/gemba/internal/models"
)

// Service defines all waste-log business operations
type Service interface {
	// Log validates and appends one observation. The category is the only
	// required field; the count defaults to 1.
	Log(ctx context.Context, req LogRequest) (*models.WasteObservation, error)

	// Observations returns the full log in insertion order
	Observations(ctx context.Context) ([]*models.WasteObservation, error)

	// Summary aggregates counts by category, optionally filtered by area
	// and/or shift. Rows come back descending by count, ties broken by
	// category name ascending.
	Summary(ctx context.Context, filter SummaryFilter) ([]*models.CategorySummary, error)

	// Import appends observations parsed from an external source (CSV),
	// preserving their original timestamps. Returns the number imported.
	Import(ctx context.Context, observations []*models.WasteObservation) (int, error)
}

// LogRequest encapsulates one gemba observation
type LogRequest struct {
	Area     string
	Shift    string
	Category string // parsed against the fixed seven-category set
	Count    int    // 0 means use the default of 1
	Note     string
}

// SummaryFilter narrows the aggregation to an area and/or shift.
// Empty fields match everything.
type SummaryFilter struct {
	Area  string
	Shift string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new waste-log service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) Log(ctx context.Context, req LogRequest) (*models.WasteObservation, error) {
	category, err := models.ParseWasteCategory(req.Category)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count == 0 {
		count = models.DefaultObservationCount
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}

	if len(req.Note) > models.MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	obs, err := s.repo.CreateWasteObservation(ctx, req.Area, req.Shift, category, count, req.Note)
	if err != nil {
		return nil, fmt.Errorf("failed to log waste observation: %w", err)
	}

	return obs, nil
}

func (s *service) Observations(ctx context.Context) ([]*models.WasteObservation, error) {
	observations, err := s.repo.GetWasteObservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load waste log: %w", err)
	}
	return observations, nil
}

func (s *service) Summary(ctx context.Context, filter SummaryFilter) ([]*models.CategorySummary, error) {
	summary, err := s.repo.GetWasteSummary(ctx, filter.Area, filter.Shift)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate waste log: %w", err)
	}
	return summary, nil
}

func (s *service) Import(ctx context.Context, observations []*models.WasteObservation) (int, error) {
	imported := 0
	for _, obs := range observations {
		if !obs.Category.IsValid() {
			return imported, models.ErrUnknownCategory
		}
		if obs.Count < 1 {
			return imported, ErrInvalidCount
		}
		if _, err := s.repo.ImportWasteObservation(ctx, obs); err != nil {
			return imported, fmt.Errorf("failed to import observation: %w", err)
		}
		imported++
	}
	return imported, nil
}
