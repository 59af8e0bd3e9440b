// Package takt implements the takt-time calculator: available production
// time divided by demand gives the pace needed to match output to demand.
package takt

import (
	"context"
	"fmt"

	"github.com/aretedriver/gemba/internal/database"
	"github.com/aretedriver/gemba/internal/models"
)

// Service defines all takt-related business operations
type Service interface {
	// Calculate validates the request, computes takt time, and appends the
	// scenario to the session history. Nothing is appended on validation
	// failure.
	Calculate(ctx context.Context, req CalculateRequest) (*models.TaktScenario, error)

	// History returns all recorded scenarios in insertion order
	History(ctx context.Context) ([]*models.TaktScenario, error)
}

// CalculateRequest encapsulates all data needed for one takt calculation
type CalculateRequest struct {
	Name             string
	AvailableMinutes float64
	Demand           int
	CycleMinutes     *float64 // optional observed cycle time
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new takt service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) Calculate(ctx context.Context, req CalculateRequest) (*models.TaktScenario, error) {
	if req.AvailableMinutes <= 0 {
		return nil, ErrNonPositiveAvailable
	}
	if req.Demand <= 0 {
		return nil, ErrNonPositiveDemand
	}
	if req.CycleMinutes != nil && *req.CycleMinutes <= 0 {
		return nil, ErrNonPositiveCycle
	}

	taktMinutes := req.AvailableMinutes / float64(req.Demand)

	scenario, err := s.repo.CreateTaktScenario(ctx, req.Name, req.AvailableMinutes, req.Demand, taktMinutes, req.CycleMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to record takt scenario: %w", err)
	}

	return scenario, nil
}

func (s *service) History(ctx context.Context) ([]*models.TaktScenario, error) {
	history, err := s.repo.GetTaktHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load takt history: %w", err)
	}
	return history, nil
}
