package state

import (
	capacityservice "github.com/aretedriver/gemba/internal/services/capacity"

	"github.com/aretedriver/gemba/internal/models"
)

// AppState holds the session data shown on the dashboard. The store is the
// source of truth; these slices are reloaded after every mutation.
type AppState struct {
	scenarios    []*models.TaktScenario
	observations []*models.WasteObservation
	summary      []*models.CategorySummary
	backlog      []*models.KaizenItem

	// plan is the last computed capacity plan, nil until one is run.
	// Plans are pure calculations and never persisted.
	plan *capacityservice.Plan
}

// NewAppState creates an empty AppState
func NewAppState() *AppState {
	return &AppState{}
}

// Scenarios returns the takt history in insertion order
func (s *AppState) Scenarios() []*models.TaktScenario {
	return s.scenarios
}

// SetScenarios replaces the takt history
func (s *AppState) SetScenarios(scenarios []*models.TaktScenario) {
	s.scenarios = scenarios
}

// Observations returns the waste log in insertion order
func (s *AppState) Observations() []*models.WasteObservation {
	return s.observations
}

// SetObservations replaces the waste log
func (s *AppState) SetObservations(observations []*models.WasteObservation) {
	s.observations = observations
}

// Summary returns the waste aggregation rows, descending by count
func (s *AppState) Summary() []*models.CategorySummary {
	return s.summary
}

// SetSummary replaces the waste aggregation rows
func (s *AppState) SetSummary(summary []*models.CategorySummary) {
	s.summary = summary
}

// Backlog returns the kaizen backlog in insertion order
func (s *AppState) Backlog() []*models.KaizenItem {
	return s.backlog
}

// SetBacklog replaces the kaizen backlog
func (s *AppState) SetBacklog(backlog []*models.KaizenItem) {
	s.backlog = backlog
}

// Plan returns the last computed capacity plan, nil when none was run
func (s *AppState) Plan() *capacityservice.Plan {
	return s.plan
}

// SetPlan stores a freshly computed capacity plan
func (s *AppState) SetPlan(plan *capacityservice.Plan) {
	s.plan = plan
}
