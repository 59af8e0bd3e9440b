package models

import "time"

// TaktScenario represents a single takt-time calculation.
// Scenarios are immutable once created: the history is append-only
// and ordered by insertion.
type TaktScenario struct {
	ID               int
	Name             string
	AvailableMinutes float64
	Demand           int
	TaktMinutes      float64
	CycleMinutes     *float64 // observed cycle time, nil when not recorded
	CreatedAt        time.Time
}

// Pace describes how observed cycle time compares to takt time
type Pace string

const (
	PaceUnknown Pace = "unknown"
	PaceAhead   Pace = "ahead"
	PaceOnTakt  Pace = "on takt"
	PaceBehind  Pace = "behind"
)

// Pace compares the observed cycle time against the computed takt time.
// Returns PaceUnknown when no cycle time was recorded.
func (s *TaktScenario) Pace() Pace {
	if s.CycleMinutes == nil {
		return PaceUnknown
	}
	switch {
	case *s.CycleMinutes < s.TaktMinutes:
		return PaceAhead
	case *s.CycleMinutes > s.TaktMinutes:
		return PaceBehind
	default:
		return PaceOnTakt
	}
}
