// Package capacity implements the yard staffing planner: per-role daily
// capacity, the system bottleneck, and staffing recommendations against a
// throughput goal. All calculations are pure; nothing is persisted.
package capacity

import (
	"math"

	"github.com/aretedriver/gemba/internal/models"
)

// Minutes per unit for the fixed-pace roles
const (
	QAMinutesPerUnit      = 15.0
	ShuttleMinutesPerUnit = 8.0
)

// DefaultWorkingHours covers two shifts
const DefaultWorkingHours = 16.0

// Role names used in plan output
const (
	RoleInstall = "Install"
	RoleQA      = "QA"
	RoleShuttle = "Shuttle"
)

// PlanRequest describes the staffing and goal for one planning day
type PlanRequest struct {
	DailyGoal      int     // target units per day
	WorkingHours   float64 // 0 means use DefaultWorkingHours
	Installers     int
	InstallMinutes float64 // average install minutes per unit
	QAStaff        int
	ShuttleDrivers int
}

// RoleCapacity is one role's share of the daily plan
type RoleCapacity struct {
	Role             string
	Headcount        int
	MinutesPerUnit   float64
	UnitsPerDay      int
	SurplusVsGoal    int // negative when the role cannot meet the goal
	AdditionalNeeded int // extra headcount required to close the gap
}

// MeetsGoal reports whether this role alone can keep pace with the goal
func (r RoleCapacity) MeetsGoal() bool {
	return r.SurplusVsGoal >= 0
}

// Plan is the computed daily production plan
type Plan struct {
	DailyGoal       int
	WorkingHours    float64
	Roles           []RoleCapacity // Install, QA, Shuttle in fixed order
	Bottleneck      string         // role limiting the system
	BottleneckUnits int            // min of the role capacities
	TaktMinutes     float64        // working minutes / goal, the pace to hit
}

// MeetsGoal reports whether the whole system can keep pace with the goal
func (p *Plan) MeetsGoal() bool {
	return p.BottleneckUnits >= p.DailyGoal
}

// Service defines the capacity planning operations
type Service interface {
	Plan(req PlanRequest) (*Plan, error)
}

// service implements Service interface
type service struct{}

// NewService creates a new capacity planning service
func NewService() Service {
	return &service{}
}

func (s *service) Plan(req PlanRequest) (*Plan, error) {
	if req.DailyGoal <= 0 {
		return nil, ErrNonPositiveGoal
	}
	if req.WorkingHours == 0 {
		req.WorkingHours = DefaultWorkingHours
	}
	if req.WorkingHours < 0 {
		return nil, ErrNonPositiveHours
	}
	if req.InstallMinutes <= 0 {
		return nil, ErrNonPositiveInstallTime
	}
	if req.Installers < 0 || req.QAStaff < 0 || req.ShuttleDrivers < 0 {
		return nil, ErrNegativeHeadcount
	}

	workingMinutes := req.WorkingHours * 60

	roles := []RoleCapacity{
		roleCapacity(RoleInstall, req.Installers, req.InstallMinutes, workingMinutes, req.DailyGoal),
		roleCapacity(RoleQA, req.QAStaff, QAMinutesPerUnit, workingMinutes, req.DailyGoal),
		roleCapacity(RoleShuttle, req.ShuttleDrivers, ShuttleMinutesPerUnit, workingMinutes, req.DailyGoal),
	}

	bottleneck := roles[0]
	for _, r := range roles[1:] {
		if r.UnitsPerDay < bottleneck.UnitsPerDay {
			bottleneck = r
		}
	}

	return &Plan{
		DailyGoal:       req.DailyGoal,
		WorkingHours:    req.WorkingHours,
		Roles:           roles,
		Bottleneck:      bottleneck.Role,
		BottleneckUnits: bottleneck.UnitsPerDay,
		TaktMinutes:     workingMinutes / float64(req.DailyGoal),
	}, nil
}

// roleCapacity computes one role's daily throughput and the extra headcount
// needed to hit the goal: capacity = headcount * working_minutes / minutes_per_unit
func roleCapacity(role string, headcount int, minutesPerUnit, workingMinutes float64, goal int) RoleCapacity {
	unitsPerDay := int(float64(headcount) * workingMinutes / minutesPerUnit)

	additional := 0
	if unitsPerDay < goal {
		deficit := float64(goal - unitsPerDay)
		additional = int(math.Ceil(deficit * minutesPerUnit / workingMinutes))
	}

	return RoleCapacity{
		Role:             role,
		Headcount:        headcount,
		MinutesPerUnit:   minutesPerUnit,
		UnitsPerDay:      unitsPerDay,
		SurplusVsGoal:    unitsPerDay - goal,
		AdditionalNeeded: additional,
	}
}

// ComparePace classifies the planned takt against an observed cycle time,
// reusing the takt-calculator verdict semantics.
func (p *Plan) ComparePace(cycleMinutes float64) models.Pace {
	switch {
	case cycleMinutes < p.TaktMinutes:
		return models.PaceAhead
	case cycleMinutes > p.TaktMinutes:
		return models.PaceBehind
	default:
		return models.PaceOnTakt
	}
}
