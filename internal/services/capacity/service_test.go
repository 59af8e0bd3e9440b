package capacity

import (
	"errors"
	"testing"

	"github.com/aretedriver/gemba/internal/models"
)

func TestPlanComputesRoleCapacities(t *testing.T) {
	svc := NewService()

	plan, err := svc.Plan(PlanRequest{
		DailyGoal:      200,
		WorkingHours:   16,
		Installers:     24,
		InstallMinutes: 65,
		QAStaff:        8,
		ShuttleDrivers: 6,
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	// 24 installers * 960 min / 65 min per unit = 354 units/day
	if got := plan.Roles[0].UnitsPerDay; got != 354 {
		t.Errorf("install capacity = %d, want 354", got)
	}
	// 8 QA * 960 / 15 = 512
	if got := plan.Roles[1].UnitsPerDay; got != 512 {
		t.Errorf("QA capacity = %d, want 512", got)
	}
	// 6 drivers * 960 / 8 = 720
	if got := plan.Roles[2].UnitsPerDay; got != 720 {
		t.Errorf("shuttle capacity = %d, want 720", got)
	}

	if plan.Bottleneck != RoleInstall {
		t.Errorf("bottleneck = %s, want Install", plan.Bottleneck)
	}
	if plan.BottleneckUnits != 354 {
		t.Errorf("bottleneck units = %d, want 354", plan.BottleneckUnits)
	}
	if !plan.MeetsGoal() {
		t.Error("354 units/day should meet a goal of 200")
	}

	// takt to hit goal: 960 / 200 = 4.8 minutes per unit
	if plan.TaktMinutes != 4.8 {
		t.Errorf("TaktMinutes = %v, want 4.8", plan.TaktMinutes)
	}
}

func TestPlanComparePace(t *testing.T) {
	svc := NewService()

	plan, err := svc.Plan(PlanRequest{
		DailyGoal:      200,
		WorkingHours:   16,
		Installers:     24,
		InstallMinutes: 65,
		QAStaff:        8,
		ShuttleDrivers: 6,
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	// takt is 4.8; 24 installers bring the effective cycle to 65/24 ≈ 2.7
	if got := plan.ComparePace(65.0 / 24.0); got != models.PaceAhead {
		t.Errorf("ComparePace(2.7) = %s, want ahead", got)
	}
	if got := plan.ComparePace(6); got != models.PaceBehind {
		t.Errorf("ComparePace(6) = %s, want behind", got)
	}
	if got := plan.ComparePace(4.8); got != models.PaceOnTakt {
		t.Errorf("ComparePace(4.8) = %s, want on takt", got)
	}
}

func TestPlanRecommendsExtraHeadcount(t *testing.T) {
	svc := NewService()

	plan, err := svc.Plan(PlanRequest{
		DailyGoal:      400,
		WorkingHours:   16,
		Installers:     10,
		InstallMinutes: 60,
		QAStaff:        8,
		ShuttleDrivers: 6,
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	install := plan.Roles[0]
	// 10 * 960 / 60 = 160/day; deficit 240 units * 60 min = 14400 min,
	// 14400 / 960 = 15 more installers
	if install.UnitsPerDay != 160 {
		t.Errorf("install capacity = %d, want 160", install.UnitsPerDay)
	}
	if install.MeetsGoal() {
		t.Error("160 units/day should not meet a goal of 400")
	}
	if install.AdditionalNeeded != 15 {
		t.Errorf("additional installers = %d, want 15", install.AdditionalNeeded)
	}
	if plan.MeetsGoal() {
		t.Error("system bottlenecked below goal should not meet it")
	}

	// Roles already at or over goal recommend nobody
	qa := plan.Roles[1]
	if qa.AdditionalNeeded != 0 {
		t.Errorf("additional QA = %d, want 0", qa.AdditionalNeeded)
	}
}

func TestPlanDefaultsWorkingHours(t *testing.T) {
	svc := NewService()

	plan, err := svc.Plan(PlanRequest{
		DailyGoal:      100,
		Installers:     5,
		InstallMinutes: 48,
		QAStaff:        2,
		ShuttleDrivers: 2,
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if plan.WorkingHours != DefaultWorkingHours {
		t.Errorf("WorkingHours = %v, want %v", plan.WorkingHours, DefaultWorkingHours)
	}
}

func TestPlanValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     PlanRequest
		wantErr error
	}{
		{
			name:    "zero goal",
			req:     PlanRequest{DailyGoal: 0, InstallMinutes: 60},
			wantErr: ErrNonPositiveGoal,
		},
		{
			name:    "zero install minutes",
			req:     PlanRequest{DailyGoal: 100, InstallMinutes: 0},
			wantErr: ErrNonPositiveInstallTime,
		},
		{
			name:    "negative headcount",
			req:     PlanRequest{DailyGoal: 100, InstallMinutes: 60, Installers: -1},
			wantErr: ErrNegativeHeadcount,
		},
		{
			name:    "negative hours",
			req:     PlanRequest{DailyGoal: 100, WorkingHours: -8, InstallMinutes: 60},
			wantErr: ErrNonPositiveHours,
		},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Plan(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Plan error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
