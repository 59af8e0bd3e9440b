package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWasteCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WasteCategory
		wantErr error
	}{
		{name: "exact match", input: "Waiting", want: WasteWaiting},
		{name: "case insensitive", input: "waiting", want: WasteWaiting},
		{name: "upper case", input: "DEFECTS", want: WasteDefects},
		{name: "empty", input: "", wantErr: ErrEmptyCategory},
		{name: "unknown", input: "Rework", wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWasteCategory(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllWasteCategoriesIsComplete(t *testing.T) {
	cats := AllWasteCategories()
	assert.Len(t, cats, 7)
	for _, c := range cats {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
}

func TestKaizenLeverage(t *testing.T) {
	item := &KaizenItem{Impact: 4, Effort: 1}
	assert.Equal(t, 4.0, item.Leverage())
	assert.True(t, item.IsQuickWin())

	grind := &KaizenItem{Impact: 2, Effort: 5}
	assert.InDelta(t, 0.4, grind.Leverage(), 1e-9)
	assert.False(t, grind.IsQuickWin())

	// exactly at threshold counts as a quick win
	edge := &KaizenItem{Impact: 4, Effort: 2}
	assert.True(t, edge.IsQuickWin())
}

func TestKaizenStatusTransitions(t *testing.T) {
	assert.True(t, StatusOpen.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusOpen.CanTransitionTo(StatusDone))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusDone))

	assert.False(t, StatusInProgress.CanTransitionTo(StatusOpen))
	assert.False(t, StatusDone.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusDone.CanTransitionTo(StatusOpen))
	assert.False(t, StatusOpen.CanTransitionTo(StatusOpen))
}

func TestKaizenStatusNext(t *testing.T) {
	next, err := StatusOpen.Next()
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, next)

	next, err = StatusInProgress.Next()
	assert.NoError(t, err)
	assert.Equal(t, StatusDone, next)

	_, err = StatusDone.Next()
	assert.ErrorIs(t, err, ErrAlreadyDone)
}

func TestTaktPace(t *testing.T) {
	cycle := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		scenario TaktScenario
		want     Pace
	}{
		{name: "no cycle time", scenario: TaktScenario{TaktMinutes: 4}, want: PaceUnknown},
		{name: "ahead", scenario: TaktScenario{TaktMinutes: 4, CycleMinutes: cycle(3.5)}, want: PaceAhead},
		{name: "behind", scenario: TaktScenario{TaktMinutes: 4, CycleMinutes: cycle(5)}, want: PaceBehind},
		{name: "on takt", scenario: TaktScenario{TaktMinutes: 4, CycleMinutes: cycle(4)}, want: PaceOnTakt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scenario.Pace())
		})
	}
}
