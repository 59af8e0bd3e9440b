package state

import "testing"

func TestTabCycling(t *testing.T) {
	s := NewUIState()

	if s.ActiveTab() != TabTakt {
		t.Errorf("initial tab = %v, want TabTakt", s.ActiveTab())
	}

	// Forward through all tabs wraps back to the first
	for i := 0; i < int(tabCount); i++ {
		s.NextTab()
	}
	if s.ActiveTab() != TabTakt {
		t.Errorf("tab after full forward cycle = %v, want TabTakt", s.ActiveTab())
	}

	// Backward from the first tab wraps to the last
	s.PrevTab()
	if s.ActiveTab() != TabGuide {
		t.Errorf("tab after PrevTab from first = %v, want TabGuide", s.ActiveTab())
	}
}

func TestSelectionClamping(t *testing.T) {
	s := NewUIState()

	// Moving up from row 0 stays at 0
	s.MoveSelection(-1, 5)
	if s.SelectedRow() != 0 {
		t.Errorf("SelectedRow after up from 0 = %d, want 0", s.SelectedRow())
	}

	// Moving past the last row clamps to the last row
	s.MoveSelection(10, 5)
	if s.SelectedRow() != 4 {
		t.Errorf("SelectedRow after big jump = %d, want 4", s.SelectedRow())
	}

	// Empty list clamps to 0
	s.MoveSelection(1, 0)
	if s.SelectedRow() != 0 {
		t.Errorf("SelectedRow with empty list = %d, want 0", s.SelectedRow())
	}
}

func TestSelectionIsPerTab(t *testing.T) {
	s := NewUIState()

	s.MoveSelection(3, 10)
	if s.SelectedRow() != 3 {
		t.Fatalf("SelectedRow = %d, want 3", s.SelectedRow())
	}

	// Switching tabs does not disturb the other tab's cursor
	s.SetActiveTab(TabKaizen)
	if s.SelectedRow() != 0 {
		t.Errorf("SelectedRow on fresh tab = %d, want 0", s.SelectedRow())
	}

	s.SetActiveTab(TabTakt)
	if s.SelectedRow() != 3 {
		t.Errorf("SelectedRow after switching back = %d, want 3", s.SelectedRow())
	}
}

func TestNotificationState(t *testing.T) {
	n := NewNotificationState()

	if n.HasAny() {
		t.Error("new NotificationState should be empty")
	}
	if _, ok := n.Latest(); ok {
		t.Error("Latest on empty state should report false")
	}

	n.Add(LevelInfo, "first")
	n.Add(LevelError, "second")

	latest, ok := n.Latest()
	if !ok || latest.Message != "second" || latest.Level != LevelError {
		t.Errorf("Latest = %+v, want the error notification", latest)
	}
	if len(n.All()) != 2 {
		t.Errorf("All returned %d notifications, want 2", len(n.All()))
	}

	n.Clear()
	if n.HasAny() {
		t.Error("Clear should remove all notifications")
	}
}
