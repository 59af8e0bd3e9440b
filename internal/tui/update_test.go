package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aretedriver/gemba/internal/app"
	"github.com/aretedriver/gemba/internal/config"
	"github.com/aretedriver/gemba/internal/database"
	kaizenservice "github.com/aretedriver/gemba/internal/services/kaizen"
	taktservice "github.com/aretedriver/gemba/internal/services/takt"
	"github.com/aretedriver/gemba/internal/tui/state"
)

// setupTestModel creates a Model backed by a fresh in-memory store
func setupTestModel(t *testing.T) Model {
	t.Helper()

	ctx := context.Background()
	db, err := database.InitDB(ctx, database.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}

	application := app.New(database.NewRepository(db))
	m := New(ctx, application, cfg)
	m.UiState.SetSize(100, 40)
	return m
}

func keyPress(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func TestTabKeyCyclesTabs(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
	m = newModel.(Model)
	if m.UiState.ActiveTab() != state.TabWaste {
		t.Errorf("tab after Tab key = %v, want TabWaste", m.UiState.ActiveTab())
	}

	newModel, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
	m = newModel.(Model)
	if m.UiState.ActiveTab() != state.TabTakt {
		t.Errorf("tab after Shift+Tab = %v, want TabTakt", m.UiState.ActiveTab())
	}
}

func TestNewEntryOpensTaktForm(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(keyPress('a'))
	m = newModel.(Model)

	if m.UiState.Mode() != state.FormMode {
		t.Errorf("mode after 'a' = %v, want FormMode", m.UiState.Mode())
	}
	if m.FormState.TaktForm == nil {
		t.Error("TaktForm should be initialized after 'a' on the takt tab")
	}
}

func TestEscapeCancelsForm(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(keyPress('a'))
	m = newModel.(Model)

	newModel, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc}))
	m = newModel.(Model)

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("mode after ESC = %v, want NormalMode", m.UiState.Mode())
	}
	if m.FormState.TaktForm != nil {
		t.Error("TaktForm should be cleared after ESC")
	}
}

func TestQuitKeyReturnsCommand(t *testing.T) {
	m := setupTestModel(t)

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Error("'q' should return a quit command")
	}
}

func TestHelpModeOpensAndCloses(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(keyPress('?'))
	m = newModel.(Model)
	if m.UiState.Mode() != state.HelpMode {
		t.Fatalf("mode after '?' = %v, want HelpMode", m.UiState.Mode())
	}

	// Any key closes the help screen
	newModel, _ = m.Update(keyPress('z'))
	m = newModel.(Model)
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("mode after key in HelpMode = %v, want NormalMode", m.UiState.Mode())
	}
}

func TestRowNavigationClampsToHistory(t *testing.T) {
	m := setupTestModel(t)

	ctx := context.Background()
	for _, name := range []string{"first", "second"} {
		_, err := m.App.TaktService.Calculate(ctx, taktservice.CalculateRequest{
			Name:             name,
			AvailableMinutes: 480,
			Demand:           120,
		})
		if err != nil {
			t.Fatalf("failed to seed scenario: %v", err)
		}
	}
	m.reloadTakt()

	// Down three times against two rows clamps at the last row
	for i := 0; i < 3; i++ {
		newModel, _ := m.Update(keyPress('j'))
		m = newModel.(Model)
	}
	if m.UiState.SelectedRow() != 1 {
		t.Errorf("SelectedRow after overshooting down = %d, want 1", m.UiState.SelectedRow())
	}

	newModel, _ := m.Update(keyPress('k'))
	m = newModel.(Model)
	if m.UiState.SelectedRow() != 0 {
		t.Errorf("SelectedRow after up = %d, want 0", m.UiState.SelectedRow())
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := setupTestModel(t)

	ctx := context.Background()
	_, err := m.App.KaizenService.Create(ctx, kaizenservice.CreateRequest{
		Description: "label the staging lanes",
		Impact:      4,
		Effort:      2,
	})
	if err != nil {
		t.Fatalf("failed to seed kaizen item: %v", err)
	}
	m.reloadKaizen()
	m.UiState.SetActiveTab(state.TabKaizen)

	newModel, _ := m.Update(keyPress('d'))
	m = newModel.(Model)
	if m.UiState.Mode() != state.ConfirmDeleteMode {
		t.Fatalf("mode after 'd' = %v, want ConfirmDeleteMode", m.UiState.Mode())
	}

	newModel, _ = m.Update(keyPress('y'))
	m = newModel.(Model)
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("mode after 'y' = %v, want NormalMode", m.UiState.Mode())
	}
	if len(m.AppState.Backlog()) != 0 {
		t.Errorf("backlog has %d items after delete, want 0", len(m.AppState.Backlog()))
	}
}

func TestDeleteDeclinedKeepsItem(t *testing.T) {
	m := setupTestModel(t)

	ctx := context.Background()
	_, err := m.App.KaizenService.Create(ctx, kaizenservice.CreateRequest{
		Description: "move the torque wrenches closer",
		Impact:      3,
		Effort:      1,
	})
	if err != nil {
		t.Fatalf("failed to seed kaizen item: %v", err)
	}
	m.reloadKaizen()
	m.UiState.SetActiveTab(state.TabKaizen)

	newModel, _ := m.Update(keyPress('d'))
	m = newModel.(Model)
	newModel, _ = m.Update(keyPress('n'))
	m = newModel.(Model)

	if len(m.AppState.Backlog()) != 1 {
		t.Errorf("backlog has %d items after declining, want 1", len(m.AppState.Backlog()))
	}
}

func TestAdvanceStatusFromDashboard(t *testing.T) {
	m := setupTestModel(t)

	ctx := context.Background()
	item, err := m.App.KaizenService.Create(ctx, kaizenservice.CreateRequest{
		Description: "standardize the handoff checklist",
		Impact:      4,
		Effort:      4,
	})
	if err != nil {
		t.Fatalf("failed to seed kaizen item: %v", err)
	}
	m.reloadKaizen()
	m.UiState.SetActiveTab(state.TabKaizen)

	newModel, _ := m.Update(keyPress('s'))
	m = newModel.(Model)

	updated, err := m.App.KaizenService.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("failed to reload item: %v", err)
	}
	if updated.Status != "in-progress" {
		t.Errorf("status after advance = %s, want in-progress", updated.Status)
	}
}

func TestViewWaitsForWindowSize(t *testing.T) {
	m := setupTestModel(t)
	m.UiState.SetSize(0, 0)

	view := m.View()
	if view.Content != "Loading..." {
		t.Errorf("View before sizing = %q, want the loading placeholder", view.Content)
	}
}

func TestViewRendersTabs(t *testing.T) {
	m := setupTestModel(t)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(Model)

	view := m.View()
	for _, label := range []string{"Takt", "Waste", "Kaizen", "Capacity", "Guide"} {
		if !strings.Contains(view.Content, label) {
			t.Errorf("dashboard should show the %s tab", label)
		}
	}
}
