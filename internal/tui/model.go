// Package tui implements the interactive dashboard: one tab per module,
// huh forms for data entry, and a glamour-rendered field guide.
package tui

import (
	"context"
	_ "embed"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/aretedriver/gemba/internal/app"
	"github.com/aretedriver/gemba/internal/config"
	"github.com/aretedriver/gemba/internal/models"
	wasteservice "github.com/aretedriver/gemba/internal/services/waste"
	"github.com/aretedriver/gemba/internal/tui/components"
	"github.com/aretedriver/gemba/internal/tui/state"
)

//go:embed guide.md
var guideMarkdown string

// dbTimeout bounds every store call made from the event loop
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	AppState          *state.AppState
	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	guide      viewport.Model
	guideReady bool
}

// New creates the TUI model and loads the session data.
// Styles are initialized from the configured color scheme before any
// component renders.
func New(ctx context.Context, application *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		AppState:          state.NewAppState(),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
	}

	m.reloadTakt()
	m.reloadWaste()
	m.reloadKaizen()

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext derives a bounded context for store calls
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// reloadTakt refreshes the takt history from the store
func (m Model) reloadTakt() {
	ctx, cancel := m.dbContext()
	defer cancel()

	scenarios, err := m.App.TaktService.History(ctx)
	if err != nil {
		slog.Error("Error loading takt history", "error", err)
		m.NotificationState.Add(state.LevelError, "Error loading takt history")
		return
	}
	m.AppState.SetScenarios(scenarios)
}

// reloadWaste refreshes the waste log and its aggregation from the store
func (m Model) reloadWaste() {
	ctx, cancel := m.dbContext()
	defer cancel()

	observations, err := m.App.WasteService.Observations(ctx)
	if err != nil {
		slog.Error("Error loading waste log", "error", err)
		m.NotificationState.Add(state.LevelError, "Error loading waste log")
		return
	}
	m.AppState.SetObservations(observations)

	summary, err := m.App.WasteService.Summary(ctx, wasteservice.SummaryFilter{})
	if err != nil {
		slog.Error("Error aggregating waste log", "error", err)
		m.NotificationState.Add(state.LevelError, "Error aggregating waste log")
		return
	}
	m.AppState.SetSummary(summary)
}

// reloadKaizen refreshes the kaizen backlog from the store
func (m Model) reloadKaizen() {
	ctx, cancel := m.dbContext()
	defer cancel()

	backlog, err := m.App.KaizenService.Backlog(ctx)
	if err != nil {
		slog.Error("Error loading kaizen backlog", "error", err)
		m.NotificationState.Add(state.LevelError, "Error loading kaizen backlog")
		return
	}
	m.AppState.SetBacklog(backlog)
}

// rowCount returns how many selectable rows the active tab has
func (m Model) rowCount() int {
	switch m.UiState.ActiveTab() {
	case state.TabTakt:
		return len(m.AppState.Scenarios())
	case state.TabWaste:
		return len(m.AppState.Observations())
	case state.TabKaizen:
		return len(m.AppState.Backlog())
	}
	return 0
}

// selectedKaizenItem returns the backlog item under the cursor, nil when
// the backlog is empty
func (m Model) selectedKaizenItem() *models.KaizenItem {
	backlog := m.AppState.Backlog()
	if len(backlog) == 0 {
		return nil
	}
	idx := m.UiState.SelectedRow()
	if idx >= len(backlog) {
		idx = len(backlog) - 1
	}
	return backlog[idx]
}

// syncGuideViewport sizes the guide viewport to the current window and
// re-renders the markdown at the new width. Called on every resize.
func (m *Model) syncGuideViewport() {
	if m.UiState.Width() == 0 {
		return
	}

	width := m.UiState.Width() - 4
	height := m.UiState.Height() - tabBarHeight - statusBarHeight - panelFrameHeight
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if !m.guideReady {
		vp := viewport.New()
		vp.MouseWheelEnabled = true
		m.guide = vp
		m.guideReady = true
	}

	m.guide.SetWidth(width)
	m.guide.SetHeight(height)
	m.guide.SetContent(components.RenderMarkdown(guideMarkdown, width))
}
