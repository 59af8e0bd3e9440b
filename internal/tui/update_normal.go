package tui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aretedriver/gemba/internal/export"
	"github.com/aretedriver/gemba/internal/models"
	"github.com/aretedriver/gemba/internal/tui/huhforms"
	"github.com/aretedriver/gemba/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.NextTab:
		m.UiState.NextTab()
		return m, nil
	case km.PrevTab:
		m.UiState.PrevTab()
		return m, nil
	case km.NextRow, "down":
		return m.handleMoveDown(msg)
	case km.PrevRow, "up":
		return m.handleMoveUp(msg)
	case km.NewEntry:
		return m.handleNewEntry()
	case km.EditEntry:
		return m.handleEditEntry()
	case km.DeleteEntry:
		return m.handleDeleteEntry()
	case km.AdvanceStatus:
		return m.handleAdvanceStatus()
	case km.ExportLog:
		return m.handleExportLog()
	case km.Refresh:
		return m.handleRefresh()
	}

	return m, nil
}

func (m Model) handleMoveDown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.UiState.ActiveTab() == state.TabGuide && m.guideReady {
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return m, cmd
	}
	m.UiState.MoveSelection(1, m.rowCount())
	return m, nil
}

func (m Model) handleMoveUp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.UiState.ActiveTab() == state.TabGuide && m.guideReady {
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return m, cmd
	}
	m.UiState.MoveSelection(-1, m.rowCount())
	return m, nil
}

// handleNewEntry opens the data-entry form for the active tab
func (m Model) handleNewEntry() (tea.Model, tea.Cmd) {
	switch m.UiState.ActiveTab() {
	case state.TabTakt:
		return m.openTaktForm()
	case state.TabWaste:
		return m.openWasteForm()
	case state.TabKaizen:
		return m.openKaizenForm(nil)
	case state.TabCapacity:
		return m.openCapacityForm()
	}

	m.NotificationState.Add(state.LevelInfo, "Nothing to add on this page")
	return m, nil
}

// handleEditEntry opens the kaizen form pre-filled with the selected item.
// Takt scenarios and waste observations are append-only and cannot be edited.
func (m Model) handleEditEntry() (tea.Model, tea.Cmd) {
	if m.UiState.ActiveTab() != state.TabKaizen {
		m.NotificationState.Add(state.LevelInfo, "Only kaizen items can be edited")
		return m, nil
	}

	item := m.selectedKaizenItem()
	if item == nil {
		m.NotificationState.Add(state.LevelError, "No item selected to edit")
		return m, nil
	}
	return m.openKaizenForm(item)
}

func (m Model) handleDeleteEntry() (tea.Model, tea.Cmd) {
	if m.UiState.ActiveTab() != state.TabKaizen {
		m.NotificationState.Add(state.LevelInfo, "Only kaizen items can be deleted")
		return m, nil
	}

	if m.selectedKaizenItem() == nil {
		m.NotificationState.Add(state.LevelError, "No item selected to delete")
		return m, nil
	}

	m.UiState.SetMode(state.ConfirmDeleteMode)
	return m, nil
}

// handleAdvanceStatus moves the selected kaizen item one step forward
func (m Model) handleAdvanceStatus() (tea.Model, tea.Cmd) {
	if m.UiState.ActiveTab() != state.TabKaizen {
		return m, nil
	}

	item := m.selectedKaizenItem()
	if item == nil {
		m.NotificationState.Add(state.LevelError, "No item selected")
		return m, nil
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	updated, err := m.App.KaizenService.Advance(ctx, item.ID)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return m, nil
	}

	m.reloadKaizen()
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Item %d is now %s", updated.ID, updated.Status))
	return m, nil
}

// handleExportLog writes the waste log to a timestamped CSV in the
// working directory
func (m Model) handleExportLog() (tea.Model, tea.Cmd) {
	if m.UiState.ActiveTab() != state.TabWaste {
		return m, nil
	}

	observations := m.AppState.Observations()
	if len(observations) == 0 {
		m.NotificationState.Add(state.LevelInfo, "Nothing to export yet")
		return m, nil
	}

	filename := fmt.Sprintf("gemba-waste-%s.csv", time.Now().Format("20060102-150405"))
	f, err := os.Create(filename)
	if err != nil {
		slog.Error("Error creating export file", "error", err)
		m.NotificationState.Add(state.LevelError, "Error creating export file")
		return m, nil
	}
	defer f.Close()

	if err := export.WriteWasteCSV(f, observations); err != nil {
		slog.Error("Error exporting waste log", "error", err)
		m.NotificationState.Add(state.LevelError, "Error exporting waste log")
		return m, nil
	}

	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Exported %d observations to %s", len(observations), filename))
	return m, nil
}

func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	switch m.UiState.ActiveTab() {
	case state.TabTakt:
		m.reloadTakt()
	case state.TabWaste:
		m.reloadWaste()
	case state.TabKaizen:
		m.reloadKaizen()
	}
	return m, nil
}

// handleConfirmDelete resolves the kaizen delete confirmation
func (m Model) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		item := m.selectedKaizenItem()
		if item != nil {
			ctx, cancel := m.dbContext()
			defer cancel()

			if err := m.App.KaizenService.Delete(ctx, item.ID); err != nil {
				slog.Error("Error deleting kaizen item", "error", err)
				m.NotificationState.Add(state.LevelError, "Error deleting item")
			} else {
				m.reloadKaizen()
				m.UiState.SetSelectedRow(m.UiState.SelectedRow(), len(m.AppState.Backlog())-1)
				m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted item %d", item.ID))
			}
		}
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	default:
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}
}

// openTaktForm prepares and shows the takt calculator form
func (m Model) openTaktForm() (tea.Model, tea.Cmd) {
	m.FormState.ClearTaktForm()
	m.FormState.TaktForm = huhforms.CreateTaktForm(
		&m.FormState.FormTaktName,
		&m.FormState.FormAvailable,
		&m.FormState.FormDemand,
		&m.FormState.FormCycle,
		&m.FormState.FormTaktConfirm,
	).WithTheme(huhforms.CreateGembaTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.TaktForm.Init()
}

// openWasteForm prepares and shows the observation form
func (m Model) openWasteForm() (tea.Model, tea.Cmd) {
	m.FormState.ClearWasteForm()
	m.FormState.WasteForm = huhforms.CreateWasteForm(
		&m.FormState.FormArea,
		&m.FormState.FormShift,
		&m.FormState.FormCategory,
		&m.FormState.FormCount,
		&m.FormState.FormNote,
		&m.FormState.FormWasteConfirm,
	).WithTheme(huhforms.CreateGembaTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.WasteForm.Init()
}

// openKaizenForm prepares the backlog form. A nil item means create;
// otherwise fields are pre-filled for an edit.
func (m Model) openKaizenForm(item *models.KaizenItem) (tea.Model, tea.Cmd) {
	m.FormState.ClearKaizenForm()

	isEdit := item != nil
	if isEdit {
		m.FormState.EditingItemID = item.ID
		m.FormState.FormDescription = item.Description
		m.FormState.FormImpact = fmt.Sprintf("%d", item.Impact)
		m.FormState.FormEffort = fmt.Sprintf("%d", item.Effort)
		m.FormState.FormOwner = item.Owner
		if item.DueDate != nil {
			m.FormState.FormDue = item.DueDate.Format("2006-01-02")
		}
	}

	m.FormState.KaizenForm = huhforms.CreateKaizenForm(
		&m.FormState.FormDescription,
		&m.FormState.FormImpact,
		&m.FormState.FormEffort,
		&m.FormState.FormOwner,
		&m.FormState.FormDue,
		&m.FormState.FormKaizenConfirm,
		isEdit,
	).WithTheme(huhforms.CreateGembaTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.KaizenForm.Init()
}

// openCapacityForm prepares and shows the staffing planner form
func (m Model) openCapacityForm() (tea.Model, tea.Cmd) {
	m.FormState.ClearCapacityForm()
	m.FormState.CapacityForm = huhforms.CreateCapacityForm(
		&m.FormState.FormGoal,
		&m.FormState.FormHours,
		&m.FormState.FormInstallers,
		&m.FormState.FormInstallMinutes,
		&m.FormState.FormQAStaff,
		&m.FormState.FormShuttleDrivers,
		&m.FormState.FormCapacityConfirm,
	).WithTheme(huhforms.CreateGembaTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.CapacityForm.Init()
}
