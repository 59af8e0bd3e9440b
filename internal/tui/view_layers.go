package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/aretedriver/gemba/internal/tui/components"
	"github.com/aretedriver/gemba/internal/tui/layers"
	"github.com/aretedriver/gemba/internal/tui/state"
	"github.com/aretedriver/gemba/internal/tui/theme"
)

// renderFormLayer renders the active tab's form as a centered modal.
// Create forms get the green border, the kaizen edit form gets blue.
func (m Model) renderFormLayer() *lipgloss.Layer {
	var form = m.activeFormConfig().form
	if form == nil {
		return nil
	}

	title, boxStyle := m.formChrome()

	width := m.UiState.Width() * 3 / 5
	if width > 72 {
		width = 72
	}
	if width < 30 {
		width = m.UiState.Width() - 4
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		"",
		form.View(),
		"",
		helpStyle.Render("ctrl+s save · esc cancel"),
	)

	box := boxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// formChrome picks the modal title and border style for the active form
func (m Model) formChrome() (string, lipgloss.Style) {
	switch m.UiState.ActiveTab() {
	case state.TabTakt:
		return "Calculate Takt Time", components.CreateFormBoxStyle
	case state.TabWaste:
		return "Log Waste Observation", components.CreateFormBoxStyle
	case state.TabKaizen:
		if m.FormState.EditingItemID != 0 {
			return "Edit Kaizen Item", components.EditFormBoxStyle
		}
		return "New Kaizen Item", components.CreateFormBoxStyle
	default:
		return "Plan Production Day", components.CreateFormBoxStyle
	}
}

// renderDeleteConfirmLayer renders the kaizen delete confirmation
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	item := m.selectedKaizenItem()
	if item == nil {
		return nil
	}

	desc := item.Description
	if len(desc) > 40 {
		desc = desc[:37] + "..."
	}

	content := fmt.Sprintf("Delete item %d?\n\n  %s\n\n[y] delete  [n] cancel", item.ID, desc)
	box := components.DeleteConfirmBoxStyle.Width(50).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
