package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aretedriver/gemba/internal/tui/components"
	"github.com/aretedriver/gemba/internal/tui/notifications"
	"github.com/aretedriver/gemba/internal/tui/state"
	"github.com/aretedriver/gemba/internal/tui/theme"
)

// Fixed chrome heights used by the layout
const (
	tabBarHeight     = 3 // bordered tab row
	statusBarHeight  = 1
	panelFrameHeight = 2 // top and bottom border of the content panel
)

// View renders the current state of the application.
// Required by tea.Model interface.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderDashboard()

	layerStack := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.FormMode:
		modal = m.renderFormLayer()
	case state.ConfirmDeleteMode:
		modal = m.renderDeleteConfirmLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		layerStack = append(layerStack, modal)
	}

	canvas := lipgloss.NewCanvas(layerStack...)
	view.Content = canvas.Render()
	return view
}

// renderDashboard draws the tab bar, the active tab's panel, and the
// status bar
func (m Model) renderDashboard() string {
	width := m.UiState.Width()
	height := m.UiState.Height()

	// Latest notification shows inline at the right edge of the tab bar
	inline := ""
	if latest, ok := m.NotificationState.Latest(); ok {
		inline = notifications.RenderInlineFromState(latest)
	}

	tabBar := components.RenderTabs(state.TabNames(), int(m.UiState.ActiveTab()), width, inline)
	statusBar := components.StatusBarStyle.Width(width).Render(
		components.RenderStatusBar(components.StatusBarProps{Width: width}),
	)

	contentHeight := height - lipgloss.Height(tabBar) - statusBarHeight - panelFrameHeight
	contentWidth := width - 4 // panel border and padding
	if contentHeight < 1 {
		contentHeight = 1
	}
	if contentWidth < 1 {
		contentWidth = 1
	}

	var content string
	switch m.UiState.ActiveTab() {
	case state.TabTakt:
		content = m.renderTaktTab(contentWidth, contentHeight)
	case state.TabWaste:
		content = m.renderWasteTab(contentWidth, contentHeight)
	case state.TabKaizen:
		content = m.renderKaizenTab(contentWidth, contentHeight)
	case state.TabCapacity:
		content = m.renderCapacityTab(contentWidth)
	case state.TabGuide:
		content = m.renderGuideTab()
	}

	panel := components.PanelStyle.
		Width(width - 2).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, panel, statusBar)
}
