package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aretedriver/gemba/internal/tui/state"
)

// Update handles all messages and routes them by mode.
// Required by tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetSize(wsMsg.Width, wsMsg.Height)
		m.syncGuideViewport()
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.FormMode:
		// Forms need every message, not just key presses
		return m.updateForm(msg)

	case state.ConfirmDeleteMode:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirmDelete(keyMsg)
		}
		return m, nil

	case state.HelpMode:
		// Any key closes the help screen
		if _, ok := msg.(tea.KeyMsg); ok {
			m.UiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleNormalMode(keyMsg)
	}

	return m, nil
}
