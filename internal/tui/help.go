package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/aretedriver/gemba/internal/tui/components"
	"github.com/aretedriver/gemba/internal/tui/layers"
)

// renderHelpLayer renders the keyboard shortcut help screen
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`GEMBA - Keyboard Shortcuts

ENTRIES
  %-9s Add entry on the current page
  %-9s Edit selected kaizen item
  %-9s Delete selected kaizen item
  %-9s Advance kaizen status

NAVIGATION
  %-9s Next page
  %-9s Previous page
  %-9s Next row / scroll guide down
  %-9s Previous row / scroll guide up

WASTE LOG
  %-9s Export log to CSV

FORMS
  %-9s Save form
  esc       Cancel form

OTHER
  %-9s Reload current page
  %-9s Show this help
  %-9s Quit

Press any key to close`,
		km.NewEntry,
		km.EditEntry,
		km.DeleteEntry,
		km.AdvanceStatus,
		km.NextTab,
		km.PrevTab,
		km.NextRow,
		km.PrevRow,
		km.ExportLog,
		km.SaveForm,
		km.Refresh,
		km.ShowHelp,
		km.Quit,
	)
}
