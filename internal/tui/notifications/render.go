// Package notifications renders user-facing notification banners.
// Notifications appear inline at the right edge of the tab bar.
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/aretedriver/gemba/internal/tui/state"
)

// RenderInline renders a compact single-line notification (for the tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	switch n.Level {
	case state.LevelInfo:
		return RenderInline(Info, n.Message)
	case state.LevelWarning:
		return RenderInline(Warning, n.Message)
	case state.LevelError:
		return RenderInline(Error, n.Message)
	default:
		return RenderInline(Info, n.Message)
	}
}
