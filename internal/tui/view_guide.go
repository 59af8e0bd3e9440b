package tui

import "github.com/aretedriver/gemba/internal/tui/components"

// renderGuideTab draws the scrollable field guide
func (m Model) renderGuideTab() string {
	if !m.guideReady {
		return components.SubtleStyle.Render("Loading guide...")
	}
	return m.guide.View()
}
