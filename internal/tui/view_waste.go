package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/aretedriver/gemba/internal/tui/components"
)

// renderWasteTab draws the category bar chart above the observation log
func (m Model) renderWasteTab(width, height int) string {
	var lines []string

	lines = append(lines, components.TitleStyle.Render("Waste by Category"))
	lines = append(lines, "")
	lines = append(lines, strings.Split(components.RenderBarChart(m.AppState.Summary(), width), "\n")...)
	lines = append(lines, "")
	lines = append(lines, components.TitleStyle.Render("Observation Log"))
	lines = append(lines, "")

	observations := m.AppState.Observations()
	if len(observations) == 0 {
		lines = append(lines, components.SubtleStyle.Render("No observations yet. Press 'a' to log what you see."))
		return strings.Join(lines, "\n")
	}

	selected := m.UiState.SelectedRow()
	for i, obs := range observations {
		where := obs.Area
		if obs.Shift != "" {
			if where != "" {
				where += "/"
			}
			where += obs.Shift
		}
		if where == "" {
			where = "-"
		}

		row := fmt.Sprintf("[%d] %-16s x%-3d %-20s %s",
			obs.ID, obs.Category, obs.Count, where, obs.CreatedAt.Local().Format("Jan 2 15:04"))

		if i == selected {
			lines = append(lines, components.SelectedRowStyle.Width(width).Render(row))
			// The note is only expanded under the cursor
			if obs.Note != "" {
				note := wordwrap.String(obs.Note, width-6)
				for _, noteLine := range strings.Split(note, "\n") {
					lines = append(lines, components.SubtleStyle.Render("      "+noteLine))
				}
			}
		} else {
			lines = append(lines, components.NormalStyle.Render(row))
		}
	}

	return strings.Join(clampLines(lines, height), "\n")
}
