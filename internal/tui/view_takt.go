package tui

import (
	"fmt"
	"strings"

	"github.com/aretedriver/gemba/internal/tui/components"
)

// renderTaktTab draws the takt history with the cursor row highlighted
func (m Model) renderTaktTab(width, height int) string {
	scenarios := m.AppState.Scenarios()

	var lines []string
	lines = append(lines, components.TitleStyle.Render("Takt History"))
	lines = append(lines, "")

	if len(scenarios) == 0 {
		lines = append(lines, components.SubtleStyle.Render("No scenarios yet. Press 'a' to calculate takt time."))
		return strings.Join(lines, "\n")
	}

	header := fmt.Sprintf("%-20s %10s %8s %12s %8s %-8s",
		"NAME", "AVAILABLE", "DEMAND", "TAKT", "CYCLE", "PACE")
	lines = append(lines, components.SubtleStyle.Render(header))

	selected := m.UiState.SelectedRow()
	for i, s := range scenarios {
		name := s.Name
		if name == "" {
			name = "(unnamed)"
		}
		if len(name) > 20 {
			name = name[:17] + "..."
		}

		cycle := "-"
		if s.CycleMinutes != nil {
			cycle = fmt.Sprintf("%.1f", *s.CycleMinutes)
		}

		row := fmt.Sprintf("%-20s %8.1f m %6d u %9.2f m/u %8s %-8s",
			name, s.AvailableMinutes, s.Demand, s.TaktMinutes, cycle, s.Pace())

		if i == selected {
			lines = append(lines, components.SelectedRowStyle.Width(width).Render(row))
		} else {
			lines = append(lines, components.NormalStyle.Render(row))
		}
	}

	return strings.Join(clampLines(lines, height), "\n")
}

// clampLines drops lines that would overflow the panel, keeping the top
func clampLines(lines []string, height int) []string {
	if height > 0 && len(lines) > height {
		return lines[:height]
	}
	return lines
}
