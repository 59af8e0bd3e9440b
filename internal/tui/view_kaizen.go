package tui

import (
	"fmt"
	"strings"

	"github.com/aretedriver/gemba/internal/models"
	"github.com/aretedriver/gemba/internal/tui/components"
)

// renderKaizenTab draws the backlog with leverage scores and quick-win stars
func (m Model) renderKaizenTab(width, height int) string {
	backlog := m.AppState.Backlog()

	var lines []string
	lines = append(lines, components.TitleStyle.Render("Kaizen Backlog"))
	lines = append(lines, "")

	if len(backlog) == 0 {
		lines = append(lines, components.SubtleStyle.Render("No items yet. Press 'a' to capture an improvement idea."))
		return strings.Join(lines, "\n")
	}

	selected := m.UiState.SelectedRow()
	for i, item := range backlog {
		star := "  "
		if item.IsQuickWin() {
			star = components.QuickWinStyle.Render("⭐") + " "
		}

		desc := item.Description
		maxDesc := width - 40
		if maxDesc < 10 {
			maxDesc = 10
		}
		if len(desc) > maxDesc {
			desc = desc[:maxDesc-3] + "..."
		}

		meta := fmt.Sprintf("I%d/E%d lev %.2f %-11s", item.Impact, item.Effort, item.Leverage(), item.Status)
		if item.Owner != "" {
			meta += " " + item.Owner
		}
		if item.DueDate != nil {
			meta += " due " + item.DueDate.Format("2006-01-02")
		}

		row := fmt.Sprintf("[%d] %s%s  %s", item.ID, star, desc, meta)

		switch {
		case i == selected:
			lines = append(lines, components.SelectedRowStyle.Width(width).Render(row))
		case item.Status == models.StatusDone:
			lines = append(lines, components.SubtleStyle.Render(row))
		default:
			lines = append(lines, components.NormalStyle.Render(row))
		}
	}

	lines = append(lines, "")
	lines = append(lines, components.SubtleStyle.Render("e edit · s advance status · d delete"))

	return strings.Join(clampLines(lines, height), "\n")
}
