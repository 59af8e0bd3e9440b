package components

import (
	"fmt"
	"strings"

	"github.com/aretedriver/gemba/internal/models"
)

// barChartMinWidth is the smallest width at which bars are still drawn
const barChartMinWidth = 20

// RenderBarChart renders the waste summary as horizontal bars, one row per
// category. Bars are scaled so the largest count fills the available width.
// Rows arrive pre-sorted (descending by count) from the aggregation query.
func RenderBarChart(rows []*models.CategorySummary, width int) string {
	if len(rows) == 0 {
		return SubtleStyle.Render("No observations yet.")
	}

	// Longest category name sets the label column
	labelWidth := 0
	maxCount := 0
	for _, row := range rows {
		if len(row.Category) > labelWidth {
			labelWidth = len(row.Category)
		}
		if row.Count > maxCount {
			maxCount = row.Count
		}
	}

	// label + space + bar + space + count
	countWidth := len(fmt.Sprintf("%d", maxCount))
	barWidth := width - labelWidth - countWidth - 2
	if barWidth < 1 {
		barWidth = 1
	}
	if width < barChartMinWidth {
		barWidth = 1
	}

	var lines []string
	for _, row := range rows {
		barLen := row.Count * barWidth / maxCount
		if barLen < 1 {
			barLen = 1
		}

		label := NormalStyle.Render(fmt.Sprintf("%-*s", labelWidth, string(row.Category)))
		bar := BarFillStyle.Render(strings.Repeat("█", barLen))
		count := SubtleStyle.Render(fmt.Sprintf("%*d", countWidth, row.Count))

		lines = append(lines, fmt.Sprintf("%s %s %s", label, bar, count))
	}

	return strings.Join(lines, "\n")
}
