package tui

import (
	"fmt"
	"strings"

	"github.com/aretedriver/gemba/internal/tui/components"
)

// renderCapacityTab draws the last computed staffing plan
func (m Model) renderCapacityTab(width int) string {
	plan := m.AppState.Plan()

	var lines []string
	lines = append(lines, components.TitleStyle.Render("Capacity Plan"))
	lines = append(lines, "")

	if plan == nil {
		lines = append(lines, components.SubtleStyle.Render("No plan yet. Press 'a' to plan a production day."))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, components.NormalStyle.Render(
		fmt.Sprintf("Goal %d units over %.1f working hours · takt %.2f min/unit",
			plan.DailyGoal, plan.WorkingHours, plan.TaktMinutes)))
	lines = append(lines, "")

	for _, role := range plan.Roles {
		row := fmt.Sprintf("%-8s %3d people × %5.1f min/unit = %4d units/day",
			role.Role, role.Headcount, role.MinutesPerUnit, role.UnitsPerDay)

		if role.MeetsGoal() {
			row += fmt.Sprintf("  (+%d surplus)", role.SurplusVsGoal)
			lines = append(lines, components.NormalStyle.Render(row))
		} else {
			row += fmt.Sprintf("  (short %d units, add %d people)", -role.SurplusVsGoal, role.AdditionalNeeded)
			lines = append(lines, components.QuickWinStyle.Render(row))
		}
	}

	lines = append(lines, "")
	lines = append(lines, components.NormalStyle.Render(
		fmt.Sprintf("Bottleneck: %s at %d units/day", plan.Bottleneck, plan.BottleneckUnits)))

	install := plan.Roles[0]
	if install.Headcount > 0 {
		effective := install.MinutesPerUnit / float64(install.Headcount)
		lines = append(lines, components.SubtleStyle.Render(
			fmt.Sprintf("Effective install cycle %.2f min/unit (%s)", effective, plan.ComparePace(effective))))
	}

	if plan.MeetsGoal() {
		lines = append(lines, components.NormalStyle.Render("✓ The day's goal is covered"))
	} else {
		lines = append(lines, components.QuickWinStyle.Render("✗ The goal is at risk"))
	}

	return strings.Join(lines, "\n")
}
