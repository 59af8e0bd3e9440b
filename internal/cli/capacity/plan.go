package capacity

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	capacityservice "github.com/aretedriver/gemba/internal/services/capacity"
)

// PlanCmd returns the capacity plan subcommand
func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute per-role capacity against a daily goal",
		Long: `Compute each role's daily throughput, find the bottleneck, and
recommend extra headcount where a role cannot keep pace with the goal.

QA runs at 15 minutes per unit and shuttle at 8; install pace is whatever
you measured on the floor.

Examples:
  gemba capacity plan --goal=200 --installers=24 --install-minutes=65 --qa=8 --drivers=6

  # Custom working day (hours)
  gemba capacity plan --goal=200 --hours=8 --installers=24 --install-minutes=65 --qa=8 --drivers=6
`,
		RunE: runPlan,
	}

	// Required flags
	cmd.Flags().Int("goal", 0, "Target units per day (required)")
	if err := cmd.MarkFlagRequired("goal"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Float64("install-minutes", 0, "Average install minutes per unit (required)")
	if err := cmd.MarkFlagRequired("install-minutes"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Staffing flags
	cmd.Flags().Int("installers", 0, "Installer headcount")
	cmd.Flags().Int("qa", 0, "QA headcount")
	cmd.Flags().Int("drivers", 0, "Shuttle driver headcount")
	cmd.Flags().Float64("hours", 0, "Working hours per day (defaults to a two-shift 16)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (bottleneck units only)")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	goal, _ := cmd.Flags().GetInt("goal")
	installMinutes, _ := cmd.Flags().GetFloat64("install-minutes")
	installers, _ := cmd.Flags().GetInt("installers")
	qa, _ := cmd.Flags().GetInt("qa")
	drivers, _ := cmd.Flags().GetInt("drivers")
	hours, _ := cmd.Flags().GetFloat64("hours")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Capacity planning is pure arithmetic; no store needed
	plan, err := capacityservice.NewService().Plan(capacityservice.PlanRequest{
		DailyGoal:      goal,
		WorkingHours:   hours,
		Installers:     installers,
		InstallMinutes: installMinutes,
		QAStaff:        qa,
		ShuttleDrivers: drivers,
	})
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_PLAN", err.Error(),
			"Goal and install minutes must be positive; headcounts cannot be negative"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%d\n", plan.BottleneckUnits)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"plan":    plan,
		})
	}

	// Human-readable output
	fmt.Printf("Daily goal: %d units over %.1f hours (takt %.2f min/unit)\n\n", plan.DailyGoal, plan.WorkingHours, plan.TaktMinutes)
	for _, role := range plan.Roles {
		fmt.Printf("  %-8s %3d people x %5.1f min/unit = %4d units/day", role.Role, role.Headcount, role.MinutesPerUnit, role.UnitsPerDay)
		if role.MeetsGoal() {
			fmt.Printf("  (+%d surplus)\n", role.SurplusVsGoal)
		} else {
			fmt.Printf("  (short %d units, add %d people)\n", -role.SurplusVsGoal, role.AdditionalNeeded)
		}
	}
	fmt.Printf("\nBottleneck: %s at %d units/day", plan.Bottleneck, plan.BottleneckUnits)
	if plan.MeetsGoal() {
		fmt.Println(" ✓ goal met")
	} else {
		fmt.Println(" ✗ goal at risk")
	}

	return nil
}
