package takt

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	taktservice "github.com/aretedriver/gemba/internal/services/takt"
)

// CalcCmd returns the takt calc subcommand
func CalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate takt time for a demand scenario",
		Long: `Calculate takt time: available production minutes divided by customer demand.

Examples:
  # One shift of 480 minutes against 120 units of demand
  gemba takt calc --available=480 --demand=120

  # Compare against an observed cycle time
  gemba takt calc --available=480 --demand=120 --cycle=4.5

  # JSON output for agents
  gemba takt calc --available=480 --demand=120 --json
`,
		RunE: runCalc,
	}

	// Required flags
	cmd.Flags().Float64("available", 0, "Available production time in minutes (required)")
	if err := cmd.MarkFlagRequired("available"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("demand", 0, "Customer demand in units (required)")
	if err := cmd.MarkFlagRequired("demand"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Float64("cycle", 0, "Observed cycle time in minutes, for a pace verdict")
	cmd.Flags().String("name", "", "Scenario name for the history")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	available, _ := cmd.Flags().GetFloat64("available")
	demand, _ := cmd.Flags().GetInt("demand")
	cycle, _ := cmd.Flags().GetFloat64("cycle")
	name, _ := cmd.Flags().GetString("name")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	req := taktservice.CalculateRequest{
		Name:             name,
		AvailableMinutes: available,
		Demand:           demand,
	}
	if cmd.Flags().Changed("cycle") {
		req.CycleMinutes = &cycle
	}

	scenario, err := cliInstance.App.TaktService.Calculate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, taktservice.ErrNonPositiveAvailable),
			errors.Is(err, taktservice.ErrNonPositiveDemand),
			errors.Is(err, taktservice.ErrNonPositiveCycle):
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_INPUT", err.Error(),
				"Available time, demand, and cycle time must all be positive"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		default:
			if fmtErr := formatter.Error("TAKT_CALC_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
		}
		return err
	}

	if quietMode {
		fmt.Printf("%.4f\n", scenario.TaktMinutes)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"scenario": map[string]interface{}{
				"id":                scenario.ID,
				"name":              scenario.Name,
				"available_minutes": scenario.AvailableMinutes,
				"demand":            scenario.Demand,
				"takt_minutes":      scenario.TaktMinutes,
				"cycle_minutes":     scenario.CycleMinutes,
				"pace":              scenario.Pace(),
				"created_at":        scenario.CreatedAt,
			},
		})
	}

	// Human-readable output
	fmt.Printf("✓ Takt time: %.2f min/unit\n", scenario.TaktMinutes)
	fmt.Printf("  Available: %.1f min\n", scenario.AvailableMinutes)
	fmt.Printf("  Demand:    %d units\n", scenario.Demand)
	if scenario.CycleMinutes != nil {
		fmt.Printf("  Cycle:     %.2f min (%s)\n", *scenario.CycleMinutes, scenario.Pace())
	}

	return nil
}
