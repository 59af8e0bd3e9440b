package takt

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
)

// ListCmd returns the takt list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calculated takt scenarios",
		Long:  "List all takt scenarios recorded this session, oldest first.",
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	history, err := cliInstance.App.TaktService.History(ctx)
	if err != nil {
		if fmtErr := formatter.Error("TAKT_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, s := range history {
			fmt.Printf("%d\n", s.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"scenarios": history,
		})
	}

	// Human-readable output
	if len(history) == 0 {
		fmt.Println("No takt scenarios recorded")
		return nil
	}

	fmt.Printf("Found %d scenarios:\n\n", len(history))
	for _, s := range history {
		line := fmt.Sprintf("  [%d] %.1f min / %d units = %.2f min/unit", s.ID, s.AvailableMinutes, s.Demand, s.TaktMinutes)
		if s.Name != "" {
			line += fmt.Sprintf(" (%s)", s.Name)
		}
		if s.CycleMinutes != nil {
			line += fmt.Sprintf(" - cycle %.2f, %s", *s.CycleMinutes, s.Pace())
		}
		fmt.Println(line)
	}

	return nil
}
