package waste

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	wasteservice "github.com/aretedriver/gemba/internal/services/waste"
)

// SummaryCmd returns the waste summary subcommand
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate observations by category",
		Long: `Sum observation counts per category, highest first.
Ties are broken alphabetically by category name.

Examples:
  # Whole log
  gemba waste summary

  # One area on the night shift
  gemba waste summary --area="Dock" --shift=night
`,
		RunE: runSummary,
	}

	// Optional filters
	cmd.Flags().String("area", "", "Only count observations from this area")
	cmd.Flags().String("shift", "", "Only count observations from this shift")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (counts only)")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	area, _ := cmd.Flags().GetString("area")
	shift, _ := cmd.Flags().GetString("shift")
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

	summary, err := cliInstance.App.WasteService.Summary(ctx, wasteservice.SummaryFilter{
		Area:  area,
		Shift: shift,
	})
	if err != nil {
		if fmtErr := formatter.Error("WASTE_SUMMARY_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, row := range summary {
			fmt.Printf("%s %d\n", row.Category, row.Count)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"summary": summary,
		})
	}

	// Human-readable output
	if len(summary) == 0 {
		fmt.Println("No observations match")
		return nil
	}

	for _, row := range summary {
		fmt.Printf("  %-16s %d\n", row.Category, row.Count)
	}

	return nil
}
