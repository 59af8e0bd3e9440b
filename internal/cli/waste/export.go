package waste

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	"github.com/aretedriver/gemba/internal/export"
)

// ExportCmd returns the waste export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the observation log as CSV",
		Long: `Write the observation log as CSV, suitable for re-import.

Examples:
  # To a file
  gemba waste export --out=wastes.csv

  # To stdout for piping
  gemba waste export
`,
		RunE: runExport,
	}

	cmd.Flags().String("out", "", "Output file path (defaults to stdout)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output errors in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress the confirmation line")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	outPath, _ := cmd.Flags().GetString("out")
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

	observations, err := cliInstance.App.WasteService.Observations(ctx)
	if err != nil {
		if fmtErr := formatter.Error("WASTE_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			if fmtErr := formatter.Error("EXPORT_WRITE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("Error closing export file", "error", err)
			}
		}()
		out = f
	}

	if err := export.WriteWasteCSV(out, observations); err != nil {
		if fmtErr := formatter.Error("EXPORT_WRITE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if outPath != "" && !quietMode && !jsonOutput {
		fmt.Printf("✓ Exported %d observations to %s\n", len(observations), outPath)
	}

	return nil
}
