package waste

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	"github.com/aretedriver/gemba/internal/export"
)

// ImportCmd returns the waste import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import observations from CSV",
		Long: `Append observations from a CSV file previously produced by export.
Original timestamps are preserved.

Examples:
  gemba waste import --file=wastes.csv
`,
		RunE: runImport,
	}

	cmd.Flags().String("file", "", "CSV file to import (required, use - for stdin)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (imported count only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	filePath, _ := cmd.Flags().GetString("file")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	in := os.Stdin
	if filePath != "-" {
		f, err := os.Open(filePath)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("IMPORT_READ_ERROR", err.Error(),
				"Check the file path, or pass - to read from stdin"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitDataErr)
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("Error closing import file", "error", err)
			}
		}()
		in = f
	}

	observations, err := export.ReadWasteCSV(in)
	if err != nil {
		code := "IMPORT_PARSE_ERROR"
		suggestion := "Expected the header: area,shift,category,count,note,created_at"
		if errors.Is(err, export.ErrEmptyFile) {
			code = "IMPORT_EMPTY_FILE"
		}
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitDataErr)
	}

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

	imported, err := cliInstance.App.WasteService.Import(ctx, observations)
	if err != nil {
		if fmtErr := formatter.Error("IMPORT_ERROR",
			fmt.Sprintf("%v (imported %d of %d before failing)", err, imported, len(observations))); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", imported)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"imported": imported,
		})
	}

	fmt.Printf("✓ Imported %d observations\n", imported)

	return nil
}
