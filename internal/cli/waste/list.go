package waste

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
)

// ListCmd returns the waste list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List waste observations",
		Long:  "List the full observation log in the order entries were recorded.",
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

	observations, err := cliInstance.App.WasteService.Observations(ctx)
	if err != nil {
		if fmtErr := formatter.Error("WASTE_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, o := range observations {
			fmt.Printf("%d\n", o.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":      true,
			"observations": observations,
		})
	}

	// Human-readable output
	if len(observations) == 0 {
		fmt.Println("No observations logged")
		return nil
	}

	fmt.Printf("Found %d observations:\n\n", len(observations))
	for _, o := range observations {
		line := fmt.Sprintf("  [%d] %s x%d", o.ID, o.Category, o.Count)
		if o.Area != "" {
			line += " @ " + o.Area
		}
		if o.Shift != "" {
			line += " (" + o.Shift + ")"
		}
		if o.Note != "" {
			line += " - " + o.Note
		}
		fmt.Println(line)
	}

	return nil
}
