package kaizen

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
)

// ListCmd returns the kaizen list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backlog items",
		Long:  "List the improvement backlog, optionally narrowed to quick wins.",
		RunE:  runList,
	}

	cmd.Flags().Bool("quick-wins", false, "Only show items with leverage at or above the quick-win threshold")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	quickWins, _ := cmd.Flags().GetBool("quick-wins")
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

	items, err := cliInstance.App.KaizenService.Backlog(ctx)
	if quickWins {
		items, err = cliInstance.App.KaizenService.QuickWins(ctx)
	}
	if err != nil {
		if fmtErr := formatter.Error("KAIZEN_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, item := range items {
			fmt.Printf("%d\n", item.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"items":   items,
		})
	}

	// Human-readable output
	if len(items) == 0 {
		fmt.Println("Backlog is empty")
		return nil
	}

	fmt.Printf("Found %d items:\n\n", len(items))
	for _, item := range items {
		marker := " "
		if item.IsQuickWin() {
			marker = "⭐"
		}
		line := fmt.Sprintf("  [%d] %s %s (I%d/E%d, leverage %.2f, %s)",
			item.ID, marker, item.Description, item.Impact, item.Effort, item.Leverage(), item.Status)
		if item.Owner != "" {
			line += " - " + item.Owner
		}
		fmt.Println(line)
	}

	return nil
}
