package kaizen

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	kaizenservice "github.com/aretedriver/gemba/internal/services/kaizen"
)

// DeleteCmd returns the kaizen delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a backlog item",
		Long:  "Delete a backlog item by ID.",
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Item ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemID, _ := cmd.Flags().GetInt("id")
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

	if err := cliInstance.App.KaizenService.Delete(ctx, itemID); err != nil {
		switch {
		case errors.Is(err, kaizenservice.ErrItemNotFound), errors.Is(err, kaizenservice.ErrInvalidItemID):
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND", err.Error(),
				"Use 'gemba kaizen list' to see backlog item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		default:
			if fmtErr := formatter.Error("KAIZEN_DELETE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", itemID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"deleted": itemID,
		})
	}

	fmt.Printf("✓ Deleted item %d\n", itemID)

	return nil
}
