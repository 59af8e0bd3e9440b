package kaizen

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	"github.com/aretedriver/gemba/internal/models"
	kaizenservice "github.com/aretedriver/gemba/internal/services/kaizen"
)

// AdvanceCmd returns the kaizen advance subcommand
func AdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Move an item forward in its lifecycle",
		Long: `Move an item to the next status, or jump it forward with --to.
Status only moves forward: open, in-progress, done. Skipping straight to
done is allowed; moving backward is not.

Examples:
  # One step forward
  gemba kaizen advance --id=3

  # Jump straight to done
  gemba kaizen advance --id=3 --to=done
`,
		RunE: runAdvance,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Item ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("to", "", "Target status: open, in-progress, done")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdvance(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemID, _ := cmd.Flags().GetInt("id")
	target, _ := cmd.Flags().GetString("to")
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

	if target == "" {
		_, err = cliInstance.App.KaizenService.Advance(ctx, itemID)
	} else {
		var status models.KaizenStatus
		status, err = models.ParseKaizenStatus(target)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_STATUS", err.Error(),
				"Valid statuses are: open, in-progress, done"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		err = cliInstance.App.KaizenService.SetStatus(ctx, itemID, status)
	}
	if err != nil {
		switch {
		case errors.Is(err, kaizenservice.ErrItemNotFound), errors.Is(err, kaizenservice.ErrInvalidItemID):
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND", err.Error(),
				"Use 'gemba kaizen list' to see backlog item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		case errors.Is(err, models.ErrAlreadyDone), errors.Is(err, models.ErrBackwardTransition):
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_TRANSITION", err.Error(),
				"Status only moves forward: open, in-progress, done"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		default:
			if fmtErr := formatter.Error("KAIZEN_ADVANCE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
		}
		return err
	}

	item, err := cliInstance.App.KaizenService.Get(ctx, itemID)
	if err != nil {
		if fmtErr := formatter.Error("KAIZEN_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", item.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"item":    item,
		})
	}

	fmt.Printf("✓ Item %d is now %s\n", item.ID, item.Status)

	return nil
}
