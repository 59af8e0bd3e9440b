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

// UpdateCmd returns the kaizen update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a backlog item",
		Long:  "Update an item's description, scores, owner, or due date. Only the flags you pass change.",
		RunE:  runUpdate,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Item ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional update flags
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().Int("impact", 0, "New impact 1-5")
	cmd.Flags().Int("effort", 0, "New effort 1-5")
	cmd.Flags().String("owner", "", "New owner")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemID, _ := cmd.Flags().GetInt("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := kaizenservice.UpdateRequest{ID: itemID}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("impact") {
		impact, _ := cmd.Flags().GetInt("impact")
		req.Impact = &impact
	}
	if cmd.Flags().Changed("effort") {
		effort, _ := cmd.Flags().GetInt("effort")
		req.Effort = &effort
	}
	if cmd.Flags().Changed("owner") {
		owner, _ := cmd.Flags().GetString("owner")
		req.Owner = &owner
	}
	if cmd.Flags().Changed("due") {
		due, _ := cmd.Flags().GetString("due")
		dueDate, err := cli.ParseDueDate(due)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_DUE_DATE", err.Error(),
				"Use the YYYY-MM-DD format, e.g. 2026-09-15"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		req.DueDate = dueDate
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

	if err := cliInstance.App.KaizenService.Update(ctx, req); err != nil {
		switch {
		case errors.Is(err, kaizenservice.ErrItemNotFound), errors.Is(err, kaizenservice.ErrInvalidItemID):
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND", err.Error(),
				"Use 'gemba kaizen list' to see backlog item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		case errors.Is(err, kaizenservice.ErrInvalidImpact), errors.Is(err, kaizenservice.ErrInvalidEffort):
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_SCORE", err.Error(),
				"Impact and effort are scored 1 (low) to 5 (high)"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		case errors.Is(err, kaizenservice.ErrEmptyDescription), errors.Is(err, kaizenservice.ErrDescriptionTooLong):
			if fmtErr := formatter.Error("INVALID_DESCRIPTION", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		default:
			if fmtErr := formatter.Error("KAIZEN_UPDATE_ERROR", err.Error()); fmtErr != nil {
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

	fmt.Printf("✓ Updated item %d\n", item.ID)
	fmt.Printf("  %s (I%d/E%d, leverage %.2f, %s)\n",
		item.Description, item.Impact, item.Effort, item.Leverage(), item.Status)

	return nil
}
