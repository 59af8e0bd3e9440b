package kaizen

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretedriver/gemba/internal/cli"
	kaizenservice "github.com/aretedriver/gemba/internal/services/kaizen"
)

// AddCmd returns the kaizen add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an improvement idea to the backlog",
		Long: `Add a backlog item scored by impact and effort, both on a 1-5 scale.
Leverage is impact divided by effort; items at 2.0 or above are quick wins.

Examples:
  # Simple idea
  gemba kaizen add --description="Move rack closer to line" --impact=4 --effort=1

  # With an owner and due date
  gemba kaizen add --description="Rebalance stations" --impact=5 --effort=3 \
    --owner="Rosa" --due=2026-09-15

  # Quiet mode for bash capture
  ITEM_ID=$(gemba kaizen add --description="Label bins" --impact=2 --effort=1 --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("description", "", "What to improve (required, use - for stdin)")
	if err := cmd.MarkFlagRequired("description"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("impact", 0, "Expected impact 1-5 (required)")
	if err := cmd.MarkFlagRequired("impact"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("effort", 0, "Estimated effort 1-5 (required)")
	if err := cmd.MarkFlagRequired("effort"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("owner", "", "Who drives the improvement")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	descriptionFlag, _ := cmd.Flags().GetString("description")
	impact, _ := cmd.Flags().GetInt("impact")
	effort, _ := cmd.Flags().GetInt("effort")
	owner, _ := cmd.Flags().GetString("owner")
	due, _ := cmd.Flags().GetString("due")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	description, err := cli.ReadStdinIfDash(descriptionFlag)
	if err != nil {
		if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	dueDate, err := cli.ParseDueDate(due)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_DUE_DATE", err.Error(),
			"Use the YYYY-MM-DD format, e.g. 2026-09-15"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
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

	item, err := cliInstance.App.KaizenService.Create(ctx, kaizenservice.CreateRequest{
		Description: description,
		Impact:      impact,
		Effort:      effort,
		DueDate:     dueDate,
		Owner:       owner,
	})
	if err != nil {
		switch {
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
			if fmtErr := formatter.Error("KAIZEN_CREATE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
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

	// Human-readable output
	fmt.Printf("✓ Added '%s' (ID: %d)\n", item.Description, item.ID)
	fmt.Printf("  Impact/Effort: %d/%d, leverage %.2f\n", item.Impact, item.Effort, item.Leverage())
	if item.IsQuickWin() {
		fmt.Println("  Quick win ⭐")
	}
	if item.Owner != "" {
		fmt.Printf("  Owner: %s\n", item.Owner)
	}
	if item.DueDate != nil {
		fmt.Printf("  Due:   %s\n", item.DueDate.Format("2006-01-02"))
	}

	return nil
}
