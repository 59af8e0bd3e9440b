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
	"github.com/aretedriver/gemba/internal/models"
	wasteservice "github.com/aretedriver/gemba/internal/services/waste"
)

// LogCmd returns the waste log subcommand
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a waste observation",
		Long: `Log one waste observation against the fixed seven-category set.

Examples:
  # Minimal observation (count defaults to 1)
  gemba waste log --category=Waiting

  # Full observation
  gemba waste log --category=Defects --area="Line 2" --shift=night --count=3 --note="paint runs"

  # Quiet mode for bash capture
  OBS_ID=$(gemba waste log --category=Motion --quiet)
`,
		RunE: runLog,
	}

	// Required flags
	cmd.Flags().String("category", "", "Waste category (required)")
	if err := cmd.MarkFlagRequired("category"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("area", "", "Work area observed")
	cmd.Flags().String("shift", "", "Shift observed")
	cmd.Flags().Int("count", 0, "Occurrence count (defaults to 1)")
	cmd.Flags().String("note", "", "Free-text note (use - for stdin)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	category, _ := cmd.Flags().GetString("category")
	area, _ := cmd.Flags().GetString("area")
	shift, _ := cmd.Flags().GetString("shift")
	count, _ := cmd.Flags().GetInt("count")
	noteFlag, _ := cmd.Flags().GetString("note")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	note, err := cli.ReadStdinIfDash(noteFlag)
	if err != nil {
		if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
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

	obs, err := cliInstance.App.WasteService.Log(ctx, wasteservice.LogRequest{
		Area:     area,
		Shift:    shift,
		Category: category,
		Count:    count,
		Note:     note,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCategory), errors.Is(err, models.ErrUnknownCategory):
			if fmtErr := formatter.ErrorWithSuggestion("UNKNOWN_CATEGORY", err.Error(),
				"Valid categories are: "+cli.CategoryNames()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		case errors.Is(err, wasteservice.ErrInvalidCount), errors.Is(err, wasteservice.ErrNoteTooLong):
			if fmtErr := formatter.Error("INVALID_OBSERVATION", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		default:
			if fmtErr := formatter.Error("WASTE_LOG_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", obs.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"observation": obs,
		})
	}

	// Human-readable output
	fmt.Printf("✓ Logged %s x%d (ID: %d)\n", obs.Category, obs.Count, obs.ID)
	if obs.Area != "" {
		fmt.Printf("  Area:  %s\n", obs.Area)
	}
	if obs.Shift != "" {
		fmt.Printf("  Shift: %s\n", obs.Shift)
	}
	if obs.Note != "" {
		fmt.Printf("  Note:  %s\n", obs.Note)
	}

	return nil
}
