package waste

import (
	"github.com/spf13/cobra"
)

// WasteCmd returns the waste parent command
func WasteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waste",
		Short: "Log and analyze waste observations",
	}

	cmd.AddCommand(LogCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SummaryCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
