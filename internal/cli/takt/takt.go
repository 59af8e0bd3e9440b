package takt

import (
	"github.com/spf13/cobra"
)

// TaktCmd returns the takt parent command
func TaktCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "takt",
		Short: "Calculate takt time",
	}

	cmd.AddCommand(CalcCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
