package kaizen

import (
	"github.com/spf13/cobra"
)

// KaizenCmd returns the kaizen parent command
func KaizenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kaizen",
		Short: "Manage the improvement backlog",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(AdvanceCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
