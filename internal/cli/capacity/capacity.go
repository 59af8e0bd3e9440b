package capacity

import (
	"github.com/spf13/cobra"
)

// CapacityCmd returns the capacity parent command
func CapacityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Plan daily staffing capacity",
	}

	cmd.AddCommand(PlanCmd())

	return cmd
}
