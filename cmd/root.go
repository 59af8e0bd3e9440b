package cmd

import (
	"github.com/spf13/cobra"

	capacitycmd "github.com/aretedriver/gemba/internal/cli/capacity"
	kaizencmd "github.com/aretedriver/gemba/internal/cli/kaizen"
	taktcmd "github.com/aretedriver/gemba/internal/cli/takt"
	wastecmd "github.com/aretedriver/gemba/internal/cli/waste"
	"github.com/aretedriver/gemba/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "gemba",
	Short: "Gemba - a terminal lean manufacturing companion",
	Long: `Gemba is a terminal companion for lean practitioners: takt time
calculation, a seven-wastes observation log, and a kaizen backlog.

Run with no arguments to open the interactive dashboard; use the
subcommands for one-shot calculations and scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(taktcmd.TaktCmd())
	rootCmd.AddCommand(wastecmd.WasteCmd())
	rootCmd.AddCommand(kaizencmd.KaizenCmd())
	rootCmd.AddCommand(capacitycmd.CapacityCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
