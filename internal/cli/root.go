package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "srssim",
	Short:         "Simulate spaced repetition workload",
	Long:          "srssim plays a synthetic vocabulary deck forward day by day through the SM-2 scheduler and reports the daily study load a deck configuration produces.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(simulateCmd)
}
