// Package cli wires the quell commands.
package cli

import (
	"github.com/quell-dev/quell/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quell",
	Short: "Interactively suppress clang-tidy warnings",
	Long: `quell reads clang-tidy output and walks you through each warning,
letting you pick a NOLINT suppression style per warning and writing the
comments back into your sources without shifting line numbers.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to config file (default: ./"+config.DefaultFile+")")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
