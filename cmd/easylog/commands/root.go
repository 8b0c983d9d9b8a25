// Package commands implements CLI commands for easylog.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	rootCmd = &cobra.Command{
		Use:   "easylog",
		Short: "Fast and easy leveled logging",
		Long: `easylog logs one-shot messages to the console and to log files,
with the same defaults the library applies: per-destination formats,
12-hour console timestamps and ISO file timestamps.`,
	}
)

// Execute runs the CLI.
func Execute(v string) error {
	version = v

	rootCmd.AddCommand(
		versionCmd(),
		logCmd(),
		checksumCmd(),
		levelsCmd(),
	)

	return rootCmd.Execute()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("easylog version %s\n", version)
		},
	}
}
