package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string // Log verbosity level
)

// rootCmd is the base command for the CLI. Invoked without a subcommand it
// starts the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "patterns-prep",
	Short: "Interactive walkthrough of fifteen classic design patterns",
	Long: `patterns-prep walks you through fifteen classic object-oriented design
patterns, each with a small runnable scenario and interview talking points.

Run it without arguments for the interactive menu, or use 'run' and 'list'
for non-interactive access.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		NewMenu(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
