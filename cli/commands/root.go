// Package commands implements the nstar CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/erikhoward/nstar/logging"
	"go.uber.org/zap"
)

var (
	manifestPath string
	tracePath    string
	logFile      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "nstar",
	Short: "Intent graph dispatch kernel",
	Long: `nstar routes free-text intent signals against a declarative graph of
known behaviors, executes the matched operations, and grows the graph
from execution history and available capabilities.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "hyper_graph.yaml", "Graph manifest file")
	rootCmd.PersistentFlags().StringVar(&tracePath, "trace", "trace/receipts.jsonl", "Receipt log file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "logs/nstar.log", "Kernel log file (empty to disable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the logger shared by all commands.
func newLogger() (*zap.SugaredLogger, error) {
	return logging.New(verbose, logFile)
}
