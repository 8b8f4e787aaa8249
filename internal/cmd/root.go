package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "compass - Workflow classifier for AI coding assistants",
	Long: `compass decides which execution workflow fits a coding task.

It inspects the task description with a deterministic keyword engine and
recommends one of:
  - Orchestrated    streamlined handling of small, low-risk tasks
  - CompleteSystem  full pipeline with comprehensive validation
  - PhaseBased      staged execution for system-wide or oversized work

The same text always yields the same recommendation, so results are
reproducible across runs and machines.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Core commands
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	// Note: mcpCmd is registered in mcp.go's init()
}
