// Package main provides the risa CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "risa",
	Short: "RIS citation file analyzer",
	Long: `risa analyzes RIS (Research Information Systems) citation export
files. It detects duplicate citations by normalized title comparison and
writes a CSV report with record counts, source-database breakdowns, and
per-citation frequency.

All commands output JSON by default for easy integration with other
tools; pass --human for human-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
