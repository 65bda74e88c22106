// Package main is the entry point for the truthscan server CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var configPath string

// rootCmd is the base command for the truthscan CLI.
var rootCmd = &cobra.Command{
	Use:   "truthscan",
	Short: "News claim verification service",
	Long: `truthscan verifies news claims against web search evidence using an
LLM analysis pass, and caches verdicts for repeated queries.

Run 'truthscan serve' to start the HTTP API, or 'truthscan config init'
to generate a sample configuration file.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "truthscan.yaml", "path to configuration file")
	rootCmd.AddCommand(serveCmd, configCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
