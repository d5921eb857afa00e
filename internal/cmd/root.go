// Package cmd defines the ludex CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ludex",
	Short: "Discover, search, and curate video games from your terminal",
	Long: `ludex is the terminal client for the Ludex game discovery platform.
Browse the catalog, search as you type, keep a favorites list, and get
recommendations tuned to your taste, all without leaving the shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so in-flight requests
// stop on SIGINT/SIGTERM.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
