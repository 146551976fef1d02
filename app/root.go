// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "discourse-theme-settings",
	Short: "Typed theme settings service",
	Long: `discourse-theme-settings serves and persists the typed setting values
declared by themes: validation, casting between stored and typed forms,
and lazy record creation over the configured database.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
