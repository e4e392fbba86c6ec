package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check journal file health",
	Long: `Validate the journal file and report on its health: whether it parses,
duplicate or non-numeric ids, duplicate titles and overlong titles.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateJournal(deps)
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore the journal from a backup",
	Long: `Restore the journal from one of the rotating backups written before each save.

Without an argument the most recent backup (1) is restored. The current
journal is backed up first, so a restore can itself be undone.

Examples:
  journal restore      Restore the most recent backup
  journal restore 2    Restore the second most recent backup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.RestoreBackup(deps, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(restoreCmd)
}
