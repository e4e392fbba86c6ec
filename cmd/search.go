package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries",
	Long: `Search entries for a case-insensitive substring.

Title matches are listed first, then content matches, then tag matches.
Each entry is listed once. With --titles-only only titles are searched.

Examples:
  journal search pytest
  journal search "code review" --titles-only`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		titlesOnly, _ := cmd.Flags().GetBool("titles-only")
		handlers.SearchEntries(deps, strings.Join(args, " "), titlesOnly)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("titles-only", false, "only search entry titles")
}
