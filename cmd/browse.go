package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/tui"
)

// runBrowser starts the interactive browser; tests replace it
var runBrowser = tui.Run

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the journal interactively",
	Long: `Open a full-screen browser over the journal.

Entries, statistics and configuration are shown in tabs. Entries can be
added, edited, deleted, searched and filtered by tag. The view reloads
when the journal file is changed by another process.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBrowser(deps.Services, deps.Logger); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error running browser: %v\n", err)
			deps.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
