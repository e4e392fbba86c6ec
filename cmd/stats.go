package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the journal",
	Long:  `Show the number of entries, the count per tag, the average content length and the most common tags.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowStats(deps)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
