package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title> <content> <tags>",
	Short: "Add a new journal entry",
	Long: `Add a new entry to the journal.

Titles longer than 30 and content longer than 70 characters are truncated
with a warning (or rejected when length_policy = "reject"). Titles must be
unique, ignoring case. Tags are comma-separated; pass "" for none.

Example:
  journal add TODO "Study pytest" "Python,testing"`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddEntry(deps, args[0], args[1], args[2])
	},
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the content of an entry",
	Long: `Replace the content of the entry with the given id.
Without --content the new content is read from stdin.

Example:
  journal edit 3 --content "Read the testing chapter"`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryIDs,
	Run: func(cmd *cobra.Command, args []string) {
		content, _ := cmd.Flags().GetString("content")
		handlers.EditEntry(deps, args[0], content)
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:               "delete <id>",
	Short:             "Remove an entry",
	Long:              `Remove the entry with the given id from the journal.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryIDs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.DeleteEntry(deps, args[0])
	},
}

// displayCmd represents the display command
var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "List journal entries",
	Long: `List every entry as a table, most recent first.

With --tags only entries carrying at least one of the tags are shown
(case-insensitive).

Example:
  journal display --tags python,go`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tags, _ := cmd.Flags().GetStringSlice("tags")
		handlers.DisplayEntries(deps, tags)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(displayCmd)

	editCmd.Flags().StringP("content", "c", "", "new content (prompted for when omitted)")
	displayCmd.Flags().StringSliceP("tags", "t", nil, "only show entries with any of these tags")
}

// completeEntryIDs offers entry ids, described by their titles
func completeEntryIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := setup(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var ids []string
	for _, e := range deps.Services.Entry.IDs() {
		ids = append(ids, e.ID+"\t"+e.Title)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
