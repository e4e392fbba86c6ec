package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
	"github.com/xolan/devjournal/internal/service"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journal entries",
	Long: fmt.Sprintf(`Export the journal to stdout for backup, migration or scripting.

Formats: %s

Examples:
  journal export > journal-backup.json
  journal export --format yaml
  journal export --format csv --tags python > python.csv
  journal export --format markdown > JOURNAL.md`, strings.Join(service.ExportFormats, ", ")),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		tags, _ := cmd.Flags().GetStringSlice("tags")
		handlers.ExportEntries(deps, format, tags)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", service.FormatJSON, "output format ("+strings.Join(service.ExportFormats, ", ")+")")
	exportCmd.Flags().StringSliceP("tags", "t", nil, "only export entries with any of these tags")
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return service.ExportFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
