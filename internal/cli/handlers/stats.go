package handlers

import (
	"fmt"

	"github.com/xolan/devjournal/internal/cli"
)

// ShowStats prints the journal summary: entry count, tag frequencies,
// average content length and the most common tags
func ShowStats(deps *cli.Deps) {
	result := deps.Services.Stats.Summary()

	_, _ = fmt.Fprintf(deps.Stdout, "Number of entries: %d\n", result.EntryCount)
	if result.EntryCount == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule("-", cli.StatsRuleWidth))
	if len(result.TagCounts) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "\nCounts by tag:")
		_, _ = fmt.Fprintln(deps.Stdout)
		for _, tc := range result.TagCounts {
			_, _ = fmt.Fprintf(deps.Stdout, "%s %d\n", tc.Tag, tc.Count)
		}
		_, _ = fmt.Fprintln(deps.Stdout, cli.Rule("*", cli.StatsRuleWidth))
	}

	_, _ = fmt.Fprintf(deps.Stdout, "\nAverage content length: %d\n", result.RoundedAverage())
	if len(result.MostCommon) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "\n%s\n", cli.FormatMostCommon(result.MostCommon, result.MostCommonCount))
	}
}
