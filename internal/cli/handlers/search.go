package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/entry"
)

// SearchEntries prints the entries matching query, title hits first,
// then content hits, then tag hits
func SearchEntries(deps *cli.Deps, query string, titlesOnly bool) {
	result, err := deps.Services.Search.Search(query, titlesOnly)
	if err != nil {
		if errors.Is(err, entry.ErrInvalidInput) {
			_, _ = fmt.Fprintln(deps.Stdout, MsgEmptyQuery)
			return
		}
		reportFailure(deps, "Search failed", err, "")
		return
	}

	if result.Total == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, MsgNoEntries)
		return
	}

	if len(result.Matches) == 0 {
		if titlesOnly {
			_, _ = fmt.Fprintf(deps.Stdout, "No match for %s with option --titles-only in journal.\n", query)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "No match for %s in journal.\n", query)
		}
		return
	}

	rule := cli.Rule("-", cli.RuleWidth)
	for _, e := range result.Entries() {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, rule)
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatSearchHeader(e))
		_, _ = fmt.Fprintln(deps.Stdout, rule)
		_, _ = fmt.Fprintln(deps.Stdout, e.Content)
		_, _ = fmt.Fprintln(deps.Stdout, rule)
		_, _ = fmt.Fprintf(deps.Stdout, "tags: %s\n", cli.FormatTags(e.Tags))
	}
}
