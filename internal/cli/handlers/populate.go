package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/fake"
)

// Populate adds n synthetic entries from gen
func Populate(deps *cli.Deps, n int, gen fake.Generator) {
	result, err := deps.Services.Entry.Populate(n, gen)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidInput):
			_, _ = fmt.Fprintln(deps.Stdout, MsgPopulatePositive)
			return
		case reportDomainError(deps, err):
			if result == nil {
				return
			}
		default:
			reportFailure(deps, "Failed to populate journal", err, journalHint(deps))
			return
		}
	}

	for _, t := range result.Truncations {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatTruncation(t))
	}
	if result.Skipped > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Skipped %d duplicate %s.\n", result.Skipped, cli.Pluralize("title", result.Skipped))
	}

	added := len(result.Added)
	if added != result.Requested {
		reason := "the generator ran out of usable entries"
		if result.Skipped > 0 {
			reason = "some duplicates were skipped"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "✅ Journal populated with %d new entries (requested %d; %s).\n", added, result.Requested, reason)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "✅ Journal populated with %d new entries.\n", added)
}
