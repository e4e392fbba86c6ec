package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/entry"
)

// AddEntry creates a new entry from title, content and comma-separated tags
func AddEntry(deps *cli.Deps, title, content, rawTags string) {
	result, err := deps.Services.Entry.Add(title, content, rawTags)
	if err != nil {
		if errors.Is(err, entry.ErrInvalidInput) {
			_, _ = fmt.Fprintln(deps.Stdout, MsgMissingFields)
			return
		}
		if reportDomainError(deps, err) {
			return
		}
		reportFailure(deps, "Failed to save entry", err, journalHint(deps))
		return
	}

	for _, t := range result.Truncations {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatTruncation(t))
	}
	_, _ = fmt.Fprintln(deps.Stdout, MsgEntrySaved)
}

// EditEntry replaces the content of an entry. When newContent is empty the
// user is prompted for it on stdin.
func EditEntry(deps *cli.Deps, id, newContent string) {
	updated, err := deps.Services.Entry.Edit(id, func(e entry.Entry) (string, error) {
		if newContent != "" {
			return newContent, nil
		}
		return cli.Prompt(deps.Stdout, deps.Stdin, fmt.Sprintf("Insert the new content for the entry %s:  ", e.Title))
	})
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidInput) && strings.TrimSpace(id) == "":
			_, _ = fmt.Fprintln(deps.Stdout, MsgMissingID)
		case errors.Is(err, entry.ErrInvalidInput), errors.Is(err, cli.ErrNoInput):
			_, _ = fmt.Fprintln(deps.Stdout)
			_, _ = fmt.Fprintln(deps.Stdout, MsgEmptyContent)
		case reportDomainError(deps, err):
		default:
			reportFailure(deps, "Failed to edit entry", err, journalHint(deps))
		}
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, MsgContentSaved)
	_, _ = fmt.Fprintln(deps.Stdout, updated.Content)
}

// DeleteEntry removes the entry with the given id
func DeleteEntry(deps *cli.Deps, id string) {
	_, err := deps.Services.Entry.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidInput):
			_, _ = fmt.Fprintln(deps.Stdout, MsgMissingID)
		case reportDomainError(deps, err):
		default:
			reportFailure(deps, "Failed to delete entry", err, journalHint(deps))
		}
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, MsgEntryRemoved)
}

// DisplayEntries prints the journal as a table, most recent first,
// keeping only entries carrying any of tags when tags is non-empty
func DisplayEntries(deps *cli.Deps, tags []string) {
	result := deps.Services.Entry.List(tags)
	if result.Total == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, MsgNoEntries)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, cli.EntriesTable(result.Entries, deps.Styled))
}
