package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/service"
)

// User-facing messages
const (
	MsgNoEntries        = "No entries yet in Dev Journal."
	MsgEntrySaved       = "✅ Entry saved."
	MsgDuplicateTitle   = "An entry with this title already exists."
	MsgEntryNotFound    = "No entry was found with this ID"
	MsgContentSaved     = "✅ New content saved:"
	MsgEntryRemoved     = "✂ ➡ ❎  Entry removed."
	MsgMissingFields    = "Please, insert a title and the content in your journal entry."
	MsgMissingID        = "Please, provide an entry ID."
	MsgEmptyContent     = "Content cannot be empty. The entry was not changed."
	MsgEmptyQuery       = "Please, provide a search query."
	MsgMaximumEntries   = "You have already reached the maximum number of entries. Please, delete one before adding this new entry."
	MsgPopulatePositive = "Please, choose a number of items greater than 0."
)

// MsgPopulateLimit is shown when populate is asked for too many entries
var MsgPopulateLimit = fmt.Sprintf("Please, choose a number of items not greater than %d.", service.MaxPopulate)

// reportDomainError prints the message for an expected outcome (duplicate,
// not found, limits) to stdout and reports whether err was one of them.
// These outcomes keep a success exit code.
func reportDomainError(deps *cli.Deps, err error) bool {
	var msg string
	switch {
	case errors.Is(err, entry.ErrDuplicateTitle):
		msg = MsgDuplicateTitle
	case errors.Is(err, service.ErrEntryNotFound):
		msg = MsgEntryNotFound
	case errors.Is(err, entry.ErrMaximumEntriesReached):
		msg = MsgMaximumEntries
	case errors.Is(err, entry.ErrTitleTooLong):
		msg = fmt.Sprintf("The title exceeds %d characters. The entry was not saved.", entry.TitleLength)
	case errors.Is(err, entry.ErrContentTooLong):
		msg = fmt.Sprintf("The content exceeds %d characters. The entry was not saved.", entry.ContentLength)
	case errors.Is(err, service.ErrPopulateLimit):
		msg = MsgPopulateLimit
	default:
		return false
	}
	_, _ = fmt.Fprintln(deps.Stdout, msg)
	return true
}

// reportFailure prints an unexpected error and exits with status 1
func reportFailure(deps *cli.Deps, what string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", what)
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

func journalHint(deps *cli.Deps) string {
	return fmt.Sprintf("Check that the journal file is writable: %s", deps.Services.Storage.Path())
}
