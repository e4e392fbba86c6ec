package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/service"
)

// ExportEntries writes the journal to stdout in format
func ExportEntries(deps *cli.Deps, format string, tags []string) {
	out, err := deps.Services.Export.Export(format, tags)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFormat) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
		reportFailure(deps, "Failed to export journal", err, "")
		return
	}

	if _, err := deps.Stdout.Write(out); err != nil {
		reportFailure(deps, "Failed to write export", err, "")
	}
}
