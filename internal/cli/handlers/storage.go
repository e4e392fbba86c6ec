package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/storage"
)

// ValidateJournal reports the health of the journal file
func ValidateJournal(deps *cli.Deps) {
	health, err := deps.Services.Storage.Validate()
	if err != nil {
		reportFailure(deps, "Failed to validate journal", err, "Check that the journal file is readable: "+deps.Services.Storage.Path())
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Journal file: %s\n", health.Path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if !health.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ No journal file yet (it is created on the first entry)")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Size:     %d bytes\n", health.Size)
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:  %d\n", health.Entries)
	_, _ = fmt.Fprintf(deps.Stdout, "Backups:  %d\n", len(deps.Services.Storage.Backups()))

	if !health.Parsed {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintf(deps.Stdout, "Parse error: %s\n", health.ParseError)
		_, _ = fmt.Fprintln(deps.Stderr, "Status: ⚠ Journal file is malformed and will be read as empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'journal restore' to recover from the most recent backup")
		return
	}

	if len(health.Problems) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Problems:")
		for _, p := range health.Problems {
			_, _ = fmt.Fprintf(deps.Stdout, "  ID %s: %s\n", p.ID, p.Detail)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Journal file is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Journal file has %d %s\n", len(health.Problems), cli.Pluralize("problem", len(health.Problems)))
	}
}

// RestoreBackup restores the journal from a backup.
// With no argument the most recent backup (.bak.1) is used.
func RestoreBackup(deps *cli.Deps, args []string) {
	svc := deps.Services.Storage

	backups := svc.Backups()
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, b := range backups {
		suffix := ""
		if b.Number == 1 {
			suffix = ", most recent"
		}
		noun := "entries"
		if b.Entries == 1 {
			noun = "entry"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (%d %s%s)\n", b.Number, b.Path, b.Entries, noun, suffix)
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", args[0])
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	if err := svc.Restore(backupNum); err != nil {
		if errors.Is(err, storage.ErrBackupNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup %d does not exist\n", backupNum)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to restore backup: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", backupNum)
}
