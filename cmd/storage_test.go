package cmd

import (
	"strings"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	_, stdout, _, exitCode := testDeps(t)
	addEntries(t, [3]string{"TODO", "Study pytest", ""})

	validateCmd.Run(validateCmd, []string{})

	if !strings.Contains(stdout.String(), "Journal file is healthy") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if *exitCode != -1 {
		t.Errorf("unexpected exit code %d", *exitCode)
	}
}

func TestValidateCommand_NoFile(t *testing.T) {
	_, stdout, _, _ := testDeps(t)

	validateCmd.Run(validateCmd, []string{})

	if !strings.Contains(stdout.String(), "No journal file yet") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestRestoreCommand(t *testing.T) {
	d, stdout, _, exitCode := testDeps(t)
	addEntries(t,
		[3]string{"first", "one", ""},
		[3]string{"second", "two", ""},
	)

	restoreCmd.Run(restoreCmd, []string{})

	if !strings.Contains(stdout.String(), "Successfully restored from backup 1") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if n := len(d.Services.Entry.IDs()); n != 1 {
		t.Errorf("expected 1 entry after restore, got %d", n)
	}
	if *exitCode != -1 {
		t.Errorf("unexpected exit code %d", *exitCode)
	}
}

func TestRestoreCommand_InvalidNumber(t *testing.T) {
	_, _, stderr, exitCode := testDeps(t)

	restoreCmd.Run(restoreCmd, []string{"abc"})

	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid backup number 'abc'") {
		t.Errorf("unexpected error output %q", stderr.String())
	}
}
