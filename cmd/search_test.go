package cmd

import (
	"strings"
	"testing"
)

func addEntries(t *testing.T, items ...[3]string) {
	t.Helper()
	for _, it := range items {
		if _, err := deps.Services.Entry.Add(it[0], it[1], it[2]); err != nil {
			t.Fatalf("failed to add %q: %v", it[0], err)
		}
	}
}

func setSearchFlag(t *testing.T, name, value, reset string) {
	t.Helper()
	if err := searchCmd.Flags().Set(name, value); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = searchCmd.Flags().Set(name, reset) })
}

func TestSearchCommand(t *testing.T) {
	_, stdout, _, exitCode := testDeps(t)
	addEntries(t,
		[3]string{"pytest notes", "fixtures", ""},
		[3]string{"TODO", "Study pytest", "Python,testing"},
	)

	searchCmd.Run(searchCmd, []string{"pytest"})

	out := stdout.String()
	first := strings.Index(out, "PYTEST NOTES")
	second := strings.Index(out, "ID 2:  TODO")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected title match before content match, got:\n%s", out)
	}
	if *exitCode != -1 {
		t.Errorf("unexpected exit code %d", *exitCode)
	}
}

func TestSearchCommand_JoinsArguments(t *testing.T) {
	_, stdout, _, _ := testDeps(t)
	addEntries(t, [3]string{"review", "code review checklist", ""})

	searchCmd.Run(searchCmd, []string{"code", "review"})

	if !strings.Contains(stdout.String(), "code review checklist") {
		t.Errorf("expected multi-word query to match, got %q", stdout.String())
	}
}

func TestSearchCommand_TitlesOnly(t *testing.T) {
	_, stdout, _, _ := testDeps(t)
	addEntries(t, [3]string{"TODO", "Study pytest", ""})
	setSearchFlag(t, "titles-only", "true", "false")

	searchCmd.Run(searchCmd, []string{"pytest"})

	if !strings.Contains(stdout.String(), "No match for pytest with option --titles-only in journal.") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestSearchCommand_EmptyJournal(t *testing.T) {
	_, stdout, _, _ := testDeps(t)

	searchCmd.Run(searchCmd, []string{"anything"})

	if !strings.Contains(stdout.String(), "No entries yet in Dev Journal.") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}
