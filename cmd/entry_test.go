package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestAddAndDisplayCommands(t *testing.T) {
	_, stdout, _, exitCode := testDeps(t)

	addCmd.Run(addCmd, []string{"TODO", "Study pytest", "Python,testing"})
	if !strings.Contains(stdout.String(), "Entry saved.") {
		t.Fatalf("expected save confirmation, got %q", stdout.String())
	}

	stdout.Reset()
	displayCmd.Run(displayCmd, []string{})

	output := stdout.String()
	for _, want := range []string{"Todo", "Study pytest", "Python"} {
		if !strings.Contains(output, want) {
			t.Errorf("display output missing %q:\n%s", want, output)
		}
	}
	if *exitCode != -1 {
		t.Errorf("unexpected exit code %d", *exitCode)
	}
}

func TestDisplayCommand_Empty(t *testing.T) {
	_, stdout, _, _ := testDeps(t)

	displayCmd.Run(displayCmd, []string{})

	if !strings.Contains(stdout.String(), "No entries yet in Dev Journal.") {
		t.Errorf("expected empty journal message, got %q", stdout.String())
	}
}

func TestDeleteCommand(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	if _, err := d.Services.Entry.Add("TODO", "Study pytest", ""); err != nil {
		t.Fatal(err)
	}

	deleteCmd.Run(deleteCmd, []string{"1"})

	if !strings.Contains(stdout.String(), "Entry removed.") {
		t.Errorf("expected removal message, got %q", stdout.String())
	}
	if len(d.Services.Entry.IDs()) != 0 {
		t.Error("entry should be gone")
	}
}

func TestCompleteEntryIDs(t *testing.T) {
	d, _, _, _ := testDeps(t)
	for _, title := range []string{"first", "second"} {
		if _, err := d.Services.Entry.Add(title, "content", ""); err != nil {
			t.Fatal(err)
		}
	}

	ids, directive := completeEntryIDs(editCmd, []string{}, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, expected NoFileComp", directive)
	}
	want := []string{"2\tsecond", "1\tfirst"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
}

func TestCompleteEntryIDs_OnlyFirstArgument(t *testing.T) {
	testDeps(t)

	ids, directive := completeEntryIDs(editCmd, []string{"1"}, "")
	if ids != nil {
		t.Errorf("expected no completions after the id, got %v", ids)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, expected NoFileComp", directive)
	}
}
