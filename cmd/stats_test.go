package cmd

import (
	"strings"
	"testing"
)

func TestStatsCommand(t *testing.T) {
	_, stdout, _, exitCode := testDeps(t)
	addEntries(t,
		[3]string{"one", "abcd", "go,testing"},
		[3]string{"two", "abcdef", "go"},
	)

	statsCmd.Run(statsCmd, []string{})

	out := stdout.String()
	for _, want := range []string{"Number of entries: 2", "go 2", "Average content length: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
	if *exitCode != -1 {
		t.Errorf("unexpected exit code %d", *exitCode)
	}
}

func TestStatsCommand_Empty(t *testing.T) {
	_, stdout, _, _ := testDeps(t)

	statsCmd.Run(statsCmd, []string{})

	if stdout.String() != "Number of entries: 0\n" {
		t.Errorf("expected only the count, got %q", stdout.String())
	}
}
