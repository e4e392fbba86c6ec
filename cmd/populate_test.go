package cmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xolan/devjournal/internal/fake"
)

type countingGenerator struct {
	n int
}

func (g *countingGenerator) Title() string {
	g.n++
	return fmt.Sprintf("generated %d", g.n)
}
func (g *countingGenerator) Content() string { return "generated content" }
func (g *countingGenerator) Tags() string    { return "alpha beta" }

func withGenerator(t *testing.T, gen fake.Generator) {
	t.Helper()
	original := newGenerator
	newGenerator = func() fake.Generator { return gen }
	t.Cleanup(func() { newGenerator = original })
}

func TestPopulateCommand(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	withGenerator(t, &countingGenerator{})

	if err := populateCmd.RunE(populateCmd, []string{"5"}); err != nil {
		t.Fatalf("populate returned error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Journal populated with 5 new entries.") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if got := len(d.Services.Entry.IDs()); got != 5 {
		t.Errorf("journal has %d entries, expected 5", got)
	}
}

func TestPopulateCommand_Limit(t *testing.T) {
	_, stdout, _, _ := testDeps(t)
	withGenerator(t, &countingGenerator{})

	if err := populateCmd.RunE(populateCmd, []string{"51"}); err != nil {
		t.Fatalf("populate returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "not greater than 50") {
		t.Errorf("expected limit message, got %q", stdout.String())
	}
}

func TestPopulateCommand_InvalidNumber(t *testing.T) {
	testDeps(t)

	err := populateCmd.RunE(populateCmd, []string{"many"})
	if err == nil {
		t.Fatal("expected error for a non-numeric count")
	}
	if !strings.Contains(err.Error(), `"many"`) {
		t.Errorf("error should name the argument, got %v", err)
	}
}
