package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xolan/devjournal/internal/entry"
)

func searchFixture() []entry.Entry {
	return []entry.Entry{
		makeEntry("1", "Learning Go", "Channels and goroutines", "golang"),
		makeEntry("2", "Pytest", "Fixtures in GO style", "python"),
		makeEntry("3", "Databases", "Postgres indexes", "go-sql", "db"),
		makeEntry("4", "Go modules", "Go everywhere", "go"),
		makeEntry("5", "Rust", "Borrow checker", "rust"),
	}
}

type hit struct {
	ID   string
	Tier Tier
}

func hits(matches []Match) []hit {
	out := make([]hit, len(matches))
	for i, m := range matches {
		out[i] = hit{ID: m.Entry.ID, Tier: m.Tier}
	}
	return out
}

func TestSearch_Tiered(t *testing.T) {
	got := hits(Search(searchFixture(), "go", false))
	want := []hit{
		{"1", TierTitle},
		{"4", TierTitle},
		{"2", TierContent},
		{"3", TierTag},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_NoDuplicatesAcrossTiers(t *testing.T) {
	// Entry 4 matches title, content and tags but appears once
	matches := Search(searchFixture(), "go", false)
	seen := map[string]int{}
	for _, m := range matches {
		seen[m.Entry.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("entry %s appeared %d times", id, n)
		}
	}
}

func TestSearch_TitlesOnly(t *testing.T) {
	got := hits(Search(searchFixture(), "GO", true))
	want := []hit{{"1", TierTitle}, {"4", TierTitle}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	for _, titlesOnly := range []bool{true, false} {
		if got := Search(searchFixture(), "haskell", titlesOnly); len(got) != 0 {
			t.Errorf("Search(titlesOnly=%v) returned %d matches, expected 0", titlesOnly, len(got))
		}
	}
}

func TestSearch_TagTier(t *testing.T) {
	got := hits(Search(searchFixture(), "DB", false))
	want := []hit{{"3", TierTag}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries(t *testing.T) {
	matches := Search(searchFixture(), "rust", false)
	if got := ids(Entries(matches)); !cmp.Equal(got, []string{"5"}) {
		t.Errorf("Entries() = %v", got)
	}
}

func TestTierString(t *testing.T) {
	tests := map[Tier]string{TierTitle: "title", TierContent: "content", TierTag: "tags", Tier(9): "unknown"}
	for tier, want := range tests {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, expected %q", tier, got, want)
		}
	}
}
