package filter

import (
	"strings"

	"github.com/xolan/devjournal/internal/entry"
)

// Tier is the priority bucket a search hit was found in
type Tier int

const (
	TierTitle Tier = iota
	TierContent
	TierTag
)

func (t Tier) String() string {
	switch t {
	case TierTitle:
		return "title"
	case TierContent:
		return "content"
	case TierTag:
		return "tags"
	default:
		return "unknown"
	}
}

// Match is one search hit
type Match struct {
	Entry entry.Entry
	Tier  Tier
}

// MatchesTitle returns true if query is found in the title (case-insensitive).
func MatchesTitle(e entry.Entry, query string) bool {
	return containsFold(e.Title, query)
}

// MatchesContent returns true if query is found in the content (case-insensitive).
func MatchesContent(e entry.Entry, query string) bool {
	return containsFold(e.Content, query)
}

// MatchesTag returns true if query is found in any tag (case-insensitive).
func MatchesTag(e entry.Entry, query string) bool {
	for _, tag := range e.Tags {
		if containsFold(tag, query) {
			return true
		}
	}
	return false
}

// Search returns the entries matching query.
// With titlesOnly only titles are searched. Otherwise hits are grouped in
// three tiers (title, content, tags); an entry appears once, in the first tier
// it matches. Collection order is kept within a tier.
func Search(entries []entry.Entry, query string, titlesOnly bool) []Match {
	matches := make([]Match, 0)

	if titlesOnly {
		for _, e := range entries {
			if MatchesTitle(e, query) {
				matches = append(matches, Match{Entry: e, Tier: TierTitle})
			}
		}
		return matches
	}

	tiers := []struct {
		tier  Tier
		match func(entry.Entry, string) bool
	}{
		{TierTitle, MatchesTitle},
		{TierContent, MatchesContent},
		{TierTag, MatchesTag},
	}

	seen := make([]bool, len(entries))
	for _, t := range tiers {
		for i, e := range entries {
			if seen[i] || !t.match(e, query) {
				continue
			}
			seen[i] = true
			matches = append(matches, Match{Entry: e, Tier: t.tier})
		}
	}
	return matches
}

// Entries strips the tier information from matches.
func Entries(matches []Match) []entry.Entry {
	entries := make([]entry.Entry, len(matches))
	for i, m := range matches {
		entries[i] = m.Entry
	}
	return entries
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
