package filter

import "github.com/xolan/devjournal/internal/entry"

// Filter represents the tag filter applied when listing journal entries.
// An empty filter matches all entries.
type Filter struct {
	Tags []string // At least one must be present on the entry (OR logic, case-insensitive)
}

// NewFilter creates a new Filter for the given tags.
// Blank tags are dropped.
func NewFilter(tags []string) *Filter {
	return &Filter{Tags: entry.SplitFilterTags(tags)}
}

// IsEmpty returns true if the filter has no tags (matches all entries)
func (f *Filter) IsEmpty() bool {
	return len(f.Tags) == 0
}

// Matches returns true if the entry carries any of the filter tags.
func (f *Filter) Matches(e entry.Entry) bool {
	if f.IsEmpty() {
		return true
	}
	for _, tag := range f.Tags {
		if e.HasTag(tag) {
			return true
		}
	}
	return false
}

// FilterEntries returns a new slice containing only entries that match the filter criteria.
// If the filter is empty, returns all entries.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
