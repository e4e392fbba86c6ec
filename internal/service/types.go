// Package service provides the operations layer for the journal.
// Every mutation runs inside one storage session (load, mutate, save);
// read-only queries load once. It serves both the CLI and the TUI.
package service

import (
	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/filter"
	"github.com/xolan/devjournal/internal/stats"
)

// MaxPopulate is the largest number of synthetic entries one populate may add
const MaxPopulate = 50

// AddResult contains the entry created by Add
type AddResult struct {
	Entry       entry.Entry
	Truncations []entry.Truncation
}

// ListResult contains the results of listing entries
type ListResult struct {
	Entries  []entry.Entry // Sorted by numeric id, most recent first
	Total    int           // Number of entries in the journal before filtering
	Filtered bool          // Whether a tag filter was applied
}

// SearchResult contains the results of a search
type SearchResult struct {
	Query      string
	TitlesOnly bool
	Matches    []filter.Match // Title hits, then content hits, then tag hits
	Total      int            // Number of entries in the journal
}

// Entries returns the matched entries in result order
func (r SearchResult) Entries() []entry.Entry {
	return filter.Entries(r.Matches)
}

// StatsResult contains the journal summary
type StatsResult struct {
	stats.Statistics
}

// PopulateResult reports the outcome of a populate run
type PopulateResult struct {
	Requested   int
	Added       []entry.Entry
	Skipped     int  // Generated titles rejected as duplicates
	Exhausted   bool // Generation stopped before Requested entries were added
	Truncations []entry.Truncation
}
