package stats

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/xolan/devjournal/internal/entry"
)

// Statistics contains aggregated statistics for a set of entries
type Statistics struct {
	EntryCount           int
	TagCounts            []TagCount // Most common first, ties in first-seen order
	AverageContentLength float64    // Mean content length in characters
	MostCommon           []string   // Every tag tied for the highest count
	MostCommonCount      int
}

// TagCount contains the number of occurrences of a single tag
type TagCount struct {
	Tag   string
	Count int
}

// RoundedAverage returns the average content length rounded half to even.
func (s Statistics) RoundedAverage() int {
	return int(math.RoundToEven(s.AverageContentLength))
}

// CalculateStatistics computes the journal summary for entries.
func CalculateStatistics(entries []entry.Entry) Statistics {
	stats := Statistics{
		EntryCount: len(entries),
		TagCounts:  CalculateTagBreakdown(entries),
	}

	if len(entries) == 0 {
		return stats
	}

	stats.AverageContentLength = AverageContentLength(entries)
	stats.MostCommon, stats.MostCommonCount = MostCommon(stats.TagCounts)
	return stats
}

// CalculateTagBreakdown counts tag occurrences across all entries.
// Tags are compared exactly; an entry carrying a tag twice counts twice.
func CalculateTagBreakdown(entries []entry.Entry) []TagCount {
	counts := make([]TagCount, 0)
	index := make(map[string]int)

	for _, e := range entries {
		for _, tag := range e.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}

	// Stable sort keeps first-seen order among equal counts
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// AverageContentLength returns the mean content length in characters.
func AverageContentLength(entries []entry.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, e := range entries {
		total += utf8.RuneCountInString(e.Content)
	}
	return float64(total) / float64(len(entries))
}

// MostCommon returns the tags tied for the highest count in a breakdown
// produced by CalculateTagBreakdown, and that count.
func MostCommon(counts []TagCount) ([]string, int) {
	if len(counts) == 0 {
		return nil, 0
	}
	top := counts[0].Count
	var tags []string
	for _, c := range counts {
		if c.Count != top {
			break
		}
		tags = append(tags, c.Tag)
	}
	return tags, top
}
