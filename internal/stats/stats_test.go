package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xolan/devjournal/internal/entry"
)

// Helper function to create an entry
func makeEntry(content string, tags ...string) entry.Entry {
	if tags == nil {
		tags = []string{}
	}
	return entry.Entry{
		Title:     content,
		Content:   content,
		Timestamp: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
		Tags:      tags,
	}
}

func TestCalculateStatistics_EmptyEntries(t *testing.T) {
	stats := CalculateStatistics([]entry.Entry{})

	if stats.EntryCount != 0 {
		t.Errorf("EntryCount = %d, expected 0", stats.EntryCount)
	}
	if len(stats.TagCounts) != 0 {
		t.Errorf("TagCounts = %v, expected none", stats.TagCounts)
	}
	if stats.AverageContentLength != 0 {
		t.Errorf("AverageContentLength = %f, expected 0", stats.AverageContentLength)
	}
	if stats.MostCommon != nil || stats.MostCommonCount != 0 {
		t.Errorf("MostCommon = %v (%d), expected none", stats.MostCommon, stats.MostCommonCount)
	}
}

func TestCalculateStatistics(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("abcd", "go", "testing"),
		makeEntry("abcdef", "python", "go"),
		makeEntry("ab", "testing"),
	}

	stats := CalculateStatistics(entries)

	if stats.EntryCount != 3 {
		t.Errorf("EntryCount = %d, expected 3", stats.EntryCount)
	}
	wantCounts := []TagCount{{"go", 2}, {"testing", 2}, {"python", 1}}
	if diff := cmp.Diff(wantCounts, stats.TagCounts); diff != "" {
		t.Errorf("TagCounts mismatch (-want +got):\n%s", diff)
	}
	if stats.AverageContentLength != 4 {
		t.Errorf("AverageContentLength = %f, expected 4", stats.AverageContentLength)
	}
	if diff := cmp.Diff([]string{"go", "testing"}, stats.MostCommon); diff != "" {
		t.Errorf("MostCommon mismatch (-want +got):\n%s", diff)
	}
	if stats.MostCommonCount != 2 {
		t.Errorf("MostCommonCount = %d, expected 2", stats.MostCommonCount)
	}
}

func TestCalculateStatistics_NoTags(t *testing.T) {
	stats := CalculateStatistics([]entry.Entry{makeEntry("abc"), makeEntry("abcde")})

	if stats.EntryCount != 2 || stats.RoundedAverage() != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if len(stats.MostCommon) != 0 {
		t.Errorf("MostCommon = %v, expected none", stats.MostCommon)
	}
}

func TestCalculateTagBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("x", "zeta", "alpha"),
		makeEntry("x", "mid", "alpha", "zeta"),
		makeEntry("x", "mid"),
	}

	got := CalculateTagBreakdown(entries)
	want := []TagCount{{"zeta", 2}, {"alpha", 2}, {"mid", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CalculateTagBreakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateTagBreakdown_CaseAndDuplicates(t *testing.T) {
	got := CalculateTagBreakdown([]entry.Entry{makeEntry("x", "Go", "go", "go")})
	want := []TagCount{{"go", 2}, {"Go", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CalculateTagBreakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundedAverage_HalfToEven(t *testing.T) {
	tests := []struct {
		avg  float64
		want int
	}{
		{2.5, 2},
		{3.5, 4},
		{4.4, 4},
		{4.6, 5},
	}
	for _, tt := range tests {
		if got := (Statistics{AverageContentLength: tt.avg}).RoundedAverage(); got != tt.want {
			t.Errorf("RoundedAverage(%v) = %d, expected %d", tt.avg, got, tt.want)
		}
	}
}

func TestAverageContentLength_CountsCharacters(t *testing.T) {
	if got := AverageContentLength([]entry.Entry{makeEntry("héllo")}); got != 5 {
		t.Errorf("AverageContentLength = %f, expected 5", got)
	}
}
