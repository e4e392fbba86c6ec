// Package cli provides the CLI presentation layer for the journal.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"

	"github.com/xolan/devjournal/internal/entry"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// RuleWidth is the width of the separators around search results
	RuleWidth = 70
	// StatsRuleWidth is the width of the separators in the stats summary
	StatsRuleWidth = 50
)

var titleCaser = cases.Title(language.English)

// TitleCase capitalizes each word of a title for display
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// FormatTags joins tags for display
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Rule returns a horizontal separator of width characters
func Rule(ch string, width int) string {
	return strings.Repeat(ch, width)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// FormatTruncation describes a field shortened on creation
func FormatTruncation(t entry.Truncation) string {
	limit := entry.ContentLength
	label := "Content"
	if t.Field == "title" {
		limit = entry.TitleLength
		label = "Title"
	}
	return fmt.Sprintf("%s %q exceeded %d characters and was truncated to %q", label, t.Original, limit, t.Kept)
}

// FormatSearchHeader formats the heading line of a search result
func FormatSearchHeader(e entry.Entry) string {
	return fmt.Sprintf("ID %s:  %s - (%s)", e.ID, strings.ToUpper(e.Title), entry.FormatTimestamp(e.Timestamp))
}

// FormatMostCommon formats the most common tags sentence of the stats summary
func FormatMostCommon(tags []string, count int) string {
	if len(tags) == 1 {
		return fmt.Sprintf("Most common tag: %s that appears %d %s.", tags[0], count, Pluralize("time", count))
	}
	return fmt.Sprintf("Most common tags: %s that appear %d %s.", FormatTags(tags), count, Pluralize("time", count))
}
