package entry

import "strings"

// TagSeparator selects how a raw tag string is split
type TagSeparator int

const (
	// SplitComma splits user input like "Python, testing"
	SplitComma TagSeparator = iota
	// SplitSpace splits generated phrases like "synergize scalable platforms"
	SplitSpace
)

// ParseTags splits raw into trimmed, non-empty tags, preserving order.
// Duplicate tags are kept.
func ParseTags(raw string, sep TagSeparator) []string {
	var parts []string
	switch sep {
	case SplitSpace:
		parts = strings.Fields(raw)
	default:
		parts = strings.Split(raw, ",")
	}

	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// SplitFilterTags splits --tags values that may themselves be comma-separated,
// e.g. ["python,go", "rust"] becomes ["python", "go", "rust"].
func SplitFilterTags(values []string) []string {
	var tags []string
	for _, v := range values {
		tags = append(tags, ParseTags(v, SplitComma)...)
	}
	return tags
}

// HasTag reports whether e carries tag (case-insensitive)
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
