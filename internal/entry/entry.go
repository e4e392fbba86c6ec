package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// TitleLength is the maximum number of characters kept in a title
	TitleLength = 30
	// ContentLength is the maximum number of characters kept in the content
	ContentLength = 70
	// TimestampLayout is the on-disk timestamp format (ISO-8601, second precision)
	TimestampLayout = "2006-01-02T15:04:05-07:00"
	// DisplayLayout is the human-readable timestamp format used in listings
	DisplayLayout = "2006-01-02 15:04:05"
)

// Common errors for entry construction
var (
	ErrDuplicateTitle        = errors.New("an entry with this title already exists")
	ErrInvalidInput          = errors.New("title and content cannot be empty")
	ErrTitleTooLong          = fmt.Errorf("title exceeds %d characters", TitleLength)
	ErrContentTooLong        = fmt.Errorf("content exceeds %d characters", ContentLength)
	ErrMaximumEntriesReached = errors.New("maximum number of journal entries reached")
)

// LengthPolicy decides what happens to titles and content over the length limits
type LengthPolicy string

const (
	// LengthTruncate cuts overlong fields and reports a Truncation
	LengthTruncate LengthPolicy = "truncate"
	// LengthReject fails with ErrTitleTooLong / ErrContentTooLong
	LengthReject LengthPolicy = "reject"
)

// Entry represents a single journal entry
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// Options controls how Create builds a new entry
type Options struct {
	IDWidth      int          // Zero-pad ids to this many digits (0 = unpadded)
	LengthPolicy LengthPolicy // Empty means LengthTruncate
	Now          func() time.Time
}

// Truncation describes a field that was shortened on creation
type Truncation struct {
	Field    string // "title" or "content"
	Original string
	Kept     string
}

// wireEntry is the JSON shape of an entry
type wireEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
	Tags      []string `json:"tags"`
}

// MarshalJSON writes the timestamp as an ISO-8601 string with second precision
func (e Entry) MarshalJSON() ([]byte, error) {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(wireEntry{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Timestamp: FormatTimestamp(e.Timestamp),
		Tags:      tags,
	})
}

// UnmarshalJSON reads an entry written by MarshalJSON.
// Timestamps with or without an offset are accepted; naive ones are taken as UTC.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ts, err := ParseTimestamp(w.Timestamp)
	if err != nil {
		return err
	}
	*e = Entry{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		Timestamp: ts,
		Tags:      w.Tags,
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return nil
}

// FormatTimestamp formats t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp and returns it in UTC
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", DisplayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormattedTimestamp returns the timestamp in DisplayLayout
func (e Entry) FormattedTimestamp() string {
	return e.Timestamp.UTC().Format(DisplayLayout)
}

// Create validates title and content against the existing entries and
// builds a new entry with the next id, no tags and the current UTC time.
func Create(title, content string, existing []Entry, opts Options) (Entry, []Truncation, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return Entry{}, nil, ErrInvalidInput
	}

	var truncations []Truncation
	keptTitle, titleCut := Truncate(title, TitleLength)
	keptContent, contentCut := Truncate(content, ContentLength)

	if opts.LengthPolicy == LengthReject {
		if titleCut {
			return Entry{}, nil, ErrTitleTooLong
		}
		if contentCut {
			return Entry{}, nil, ErrContentTooLong
		}
	}
	if titleCut {
		truncations = append(truncations, Truncation{Field: "title", Original: title, Kept: keptTitle})
	}
	if contentCut {
		truncations = append(truncations, Truncation{Field: "content", Original: content, Kept: keptContent})
	}

	if TitleExists(existing, keptTitle) {
		return Entry{}, nil, ErrDuplicateTitle
	}

	id, err := NextID(existing, opts.IDWidth)
	if err != nil {
		return Entry{}, nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	return Entry{
		ID:        id,
		Title:     keptTitle,
		Content:   keptContent,
		Timestamp: now().UTC().Truncate(time.Second),
		Tags:      []string{},
	}, truncations, nil
}

// TitleExists reports whether any entry has the given title (case-insensitive)
func TitleExists(entries []Entry, title string) bool {
	for _, e := range entries {
		if strings.EqualFold(e.Title, title) {
			return true
		}
	}
	return false
}

// Truncate returns s cut to at most max characters and whether it was cut
func Truncate(s string, max int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return string(runes[:max]), true
}
