package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/xolan/devjournal/internal/entry"
)

// Problem describes one inconsistency found in the journal file
type Problem struct {
	ID     string // Entry id the problem refers to (empty for file-level problems)
	Detail string
}

// Health contains the health status of the journal file.
type Health struct {
	Path       string
	Exists     bool
	Size       int64     // File size in bytes
	Parsed     bool      // Whether the whole file decoded as a JSON array of entries
	ParseError string    // Decoder error when Parsed is false
	Entries    int       // Number of decoded entries
	Problems   []Problem // Per-entry inconsistencies
}

// Healthy reports whether the file is absent or parsed without problems.
func (h Health) Healthy() bool {
	if !h.Exists {
		return true
	}
	return h.Parsed && len(h.Problems) == 0
}

// Validate inspects the journal file without modifying it.
// A missing file is healthy and empty. Only unexpected read failures are returned as errors.
func (s *Store) Validate() (Health, error) {
	health := Health{Path: s.path, Problems: []Problem{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return health, nil
		}
		return health, err
	}
	health.Exists = true
	health.Size = int64(len(data))

	if len(bytes.TrimSpace(data)) == 0 {
		health.Parsed = true
		return health, nil
	}

	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		health.ParseError = err.Error()
		return health, nil
	}
	health.Parsed = true
	health.Entries = len(entries)
	health.Problems = checkEntries(entries)

	return health, nil
}

func checkEntries(entries []entry.Entry) []Problem {
	problems := []Problem{}
	seenIDs := make(map[int]bool)
	seenTitles := make(map[string]bool)

	for _, e := range entries {
		n, ok := entry.NumericID(e.ID)
		switch {
		case !ok:
			problems = append(problems, Problem{ID: e.ID, Detail: fmt.Sprintf("id %q is not a number", e.ID)})
		case seenIDs[n]:
			problems = append(problems, Problem{ID: e.ID, Detail: "duplicate id"})
		case n > entry.MaxID:
			problems = append(problems, Problem{ID: e.ID, Detail: fmt.Sprintf("id exceeds %d", entry.MaxID)})
		}
		if ok {
			seenIDs[n] = true
		}

		title := strings.ToLower(e.Title)
		if seenTitles[title] {
			problems = append(problems, Problem{ID: e.ID, Detail: fmt.Sprintf("duplicate title %q", e.Title)})
		}
		seenTitles[title] = true

		if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Content) == "" {
			problems = append(problems, Problem{ID: e.ID, Detail: "blank title or content"})
		}
		if utf8.RuneCountInString(e.Title) > entry.TitleLength {
			problems = append(problems, Problem{ID: e.ID, Detail: fmt.Sprintf("title longer than %d characters", entry.TitleLength)})
		}
	}
	return problems
}
