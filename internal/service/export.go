package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/devjournal/internal/entry"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// ExportFormats lists the accepted export formats
var ExportFormats = []string{FormatJSON, FormatYAML, FormatCSV, FormatMarkdown}

// ErrUnknownFormat is returned for an export format that is not supported
var ErrUnknownFormat = errors.New("unknown export format")

// ExportService renders the journal in interchange formats
type ExportService struct {
	entries *EntryService
	now     func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService(entries *EntryService) *ExportService {
	return &ExportService{entries: entries, now: time.Now}
}

type exportMetadata struct {
	ExportTimestamp string   `json:"export_timestamp" yaml:"export_timestamp"`
	Source          string   `json:"source" yaml:"source"`
	TotalEntries    int      `json:"total_entries" yaml:"total_entries"`
	FilterTags      []string `json:"filter_tags,omitempty" yaml:"filter_tags,omitempty"`
}

type exportEntry struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Content   string   `yaml:"content"`
	Timestamp string   `yaml:"timestamp"`
	Tags      []string `yaml:"tags"`
}

// Export renders the entries selected by tags (all when empty), sorted as in
// List, in the given format.
func (s *ExportService) Export(format string, tags []string) ([]byte, error) {
	list := s.entries.List(tags)

	meta := exportMetadata{
		ExportTimestamp: entry.FormatTimestamp(s.now()),
		Source:          s.entries.store.Path(),
		TotalEntries:    len(list.Entries),
	}
	if list.Filtered {
		meta.FilterTags = tags
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return exportJSON(meta, list.Entries)
	case FormatYAML, "yml":
		return exportYAML(meta, list.Entries)
	case FormatCSV:
		return exportCSV(list.Entries)
	case FormatMarkdown, "md":
		return exportMarkdown(list.Entries), nil
	default:
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrUnknownFormat, format, strings.Join(ExportFormats, ", "))
	}
}

func exportJSON(meta exportMetadata, entries []entry.Entry) ([]byte, error) {
	output := struct {
		Metadata exportMetadata `json:"metadata"`
		Entries  []entry.Entry  `json:"entries"`
	}{meta, entries}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportYAML(meta exportMetadata, entries []entry.Entry) ([]byte, error) {
	output := struct {
		Metadata exportMetadata `yaml:"metadata"`
		Entries  []exportEntry  `yaml:"entries"`
	}{Metadata: meta, Entries: make([]exportEntry, 0, len(entries))}

	for _, e := range entries {
		output.Entries = append(output.Entries, exportEntry{
			ID:        e.ID,
			Title:     e.Title,
			Content:   e.Content,
			Timestamp: entry.FormatTimestamp(e.Timestamp),
			Tags:      e.Tags,
		})
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportCSV(entries []entry.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"id", "title", "content", "tags", "timestamp"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{e.ID, e.Title, e.Content, strings.Join(e.Tags, ";"), entry.FormatTimestamp(e.Timestamp)}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportMarkdown(entries []entry.Entry) []byte {
	var b strings.Builder
	b.WriteString("# Dev Journal\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s. %s\n\n", e.ID, e.Title)
		fmt.Fprintf(&b, "_%s_", e.FormattedTimestamp())
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, " · tags: %s", strings.Join(e.Tags, ", "))
		}
		fmt.Fprintf(&b, "\n\n%s\n", e.Content)
	}
	return []byte(b.String())
}
