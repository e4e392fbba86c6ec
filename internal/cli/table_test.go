package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/xolan/devjournal/internal/entry"
)

func TestEntriesTable_Plain(t *testing.T) {
	entries := []entry.Entry{
		{
			ID:        "2",
			Title:     "learning go",
			Content:   "Channels",
			Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
			Tags:      []string{"go", "concurrency"},
		},
		{
			ID:        "1",
			Title:     "TODO",
			Content:   "Study pytest",
			Timestamp: time.Date(2024, 4, 30, 8, 0, 0, 0, time.UTC),
			Tags:      []string{},
		},
	}

	out := EntriesTable(entries, false)

	if !strings.HasPrefix(out, TableTitle+"\n") {
		t.Errorf("expected table title first, got %q", out)
	}
	for _, want := range []string{"Id", "Title", "Content", "Tags", "Date", "Learning Go", "Todo", "go, concurrency", "2024-05-01 09:30:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain table should not contain ANSI escapes")
	}
	if strings.Index(out, "Learning Go") > strings.Index(out, "Todo") {
		t.Error("rows should keep the given order")
	}
}

func TestEntriesTable_Empty(t *testing.T) {
	out := EntriesTable(nil, false)
	if !strings.Contains(out, "Id") {
		t.Errorf("empty table should still render headers, got %q", out)
	}
}
