package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int      // Available width for rendering
	Cursor int      // Currently selected entry index (-1 for none)
	Offset int      // First entry to render
	Rows   int      // Maximum number of entries to render (0 = all)
	Labels []string // Optional label per entry, e.g. the search tier
}

// RenderEntryList renders entries one per line with aligned id, date and title columns
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	idWidth := 0
	for _, e := range entries {
		idWidth = max(idWidth, len(e.ID))
	}

	end := len(entries)
	if opts.Rows > 0 {
		end = min(end, opts.Offset+opts.Rows)
	}

	// id + date + separators leave the rest for title and tags
	titleWidth := max(opts.Width-idWidth-len("2006-01-02")-8, 12)

	var b strings.Builder
	for i := opts.Offset; i < end; i++ {
		e := entries[i]

		title := cli.TitleCase(e.Title)
		if len(e.Tags) > 0 {
			title += "  " + styles.EntryTag.Render(formatTags(e.Tags))
		}
		if i < len(opts.Labels) && opts.Labels[i] != "" {
			title += "  " + styles.EntryTier.Render("["+opts.Labels[i]+"]")
		}

		line := fmt.Sprintf("%s  %s  %s",
			styles.EntryID.Render(fmt.Sprintf("%*s", idWidth, e.ID)),
			styles.EntryDate.Render(e.Timestamp.UTC().Format("2006-01-02")),
			truncateVisible(title, titleWidth))

		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDetail renders the full entry for the detail pane
func RenderDetail(e entry.Entry, styles ui.Styles, width int) string {
	inner := max(width-4, 20)

	var b strings.Builder
	b.WriteString(styles.ViewTitle.Render(cli.TitleCase(e.Title)))
	b.WriteString("\n")
	b.WriteString(styles.EntryID.Render("#" + e.ID))
	b.WriteString("  ")
	b.WriteString(styles.EntryDate.Render(e.FormattedTimestamp()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(e.Content))
	b.WriteString("\n\n")
	if len(e.Tags) > 0 {
		b.WriteString(styles.EntryTag.Render(formatTags(e.Tags)))
	} else {
		b.WriteString(styles.EntryDate.Render("no tags"))
	}

	return styles.Detail.Width(inner).Render(b.String())
}

func formatTags(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

// truncateVisible cuts s to width visible cells, ignoring ANSI sequences
func truncateVisible(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width-1).Render(s) + "…"
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
