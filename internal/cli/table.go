package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/xolan/devjournal/internal/entry"
)

// TableTitle is printed above the entries table
const TableTitle = "Dev Journal Entries"

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)

	// Column colors: id, title, content, tags, date
	columnColors = []lipgloss.Color{"11", "9", "14", "10", "13"}
)

// EntriesTable renders entries as a table with the columns Id, Title,
// Content, Tags and Date. Titles are title-cased. Colors are only applied
// when styled is true.
func EntriesTable(entries []entry.Entry, styled bool) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			TitleCase(e.Title),
			e.Content,
			FormatTags(e.Tags),
			e.FormattedTimestamp(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Id", "Title", "Content", "Tags", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle.Align(lipgloss.Right)
			if !styled {
				return style
			}
			if row == table.HeaderRow {
				style = style.Bold(true)
			}
			if col < len(columnColors) {
				style = style.Foreground(columnColors[col])
			}
			return style
		})

	title := TableTitle
	if styled {
		title = titleStyle.Render(TableTitle)
	}
	return title + "\n" + t.Render()
}
