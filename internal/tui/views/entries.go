package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/service"
	"github.com/xolan/devjournal/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeEdit
	entryModeDelete
	entryModeSearch
	entryModeTag
)

// Add form fields
const (
	fieldTitle = iota
	fieldContent
	fieldTags
	fieldCount
)

// detailMinWidth is the terminal width from which the detail pane sits beside the list
const detailMinWidth = 100

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	offset  int
	entries []entry.Entry
	labels  []string
	total   int
	err     error
	status  string

	// Active narrowing; a query takes precedence over tags
	query string
	tags  []string

	// Input mode state
	mode         entryMode
	form         [fieldCount]textinput.Model
	focusedInput int
	editInput    textinput.Model
	searchInput  textinput.Model
	tagInput     textinput.Model
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	m := EntriesModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}

	placeholders := [fieldCount]string{"Title", "Content", "Tags (comma-separated)"}
	limits := [fieldCount]int{entry.TitleLength, entry.ContentLength, 200}
	for i := range m.form {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.Width = 50
		m.form[i] = in
	}

	m.editInput = textinput.New()
	m.editInput.Placeholder = "New content"
	m.editInput.Width = 50

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search titles, content and tags..."
	m.searchInput.CharLimit = 100
	m.searchInput.Width = 40

	m.tagInput = textinput.New()
	m.tagInput.Placeholder = "Tags (comma-separated)"
	m.tagInput.Width = 40

	return m
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	entries []entry.Entry
	labels  []string
	total   int
	status  string
	err     error
}

// entryErrorMsg reports a failed mutation; the list is kept as is
type entryErrorMsg struct {
	err error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries("")
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd:
			return m.handleAddMode(msg)
		case entryModeEdit:
			return m.handleEditMode(msg)
		case entryModeDelete:
			return m.handleDeleteMode(msg)
		case entryModeSearch, entryModeTag:
			return m.handleQueryMode(msg)
		}
		return m.handleNormalMode(msg)

	case entriesLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.entries = msg.entries
			m.labels = msg.labels
			m.total = msg.total
			m.status = msg.status
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
			m.clampOffset()
		}
		return m, nil

	case entryErrorMsg:
		m.err = msg.err
		m.status = ""
		return m, nil

	case ui.JournalChangedMsg:
		return m, m.loadEntries("")

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

func (m EntriesModel) handleNormalMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.clampOffset()
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadEntries("")
	case key.Matches(msg, m.keys.New):
		m.mode = entryModeAdd
		for i := range m.form {
			m.form[i].SetValue("")
			m.form[i].Blur()
		}
		m.focusedInput = fieldTitle
		m.form[fieldTitle].Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if e, ok := m.Selected(); ok {
			m.mode = entryModeEdit
			m.editInput.SetValue(e.Content)
			m.editInput.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.Selected(); ok {
			m.mode = entryModeDelete
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = entryModeSearch
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.TagFilter):
		m.mode = entryModeTag
		m.tagInput.SetValue(strings.Join(m.tags, ","))
		m.tagInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Clear), key.Matches(msg, m.keys.Back):
		if m.query != "" || len(m.tags) > 0 {
			m.query = ""
			m.tags = nil
			m.cursor = 0
			return m, m.loadEntries("")
		}
	}
	return m, nil
}

// handleAddMode handles key events in the new entry form
func (m EntriesModel) handleAddMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		title := strings.TrimSpace(m.form[fieldTitle].Value())
		content := strings.TrimSpace(m.form[fieldContent].Value())
		if title == "" || content == "" {
			return m, nil
		}
		m.mode = entryModeNormal
		m.form[m.focusedInput].Blur()
		return m, m.addEntry(title, content, m.form[fieldTags].Value())
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.form[m.focusedInput].Blur()
		return m, nil
	case msg.String() == "tab", msg.String() == "shift+tab":
		m.form[m.focusedInput].Blur()
		step := 1
		if msg.String() == "shift+tab" {
			step = fieldCount - 1
		}
		m.focusedInput = (m.focusedInput + step) % fieldCount
		m.form[m.focusedInput].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.form[m.focusedInput], cmd = m.form[m.focusedInput].Update(msg)
	return m, cmd
}

// handleEditMode handles key events while editing the content of an entry
func (m EntriesModel) handleEditMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		content := strings.TrimSpace(m.editInput.Value())
		e, ok := m.Selected()
		if content == "" || !ok {
			return m, nil
		}
		m.mode = entryModeNormal
		m.editInput.Blur()
		return m, m.editEntry(e.ID, content)
	case key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
		m.editInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = entryModeNormal
		if e, ok := m.Selected(); ok {
			return m, m.deleteEntry(e.ID)
		}
	case msg.String() == "n", msg.String() == "N", key.Matches(msg, m.keys.Back):
		m.mode = entryModeNormal
	}
	return m, nil
}

// handleQueryMode handles key events in the search and tag filter inputs
func (m EntriesModel) handleQueryMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	input := &m.searchInput
	if m.mode == entryModeTag {
		input = &m.tagInput
	}

	switch {
	case key.Matches(msg, m.keys.Select):
		value := strings.TrimSpace(input.Value())
		if m.mode == entryModeSearch {
			m.query = value
		} else {
			m.query = ""
			m.tags = entry.SplitFilterTags([]string{value})
		}
		input.Blur()
		m.mode = entryModeNormal
		m.cursor = 0
		m.offset = 0
		return m, m.loadEntries("")
	case key.Matches(msg, m.keys.Back):
		input.Blur()
		m.mode = entryModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m EntriesModel) View() string {
	switch m.mode {
	case entryModeAdd:
		return m.renderAddForm()
	case entryModeEdit:
		return m.renderEditForm()
	case entryModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(m.title()))
	b.WriteString("\n")

	switch m.mode {
	case entryModeSearch:
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	case entryModeTag:
		b.WriteString(m.tagInput.View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatusHelp.Render(m.emptyMessage()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatusHelp.Render("Press 'n' to add a new entry"))
		return b.String()
	}

	listWidth := m.width
	if m.width >= detailMinWidth {
		listWidth = m.width / 2
	}
	list := RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Width:  listWidth,
		Cursor: m.cursor,
		Offset: m.offset,
		Rows:   m.visibleRows(),
		Labels: m.labels,
	})
	list += fmt.Sprintf("\n%d of %d %s", len(m.entries), m.total, pluralize("entry", m.total))

	e, _ := m.Selected()
	if m.width >= detailMinWidth {
		detail := RenderDetail(e, m.styles, m.width-listWidth-2)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(listWidth).Render(list), "  ", detail))
	} else {
		b.WriteString(list)
		b.WriteString("\n\n")
		b.WriteString(RenderDetail(e, m.styles, max(m.width, 40)))
	}

	return b.String()
}

func (m EntriesModel) title() string {
	switch {
	case m.query != "":
		return fmt.Sprintf("Search: %q", m.query)
	case len(m.tags) > 0:
		return "Tagged " + formatTags(m.tags)
	}
	return "Dev Journal"
}

func (m EntriesModel) emptyMessage() string {
	switch {
	case m.total == 0:
		return "No entries yet in Dev Journal."
	case m.query != "":
		return fmt.Sprintf("No match for %s in journal.", m.query)
	}
	return "No entries with these tags."
}

// renderAddForm renders the new entry form
func (m EntriesModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New Entry"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Title:", "Content:", "Tags:"}
	for i, in := range m.form {
		label := labels[i]
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatusHelp.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderEditForm renders the edit content form
func (m EntriesModel) renderEditForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Edit Entry"))
	b.WriteString("\n\n")
	if e, ok := m.Selected(); ok {
		b.WriteString(m.styles.StatLabel.Render("Title: "))
		b.WriteString(m.styles.StatValue.Render(cli.TitleCase(e.Title)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.editInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusHelp.Render("Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if e, ok := m.Selected(); ok {
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("ID: "))
		b.WriteString(m.styles.StatValue.Render(e.ID))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Title: "))
		b.WriteString(m.styles.StatValue.Render(e.Title))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatusHelp.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// Selected returns the entry under the cursor
func (m EntriesModel) Selected() (entry.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// visibleRows is the number of list lines that fit; 0 means unlimited
func (m EntriesModel) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	rows := m.height - 6 // title, status, totals
	if m.width < detailMinWidth {
		rows -= 10 // detail pane below the list
	}
	return max(rows, 3)
}

// clampOffset keeps the cursor inside the visible window
func (m *EntriesModel) clampOffset() {
	rows := m.visibleRows()
	if rows == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	switch m.mode {
	case entryModeAdd, entryModeEdit, entryModeSearch, entryModeTag:
		return true
	}
	return false
}

// Query returns the active search query
func (m EntriesModel) Query() string {
	return m.query
}

// Tags returns the active tag filter
func (m EntriesModel) Tags() []string {
	return m.tags
}

// loadEntries creates a command that reloads the list for the active
// query or tag filter, reporting status once loaded
func (m EntriesModel) loadEntries(status string) tea.Cmd {
	query, tags := m.query, m.tags
	return func() tea.Msg {
		if query != "" {
			result, err := m.services.Search.Search(query, false)
			if err != nil {
				return entriesLoadedMsg{err: err}
			}
			labels := make([]string, len(result.Matches))
			for i, match := range result.Matches {
				labels[i] = match.Tier.String()
			}
			return entriesLoadedMsg{entries: result.Entries(), labels: labels, total: result.Total, status: status}
		}

		result := m.services.Entry.List(tags)
		return entriesLoadedMsg{entries: result.Entries, total: result.Total, status: status}
	}
}

// addEntry creates a command to add a new entry
func (m EntriesModel) addEntry(title, content, rawTags string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Entry.Add(title, content, rawTags)
		if err != nil {
			return entryErrorMsg{err: err}
		}
		status := "Entry saved."
		if len(result.Truncations) > 0 {
			status = fmt.Sprintf("Entry saved (%s truncated).", result.Truncations[0].Field)
		}
		return m.loadEntries(status)()
	}
}

// editEntry creates a command to replace the content of an entry
func (m EntriesModel) editEntry(id, content string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Entry.Edit(id, func(entry.Entry) (string, error) {
			return content, nil
		})
		if err != nil {
			return entryErrorMsg{err: err}
		}
		return m.loadEntries("New content saved.")()
	}
}

// deleteEntry creates a command to delete an entry
func (m EntriesModel) deleteEntry(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.services.Entry.Delete(id); err != nil {
			if errors.Is(err, service.ErrEntryNotFound) {
				return m.loadEntries("Entry was already removed.")()
			}
			return entryErrorMsg{err: err}
		}
		return m.loadEntries("Entry removed.")()
	}
}
