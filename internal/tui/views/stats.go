package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/devjournal/internal/cli"
	"github.com/xolan/devjournal/internal/service"
	"github.com/xolan/devjournal/internal/tui/ui"
)

// maxBarWidth is the length of the bar for the most common tag
const maxBarWidth = 30

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	result *service.StatsResult
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	result *service.StatsResult
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.result = msg.result

	case ui.JournalChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n\n")

	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	s := m.result.Statistics
	b.WriteString(m.renderStatLine("Number of entries:", fmt.Sprintf("%d", s.EntryCount)))
	if s.EntryCount == 0 {
		return b.String()
	}
	b.WriteString(m.renderStatLine("Average content length:", fmt.Sprintf("%d", s.RoundedAverage())))
	if len(s.MostCommon) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.StatValue.Render(cli.FormatMostCommon(s.MostCommon, s.MostCommonCount)))
		b.WriteString("\n")
	}

	if len(s.TagCounts) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("Counts by tag"))
		b.WriteString("\n")

		tagWidth := 0
		for _, tc := range s.TagCounts {
			tagWidth = max(tagWidth, len(tc.Tag))
		}
		for _, tc := range s.TagCounts {
			bar := strings.Repeat("█", max(1, tc.Count*maxBarWidth/s.MostCommonCount))
			b.WriteString(fmt.Sprintf("  %-*s %s %d\n", tagWidth, tc.Tag, m.styles.EntryTag.Render(bar), tc.Count))
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats
func (m StatsModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		return statsLoadedMsg{result: m.services.Stats.Summary()}
	}
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}
