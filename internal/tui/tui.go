// Package tui provides the interactive journal browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/devjournal/internal/logging"
	"github.com/xolan/devjournal/internal/service"
	"github.com/xolan/devjournal/internal/tui/ui"
	"github.com/xolan/devjournal/internal/tui/views"
	"go.uber.org/zap"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabStats
	TabConfig
)

var tabNames = []string{"Entries", "Stats", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services
	watcher  *Watcher
	logger   *zap.Logger

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	watchErr  error

	// View models
	entriesView views.EntriesModel
	statsView   views.StatsModel
	configView  views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model. watcher may be nil, in which case the
// journal is only reloaded on demand.
func New(services *service.Services, watcher *Watcher, logger *zap.Logger) Model {
	if logger == nil {
		logger = logging.Nop()
	}
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		watcher:       watcher,
		logger:        logger,
		activeTab:     TabEntries,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		entriesView:   views.NewEntriesModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider.AvailableThemes(), themeProvider.CurrentName(), styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.entriesView.Init(), m.statsView.Init()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturing := m.isCapturingKeys()

		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabEntries
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabStats
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.entriesView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.JournalChangedMsg:
		m.logger.Debug("journal changed on disk, reloading")
		var entriesCmd, statsCmd tea.Cmd
		m.entriesView, entriesCmd = m.entriesView.Update(msg)
		m.statsView, statsCmd = m.statsView.Update(msg)
		return m, tea.Batch(entriesCmd, statsCmd, m.nextChange())

	case ui.WatchErrorMsg:
		m.logger.Warn("journal watcher failed", zap.Error(msg.Err))
		m.watchErr = msg.Err
		return m, m.nextChange()

	case ui.ThemeChangeRequestMsg:
		if !m.themeProvider.SetTheme(msg.ThemeName) {
			return m, nil
		}
		m.styles = m.themeProvider.Styles()

		changed := ui.ThemeChangedMsg{ThemeName: m.themeProvider.CurrentName(), Styles: m.styles}
		m.entriesView, _ = m.entriesView.Update(changed)
		m.statsView, _ = m.statsView.Update(changed)
		m.configView, _ = m.configView.Update(changed)
		return m, m.saveTheme(changed.ThemeName)
	}

	switch m.activeTab {
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.styles.App.Render(m.styles.Dialog.Render(m.helpText()))
	}
	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Enter", "save"), m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabEntries:
			for _, b := range m.keys.ShortHelp() {
				parts = append(parts, m.renderKeyHelp(b.Help().Key, b.Help().Desc))
			}
		case TabStats:
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}
		parts = append(parts, m.renderKeyHelp("1-3", "views"))
	}
	if m.watchErr != nil {
		parts = append(parts, m.styles.Warning.Render("live reload unavailable"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s", m.styles.StatusKey.Render(key), m.styles.StatusHelp.Render(desc))
}

func (m Model) helpText() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n\n")
	help.WriteString("  j/k        Navigate up/down\n")
	help.WriteString("  n          New entry\n")
	help.WriteString("  e          Edit content\n")
	help.WriteString("  d          Delete entry\n")
	help.WriteString("  /          Search titles, content, tags\n")
	help.WriteString("  t          Filter by tag\n")
	help.WriteString("  c/Esc      Clear search or filter\n")
	help.WriteString("  r          Reload\n\n")
	help.WriteString(m.styles.StatusHelp.Render("Press ? to close"))
	return help.String()
}

// isCapturingKeys reports whether the active view is reading text input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.IsInputMode()
	case TabConfig:
		return m.configView.IsSelecting()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// nextChange re-arms the watcher
func (m Model) nextChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

// saveTheme persists the chosen theme to the config file
func (m Model) saveTheme(name string) tea.Cmd {
	services, logger := m.services, m.logger
	return func() tea.Msg {
		cfg := services.Config.Get()
		cfg.Theme = name
		if err := services.Config.Update(cfg); err != nil {
			logger.Warn("failed to save theme", zap.Error(err))
		}
		return nil
	}
}

// Run starts the browser, reloading whenever the journal file changes
func Run(services *service.Services, logger *zap.Logger) error {
	if logger == nil {
		logger = logging.Nop()
	}

	watcher, err := NewWatcher(services.Storage.Path())
	if err != nil {
		logger.Warn("live reload disabled", zap.Error(err))
		watcher = nil
	} else {
		defer func() { _ = watcher.Close() }()
	}

	p := tea.NewProgram(New(services, watcher, logger), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
