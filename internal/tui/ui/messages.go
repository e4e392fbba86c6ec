package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// JournalChangedMsg is broadcast when the journal file changes on disk.
type JournalChangedMsg struct{}

// WatchErrorMsg reports a failure of the journal file watcher.
type WatchErrorMsg struct {
	Err error
}
