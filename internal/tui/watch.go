package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/xolan/devjournal/internal/tui/ui"
)

// Watcher reports changes to the journal file made by other processes.
// The parent directory is watched because saves replace the file by rename.
type Watcher struct {
	watcher *fsnotify.Watcher
	name    string
}

// NewWatcher starts watching the journal file at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{watcher: w, name: filepath.Base(abs)}, nil
}

// Next returns a command that blocks until the journal changes.
// It yields nil once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if w.relevant(event) {
					return ui.JournalChangedMsg{}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				return ui.WatchErrorMsg{Err: err}
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.name {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
