package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Tab3", keys.Tab3},
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Refresh", keys.Refresh},
		{"Confirm", keys.Confirm},
		{"New", keys.New},
		{"Edit", keys.Edit},
		{"Delete", keys.Delete},
		{"Search", keys.Search},
		{"TagFilter", keys.TagFilter},
		{"Clear", keys.Clear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("%s binding has no keys", tt.name)
			}
			if tt.binding.Help().Desc == "" {
				t.Errorf("%s binding has no help text", tt.name)
			}
		})
	}
}

func TestKeyMap_Matches(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"j moves down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, keys.Down},
		{"arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, keys.Up},
		{"slash searches", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, keys.Search},
		{"Y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, keys.Confirm},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
		{"shift+tab goes back", tea.KeyMsg{Type: tea.KeyShiftTab}, keys.PrevTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected %q to match", tt.msg.String())
			}
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	help := DefaultKeyMap().ShortHelp()
	if len(help) == 0 {
		t.Fatal("expected short help bindings")
	}
	for _, b := range help {
		if b.Help().Key == "" {
			t.Error("short help binding without a key label")
		}
	}
}
