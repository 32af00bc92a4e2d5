package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

func TestKeyFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, "up", true},
		{"shifted arrow", tea.KeyMsg{Type: tea.KeyShiftLeft}, "shift+left", true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, "r", true},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, "alt+x", true},
		{"space key", tea.KeyMsg{Type: tea.KeySpace}, " ", true},
		{"space rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, " ", true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "enter", true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c", true},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF5}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := KeyFromTea(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && k.String() != tt.want {
				t.Errorf("key = %q, want %q", k.String(), tt.want)
			}
		})
	}
}

func TestKeyFromTeaSpaceJumps(t *testing.T) {
	k, _ := KeyFromTea(tea.KeyMsg{Type: tea.KeySpace})
	if k.Code != core.KeySpace {
		t.Errorf("space mapped to %+v", k)
	}
}

func TestMenuActionFor(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, MenuActionNone},
	}
	for _, tt := range tests {
		if got := MenuActionFor(tt.msg); got != tt.want {
			t.Errorf("MenuActionFor(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
