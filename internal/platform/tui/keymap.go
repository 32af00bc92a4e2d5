package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// specialKeys maps Bubble Tea key types to engine key codes.
var specialKeys = map[tea.KeyType]core.Key{
	tea.KeyUp:         {Code: core.KeyUp},
	tea.KeyDown:       {Code: core.KeyDown},
	tea.KeyLeft:       {Code: core.KeyLeft},
	tea.KeyRight:      {Code: core.KeyRight},
	tea.KeyShiftUp:    {Code: core.KeyUp, Mods: core.ModShift},
	tea.KeyShiftDown:  {Code: core.KeyDown, Mods: core.ModShift},
	tea.KeyShiftLeft:  {Code: core.KeyLeft, Mods: core.ModShift},
	tea.KeyShiftRight: {Code: core.KeyRight, Mods: core.ModShift},
	tea.KeyEnter:      {Code: core.KeyEnter},
	tea.KeySpace:      {Code: core.KeySpace},
	tea.KeyEsc:        {Code: core.KeyEscape},
	tea.KeyBackspace:  {Code: core.KeyBackspace},
	tea.KeyCtrlC:      {Code: core.KeyCtrlC},
}

// KeyFromTea translates a Bubble Tea key event. It reports false for keys
// the engine has no name for.
func KeyFromTea(msg tea.KeyMsg) (core.Key, bool) {
	var (
		k  core.Key
		ok bool
	)
	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0:
		r := msg.Runes[0]
		if r == ' ' {
			k, ok = core.Key{Code: core.KeySpace}, true
		} else {
			k, ok = core.RuneKey(r), true
		}
	default:
		k, ok = specialKeys[msg.Type]
	}
	if ok && msg.Alt {
		k.Mods |= core.ModAlt
	}
	return k, ok
}

// MenuAction represents actions in menu context.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MenuActionFor maps a key to a menu action.
func MenuActionFor(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "q", "esc", "ctrl+c":
		return MenuActionQuit
	}
	return MenuActionNone
}
