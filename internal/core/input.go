package core

import "strings"

// Action represents a semantic control action, abstracted from physical keys.
// Movement is not an action: it travels as a vector.
type Action int

const (
	ActionNone   Action = iota
	ActionJump          // Space - start a jump when grounded
	ActionCharge        // R - start or keep charging a throw
	ActionShoot         // F, Enter - release a charged throw
	ActionSkip          // Enter - skip the current narrative scene
	ActionPause         // P - toggle the simulation clock
	ActionQuit          // C, Ctrl+C - stop the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionCharge:
		return "Charge"
	case ActionShoot:
		return "Shoot"
	case ActionSkip:
		return "Skip"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyCode names a special key. Printable characters use KeyRune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEscape
	KeyBackspace
	KeyCtrlC
	// KeyResize is delivered when the terminal changes size.
	KeyResize
)

var keyCodeNames = map[KeyCode]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeySpace:     " ",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyCtrlC:     "ctrl+c",
	KeyResize:    "resize",
}

// Modifier is a bitset of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Key is one keypress read from a terminal.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifier
}

// RuneKey builds a printable-character key.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// String returns the binding name, e.g. "a", "up", "shift+left", "alt+x".
func (k Key) String() string {
	var name string
	if k.Code == KeyRune {
		name = string(k.Rune)
	} else {
		name = keyCodeNames[k.Code]
	}
	var prefix strings.Builder
	if k.Mods&ModCtrl != 0 && k.Code != KeyCtrlC {
		prefix.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		prefix.WriteString("alt+")
	}
	// Shifted letters already arrive upper-cased.
	if k.Mods&ModShift != 0 && k.Code != KeyRune {
		prefix.WriteString("shift+")
	}
	return prefix.String() + name
}
