package engine

import (
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
)

// Binding is what a key does: move the player, trigger an action, or both.
type Binding struct {
	Vector geom.Vector
	Action core.Action
}

// KeyMap binds key names (core.Key.String) to behaviour.
type KeyMap map[string]Binding

// Lookup returns the binding for k. Unbound keys map to a zero binding,
// which still overwrites any pending movement.
func (m KeyMap) Lookup(k core.Key) Binding {
	if k.Code == core.KeyCtrlC {
		return Binding{Action: core.ActionQuit}
	}
	return m[k.String()]
}

// With returns a copy of m with extra bindings layered on top.
func (m KeyMap) With(extra KeyMap) KeyMap {
	out := make(KeyMap, len(m)+len(extra))
	for k, b := range m {
		out[k] = b
	}
	for k, b := range extra {
		out[k] = b
	}
	return out
}

func move(v geom.Vector) Binding { return Binding{Vector: v} }

func act(a core.Action) Binding { return Binding{Action: a} }

// DefaultKeyMap moves one row vertically and two columns horizontally, as
// terminal cells are about twice as tall as they are wide.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"up":    move(geom.Up),
		"w":     move(geom.Up),
		"down":  move(geom.Down),
		"s":     move(geom.Down),
		"left":  move(geom.Left.Scale(2)),
		"a":     move(geom.Left.Scale(2)),
		"right": move(geom.Right.Scale(2)),
		"d":     move(geom.Right.Scale(2)),

		" ":      act(core.ActionJump),
		"r":      act(core.ActionCharge),
		"f":      act(core.ActionShoot),
		"enter":  act(core.ActionSkip),
		"n":      act(core.ActionSkip),
		"p":      act(core.ActionPause),
		"c":      act(core.ActionQuit),
		"esc":    act(core.ActionQuit),
		"ctrl+c": act(core.ActionQuit),
	}
}

// UnitKeyMap is DefaultKeyMap with single-cell horizontal steps.
func UnitKeyMap() KeyMap {
	return DefaultKeyMap().With(KeyMap{
		"left":  move(geom.Left),
		"a":     move(geom.Left),
		"right": move(geom.Right),
		"d":     move(geom.Right),
	})
}
