package core

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{RuneKey('w'), "w"},
		{RuneKey('W'), "W"},
		{Key{Code: KeyUp}, "up"},
		{Key{Code: KeyLeft, Mods: ModShift}, "shift+left"},
		{Key{Code: KeyRune, Rune: 'x', Mods: ModAlt}, "alt+x"},
		{Key{Code: KeyCtrlC, Mods: ModCtrl}, "ctrl+c"},
		{Key{Code: KeySpace}, " "},
	}
	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionQuit.String() != "Quit" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}

type recordingEffects struct{ got []Effect }

func (r *recordingEffects) Play(e Effect) { r.got = append(r.got, e) }

func TestRuntimeConfigPlay(t *testing.T) {
	var cfg RuntimeConfig
	cfg.Play(EffectHit) // nil player is silent

	rec := &recordingEffects{}
	cfg.Effects = rec
	cfg.Play(EffectScore)
	if len(rec.got) != 1 || rec.got[0] != EffectScore {
		t.Errorf("recorded %v", rec.got)
	}
}
