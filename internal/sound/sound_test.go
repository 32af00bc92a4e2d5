package sound

import (
	"testing"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// drain counts the samples a finite streamer produces.
func drain(t *testing.T, e core.Effect) int {
	t.Helper()
	s := Streamer(e, 0.5)
	if s == nil {
		t.Fatalf("Streamer(%d) = nil", e)
	}
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("Streamer(%d) did not end", e)
	return 0
}

func TestStreamerLength(t *testing.T) {
	effects := []core.Effect{
		core.EffectHit,
		core.EffectScore,
		core.EffectThrow,
		core.EffectWin,
		core.EffectGameOver,
	}
	for _, e := range effects {
		want := 0
		for _, n := range cues[e] {
			want += sampleRate.N(n.dur)
		}
		if want == 0 {
			t.Fatalf("cue %d has no notes", e)
		}
		if got := drain(t, e); got != want {
			t.Errorf("effect %d: %d samples, want %d", e, got, want)
		}
	}
}

func TestStreamerUnknown(t *testing.T) {
	if s := Streamer(core.EffectNone, 1); s != nil {
		t.Error("EffectNone should have no cue")
	}
}

func TestSilentVolume(t *testing.T) {
	s := Streamer(core.EffectHit, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
}

func TestNop(t *testing.T) {
	var p core.EffectPlayer = Nop{}
	p.Play(core.EffectWin)
}
