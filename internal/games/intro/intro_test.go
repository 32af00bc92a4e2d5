package intro

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/storage"
)

type scene interface {
	Step(core.Tick) (core.StepResult, error)
}

// play steps a scene the way the animator does until it ends or limit
// seconds pass. It returns the time the scene ended, or -1.
func play(t *testing.T, g scene, update func(float64), limit float64) float64 {
	t.Helper()
	for now := 0.0; now < limit; now += 0.06 {
		res, err := g.Step(core.Tick{Now: now})
		if err != nil {
			t.Fatalf("Step(%.2f) error: %v", now, err)
		}
		if res.State.GameOver {
			return now
		}
		update(now)
	}
	return -1
}

func withMarker(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intro_seen")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old := markerPath
	SetMarkerPath(path)
	t.Cleanup(func() { SetMarkerPath(old) })
	return path
}

func TestIntroGreeting(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   string
	}{
		{"first visit", "", "Welcome Challenger."},
		{"returning", "True", "Welcome back."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMarker(t, tt.marker)
			g := New()
			if err := g.Reset(core.DefaultConfig()); err != nil {
				t.Fatalf("Reset() error: %v", err)
			}
			for now := 0.0; now < 2; now += 0.06 {
				g.Step(core.Tick{Now: now})
				g.Terrain().UpdateSprites(now)
			}
			g.Terrain().DrawSprites()
			row := g.Terrain().Rows()[1:2].String()
			if !strings.HasPrefix(row, tt.want) {
				t.Errorf("row 1 = %q, want prefix %q", row, tt.want)
			}
		})
	}
}

func TestIntroRunsToCompletion(t *testing.T) {
	path := withMarker(t, "")
	g := New()
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	tr := g.Terrain()

	end := play(t, g, tr.UpdateSprites, 120)
	if end < 0 {
		t.Fatal("intro did not finish")
	}
	if !g.State().Won {
		t.Error("finished intro should count as won")
	}

	h, w := tr.Height(), tr.Width()
	for _, q := range []geom.Quadrant{geom.TopRight, geom.TopLeft, geom.BottomLeft, geom.BottomRight} {
		p := q.Normalize(geom.Origin, h, w)
		got := tr.Background(p)
		if got.Rune != '∆' || got.Fore != core.ColorBlack {
			t.Errorf("corner %v = %+v, want black ∆", p, got)
		}
	}
	if got := tr.Background(geom.P(0, 5)); got.Fore != core.ColorGray {
		t.Errorf("frame should be greyed, got %+v", got)
	}

	m, _ := storage.NewMarker(path)
	if seen, _ := m.Seen(); !seen {
		t.Error("marker should be written once the intro completes")
	}
}

func TestIntroSkip(t *testing.T) {
	path := withMarker(t, "")
	g := New()
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	res, _ := g.Step(core.Tick{Now: 0.1, Action: core.ActionSkip})
	if !res.State.GameOver {
		t.Fatal("skip should end the scene")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("skipping must not write the marker")
	}
}

func TestInterlude(t *testing.T) {
	g := NewInterlude()
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	res, _ := g.Step(core.Tick{Now: 0})
	if res.State.GameOver {
		t.Fatal("interlude ended before showing its message")
	}
	if end := play(t, g, g.Terrain().UpdateSprites, 120); end < 0 {
		t.Fatal("interlude did not finish")
	}
}

func TestBadAssetsDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "line_terrain.json"), []byte(`[["a"],["b","c"]]`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := core.DefaultConfig()
	cfg.AssetsDir = dir
	if err := NewInterlude().Reset(cfg); err == nil {
		t.Error("ragged terrain should fail Reset")
	}
}
