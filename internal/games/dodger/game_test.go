package dodger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
)

type effectRecorder struct {
	played []core.Effect
}

func (r *effectRecorder) Play(e core.Effect) { r.played = append(r.played, e) }

func (r *effectRecorder) has(e core.Effect) bool {
	for _, p := range r.played {
		if p == e {
			return true
		}
	}
	return false
}

func newGame(t *testing.T, yaml string) (*Game, *effectRecorder) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "dodger.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)
		t.Cleanup(func() { SetConfigPath("") })
	}
	rec := &effectRecorder{}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	cfg.Effects = rec
	g := New()
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	return g, rec
}

// frame runs one tick in the animator's order with no player input.
func frame(t *testing.T, g *Game, now float64) core.StepResult {
	t.Helper()
	res, err := g.Step(core.Tick{Now: now})
	if err != nil {
		t.Fatalf("Step(%.1f) error: %v", now, err)
	}
	tr := g.Terrain()
	if res.Freeze {
		tr.UpdateSprites(now)
		tr.DrawSprites()
	} else {
		if err := tr.MoveTimedSprites(now); err != nil {
			t.Fatalf("MoveTimedSprites(%.1f) error: %v", now, err)
		}
		tr.UpdateSprites(now)
		tr.ExpireSprites(now)
		tr.DrawSprites()
		tr.DrawPlayer()
	}
	tr.Reset()
	return res
}

func TestResetLayout(t *testing.T) {
	g, _ := newGame(t, "")
	tr := g.Terrain()

	if got := tr.Player().Position(); got != geom.P(11, 20) {
		t.Errorf("player at %v, want (11, 20)", got)
	}
	if got := tr.Player().Health(); got != 6 {
		t.Errorf("player health = %d, want 6", got)
	}
	for _, kind := range []sprite.Kind{sprite.KindTimer, sprite.KindHealthBar} {
		if tr.Count(kind) != 1 {
			t.Errorf("expected one %s sprite", kind)
		}
	}
	if n := tr.Count(sprite.KindSpinner) + tr.Count(sprite.KindEllipsis); n != 3 {
		t.Errorf("expected 3 loaders, got %d", n)
	}
	if got := tr.Background(geom.P(0, 0)); got.Fore != core.ColorMagenta {
		t.Errorf("arena corner colour = %v, want magenta", got.Fore)
	}

	frame(t, g, 0)
	if n := tr.Count(sprite.KindShield); n != 6 {
		t.Errorf("first frame should place 6 shields, got %d", n)
	}
}

func TestWaves(t *testing.T) {
	g, _ := newGame(t, "")
	tr := g.Terrain()

	for now := 0.0; now < 10.45; now += 0.1 {
		frame(t, g, now)
		if tr.Count(sprite.KindDiagonal) > 0 && now < 9.9 {
			t.Fatalf("diagonals spawned early at %.1f", now)
		}
	}
	if _, err := g.Step(core.Tick{Now: 10.5}); err != nil {
		t.Fatal(err)
	}
	if n := tr.Count(sprite.KindShield); n != 5 {
		t.Errorf("second wave should leave 5 shields, got %d", n)
	}
	if n := tr.Count(sprite.KindDiagonal); n != 4 {
		t.Errorf("diagonals after second wave = %d, want 4", n)
	}
	if n := tr.Count(sprite.KindArrow); n != 0 {
		t.Errorf("arrows join at the fourth wave, got %d", n)
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, want 10 seconds survived", g.State().Score)
	}
}

func TestLose(t *testing.T) {
	g, rec := newGame(t, "")
	tr := g.Terrain()
	frame(t, g, 0)

	tr.Player().Damage(6)
	res := frame(t, g, 0.1)
	if !res.Freeze {
		t.Fatal("a defeated player should freeze the arena")
	}
	if tr.Count(sprite.KindTimer) != 0 || tr.Count(sprite.KindSpinner) != 0 || tr.Count(sprite.KindEllipsis) != 0 {
		t.Error("timer and loaders should be removed on game over")
	}
	if got := tr.Background(geom.P(0, 0)); got.Fore != core.ColorBlack {
		t.Errorf("corners should turn black, got %v", got.Fore)
	}
	if !rec.has(core.EffectHit) || !rec.has(core.EffectGameOver) {
		t.Errorf("effects = %v, want hit and game over", rec.played)
	}

	var shown bool
	for now := 0.2; now < 20; now += 0.1 {
		res = frame(t, g, now)
		tr.DrawSprites()
		if strings.Contains(tr.Rows()[2:3].String(), "Game over!") {
			shown = true
		}
		tr.Reset()
		if res.State.GameOver {
			break
		}
	}
	if !shown {
		t.Error("game over message never fully shown")
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("final state = %+v, want lost game over", res.State)
	}
}

const shortGame = `
duration: 2
player:
  health: 6
  start: { row: 11, col: 20 }
spawn:
  interval: 5
  min_distance: 7
  starting_shields: 2
`

func TestWin(t *testing.T) {
	g, rec := newGame(t, shortGame)

	var res core.StepResult
	for now := 0.0; now < 15; now += 0.1 {
		res = frame(t, g, now)
		if res.State.GameOver {
			break
		}
	}
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("final state = %+v, want won", res.State)
	}
	if res.State.Score != 2 {
		t.Errorf("score = %d, want 2", res.State.Score)
	}
	if !rec.has(core.EffectWin) {
		t.Error("win effect not played")
	}
}

func TestDeterministicSpawns(t *testing.T) {
	positions := func() []geom.Position {
		g, _ := newGame(t, "")
		frame(t, g, 0)
		var out []geom.Position
		for _, s := range g.Terrain().Sprites() {
			if s.Kind() == sprite.KindShield {
				out = append(out, s.Position())
			}
		}
		return out
	}
	a, b := positions(), positions()
	if len(a) != len(b) {
		t.Fatalf("shield counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("shield %d at %v vs %v with the same seed", i, a[i], b[i])
		}
	}
}

func TestShieldsAwayFromPlayer(t *testing.T) {
	g, _ := newGame(t, "")
	frame(t, g, 0)
	player := g.Terrain().Player().Position()
	for _, s := range g.Terrain().Sprites() {
		if s.Kind() != sprite.KindShield {
			continue
		}
		p := s.Position()
		if p.Row < minSpawnRow {
			t.Errorf("shield at %v is inside the status area", p)
		}
		if player.VectorTo(p).Magnitude() <= 7 {
			t.Errorf("shield at %v is too close to the player at %v", p, player)
		}
	}
}
