// Package basketball implements the shooting game: move the shooter along
// the court, charge a throw and land the ball in the hoop.
package basketball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ascii-trials/internal/algebra"
	"github.com/vovakirdan/ascii-trials/internal/assets"
	"github.com/vovakirdan/ascii-trials/internal/config"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/registry"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
	"github.com/vovakirdan/ascii-trials/internal/terrain"
)

const (
	ballRune   = 'O'
	courtFloor = "⎻"
)

// inHoop is where a scored ball rests, relative to the hoop.
var inHoop = geom.P(1, 1)

// scoringCells are the cells, relative to the hoop, that count as a basket.
var scoringCells = []geom.Position{geom.P(0, 0), geom.P(0, 1), inHoop}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game implements the basketball rules.
type Game struct {
	cfg     config.BasketballConfig
	runtime core.RuntimeConfig

	terrain *terrain.Terrain
	player  *sprite.Sprite
	ball    *sprite.Sprite // in flight, nil while held
	hoop    geom.Position
	scoring map[geom.Position]bool

	charging    bool
	chargeStart float64
	throwAngle  algebra.ExponentialEquation
	finishAt    float64 // -1 until the last basket

	state core.GameState
}

// New creates a new basketball game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "basketball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Basketball"
}

// KeyMap only moves the shooter sideways; R charges and F releases.
func (g *Game) KeyMap() engine.KeyMap {
	left := engine.Binding{Vector: geom.Left}
	right := engine.Binding{Vector: geom.Right}
	return engine.KeyMap{
		"left":   left,
		"a":      left,
		"right":  right,
		"d":      right,
		"r":      {Action: core.ActionCharge},
		"f":      {Action: core.ActionShoot},
		"enter":  {Action: core.ActionShoot},
		"p":      {Action: core.ActionPause},
		"c":      {Action: core.ActionQuit},
		"esc":    {Action: core.ActionQuit},
		"ctrl+c": {Action: core.ActionQuit},
	}
}

// Reset loads the court, the shooter and the hoop.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadBasketball(configPath)
	if err != nil {
		cfg = config.DefaultBasketballConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBasketballPreset(&cfg, difficultyPreset)
	}

	loader := assets.NewLoader(runtime.AssetsDir)
	bitmaps := make(map[string]core.Grid, 3)
	for _, name := range []string{assets.Court, assets.Shooter, assets.Hoop} {
		grid, err := loader.Load(name)
		if err != nil {
			return fmt.Errorf("basketball: %w", err)
		}
		bitmaps[name] = grid
	}

	player := sprite.NewPlayer(bitmaps[assets.Shooter], geom.P(cfg.Shooter.Row, cfg.Shooter.Col))
	player.Paint(core.ForeOnly(core.ColorRed, ballRune))
	t, err := terrain.New(bitmaps[assets.Court], player,
		terrain.WithGround(courtFloor), terrain.WithUncollidable(courtFloor))
	if err != nil {
		return fmt.Errorf("basketball: %w", err)
	}
	hoop := geom.P(cfg.Hoop.Row, cfg.Hoop.Col)
	t.AddSprite(sprite.NewStatic(bitmaps[assets.Hoop], hoop))

	scoring := make(map[geom.Position]bool, len(scoringCells))
	for _, c := range scoringCells {
		scoring[geom.RelativeTo(c, hoop)] = true
	}

	*g = Game{
		cfg:        cfg,
		runtime:    runtime,
		terrain:    t,
		player:     player,
		hoop:       hoop,
		scoring:    scoring,
		throwAngle: algebra.ExponentialEquation{Limit: cfg.Throw.AngleLimit},
		finishAt:   -1,
	}
	return nil
}

// Terrain returns the court.
func (g *Game) Terrain() *terrain.Terrain { return g.terrain }

// State returns the current game state.
func (g *Game) State() core.GameState { return g.state }

// Step resolves the ball in flight, then handles charging and throwing.
func (g *Game) Step(tick core.Tick) (core.StepResult, error) {
	now := tick.Now
	switch {
	case g.state.GameOver:
		return core.StepResult{State: g.state}, nil
	case g.finishAt >= 0:
		if now >= g.finishAt {
			g.state.GameOver = true
		}
		return core.StepResult{State: g.state}, nil
	}

	if g.ball != nil {
		switch {
		case !g.ball.Alive():
			g.ball = nil
			g.holdBall()
		case g.scoring[g.ball.Position()]:
			g.score(now)
		}
	}

	if g.ball == nil && g.finishAt < 0 {
		if tick.Action == core.ActionCharge && !g.charging {
			g.charging = true
			g.chargeStart = now
		}
		if g.charging && (tick.Action == core.ActionShoot || tick.Moved) {
			g.throw(now)
		}
	}
	return core.StepResult{State: g.state}, nil
}

// Charging reports whether a throw is being charged.
func (g *Game) Charging() bool { return g.charging }

// ThrowAngle is the angle a throw released at now would have.
func (g *Game) ThrowAngle(now float64) float64 {
	if !g.charging {
		return 0
	}
	return g.throwAngle.ValueAt(now - g.chargeStart)
}

// throw launches the held ball from just above the shooter's hand.
func (g *Game) throw(now float64) {
	angle := g.ThrowAngle(now)
	velocity := 0.0
	if g.cfg.Throw.VelocityDivisor > 0 {
		velocity = math.Floor(angle / g.cfg.Throw.VelocityDivisor)
	}

	// Rows in the bottom-left frame count upwards from the last row.
	pos := g.player.Position()
	off := g.cfg.BallOffset
	start := geom.P(g.terrain.Height()-pos.Row+off.Row, pos.Col+off.Col).Move(geom.Up.Scale(2))

	m := sprite.NewProjectile(velocity, angle, g.cfg.Throw.Gravity, geom.BottomLeft, start, now)
	ball := sprite.NewBasketball(ballRune, m)
	ball.Paint(core.Palette{ForeAll: core.ColorRed})
	g.terrain.AddSprite(ball)
	g.ball = ball
	g.charging = false
	g.player.SetGlyph(off.Row, off.Col, core.Blank())
	g.runtime.Play(core.EffectThrow)
}

// holdBall puts the ball back in the shooter's hand.
func (g *Game) holdBall() {
	off := g.cfg.BallOffset
	g.player.SetGlyph(off.Row, off.Col, core.Glyph{Rune: ballRune, Fore: core.ColorRed})
}

// score parks the ball in the hoop. Until the last basket the parked ball
// disappears after the end delay and the shooter gets a new one.
func (g *Game) score(now float64) {
	g.terrain.RemoveSprite(g.ball)
	g.ball = nil
	g.state.Score++

	var opts []sprite.Option
	final := g.state.Score >= max(g.cfg.Baskets, 1)
	if !final {
		opts = append(opts, sprite.WithLifetime(now+g.cfg.EndDelay))
	}
	parked := sprite.NewStatic(core.Grid{{core.G(ballRune)}}, geom.RelativeTo(inHoop, g.hoop), opts...)
	parked.Paint(core.Palette{ForeAll: core.ColorRed})
	g.terrain.AddSprite(parked)

	if final {
		g.state.Won = true
		g.finishAt = now + 2*g.cfg.EndDelay
		g.runtime.Play(core.EffectWin)
		return
	}
	g.holdBall()
	g.runtime.Play(core.EffectScore)
}

func init() {
	registry.Register("basketball", func() registry.Game {
		return New()
	})
	registry.SetOrder("basketball", 3)
}
