// Package dodger implements the survival game: the player moves around an
// arena for a fixed time while waves of projectiles try to hit them.
package dodger

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ascii-trials/internal/anim"
	"github.com/vovakirdan/ascii-trials/internal/assets"
	"github.com/vovakirdan/ascii-trials/internal/config"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/registry"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
	"github.com/vovakirdan/ascii-trials/internal/terrain"
)

// Arena layout.
var (
	ellipsisAt  = geom.P(2, 17)
	leftSpinAt  = geom.P(2, 16)
	rightSpinAt = geom.P(2, 22)
	timerAt     = geom.P(1, 33)
	healthBarAt = geom.P(1, 1)
	gameOverAt  = geom.P(2, 15)
	cornerRunes = []rune{'∆', '•'}
)

const (
	gameOverText  = "Game over!"
	arenaWalls    = "│—∆"
	playerBitmap  = "(Ο)"
	minSpawnRow   = 5
	minSpawnCol   = 1
	finishedPause = 4.0 // seconds the last frame stays up
)

// The game-over message stays on screen until the scene ends.
var gameOverStream = anim.StreamOptions{NewlinePause: 2, PunctuationPause: 0.75}

var playerPalette = core.Palette{Fore: map[rune]core.Color{
	'(': core.ColorCyan,
	')': core.ColorCyan,
	'Ο': core.ColorRed,
}}

var arenaPalette = core.Palette{Fore: map[rune]core.Color{
	'∆': core.ColorMagenta,
	'•': core.ColorMagenta,
	'│': core.ColorGray,
	'—': core.ColorGray,
}}

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

// Game implements the dodger rules on top of the terrain engine.
type Game struct {
	cfg        config.DodgerConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	terrain   *terrain.Terrain
	player    *sprite.Sprite
	healthBar *sprite.Sprite
	timer     *anim.Timer
	timerSpr  *sprite.Sprite
	loaders   []*sprite.Sprite

	waves      map[sprite.Kind]wave
	intervals  int  // waves started so far, plus one
	finalPhase bool // colours flash and spawns grow in the last seconds
	started    bool
	frozen     bool
	gameOver   *anim.Stream
	endAt      float64 // -1 until the ending is scheduled
	lastHealth int

	state core.GameState
}

// New creates a new dodger game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodger"
}

// KeyMap moves the player one cell per keypress in every direction.
func (g *Game) KeyMap() engine.KeyMap {
	return engine.UnitKeyMap()
}

// Reset loads the arena and places the player, loaders, timer and health bar.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadDodger(configPath)
	if err != nil {
		cfg = config.DefaultDodgerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDodgerPreset(&cfg, difficultyPreset)
	}

	bg, err := assets.NewLoader(runtime.AssetsDir).Load(assets.Arena)
	if err != nil {
		return fmt.Errorf("dodger: %w", err)
	}
	player := sprite.NewHealthPlayer(core.GridFromStrings(playerBitmap),
		geom.P(cfg.Player.Start.Row, cfg.Player.Start.Col), cfg.Player.Health)
	player.Paint(playerPalette)

	t, err := terrain.New(bg, player, terrain.WithUncollidable(arenaWalls))
	if err != nil {
		return fmt.Errorf("dodger: %w", err)
	}
	t.Paint(arenaPalette)

	loaders := []*sprite.Sprite{
		sprite.NewEllipsis(ellipsisAt, 5, 0.57, false),
		sprite.NewLoadingSpinner(leftSpinAt, 0.35),
		sprite.NewLoadingSpinner(rightSpinAt, 0.74),
	}
	for _, s := range loaders {
		t.AddSprite(s)
	}
	timerSpr, timer := sprite.NewTimerSprite(timerAt, 0, cfg.Duration)
	healthBar := sprite.NewHealthBar(healthBarAt, player)
	t.AddSprite(timerSpr)
	t.AddSprite(healthBar)

	seed := runtime.Seed
	if seed == 0 {
		seed = 1
	}
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	*g = Game{
		cfg:        cfg,
		runtime:    runtime,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: difficulty,
		terrain:    t,
		player:     player,
		healthBar:  healthBar,
		timer:      timer,
		timerSpr:   timerSpr,
		loaders:    loaders,
		waves:      newWaves(cfg.Spawn),
		intervals:  1,
		endAt:      -1,
		lastHealth: player.Health(),
	}
	return nil
}

// Terrain returns the arena.
func (g *Game) Terrain() *terrain.Terrain { return g.terrain }

// State returns the current game state.
func (g *Game) State() core.GameState { return g.state }

// Step applies the wave schedule, tracks health and decides the ending.
func (g *Game) Step(tick core.Tick) (core.StepResult, error) {
	if g.state.GameOver {
		return core.StepResult{State: g.state, Freeze: true}, nil
	}
	now := tick.Now
	if !g.started {
		g.started = true
		g.timer.Restart(now)
		g.spawnShields(g.cfg.Spawn.StartingShields - g.intervals + 1)
	}

	if g.endAt >= 0 {
		if now >= g.endAt {
			g.state.GameOver = true
		}
		return core.StepResult{State: g.state, Freeze: true}, nil
	}

	if h := g.player.Health(); h < g.lastHealth {
		g.runtime.Play(core.EffectHit)
		g.lastHealth = h
	}

	if g.player.Defeated() && !g.frozen {
		g.lose()
	}
	if g.frozen {
		if g.gameOver.Exhausted() {
			g.endAt = now + finishedPause
		}
		return core.StepResult{State: g.state, Freeze: true}, nil
	}

	elapsed := g.timer.Elapsed(now)
	g.state.Score = elapsed
	if g.timer.Ended(now) {
		g.state.Won = true
		g.endAt = now + finishedPause
		g.runtime.Play(core.EffectWin)
		return core.StepResult{State: g.state, Freeze: true}, nil
	}

	g.advanceWaves(now, elapsed)
	g.topUp(now, elapsed)
	return core.StepResult{State: g.state}, nil
}

// lose clears the status row and starts the game-over message.
func (g *Game) lose() {
	for _, s := range g.loaders {
		g.terrain.RemoveSprite(s)
	}
	g.terrain.RemoveSprite(g.timerSpr)
	g.terrain.Paint(core.ForeOnly(core.ColorBlack, cornerRunes...))
	s, stream := sprite.NewCharacterStream(gameOverText, gameOverAt, gameOverStream)
	g.terrain.AddSprite(s)
	g.gameOver = stream
	g.frozen = true
	g.runtime.Play(core.EffectGameOver)
}

func init() {
	registry.Register("dodger", func() registry.Game {
		return New()
	})
	registry.SetOrder("dodger", 1)
}
