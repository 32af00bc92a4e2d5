// Package intro implements the narrative scenes that open the campaign and
// bridge its two games.
package intro

import (
	"fmt"

	"github.com/vovakirdan/ascii-trials/internal/anim"
	"github.com/vovakirdan/ascii-trials/internal/assets"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/registry"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
	"github.com/vovakirdan/ascii-trials/internal/storage"
	"github.com/vovakirdan/ascii-trials/internal/terrain"
)

const (
	firstVisitText = "Welcome Challenger. You will play two games to prove your worth.\n" +
		"Complete them both and you will be a victor.\n" +
		"All you will need for them are the arrow keys.\n" +
		"The second game requires the R key.\n" +
		"Good luck."
	returningText = "Welcome back. You're here for another chance, aren't you?\n" +
		"Let's get straight into it."
	briefingText = "In this game, you must survive for 45 seconds.\n" +
		"All four arrow keys may be used for movement.\n" +
		"Use the randomly spawning shields to protect you.\n"
	interludeText = "Well done on completing the first game.\n" +
		"In this game you must score 1 basket.\n" +
		"Use the left and right arrow keys to move.\n" +
		"Hold the R key to increase the angle at which the ball is thrown.\n" +
		"Have fun."
)

// Pauses between the narrative stages, in seconds.
const (
	briefingDelay = 2.0
	closingDelay  = 3.0
)

var (
	messagePos = geom.P(1, 0)
	ellipsisAt = geom.P(23, 66)
	spinnerAt  = geom.P(23, 65)
)

// markerPath stores the intro-seen flag location set via CLI.
var markerPath = storage.DefaultMarkerPath

// SetMarkerPath sets where the intro-seen flag is read and written.
func SetMarkerPath(path string) {
	markerPath = path
}

// newStage builds the blank line terrain every narrative scene uses.
func newStage(cfg core.RuntimeConfig) (*terrain.Terrain, error) {
	bg, err := assets.NewLoader(cfg.AssetsDir).Load(assets.LineTerrain)
	if err != nil {
		return nil, fmt.Errorf("intro: %w", err)
	}
	player := sprite.NewPlayer(core.Grid{{core.Blank()}}, geom.Origin)
	return terrain.New(bg, player)
}

// Intro greets the player, then explains the first game.
type Intro struct {
	terrain  *terrain.Terrain
	marker   *storage.Marker
	greeting *anim.Stream
	briefing *anim.Stream

	briefAt  float64 // when the briefing text appears, -1 until scheduled
	finishAt float64 // -1 until the briefing is exhausted
	state    core.GameState
}

// New creates the opening scene.
func New() *Intro {
	return &Intro{}
}

func (g *Intro) ID() string    { return "intro" }
func (g *Intro) Title() string { return "Prologue" }

// Narrative marks the prologue as a story scene.
func (g *Intro) Narrative() bool { return true }

// Reset loads the stage and picks the greeting from the intro-seen flag.
func (g *Intro) Reset(cfg core.RuntimeConfig) error {
	t, err := newStage(cfg)
	if err != nil {
		return err
	}
	marker, err := storage.NewMarker(markerPath)
	if err != nil {
		return fmt.Errorf("intro: %w", err)
	}
	seen, err := marker.Seen()
	if err != nil {
		return fmt.Errorf("intro: %w", err)
	}

	text := firstVisitText
	if seen {
		text = returningText
	}
	greeting, stream := sprite.NewCharacterStream(text, messagePos, anim.DefaultStreamOptions)
	t.AddSprite(greeting)
	t.AddSprite(sprite.NewEllipsis(ellipsisAt, 3, 0.43, false))
	t.AddSprite(sprite.NewLoadingSpinner(spinnerAt, 0.5))

	*g = Intro{
		terrain:  t,
		marker:   marker,
		greeting: stream,
		briefAt:  -1,
		finishAt: -1,
	}
	return nil
}

func (g *Intro) Terrain() *terrain.Terrain { return g.terrain }
func (g *Intro) State() core.GameState     { return g.state }

// Step advances the greeting, the darkened briefing stage and the close.
func (g *Intro) Step(tick core.Tick) (core.StepResult, error) {
	switch {
	case g.state.GameOver:
	case tick.Action == core.ActionSkip:
		g.state.GameOver = true
		g.state.Won = true
	case g.briefAt < 0 && g.greeting.Exhausted():
		g.dimStage()
		g.briefAt = tick.Now + briefingDelay
	case g.briefAt >= 0 && g.briefing == nil && tick.Now >= g.briefAt:
		s, stream := sprite.NewCharacterStream(briefingText, messagePos, anim.DefaultStreamOptions)
		g.terrain.AddSprite(s)
		g.briefing = stream
	case g.briefing != nil && g.finishAt < 0 && g.briefing.Exhausted():
		g.finishAt = tick.Now + closingDelay
	case g.finishAt >= 0 && tick.Now >= g.finishAt:
		if err := g.marker.Set(true); err != nil {
			return core.StepResult{State: g.state}, fmt.Errorf("intro: %w", err)
		}
		g.state.GameOver = true
		g.state.Won = true
	}
	return core.StepResult{State: g.state}, nil
}

// dimStage clears the greeting and loaders, greys the frame and marks its
// corners.
func (g *Intro) dimStage() {
	for _, s := range g.terrain.Sprites() {
		g.terrain.RemoveSprite(s)
	}
	g.terrain.Paint(core.Palette{ForeAll: core.ColorGray})
	h, w := g.terrain.Height(), g.terrain.Width()
	for _, q := range []geom.Quadrant{geom.TopRight, geom.TopLeft, geom.BottomLeft, geom.BottomRight} {
		g.terrain.SetCell(q.Normalize(geom.Origin, h, w), '∆')
	}
	g.terrain.Paint(core.ForeOnly(core.ColorBlack, '∆'))
}

// Interlude congratulates the player and explains the second game.
type Interlude struct {
	terrain *terrain.Terrain
	message *anim.Stream
	state   core.GameState
}

// NewInterlude creates the scene shown between the two games.
func NewInterlude() *Interlude {
	return &Interlude{}
}

func (g *Interlude) ID() string      { return "interlude" }
func (g *Interlude) Title() string   { return "Interlude" }
func (g *Interlude) Narrative() bool { return true }

func (g *Interlude) Reset(cfg core.RuntimeConfig) error {
	t, err := newStage(cfg)
	if err != nil {
		return err
	}
	s, stream := sprite.NewCharacterStream(interludeText, messagePos, anim.DefaultStreamOptions)
	t.AddSprite(s)
	t.AddSprite(sprite.NewEllipsis(ellipsisAt, 3, 0.71, false))
	t.AddSprite(sprite.NewLoadingSpinner(spinnerAt, 0.67))
	*g = Interlude{terrain: t, message: stream}
	return nil
}

func (g *Interlude) Terrain() *terrain.Terrain { return g.terrain }
func (g *Interlude) State() core.GameState     { return g.state }

// Step ends the scene once the whole message has been revealed.
func (g *Interlude) Step(tick core.Tick) (core.StepResult, error) {
	if tick.Action == core.ActionSkip || g.message.Exhausted() {
		g.state.GameOver = true
		g.state.Won = true
	}
	return core.StepResult{State: g.state}, nil
}

func init() {
	registry.Register("intro", func() registry.Game {
		return New()
	})
	registry.Register("interlude", func() registry.Game {
		return NewInterlude()
	})
	registry.SetOrder("intro", 0)
	registry.SetOrder("interlude", 2)
}
