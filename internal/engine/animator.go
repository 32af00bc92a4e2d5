// Package engine runs a scene as two cooperating loops: an input loop that
// turns keypresses into movement intent and control actions, and a
// simulation loop that advances and renders the terrain at a fixed rate.
//
// The loops share only the single-value slots in this package; the terrain
// and its sprites belong to the simulation goroutine.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/logging"
	"github.com/vovakirdan/ascii-trials/internal/terrain"
)

// Scene is the game-specific part of a session.
type Scene interface {
	// Terrain returns the playfield the animator composites.
	Terrain() *terrain.Terrain
	// Step applies game rules for one tick before sprites move. It must
	// report GameOver once the scene is finished.
	Step(t core.Tick) (core.StepResult, error)
}

// KeyMapper is implemented by scenes that want their own bindings.
type KeyMapper interface {
	KeyMap() KeyMap
}

// Options tune an Animator.
type Options struct {
	TickRate int // ticks per second, default 10
	Logger   *log.Logger
	Clock    *PausableClock
}

// Animator drives one scene.
type Animator struct {
	scene   Scene
	display Display
	keys    KeySource
	keymap  KeyMap

	tickRate int
	clock    *PausableClock
	logger   *log.Logger

	vectors VectorStream
	actions Slot[core.Action]
	running atomic.Bool

	frame int
	state core.GameState
}

// NewAnimator wires a scene to a display and a key source.
func NewAnimator(scene Scene, display Display, keys KeySource, opts Options) *Animator {
	if opts.TickRate <= 0 {
		opts.TickRate = 10
	}
	if opts.Clock == nil {
		opts.Clock = NewPausableClock()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	km := DefaultKeyMap()
	if m, ok := scene.(KeyMapper); ok {
		km = m.KeyMap()
	}
	return &Animator{
		scene:    scene,
		display:  display,
		keys:     keys,
		keymap:   km,
		tickRate: opts.TickRate,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
}

// Vectors exposes the movement slot, mainly for tests and frontends that
// inject input directly.
func (a *Animator) Vectors() *VectorStream { return &a.vectors }

// Running reports whether the loops are active.
func (a *Animator) Running() bool { return a.running.Load() }

// Stop asks both loops to finish.
func (a *Animator) Stop() { a.running.Store(false) }

// State returns the last state reported by the scene.
func (a *Animator) State() core.GameState { return a.state }

// HandleKey maps a keypress into the shared slots. It reports whether the
// key asked to quit.
func (a *Animator) HandleKey(k core.Key) bool {
	b := a.keymap.Lookup(k)
	a.vectors.Set(b.Vector)
	if b.Action != core.ActionNone {
		a.actions.Store(b.Action)
	}
	if b.Action == core.ActionQuit {
		a.Stop()
		return true
	}
	return false
}

// Run starts both loops and blocks until the scene finishes, the player
// quits, ctx is cancelled or a loop fails. It returns ErrStopped when the
// session ended before the scene did.
func (a *Animator) Run(ctx context.Context) (core.GameState, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.running.Store(true)
	a.logger.Debug("session started", "tick_rate", a.tickRate)

	var (
		wg       sync.WaitGroup
		inputErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		inputErr = a.inputLoop(ctx)
		if inputErr != nil {
			cancel()
		}
	}()

	simErr := a.simulationLoop(ctx)
	a.running.Store(false)
	cancel()
	wg.Wait()

	a.logger.Debug("session finished", "frames", a.frame, "game_over", a.state.GameOver)
	switch {
	case simErr != nil:
		return a.state, simErr
	case inputErr != nil && !errors.Is(inputErr, context.Canceled):
		return a.state, inputErr
	case !a.state.GameOver:
		return a.state, ErrStopped
	}
	return a.state, nil
}

func (a *Animator) inputLoop(ctx context.Context) error {
	for a.running.Load() {
		k, err := a.keys.ReadKey(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("engine: read key: %w", err)
		}
		if k.Code == core.KeyResize {
			// The frame no longer fits the terminal.
			a.logger.Info("terminal resized, stopping")
			a.Stop()
			return nil
		}
		if a.HandleKey(k) {
			return nil
		}
	}
	return nil
}

func (a *Animator) simulationLoop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.tickRate))
	defer ticker.Stop()

	for a.running.Load() {
		done, err := a.Tick()
		if err != nil {
			a.logger.Error("tick failed", "frame", a.frame, "err", err)
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// Tick runs one simulation step and renders it. It reports whether the
// scene has finished.
func (a *Animator) Tick() (bool, error) {
	action, _ := a.actions.Take()
	if action == core.ActionPause {
		paused := a.clock.Toggle()
		a.logger.Debug("pause toggled", "paused", paused)
	}
	vector := a.vectors.Take()
	now := a.clock.Now()
	t := a.scene.Terrain()

	if a.clock.Paused() {
		a.state.Paused = true
		t.DrawSprites()
		t.DrawPlayer()
		return false, a.show(t)
	}

	res, err := a.scene.Step(core.Tick{
		Now:    now,
		Frame:  a.frame,
		Action: action,
		Moved:  !vector.IsZero(),
	})
	a.frame++
	if err != nil {
		return false, err
	}
	a.state = res.State

	// the scene may have swapped its terrain
	t = a.scene.Terrain()
	if res.Freeze {
		t.UpdateSprites(now)
		t.DrawSprites()
	} else {
		if err := t.MoveTimedSprites(now); err != nil {
			return false, err
		}
		t.UpdateSprites(now)
		t.ExpireSprites(now)
		if action == core.ActionJump && t.Player() != nil {
			t.Jump(t.Player(), now)
		}
		if err := t.AdvanceJumps(now); err != nil {
			return false, err
		}
		t.MovePlayerBy(vector)
		t.CheckJumpable()
		t.DrawSprites()
		t.DrawPlayer()
	}
	if err := a.show(t); err != nil {
		return false, err
	}
	return a.state.GameOver, nil
}

// show emits the composed frame and restores the background.
func (a *Animator) show(t *terrain.Terrain) error {
	err := a.display.Show(t.Rows())
	t.Reset()
	return err
}
