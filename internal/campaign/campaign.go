// Package campaign plays registered scenes one after another on a shared
// display and key source, recording the outcome of every scored game.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/logging"
	"github.com/vovakirdan/ascii-trials/internal/registry"
	"github.com/vovakirdan/ascii-trials/internal/storage"
)

// Recorder persists finished games. *storage.Store implements it.
type Recorder interface {
	SaveResult(r storage.Result) (int64, error)
}

// Outcome is how one scene ended.
type Outcome struct {
	GameID    string
	Title     string
	State     core.GameState
	Duration  time.Duration // session clock time, pauses excluded
	Narrative bool
}

// Runner starts scenes with a shared runtime configuration.
type Runner struct {
	Runtime  core.RuntimeConfig
	TickRate int
	Logger   *log.Logger
	Results  Recorder // optional
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}

// Play runs a single scene to completion. A scene the player quit returns
// engine.ErrStopped along with the partial outcome, which is not recorded.
func (r *Runner) Play(ctx context.Context, id string, display engine.Display, keys engine.KeySource) (Outcome, error) {
	g, err := registry.Create(id)
	if err != nil {
		return Outcome{GameID: id}, err
	}
	if err := g.Reset(r.Runtime); err != nil {
		return Outcome{GameID: id, Title: g.Title()}, fmt.Errorf("campaign: reset %s: %w", id, err)
	}

	clock := engine.NewPausableClock()
	animator := engine.NewAnimator(g, display, keys, engine.Options{
		TickRate: r.TickRate,
		Logger:   r.logger().With("scene", id),
		Clock:    clock,
	})

	r.logger().Info("scene started", "scene", id)
	state, err := animator.Run(ctx)
	out := Outcome{
		GameID:    id,
		Title:     g.Title(),
		State:     state,
		Duration:  time.Duration(clock.Now() * float64(time.Second)),
		Narrative: registry.IsNarrative(g),
	}
	if err != nil {
		r.logger().Info("scene ended early", "scene", id, "err", err)
		return out, err
	}
	r.logger().Info("scene finished", "scene", id, "won", state.Won, "score", state.Score)
	r.record(out)
	return out, nil
}

func (r *Runner) record(out Outcome) {
	if r.Results == nil || out.Narrative {
		return
	}
	_, err := r.Results.SaveResult(storage.Result{
		GameID:   out.GameID,
		Score:    out.State.Score,
		Won:      out.State.Won,
		Duration: out.Duration,
	})
	if err != nil {
		r.logger().Warn("could not save result", "game", out.GameID, "err", err)
	}
}

// Run plays ids in order. It stops after the first lost game, when the
// player quits or when a scene fails; outcomes holds every scene that ran.
func (r *Runner) Run(ctx context.Context, ids []string, display engine.Display, keys engine.KeySource) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		out, err := r.Play(ctx, id, display, keys)
		outcomes = append(outcomes, out)
		if err != nil {
			return outcomes, err
		}
		if !out.State.Won {
			r.logger().Info("campaign over", "lost", id)
			return outcomes, nil
		}
	}
	return outcomes, nil
}

// Completed reports whether every scene in ids was won.
func Completed(ids []string, outcomes []Outcome) bool {
	if len(outcomes) != len(ids) {
		return false
	}
	for _, o := range outcomes {
		if !o.State.Won {
			return false
		}
	}
	return true
}

// Quit reports whether err means the player left on purpose.
func Quit(err error) bool {
	return errors.Is(err, engine.ErrStopped) || errors.Is(err, context.Canceled)
}
