// Package anim produces self-mutating sprite bitmaps: cyclic frames,
// character-by-character text reveal and templates filled from live values.
//
// All timing is expressed in seconds of simulation time passed to Next, so
// a paused session clock also pauses every animation.
package anim

import "github.com/vovakirdan/ascii-trials/internal/core"

// Animation yields the bitmap to show at simulation time now.
type Animation interface {
	Next(now float64) core.Grid
}

// Gate admits an update once per interval.
type Gate struct {
	Interval float64
	last     float64
}

// NewGate creates a gate that first opens interval seconds after zero.
func NewGate(interval float64) *Gate {
	return &Gate{Interval: interval}
}

// Ready reports whether the interval has elapsed since the last update.
func (g *Gate) Ready(now float64) bool {
	return now-g.last >= g.Interval
}

// Record marks now as the time of the last update.
func (g *Gate) Record(now float64) {
	g.last = now
}

// Pass records and returns true if the gate is ready.
func (g *Gate) Pass(now float64) bool {
	if !g.Ready(now) {
		return false
	}
	g.Record(now)
	return true
}

// Cycle loops over a fixed list of frames.
type Cycle struct {
	frames []core.Grid
	i      int
}

// NewCycle starts on the first frame.
func NewCycle(frames ...core.Grid) *Cycle {
	return &Cycle{frames: frames}
}

// Current returns the frame on display.
func (c *Cycle) Current() core.Grid {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[c.i]
}

// Next advances to the following frame, wrapping around.
func (c *Cycle) Next(float64) core.Grid {
	if len(c.frames) == 0 {
		return nil
	}
	c.i = (c.i + 1) % len(c.frames)
	return c.frames[c.i]
}
