package engine

import (
	"sync"
	"time"
)

// Clock reports session time in seconds.
type Clock interface {
	Now() float64
}

// PausableClock measures seconds since it started, excluding time spent
// paused, so time-parameterized motion resumes where it stopped.
type PausableClock struct {
	mu sync.Mutex

	now         func() time.Time
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
}

// NewPausableClock starts a clock at zero.
func NewPausableClock() *PausableClock {
	return newClockWith(time.Now)
}

func newClockWith(now func() time.Time) *PausableClock {
	return &PausableClock{now: now, start: now()}
}

// Now returns the unpaused seconds elapsed since the clock started.
func (c *PausableClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.now()
	if c.paused {
		end = c.pausedAt
	}
	return (end.Sub(c.start) - c.pausedTotal).Seconds()
}

// Pause freezes the clock.
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		c.paused = true
		c.pausedAt = c.now()
	}
}

// Resume continues from where the clock was paused.
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.paused = false
		c.pausedTotal += c.now().Sub(c.pausedAt)
	}
}

// Toggle flips between paused and running and returns the new state.
func (c *PausableClock) Toggle() bool {
	if c.Paused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
