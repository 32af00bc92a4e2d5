// Package sound plays short procedural tones for game events through the
// system speaker. Audio is optional: a failed speaker init leaves the
// player silent instead of stopping the game.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// cues maps effects to their tone sequence.
var cues = map[core.Effect][]note{
	core.EffectHit:      {{220, 60 * time.Millisecond}},
	core.EffectScore:    {{880, 50 * time.Millisecond}, {1320, 80 * time.Millisecond}},
	core.EffectThrow:    {{440, 40 * time.Millisecond}},
	core.EffectWin:      {{660, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1320, 160 * time.Millisecond}},
	core.EffectGameOver: {{330, 120 * time.Millisecond}, {220, 120 * time.Millisecond}, {110, 240 * time.Millisecond}},
}

// Player mixes cues into a single speaker stream.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewPlayer initializes the speaker. volume is linear in [0, 1].
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return p, nil
}

// Play queues the cue for e. Unknown effects are ignored.
func (p *Player) Play(e core.Effect) {
	s := Streamer(e, p.volume)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// Streamer builds the finite stream for e, or nil if e has no cue.
func Streamer(e core.Effect, volume float64) beep.Streamer {
	notes, ok := cues[e]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	if len(parts) == 0 {
		return nil
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Effect) {}

var (
	_ core.EffectPlayer = (*Player)(nil)
	_ core.EffectPlayer = Nop{}
)
