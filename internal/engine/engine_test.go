package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/sprite"
	"github.com/vovakirdan/ascii-trials/internal/terrain"
)

func TestVectorStreamConcurrentAccess(t *testing.T) {
	var s VectorStream
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 1000; i++ {
			s.Set(geom.V(i, -i))
		}
	}()

	torn := make(chan geom.Vector, 100)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 100 {
			v := s.Take()
			if v.DX != -v.DY {
				torn <- v
			}
		}
	}()
	wg.Wait()
	close(torn)
	for v := range torn {
		t.Errorf("observed a vector that was never written: %v", v)
	}
}

func TestVectorStreamTakeResets(t *testing.T) {
	var s VectorStream
	if !s.Take().IsZero() {
		t.Fatal("empty stream should yield zero")
	}
	s.Set(geom.Up)
	s.Set(geom.Left)
	if got := s.Get(); got != geom.Left {
		t.Errorf("Get() = %v, want the latest write", got)
	}
	if got := s.Take(); got != geom.Left {
		t.Errorf("Take() = %v", got)
	}
	if !s.Take().IsZero() {
		t.Error("Take should consume the value")
	}
}

func TestPausableClock(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := newClockWith(func() time.Time { return now })

	now = base.Add(2 * time.Second)
	if got := c.Now(); got != 2 {
		t.Fatalf("Now() = %v, want 2", got)
	}
	if !c.Toggle() {
		t.Fatal("Toggle should pause")
	}
	now = base.Add(5 * time.Second)
	if got := c.Now(); got != 2 {
		t.Errorf("paused Now() = %v, want 2", got)
	}
	c.Resume()
	now = base.Add(6 * time.Second)
	if got := c.Now(); got != 3 {
		t.Errorf("resumed Now() = %v, want 3", got)
	}
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  core.Key
		want Binding
	}{
		{core.Key{Code: core.KeyUp}, Binding{Vector: geom.Up}},
		{core.RuneKey('d'), Binding{Vector: geom.V(0, 2)}},
		{core.RuneKey('p'), Binding{Action: core.ActionPause}},
		{core.Key{Code: core.KeyCtrlC}, Binding{Action: core.ActionQuit}},
		{core.RuneKey('z'), Binding{}},
	}
	for _, tt := range tests {
		if got := km.Lookup(tt.key); got != tt.want {
			t.Errorf("Lookup(%s) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
	if got := UnitKeyMap().Lookup(core.Key{Code: core.KeyLeft}); got.Vector != geom.Left {
		t.Errorf("unit left = %v", got.Vector)
	}
}

func TestWriterDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriterDisplay(&buf, true)
	if err := d.Show(core.GridFromStrings("ab", "c")); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, hideCursor+clearScreen) {
		t.Errorf("missing clear: %q", out)
	}
	if !strings.Contains(out, "ab\r\nc \r\n") || !strings.HasSuffix(out, showCursor) {
		t.Errorf("output = %q", out)
	}
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"runes", "ab", []string{"a", "b"}},
		{"arrows", "\x1b[A\x1b[D\x1bOC", []string{"up", "left", "right"}},
		{"shift arrow", "\x1b[1;2D", []string{"shift+left"}},
		{"controls", "\r\x03\x7f ", []string{"enter", "ctrl+c", "backspace", " "}},
		{"lone escape", "\x1b", []string{"esc"}},
		{"alt rune", "\x1bx", []string{"alt+x"}},
		{"escape then ctrl+c", "\x1b\x03", []string{"esc", "ctrl+c"}},
		{"unknown csi dropped", "\x1b[5~q", []string{"q"}},
		{"utf8", "é", []string{"é"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, k := range DecodeKeys([]byte(tt.in)) {
				got = append(got, k.String())
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("DecodeKeys(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReaderKeys(t *testing.T) {
	k := NewReaderKeys(strings.NewReader("w\x1b[B"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, want := range []string{"w", "down"} {
		key, err := k.ReadKey(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if key.String() != want {
			t.Errorf("key = %q, want %q", key, want)
		}
	}
	if _, err := k.ReadKey(ctx); err == nil {
		t.Error("expected an error once the reader is exhausted")
	}
}

type recorder struct {
	mu     sync.Mutex
	frames []string
}

func (r *recorder) Show(g core.Grid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, g.String())
	return nil
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

type fakeScene struct {
	terrain *terrain.Terrain
	endAt   int
	steps   int
	err     error
}

func newFakeScene(t *testing.T, endAt int) *fakeScene {
	t.Helper()
	player := sprite.NewPlayer(core.GridFromStrings("@"), geom.P(1, 1))
	tr, err := terrain.New(core.GridFromStrings("....", "....", "...."), player)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeScene{terrain: tr, endAt: endAt}
}

func (s *fakeScene) Terrain() *terrain.Terrain { return s.terrain }

func (s *fakeScene) KeyMap() KeyMap { return UnitKeyMap() }

func (s *fakeScene) Step(core.Tick) (core.StepResult, error) {
	s.steps++
	if s.err != nil {
		return core.StepResult{}, s.err
	}
	return core.StepResult{State: core.GameState{GameOver: s.endAt > 0 && s.steps >= s.endAt}}, nil
}

func TestTickMovesPlayerAndResets(t *testing.T) {
	scene := newFakeScene(t, 0)
	rec := &recorder{}
	a := NewAnimator(scene, rec, NewChanKeys(1), Options{})

	a.HandleKey(core.Key{Code: core.KeyRight})
	if _, err := a.Tick(); err != nil {
		t.Fatal(err)
	}
	if got := rec.last(); got != "....\n..@.\n...." {
		t.Errorf("frame = %q", got)
	}
	if got := scene.terrain.String(); got != "....\n....\n...." {
		t.Errorf("terrain not reset after render: %q", got)
	}

	if _, err := a.Tick(); err != nil {
		t.Fatal(err)
	}
	if scene.terrain.Player().Position() != geom.P(1, 2) {
		t.Error("a consumed vector was applied twice")
	}
}

func TestRunEndsWithScene(t *testing.T) {
	scene := newFakeScene(t, 3)
	a := NewAnimator(scene, &recorder{}, NewChanKeys(1), Options{TickRate: 100})

	state, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !state.GameOver || scene.steps != 3 {
		t.Errorf("state = %+v after %d steps", state, scene.steps)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	scene := newFakeScene(t, 0)
	keys := NewChanKeys(1)
	a := NewAnimator(scene, &recorder{}, keys, Options{TickRate: 100})
	keys.Push(core.RuneKey('c'))

	done := make(chan error, 1)
	go func() {
		_, err := a.Run(context.Background())
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, ErrStopped) {
			t.Errorf("err = %v, want ErrStopped", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("quit key did not stop the session")
	}
}

func TestRunStopsOnResize(t *testing.T) {
	scene := newFakeScene(t, 0)
	keys := NewChanKeys(2)
	a := NewAnimator(scene, &recorder{}, keys, Options{TickRate: 100})
	keys.Push(core.Key{Code: core.KeyResize})
	keys.Push(core.Key{Code: core.KeyResize})

	done := make(chan error, 1)
	start := time.Now()
	go func() {
		_, err := a.Run(context.Background())
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, ErrStopped) {
			t.Errorf("err = %v, want ErrStopped", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("resize did not stop the session, steps=%d", scene.steps)
	}
	if a.Running() {
		t.Error("running flag still set after Run returned")
	}
	// Run waits for the input loop, so both loops are done here. At 100
	// ticks a second a stop within one tick leaves only a handful of steps.
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond || scene.steps > 10 {
		t.Errorf("stopped after %v and %d steps", elapsed, scene.steps)
	}
}

func TestInputLoopEndsOnResize(t *testing.T) {
	scene := newFakeScene(t, 0)
	keys := NewChanKeys(1)
	a := NewAnimator(scene, &recorder{}, keys, Options{})
	a.running.Store(true)
	keys.Push(core.Key{Code: core.KeyResize})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := a.inputLoop(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.Err() != nil {
		t.Fatal("input loop waited for the context instead of the resize")
	}
	if a.Running() {
		t.Error("resize should clear the running flag")
	}
}

func TestRunPropagatesSceneErrors(t *testing.T) {
	scene := newFakeScene(t, 0)
	scene.err = errors.New("boom")
	a := NewAnimator(scene, &recorder{}, NewChanKeys(1), Options{TickRate: 100})
	if _, err := a.Run(context.Background()); err == nil || err.Error() != "boom" {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestPauseFreezesScene(t *testing.T) {
	scene := newFakeScene(t, 0)
	a := NewAnimator(scene, &recorder{}, NewChanKeys(1), Options{})
	a.HandleKey(core.RuneKey('p'))
	if _, err := a.Tick(); err != nil {
		t.Fatal(err)
	}
	if scene.steps != 0 || !a.State().Paused {
		t.Errorf("steps = %d paused = %v", scene.steps, a.State().Paused)
	}
}
