package anim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ascii-trials/internal/core"
)

// ValueSource produces the strings for one or more template slots.
type ValueSource interface {
	Current() []string
	Next(now float64) []string
	Exhausted() bool
	Reset()
}

// FunctionValue re-evaluates fn every update until done reports true for
// a value; that value is then frozen.
type FunctionValue struct {
	fn        func(now float64) []string
	done      func([]string) bool
	value     []string
	exhausted bool
}

// NewFunctionValue evaluates fn once at time zero for the initial value.
func NewFunctionValue(fn func(now float64) []string, done func([]string) bool) *FunctionValue {
	return &FunctionValue{fn: fn, done: done, value: fn(0)}
}

func (f *FunctionValue) Next(now float64) []string {
	if f.exhausted {
		return f.value
	}
	f.value = f.fn(now)
	if f.done != nil && f.done(f.value) {
		f.exhausted = true
	}
	return f.value
}

func (f *FunctionValue) Current() []string { return f.value }

func (f *FunctionValue) Exhausted() bool { return f.exhausted }

func (f *FunctionValue) Reset() { f.exhausted = false }

// ListValue steps through a list, then settles on a final value.
type ListValue struct {
	values    []string
	final     string
	i         int
	exhausted bool
}

// NewListValue starts on the first value.
func NewListValue(values []string, final string) *ListValue {
	return &ListValue{values: values, final: final}
}

func (l *ListValue) Next(float64) []string {
	if !l.exhausted {
		l.i++
	}
	if l.i >= len(l.values) {
		l.exhausted = true
		return []string{l.final}
	}
	return []string{l.values[l.i]}
}

func (l *ListValue) Current() []string {
	if l.exhausted || l.i >= len(l.values) {
		return []string{l.final}
	}
	return []string{l.values[l.i]}
}

func (l *ListValue) Exhausted() bool { return l.exhausted }

func (l *ListValue) Reset() {
	l.i = 0
	l.exhausted = false
}

// Timer counts down from a duration on the simulation clock.
type Timer struct {
	start   float64
	seconds float64
}

// NewTimer counts down the given number of seconds from start.
func NewTimer(start, seconds float64) *Timer {
	return &Timer{start: start, seconds: seconds}
}

// Restart begins the count again at now.
func (t *Timer) Restart(now float64) {
	t.start = now
}

// Duration returns the countdown length in seconds.
func (t *Timer) Duration() float64 {
	return t.seconds
}

// Remaining returns whole minutes and seconds left, counting the final
// partial second as a whole one.
func (t *Timer) Remaining(now float64) (minutes, seconds int) {
	left := t.seconds + 1 - (now - t.start)
	if left < 0 {
		left = 0
	}
	total := int(left)
	return total / 60, total % 60
}

// Elapsed returns the whole seconds passed, capped at the duration.
func (t *Timer) Elapsed(now float64) int {
	m, s := t.Remaining(now)
	return max(0, int(t.seconds)-(m*60+s))
}

// Ended reports whether the countdown reached zero.
func (t *Timer) Ended(now float64) bool {
	m, s := t.Remaining(now)
	return m <= 0 && s <= 0
}

// Values returns the zero-padded "MM", "SS" pair.
func (t *Timer) Values(now float64) []string {
	m, s := t.Remaining(now)
	return []string{fmt.Sprintf("%02d", m), fmt.Sprintf("%02d", s)}
}

// Source adapts the timer to a template slot pair that freezes at 00:00.
func (t *Timer) Source() *FunctionValue {
	return NewFunctionValue(t.Values, func(v []string) bool {
		return len(v) == 2 && v[0] == "00" && v[1] == "00"
	})
}

// Template re-renders text containing "{}" slots from value sources.
type Template struct {
	text    string
	sources []ValueSource
	current core.Grid
}

// NewTemplate renders the initial values straight away.
func NewTemplate(text string, sources ...ValueSource) *Template {
	t := &Template{text: text, sources: sources}
	t.current = t.render(ValueSource.Current)
	return t
}

// Current returns the last rendered grid.
func (t *Template) Current() core.Grid {
	return t.current
}

// Next pulls fresh values and re-renders.
func (t *Template) Next(now float64) core.Grid {
	t.current = t.render(func(s ValueSource) []string { return s.Next(now) })
	return t.current
}

func (t *Template) render(values func(ValueSource) []string) core.Grid {
	var filled []string
	for _, s := range t.sources {
		filled = append(filled, values(s)...)
	}
	return Layout(Fill(t.text, filled...), false)
}

// Fill substitutes values into successive "{}" slots. Slots without a
// value are left empty.
func Fill(text string, values ...string) string {
	var sb strings.Builder
	i := 0
	for {
		at := strings.Index(text, "{}")
		if at < 0 {
			sb.WriteString(text)
			return sb.String()
		}
		sb.WriteString(text[:at])
		if i < len(values) {
			sb.WriteString(values[i])
			i++
		}
		text = text[at+2:]
	}
}
