package engine

import (
	"sync/atomic"

	"github.com/vovakirdan/ascii-trials/internal/geom"
)

// Slot holds the latest value written by one goroutine for another to
// pick up. Writes overwrite unread values; reads never observe a partial
// write. The zero value is empty.
type Slot[T any] struct {
	ptr atomic.Pointer[T]
}

// Store replaces the slot's value.
func (s *Slot[T]) Store(v T) {
	s.ptr.Store(&v)
}

// Load returns the current value without consuming it.
func (s *Slot[T]) Load() (T, bool) {
	if p := s.ptr.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Take returns the current value and empties the slot.
func (s *Slot[T]) Take() (T, bool) {
	if p := s.ptr.Swap(nil); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// VectorStream carries the player's most recent movement intent from the
// input loop to the simulation loop.
type VectorStream struct {
	slot Slot[geom.Vector]
}

// Set records v as the current intent.
func (s *VectorStream) Set(v geom.Vector) {
	s.slot.Store(v)
}

// Get returns the current intent, or zero.
func (s *VectorStream) Get() geom.Vector {
	v, _ := s.slot.Load()
	return v
}

// Take consumes the current intent, leaving zero behind.
func (s *VectorStream) Take() geom.Vector {
	v, _ := s.slot.Take()
	return v
}

// Reset discards any unread intent.
func (s *VectorStream) Reset() {
	s.slot.Take()
}
