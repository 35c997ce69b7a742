package hud

import (
	"math"
	"sync/atomic"

	"github.com/aipex-labs/hudlink/internal/nav"
)

// Store is the snapshot exchange between the capture goroutines and the
// render loop. It is single-writer per field, multi-reader, and lock-free:
// each write atomically swaps in an immutable value, so readers always see a
// complete frame and never block a producer.
type Store struct {
	rear    atomic.Pointer[Frame]
	heading atomic.Uint64
}

// SetRearFrame publishes a new rear camera frame. The frame must not be
// mutated after the call.
func (s *Store) SetRearFrame(f *Frame) {
	s.rear.Store(f)
}

// RearFrame returns the most recent rear frame, or nil if none has arrived.
// The returned frame is shared and must be treated as read-only.
func (s *Store) RearFrame() *Frame {
	return s.rear.Load()
}

// SetHeading stores a heading in degrees, normalised to [0,360).
func (s *Store) SetHeading(deg float64) {
	s.heading.Store(math.Float64bits(nav.NormalizeHeading(deg)))
}

// Heading returns the last stored heading, zero if never set.
func (s *Store) Heading() float64 {
	return math.Float64frombits(s.heading.Load())
}
