package route

import "routing/internal/core/domain/model/kernel"

// Sequence is an immutable ordered list of stops. Operations producing a new
// order return a new Sequence and leave the receiver untouched.
type Sequence struct {
	stops []Stop
}

func NewSequence(stops ...Stop) Sequence {
	out := make([]Stop, len(stops))
	copy(out, stops)
	return Sequence{stops: out}
}

func (s Sequence) Len() int { return len(s.stops) }

func (s Sequence) IsEmpty() bool { return len(s.stops) == 0 }

// At returns the stop at position i and panics when i is out of range, like a slice index.
func (s Sequence) At(i int) Stop { return s.stops[i] }

// Stops returns a copy of the ordered stops.
func (s Sequence) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}

func (s Sequence) IDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(s.stops))
	for i, stop := range s.stops {
		ids[i] = stop.ID()
	}
	return ids
}

// IndexOf returns the position of the stop with the given id, or -1.
func (s Sequence) IndexOf(id kernel.UUID) int {
	for i, stop := range s.stops {
		if stop.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

// Reorder returns a new sequence visiting the receiver's stops in the given
// index order. The caller guarantees order is a permutation of [0, Len).
func (s Sequence) Reorder(order []int) Sequence {
	out := make([]Stop, len(order))
	for i, idx := range order {
		out[i] = s.stops[idx]
	}
	return Sequence{stops: out}
}
