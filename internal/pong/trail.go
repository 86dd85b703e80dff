package pong

import "github.com/kaymed/picklepong/internal/core"

// TrailCapacity is the number of ball centers remembered for the motion trail.
const TrailCapacity = 8

// Trail is a fixed-capacity FIFO of recent ball centers. Pushing onto a full
// trail evicts the oldest entry. The zero value is an empty trail and copies are
// independent.
type Trail struct {
	pts   [TrailCapacity]core.Vec
	start int
	n     int
}

// Push appends p, evicting the oldest point when the trail is full.
func (t *Trail) Push(p core.Vec) {
	if t.n < TrailCapacity {
		t.pts[(t.start+t.n)%TrailCapacity] = p
		t.n++
		return
	}
	t.pts[t.start] = p
	t.start = (t.start + 1) % TrailCapacity
}

// Len returns the number of stored points.
func (t Trail) Len() int { return t.n }

// At returns the i-th point, oldest first.
func (t Trail) At(i int) core.Vec {
	return t.pts[(t.start+i)%TrailCapacity]
}

// Points returns the stored points, oldest first.
func (t Trail) Points() []core.Vec {
	out := make([]core.Vec, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Clear empties the trail.
func (t *Trail) Clear() { *t = Trail{} }
