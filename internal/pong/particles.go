package pong

import "github.com/kaymed/picklepong/internal/core"

// Burst sizes per triggering event.
const (
	HitBurst    = 10
	BounceBurst = 5
	ScoreBurst  = 20
)

// Edge names the wall the ball crossed.
type Edge uint8

const (
	TopEdge Edge = iota
	BottomEdge
)

func (e Edge) String() string {
	if e == TopEdge {
		return "top"
	}
	return "bottom"
}

// SpawnHit returns the burst for a paddle contact at point. dir is the
// horizontal sign pointing away from the paddle.
func SpawnHit(rng *core.RNG, point core.Vec, tag ColorTag, dir float64) []Particle {
	out := make([]Particle, HitBurst)
	for i := range out {
		life := rng.IntRange(10, 30)
		out[i] = Particle{
			Pos:     point,
			Vel:     core.Vec{X: rng.Range(0, 3) * dir, Y: rng.Range(-3, 3)},
			Life:    life,
			MaxLife: life,
			Size:    rng.Range(2, 6),
			Color:   tag,
		}
	}
	return out
}

// SpawnBounce returns the burst for the ball touching the top or bottom wall.
// Particles start on the crossed ball edge and drift back into the court.
func SpawnBounce(rng *core.RNG, b Ball, edge Edge) []Particle {
	y, dir := b.Y, 1.0
	if edge == BottomEdge {
		y, dir = b.Y+b.Size, -1
	}
	x := b.X + b.Size/2
	out := make([]Particle, BounceBurst)
	for i := range out {
		life := rng.IntRange(5, 20)
		out[i] = Particle{
			Pos:     core.Vec{X: x, Y: y},
			Vel:     core.Vec{X: rng.Range(-2, 2), Y: rng.Range(0, 2) * dir},
			Life:    life,
			MaxLife: life,
			Size:    rng.Range(2, 5),
			Color:   b.Color,
		}
	}
	return out
}

// SpawnScore returns the burst for a point, scattered along the goal line at
// edgeX over the full court height.
func SpawnScore(rng *core.RNG, edgeX, courtHeight float64, tag ColorTag) []Particle {
	dir := 1.0
	if edgeX > 0 {
		dir = -1
	}
	out := make([]Particle, ScoreBurst)
	for i := range out {
		life := rng.IntRange(20, 50)
		out[i] = Particle{
			Pos:     core.Vec{X: edgeX, Y: rng.Range(0, courtHeight)},
			Vel:     core.Vec{X: rng.Range(0, 5) * dir, Y: rng.Range(-3, 3)},
			Life:    life,
			MaxLife: life,
			Size:    rng.Range(3, 8),
			Color:   tag,
		}
	}
	return out
}

// AgeParticles advances every particle by one tick in place and drops the ones
// whose life ran out. It returns the survivors (reusing ps) and how many were
// removed.
func AgeParticles(ps []Particle, scale float64) ([]Particle, int) {
	kept := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel.Scale(scale))
		p.Life--
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	removed := len(ps) - len(kept)
	clear(ps[len(kept):])
	return kept, removed
}
