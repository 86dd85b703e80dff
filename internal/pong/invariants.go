package pong

import (
	"fmt"
	"math"
)

// CheckInvariants compares two consecutive states and returns a description of
// every rule the transition breaks. An empty result means the tick was sound.
func CheckInvariants(prev, next State, events []Event, cfg Config) []string {
	var out []string
	for _, p := range []Paddle{next.Left, next.Right} {
		if p.Y < 0 || p.Y > cfg.Height-p.Height {
			out = append(out, fmt.Sprintf("%s paddle y=%.2f outside [0, %.2f]", p.Side, p.Y, cfg.Height-p.Height))
		}
	}
	if n := next.Ball.Trail.Len(); n > TrailCapacity {
		out = append(out, fmt.Sprintf("trail length %d exceeds %d", n, TrailCapacity))
	}

	scored := map[Side]int{}
	for _, ev := range events {
		if ev.Kind == EventScore {
			scored[ev.Side]++
		}
	}
	for _, side := range []Side{Left, Right} {
		before, after := prev.Paddle(side).Score, next.Paddle(side).Score
		if after != before+scored[side] {
			out = append(out, fmt.Sprintf("%s score went %d -> %d with %d scoring events", side, before, after, scored[side]))
		}
	}
	if len(scored) > 0 {
		b := next.Ball
		wantX, wantY := cfg.Width/2-b.Size/2, cfg.Height/2-b.Size/2
		if b.Active || b.X != wantX || b.Y != wantY || b.Trail.Len() != 0 {
			out = append(out, fmt.Sprintf("ball not reset after score: active=%v pos=(%.2f,%.2f) trail=%d", b.Active, b.X, b.Y, b.Trail.Len()))
		}
	}
	if math.Abs(next.Ball.SpeedX) != cfg.BallSpeed {
		out = append(out, fmt.Sprintf("|speedX|=%.4f, want %.4f", math.Abs(next.Ball.SpeedX), cfg.BallSpeed))
	}
	for i, p := range next.Particles {
		if p.Life <= 0 {
			out = append(out, fmt.Sprintf("particle %d kept with life %d", i, p.Life))
			break
		}
	}
	return out
}
