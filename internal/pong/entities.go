package pong

import (
	"fmt"

	"github.com/kaymed/picklepong/internal/core"
)

// Side identifies one of the two players.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ColorTag names the source a color comes from. Themes resolve tags to concrete
// colors so the simulation never deals with palettes.
type ColorTag uint8

const (
	TagLeft ColorTag = iota
	TagRight
	TagBall
)

// Paddle is one player's bat. X is fixed per side; Y moves with input.
type Paddle struct {
	Side   Side
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
	Score  int
	Color  ColorTag
}

// Bounds returns the paddle rectangle.
func (p Paddle) Bounds() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterY returns the vertical midpoint of the paddle.
func (p Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// BallPhase is the ball's position in the serve cycle.
type BallPhase uint8

const (
	// Held means the ball waits at the center for a serve.
	Held BallPhase = iota
	// InPlay means the ball is moving.
	InPlay
)

func (p BallPhase) String() string {
	if p == Held {
		return "held"
	}
	return "in play"
}

// Ball is the square ball plus its recent path.
type Ball struct {
	X, Y   float64
	Size   float64
	SpeedX float64
	SpeedY float64
	Active bool
	Trail  Trail
	Color  ColorTag
}

// Bounds returns the ball rectangle.
func (b Ball) Bounds() core.Rect {
	return core.Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Center returns the midpoint of the ball.
func (b Ball) Center() core.Vec {
	return core.Vec{X: b.X + b.Size/2, Y: b.Y + b.Size/2}
}

// Phase reports whether the ball is held or in play.
func (b Ball) Phase() BallPhase {
	if b.Active {
		return InPlay
	}
	return Held
}

// Particle is a short-lived visual effect point.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int
	MaxLife int
	Size    float64
	Color   ColorTag
}

// State is the complete simulation state. It is owned by the driver and passed
// through Engine.Tick, which returns the next state.
type State struct {
	Left      Paddle
	Right     Paddle
	Ball      Ball
	Particles []Particle
	Running   bool
	Tick      uint64
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	out := s
	if s.Particles != nil {
		out.Particles = make([]Particle, len(s.Particles), cap(s.Particles))
		copy(out.Particles, s.Particles)
	}
	return out
}

// Paddle returns a pointer to the paddle on the given side.
func (s *State) Paddle(side Side) *Paddle {
	if side == Left {
		return &s.Left
	}
	return &s.Right
}

// Scoreline formats the current score for status lines and the clipboard.
func (s State) Scoreline() string {
	return fmt.Sprintf("LEFT %d - %d RIGHT", s.Left.Score, s.Right.Score)
}
