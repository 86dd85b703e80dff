package pong

import (
	"math"

	"github.com/kaymed/picklepong/internal/core"
)

// maxBounceAngle is the steepest return off the edge of a paddle.
const maxBounceAngle = math.Pi / 4

// EventKind enumerates what happened during a tick.
type EventKind uint8

const (
	EventServe EventKind = iota
	EventWallBounce
	EventPaddleHit
	EventScore
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event records a notable moment of a tick. For EventScore, Side is the player
// who won the point; for EventPaddleHit it is the paddle that was hit.
type Event struct {
	Kind EventKind
	Side Side
	Tick uint64
	Pos  core.Vec
}

// Engine advances a match. It owns the configuration, the key bindings and the
// random source; the state itself is owned by the caller.
type Engine struct {
	cfg      Config
	bindings Bindings
	rng      *core.RNG
}

// NewEngine returns an engine with default bindings seeded from cfg.Seed.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, bindings: DefaultBindings(), rng: core.NewRNG(cfg.Seed)}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Bindings returns the active key bindings.
func (e *Engine) Bindings() Bindings { return e.bindings }

// SetBindings replaces the key bindings.
func (e *Engine) SetBindings(b Bindings) { e.bindings = b }

// Size returns the court dimensions in whole pixels.
func (e *Engine) Size() core.Size {
	return core.Size{W: int(e.cfg.Width), H: int(e.cfg.Height)}
}

// NewState returns the opening state: both paddles centered at zero points and
// the ball held at the center with a random serve direction.
func (e *Engine) NewState() State {
	c := e.cfg
	y := c.Height/2 - c.PaddleHeight/2
	s := State{
		Left: Paddle{
			Side: Left, X: c.PaddleMargin, Y: y,
			Width: c.PaddleWidth, Height: c.PaddleHeight, Speed: c.PaddleSpeed,
			Color: TagLeft,
		},
		Right: Paddle{
			Side: Right, X: c.Width - c.PaddleMargin - c.PaddleWidth, Y: y,
			Width: c.PaddleWidth, Height: c.PaddleHeight, Speed: c.PaddleSpeed,
			Color: TagRight,
		},
		Running: true,
	}
	s.Ball = e.ResetBall(0)
	return s
}

// ResetBall returns a held ball at the court center. dir forces the horizontal
// serve direction (+1 right, -1 left); 0 picks one at random. The vertical
// component is always ±ServeSlope*BallSpeed with a random sign.
func (e *Engine) ResetBall(dir float64) Ball {
	c := e.cfg
	if dir == 0 {
		dir = e.rng.Sign()
	}
	return Ball{
		X:      c.Width/2 - c.BallSize/2,
		Y:      c.Height/2 - c.BallSize/2,
		Size:   c.BallSize,
		SpeedX: c.BallSpeed * math.Copysign(1, dir),
		SpeedY: c.BallSpeed * c.ServeSlope * e.rng.Sign(),
		Color:  TagBall,
	}
}

// Tick advances prev by one tick and returns the new state together with what
// happened. prev is left untouched. dt is the frame delta in nominal ticks and
// only affects movement when Config.ScaleWithDelta is set.
func (e *Engine) Tick(prev State, keys KeyState, dt float64) (State, []Event) {
	s := prev.Clone()
	s.Tick++
	scale := e.moveScale(dt)
	var events []Event

	in := MapKeys(keys, e.bindings)
	movePaddle(&s.Left, in.Left, scale, e.cfg.Height)
	movePaddle(&s.Right, in.Right, scale, e.cfg.Height)
	if in.Serve && !s.Ball.Active {
		s.Ball.Active = true
		events = append(events, Event{Kind: EventServe, Tick: s.Tick, Pos: s.Ball.Center()})
	}
	if in.Quit && s.Running {
		s.Running = false
		events = append(events, Event{Kind: EventQuit, Tick: s.Tick})
	}

	if s.Ball.Active {
		s.Ball.Trail.Push(s.Ball.Center())
		s.Ball.X += s.Ball.SpeedX * scale
		s.Ball.Y += s.Ball.SpeedY * scale
		events = e.bounceWalls(&s, events)
		events = e.hitPaddles(&s, events)
		events = e.checkScore(&s, events)
	}

	s.Particles, _ = AgeParticles(s.Particles, scale)
	return s, events
}

func (e *Engine) moveScale(dt float64) float64 {
	if !e.cfg.ScaleWithDelta {
		return 1
	}
	return core.Clamp(dt, 0, e.cfg.MaxDelta)
}

// bounceWalls reflects the ball off the top and bottom walls. The flip only
// happens while the ball still moves into the wall it touches.
func (e *Engine) bounceWalls(s *State, events []Event) []Event {
	b := &s.Ball
	var edge Edge
	switch {
	case b.Y <= 0 && b.SpeedY < 0:
		edge = TopEdge
	case b.Y+b.Size >= e.cfg.Height && b.SpeedY > 0:
		edge = BottomEdge
	default:
		return events
	}
	b.SpeedY = -b.SpeedY
	s.Particles = append(s.Particles, SpawnBounce(e.rng, *b, edge)...)
	return append(events, Event{Kind: EventWallBounce, Tick: s.Tick, Pos: b.Center()})
}

// hitPaddles resolves paddle contact. A paddle only reacts while the ball is
// heading towards it, so a ball still overlapping after a return is not hit
// twice.
func (e *Engine) hitPaddles(s *State, events []Event) []Event {
	b := &s.Ball
	l, r := &s.Left, &s.Right
	if b.X <= l.X+l.Width && b.Bounds().OverlapsY(l.Bounds()) && b.SpeedX < 0 {
		e.returnBall(b, l, 1)
		hit := core.Vec{X: b.X, Y: b.Y + b.Size/2}
		s.Particles = append(s.Particles, SpawnHit(e.rng, hit, l.Color, 1)...)
		events = append(events, Event{Kind: EventPaddleHit, Side: Left, Tick: s.Tick, Pos: hit})
	}
	if b.X+b.Size >= r.X && b.Bounds().OverlapsY(r.Bounds()) && b.SpeedX > 0 {
		e.returnBall(b, r, -1)
		hit := core.Vec{X: b.X + b.Size, Y: b.Y + b.Size/2}
		s.Particles = append(s.Particles, SpawnHit(e.rng, hit, r.Color, -1)...)
		events = append(events, Event{Kind: EventPaddleHit, Side: Right, Tick: s.Tick, Pos: hit})
	}
	return events
}

// returnBall sends the ball back in direction dir. The angle follows where the
// ball met the paddle: the center returns flat, the tips return at 45 degrees.
func (e *Engine) returnBall(b *Ball, p *Paddle, dir float64) {
	offset := core.Clamp((p.CenterY()-b.Center().Y)/(p.Height/2), -1, 1)
	angle := offset * maxBounceAngle
	b.SpeedX = dir * e.cfg.BallSpeed
	b.SpeedY = -e.cfg.BallSpeed * math.Sin(angle)
}

// checkScore awards a point once the ball has fully left the court and serves
// the next ball towards the player who conceded.
func (e *Engine) checkScore(s *State, events []Event) []Event {
	b := s.Ball
	switch {
	case b.X+b.Size < 0:
		s.Right.Score++
		s.Particles = append(s.Particles, SpawnScore(e.rng, 0, e.cfg.Height, s.Right.Color)...)
		s.Ball = e.ResetBall(-1)
		return append(events, Event{Kind: EventScore, Side: Right, Tick: s.Tick, Pos: core.Vec{X: 0, Y: b.Center().Y}})
	case b.X > e.cfg.Width:
		s.Left.Score++
		s.Particles = append(s.Particles, SpawnScore(e.rng, e.cfg.Width, e.cfg.Height, s.Left.Color)...)
		s.Ball = e.ResetBall(1)
		return append(events, Event{Kind: EventScore, Side: Left, Tick: s.Tick, Pos: core.Vec{X: e.cfg.Width, Y: b.Center().Y}})
	}
	return events
}
