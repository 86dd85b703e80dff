package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, State) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	e := NewEngine(cfg)
	return e, e.NewState()
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestNewStateLayout(t *testing.T) {
	_, s := newTestEngine(t)

	assert.Equal(t, 50.0, s.Left.X)
	assert.Equal(t, 735.0, s.Right.X)
	assert.Equal(t, 250.0, s.Left.Y)
	assert.Equal(t, 250.0, s.Right.Y)
	assert.Zero(t, s.Left.Score)
	assert.Zero(t, s.Right.Score)
	assert.True(t, s.Running)

	assert.Equal(t, Held, s.Ball.Phase())
	assert.Equal(t, 392.0, s.Ball.X)
	assert.Equal(t, 292.0, s.Ball.Y)
	assert.Equal(t, 7.0, math.Abs(s.Ball.SpeedX))
	assert.InDelta(t, 4.9, math.Abs(s.Ball.SpeedY), 1e-9)
	assert.Zero(t, s.Ball.Trail.Len())
}

func TestHeldBallDoesNotMove(t *testing.T) {
	e, s := newTestEngine(t)
	for i := 0; i < 30; i++ {
		s, _ = e.Tick(s, nil, 1)
	}
	assert.Equal(t, 392.0, s.Ball.X)
	assert.Equal(t, 292.0, s.Ball.Y)
	assert.Zero(t, s.Ball.Trail.Len())
	assert.EqualValues(t, 30, s.Tick)
}

func TestServeStartsRallyOnce(t *testing.T) {
	e, s := newTestEngine(t)
	serve := KeyState{" ": true}

	s, events := e.Tick(s, serve, 1)
	require.Equal(t, []EventKind{EventServe}, kinds(events))
	assert.Equal(t, InPlay, s.Ball.Phase())
	assert.Equal(t, 1, s.Ball.Trail.Len(), "ball moves on the serve tick")
	assert.Equal(t, 392.0+s.Ball.SpeedX, s.Ball.X)

	s, events = e.Tick(s, serve, 1)
	assert.NotContains(t, kinds(events), EventServe, "serve while in play is ignored")
	assert.Equal(t, InPlay, s.Ball.Phase())
}

func TestQuitClearsRunningFlag(t *testing.T) {
	e, s := newTestEngine(t)
	s, events := e.Tick(s, KeyState{"Escape": true}, 1)
	assert.False(t, s.Running)
	assert.Equal(t, []EventKind{EventQuit}, kinds(events))

	s, events = e.Tick(s, KeyState{"Escape": true}, 1)
	assert.False(t, s.Running)
	assert.Empty(t, events, "quit is reported once")
}

func TestPaddlesStayOnCourt(t *testing.T) {
	e, s := newTestEngine(t)
	for i := 0; i < 100; i++ {
		s, _ = e.Tick(s, KeyState{"w": true, "ArrowDown": true}, 1)
		require.GreaterOrEqual(t, s.Left.Y, 0.0)
		require.LessOrEqual(t, s.Right.Y, 500.0)
	}
	assert.Equal(t, 0.0, s.Left.Y)
	assert.Equal(t, 500.0, s.Right.Y)

	s, _ = e.Tick(s, KeyState{"S": true, "ArrowUp": true}, 1)
	assert.Equal(t, 8.0, s.Left.Y)
	assert.Equal(t, 492.0, s.Right.Y)
}

func TestOpposingKeysCancel(t *testing.T) {
	e, s := newTestEngine(t)
	s, _ = e.Tick(s, KeyState{"w": true, "s": true}, 1)
	assert.Equal(t, 250.0, s.Left.Y)
}

func TestUnknownKeysIgnored(t *testing.T) {
	e, s := newTestEngine(t)
	next, events := e.Tick(s, KeyState{"q": true, "Enter": true}, 1)
	assert.Empty(t, events)
	assert.Equal(t, s.Left, next.Left)
	assert.Equal(t, s.Right, next.Right)
	assert.Equal(t, Held, next.Ball.Phase())
}

func TestTickLeavesPreviousStateUntouched(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 400, Y: -1, Size: 16, SpeedX: 7, SpeedY: -5, Active: true, Color: TagBall}
	s, _ = e.Tick(s, nil, 1)
	require.NotEmpty(t, s.Particles)

	before := s.Clone()
	next, _ := e.Tick(s, KeyState{"w": true}, 1)
	assert.Equal(t, before, s)
	assert.NotEqual(t, before.Ball.X, next.Ball.X)
}

func TestRightPaddleReturnsBall(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 785, Y: 300, Size: 16, SpeedX: 7, Active: true, Color: TagBall}

	s, events := e.Tick(s, nil, 1)
	require.Equal(t, []EventKind{EventPaddleHit}, kinds(events))
	assert.Equal(t, Right, events[0].Side)
	assert.Equal(t, -7.0, s.Ball.SpeedX)
	assert.LessOrEqual(t, math.Abs(s.Ball.SpeedY), 7.0)
	assert.Zero(t, s.Left.Score)
	assert.Zero(t, s.Right.Score)

	require.Len(t, s.Particles, HitBurst)
	for _, p := range s.Particles {
		assert.Equal(t, TagRight, p.Color)
		assert.LessOrEqual(t, p.Vel.X, 0.0, "hit burst drifts away from the right paddle")
	}

	// Still overlapping the paddle but heading away: no second hit.
	s, events = e.Tick(s, nil, 1)
	assert.NotContains(t, kinds(events), EventPaddleHit)
	assert.Equal(t, -7.0, s.Ball.SpeedX)
}

func TestLeftPaddleReturnsBall(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 66, Y: 292, Size: 16, SpeedX: -7, SpeedY: 3, Active: true, Color: TagBall}

	s, events := e.Tick(s, nil, 1)
	require.Equal(t, []EventKind{EventPaddleHit}, kinds(events))
	assert.Equal(t, Left, events[0].Side)
	assert.Equal(t, 7.0, s.Ball.SpeedX)
	for _, p := range s.Particles {
		assert.Equal(t, TagLeft, p.Color)
		assert.GreaterOrEqual(t, p.Vel.X, 0.0, "hit burst drifts away from the left paddle")
	}
}

func TestBounceAngleFollowsContactPoint(t *testing.T) {
	cases := []struct {
		name  string
		ballY float64
		want  float64
	}{
		{"center returns flat", 292, 0},
		{"top edge returns upward at 45 degrees", 242, -7 * math.Sin(math.Pi/4)},
		{"above the tip is clamped", 236, -7 * math.Sin(math.Pi/4)},
		{"bottom edge returns downward at 45 degrees", 342, 7 * math.Sin(math.Pi/4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, s := newTestEngine(t)
			s.Ball = Ball{X: 730, Y: tc.ballY, Size: 16, SpeedX: 7, Active: true}
			s, events := e.Tick(s, nil, 1)
			require.Contains(t, kinds(events), EventPaddleHit)
			assert.InDelta(t, tc.want, s.Ball.SpeedY, 1e-9)
			assert.Equal(t, -7.0, s.Ball.SpeedX)
		})
	}
}

func TestRightExitScoresForLeft(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 850, Y: 20, Size: 16, SpeedX: 7, Active: true, Color: TagBall}
	s.Ball.Trail.Push(s.Ball.Center())

	s, events := e.Tick(s, nil, 1)
	require.Equal(t, []EventKind{EventScore}, kinds(events))
	assert.Equal(t, Left, events[0].Side)
	assert.Equal(t, 1, s.Left.Score)
	assert.Zero(t, s.Right.Score)

	assert.Equal(t, Held, s.Ball.Phase())
	assert.Equal(t, 392.0, s.Ball.X)
	assert.Equal(t, 292.0, s.Ball.Y)
	assert.Equal(t, 7.0, s.Ball.SpeedX, "serve goes towards the side that conceded")
	assert.Zero(t, s.Ball.Trail.Len())

	require.Len(t, s.Particles, ScoreBurst)
	for _, p := range s.Particles {
		assert.Equal(t, TagLeft, p.Color)
		assert.LessOrEqual(t, p.Vel.X, 0.0)
	}
}

func TestLeftExitScoresForRight(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: -20, Y: 20, Size: 16, SpeedX: -7, Active: true, Color: TagBall}

	s, events := e.Tick(s, nil, 1)
	require.Equal(t, []EventKind{EventScore}, kinds(events))
	assert.Equal(t, Right, events[0].Side)
	assert.Equal(t, 1, s.Right.Score)
	assert.Equal(t, -7.0, s.Ball.SpeedX)
	assert.False(t, s.Ball.Active)
	for _, p := range s.Particles {
		assert.Equal(t, TagRight, p.Color)
		assert.GreaterOrEqual(t, p.Vel.X, 0.0)
	}
}

func TestBallPartlyOutsideDoesNotScore(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: -8, Y: 20, Size: 16, SpeedX: -7, Active: true}
	s, _ = e.Tick(s, nil, 1)
	// x+size = 1 after the move: still touching the court.
	assert.Zero(t, s.Right.Score)
	s, _ = e.Tick(s, nil, 1)
	assert.Equal(t, 1, s.Right.Score)
}

func TestTopWallBounce(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 400, Y: -1, Size: 16, SpeedX: 7, SpeedY: -5, Active: true, Color: TagBall}

	s, events := e.Tick(s, nil, 1)
	require.Equal(t, []EventKind{EventWallBounce}, kinds(events))
	assert.Equal(t, 5.0, s.Ball.SpeedY)
	require.Len(t, s.Particles, BounceBurst)
	for _, p := range s.Particles {
		assert.Equal(t, TagBall, p.Color)
	}

	// Still touching the wall on the way out: no second flip.
	s, events = e.Tick(s, nil, 1)
	assert.Empty(t, events)
	assert.Equal(t, 5.0, s.Ball.SpeedY)
}

func TestBottomWallBounce(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 400, Y: 580, Size: 16, SpeedX: -7, SpeedY: 5, Active: true, Color: TagBall}

	s, events := e.Tick(s, nil, 1)
	require.Equal(t, []EventKind{EventWallBounce}, kinds(events))
	assert.Equal(t, -5.0, s.Ball.SpeedY)
	for _, p := range s.Particles {
		assert.LessOrEqual(t, p.Vel.Y, 0.0)
	}
}

func TestTrailTracksRecentCenters(t *testing.T) {
	e, s := newTestEngine(t)
	s.Ball = Ball{X: 200, Y: 200, Size: 16, SpeedX: 7, Active: true}
	var centers []float64
	for i := 0; i < 12; i++ {
		centers = append(centers, s.Ball.Center().X)
		s, _ = e.Tick(s, nil, 1)
		require.LessOrEqual(t, s.Ball.Trail.Len(), TrailCapacity)
	}
	require.Equal(t, TrailCapacity, s.Ball.Trail.Len())
	for i, p := range s.Ball.Trail.Points() {
		assert.Equal(t, centers[len(centers)-TrailCapacity+i], p.X)
	}
}

func TestParticlesExpire(t *testing.T) {
	e, s := newTestEngine(t)
	s.Particles = []Particle{{Life: 1}, {Life: 2}, {Life: 5}}
	s, _ = e.Tick(s, nil, 1)
	assert.Len(t, s.Particles, 2)
	s, _ = e.Tick(s, nil, 1)
	assert.Len(t, s.Particles, 1)
	for i := 0; i < 3; i++ {
		s, _ = e.Tick(s, nil, 1)
	}
	assert.Empty(t, s.Particles)
}

func TestScaleWithDelta(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScaleWithDelta = true
	e := NewEngine(cfg)
	s := e.NewState()

	s, _ = e.Tick(s, KeyState{"s": true}, 0.5)
	assert.Equal(t, 254.0, s.Left.Y)
	s, _ = e.Tick(s, KeyState{"s": true}, 10)
	assert.Equal(t, 254.0+8*cfg.MaxDelta, s.Left.Y, "delta is capped")
	s, _ = e.Tick(s, KeyState{"s": true}, -1)
	assert.Equal(t, 254.0+8*cfg.MaxDelta, s.Left.Y, "negative delta does not move")

	fixed := NewEngine(DefaultConfig())
	f := fixed.NewState()
	f, _ = fixed.Tick(f, KeyState{"s": true}, 0.5)
	assert.Equal(t, 258.0, f.Left.Y, "reference mode ignores dt")
}

func TestHarnessKeepsInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	e := NewEngine(cfg)
	h := &Harness{Engine: e, Script: MashKeys(e.rng, e.Bindings(), 0.05)}
	rep := h.Run(5000)

	require.Empty(t, rep.Violations)
	assert.Equal(t, 5000, rep.Ticks)
	scores := rep.Events[EventScore]
	assert.Equal(t, rep.LeftScore+rep.RightScore, scores)
	assert.Positive(t, scores+rep.Events[EventPaddleHit])
	serves := rep.Events[EventServe]
	assert.True(t, serves == scores || serves == scores+1, "serves=%d scores=%d", serves, scores)
	assert.LessOrEqual(t, len(rep.Final.Particles), rep.PeakParticle)
}

func TestHarnessDeterministic(t *testing.T) {
	run := func() Report {
		cfg := DefaultConfig()
		cfg.Seed = 99
		e := NewEngine(cfg)
		h := &Harness{Engine: e, Script: MashKeys(e.rng, e.Bindings(), 0.1)}
		return h.Run(2000)
	}
	a, b := run(), run()
	assert.Equal(t, a.Final, b.Final)
	assert.Equal(t, a.Events, b.Events)
}

func TestHarnessStopsOnQuit(t *testing.T) {
	e, _ := newTestEngine(t)
	h := &Harness{Engine: e, Script: func(tick uint64, _ *State) KeyState {
		if tick == 9 {
			return KeyState{"Escape": true}
		}
		return nil
	}}
	rep := h.Run(100)
	assert.Equal(t, 10, rep.Ticks)
	assert.False(t, rep.Final.Running)
	assert.Equal(t, 1, rep.Events[EventQuit])
}

func TestCheckInvariantsFlagsBadTransitions(t *testing.T) {
	e, s := newTestEngine(t)
	cfg := e.Config()

	next := s.Clone()
	next.Left.Y = -1
	next.Right.Score = 2
	next.Ball.SpeedX = 9
	next.Particles = []Particle{{Life: 0}}
	v := CheckInvariants(s, next, nil, cfg)
	assert.Len(t, v, 4)

	scored := s.Clone()
	scored.Left.Score = 1
	scored.Ball.Active = true
	v = CheckInvariants(s, scored, []Event{{Kind: EventScore, Side: Left}}, cfg)
	require.Len(t, v, 1)
	assert.Contains(t, v[0], "not reset")
}

func TestScoreline(t *testing.T) {
	s := State{Left: Paddle{Score: 3}, Right: Paddle{Score: 11}}
	assert.Equal(t, "LEFT 3 - 11 RIGHT", s.Scoreline())
}
