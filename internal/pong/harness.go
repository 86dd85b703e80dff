package pong

import (
	"fmt"

	"github.com/kaymed/picklepong/internal/core"
)

// Script decides which keys are down for the given tick.
type Script func(tick uint64, s *State) KeyState

// Report summarizes a scripted run.
type Report struct {
	Ticks        int
	Events       map[EventKind]int
	LeftScore    int
	RightScore   int
	PeakParticle int
	Violations   []string
	Final        State
}

// Harness drives an engine headlessly under a script.
type Harness struct {
	Engine *Engine
	Script Script
	// OnEvent, if set, observes every event as it is produced.
	OnEvent func(Event)
}

// Run advances a fresh match for at most ticks ticks with dt=1, checking the
// invariants after every tick. It stops early when the script quits.
func (h *Harness) Run(ticks int) Report {
	rep := Report{Events: map[EventKind]int{}}
	s := h.Engine.NewState()
	for i := 0; i < ticks && s.Running; i++ {
		var keys KeyState
		if h.Script != nil {
			keys = h.Script(s.Tick, &s)
		}
		next, events := h.Engine.Tick(s, keys, 1)
		for _, ev := range events {
			rep.Events[ev.Kind]++
			if h.OnEvent != nil {
				h.OnEvent(ev)
			}
		}
		for _, v := range CheckInvariants(s, next, events, h.Engine.Config()) {
			rep.Violations = append(rep.Violations, fmt.Sprintf("tick %d: %s", next.Tick, v))
		}
		if n := len(next.Particles); n > rep.PeakParticle {
			rep.PeakParticle = n
		}
		s = next
		rep.Ticks++
	}
	rep.LeftScore = s.Left.Score
	rep.RightScore = s.Right.Score
	rep.Final = s
	return rep
}

// MashKeys returns a script that holds each paddle key for random stretches and
// keeps serve pressed so rallies restart immediately. It never presses quit.
func MashKeys(rng *core.RNG, b Bindings, changeChance float64) Script {
	held := [4]bool{}
	groups := [4][]string{b.LeftUp, b.LeftDown, b.RightUp, b.RightDown}
	return func(uint64, *State) KeyState {
		keys := KeyState{}
		for i := range held {
			if rng.Float64() < changeChance {
				held[i] = !held[i]
			}
			if held[i] && len(groups[i]) > 0 {
				keys[groups[i][0]] = true
			}
		}
		if len(b.Serve) > 0 {
			keys[b.Serve[0]] = true
		}
		return keys
	}
}
