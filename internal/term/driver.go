package term

import (
	"context"
	"log"
	"time"

	"github.com/kaymed/picklepong/internal/core"
	"github.com/kaymed/picklepong/internal/pong"
	"github.com/kaymed/picklepong/internal/theme"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// Driver runs a match on a tcell screen. It owns the cadence and the key
// snapshot; the engine owns the rules.
type Driver struct {
	screen   tcell.Screen
	engine   *pong.Engine
	renderer *Renderer
	hold     *HoldTracker
	clock    *core.FrameClock

	// OnEvent, when set, is called on the loop goroutine for every event
	// a tick produces.
	OnEvent func(ev pong.Event, s *pong.State)
}

// NewDriver wires a driver for an initialised screen.
func NewDriver(screen tcell.Screen, engine *pong.Engine, th theme.Theme, tps int) *Driver {
	return &Driver{
		screen:   screen,
		engine:   engine,
		renderer: NewRenderer(th, engine.Config()),
		hold:     NewHoldTracker(DefaultHoldWindow),
		clock:    core.NewFrameClock(tps),
	}
}

// Run plays a match until it stops running or ctx is cancelled and returns
// the last state. Only the forwarding of terminal events happens off the
// calling goroutine.
func (d *Driver) Run(ctx context.Context) pong.State {
	state := d.engine.NewState()
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go d.forward(events, done)

	ticker := time.NewTicker(d.clock.Step())
	defer ticker.Stop()
	d.draw(&state)

	for state.Running {
		select {
		case <-ctx.Done():
			return state
		case ev := <-events:
			d.handle(ev, &state)
		case now := <-ticker.C:
			next, evs := d.engine.Tick(state, d.hold.Snapshot(now), d.clock.Delta(now))
			state = next
			if d.OnEvent != nil {
				for _, ev := range evs {
					d.OnEvent(ev, &state)
				}
			}
			d.draw(&state)
		}
	}
	return state
}

func (d *Driver) forward(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (d *Driver) handle(ev tcell.Event, s *pong.State) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		d.draw(s)
	case *tcell.EventKey:
		name, ok := KeyName(ev)
		if !ok {
			return
		}
		if name == "c" || name == "C" {
			if err := clipboard.WriteAll(s.Scoreline()); err != nil {
				log.Printf("copy scoreline: %v", err)
			}
			return
		}
		d.hold.Press(name, time.Now())
	}
}

func (d *Driver) draw(s *pong.State) {
	d.renderer.Draw(d.screen, s)
	d.screen.Show()
}
