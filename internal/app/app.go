//go:build ebiten

package app

import (
	"log"
	"time"

	"github.com/kaymed/picklepong/internal/core"
	"github.com/kaymed/picklepong/internal/pong"
	"github.com/kaymed/picklepong/internal/render"
	"github.com/kaymed/picklepong/internal/theme"
	"github.com/kaymed/picklepong/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a pong engine to the ebiten.Game interface. ebiten drives the
// cadence; the match stops at the first frame after Running turns false.
type Game struct {
	engine   *pong.Engine
	state    pong.State
	renderer *render.Renderer
	hud      *ui.HUD
	clock    *core.FrameClock

	verbose bool
	pressed []ebiten.Key
}

// New constructs a Game for the provided engine and skin.
func New(engine *pong.Engine, th theme.Theme, tps int, verbose bool) *Game {
	return &Game{
		engine:   engine,
		state:    engine.NewState(),
		renderer: render.NewRenderer(th, engine.Config()),
		hud:      ui.NewHUD(engine, hudWidth),
		clock:    core.NewFrameClock(tps),
		verbose:  verbose,
	}
}

// State returns the current match state.
func (g *Game) State() pong.State { return g.state }

// Update takes a key snapshot and advances the match by one tick.
func (g *Game) Update() error {
	if !g.state.Running {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])
	keys := make(pong.KeyState, len(g.pressed))
	for _, k := range g.pressed {
		keys[k.String()] = true
	}

	next, events := g.engine.Tick(g.state, keys, g.clock.Delta(time.Now()))
	g.state = next
	if g.verbose {
		for _, ev := range events {
			log.Print(DescribeEvent(ev, &g.state))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.state.Scoreline()); err != nil {
			log.Printf("copy scoreline: %v", err)
		}
	}
	g.hud.Update(&g.state)
	return nil
}

// Draw renders the current match state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.state)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size, which is always the court size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W, s.H
}
