//go:build ebiten

package ui

import (
	"image/color"

	"github.com/kaymed/picklepong/internal/core"
	"github.com/kaymed/picklepong/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a debug panel with the active parameters and live match
// counters. It starts hidden and toggles with F1.
type HUD struct {
	source  parameterProvider
	width   int
	visible bool

	panel      *ebiten.Image
	lastHeight int
	params     []string
	stats      []string
}

// NewHUD constructs a HUD reading parameters from source. A non-positive
// width disables the panel.
func NewHUD(source parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{source: source, width: width}
}

// Visible reports whether the panel is currently shown.
func (h *HUD) Visible() bool {
	return h != nil && h.visible
}

// Update handles the toggle key and refreshes the cached rows from s.
func (h *HUD) Update(s *pong.State) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	if h.source != nil {
		h.params = h.source.Parameters().Lines()
	}
	h.stats = Stats(s)
}

// Draw paints the panel over the top left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 || !h.visible {
		return
	}
	height := panelPadding*2 + headerBaseline + (len(h.stats)+len(h.params)+1)*lineHeight
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.NRGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Debug (F1)", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.stats {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	y += lineHeight
	for _, line := range h.params {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelOffset, panelOffset)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 10
	panelOffset    = 10
	headerBaseline = 14
	lineHeight     = 16
)
