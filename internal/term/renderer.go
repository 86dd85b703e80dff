package term

import (
	"image/color"
	"math"

	"github.com/kaymed/picklepong/internal/pong"
	"github.com/kaymed/picklepong/internal/theme"

	"github.com/gdamore/tcell/v2"
)

const (
	paddleRune   = '█'
	ballRune     = '●'
	trailRune    = '•'
	particleRune = '·'
	netRune      = '┊'
	gridRune     = '│'
	kitchenRune  = ':'

	kitchenWidth = 120
)

const (
	servePrompt = "PRESS SPACE TO SERVE"
	controls    = "P1: W/S   P2: UP/DOWN   QUIT: ESC   COPY: C"
)

// Renderer draws a match into terminal cells. The court is scaled to the
// whole screen minus a header row and a footer row.
type Renderer struct {
	theme theme.Theme
	w, h  float64
}

// NewRenderer constructs a Renderer for a court of the configured size.
func NewRenderer(th theme.Theme, cfg pong.Config) *Renderer {
	return &Renderer{theme: th, w: cfg.Width, h: cfg.Height}
}

// Draw renders s onto screen. It does not call Show.
func (r *Renderer) Draw(screen tcell.Screen, s *pong.State) {
	cols, rows := screen.Size()
	if cols <= 0 || rows < 3 {
		return
	}
	v := viewport{cols: cols, rows: rows - 2, w: r.w, h: r.h}
	pal := r.theme.Palette
	screen.Clear()

	floor := pal.Court
	if r.theme.Decoration == theme.DecorationGrid {
		floor = pal.Background
	}
	base := tcell.StyleDefault.Background(rgb(floor))
	fill(screen, 0, 1, cols, v.rows, base)
	r.drawDecoration(screen, v, base)

	r.drawPaddle(screen, v, s.Left, base)
	r.drawPaddle(screen, v, s.Right, base)
	for _, p := range s.Particles {
		c := theme.Blend(floor, r.theme.Color(p.Color), float64(p.Life)/float64(max(p.MaxLife, 1)))
		x, y := v.cell(p.Pos.X, p.Pos.Y)
		screen.SetContent(x, y, particleRune, nil, base.Foreground(rgb(c)))
	}
	n := s.Ball.Trail.Len()
	for i := 0; i < n; i++ {
		pt := s.Ball.Trail.At(i)
		c := theme.Blend(floor, pal.Trail, float64(i+1)/float64(n)*0.5)
		x, y := v.cell(pt.X, pt.Y)
		screen.SetContent(x, y, trailRune, nil, base.Foreground(rgb(c)))
	}
	center := s.Ball.Center()
	bx, by := v.cell(center.X, center.Y)
	screen.SetContent(bx, by, ballRune, nil, base.Foreground(rgb(r.theme.Color(s.Ball.Color))))

	r.drawHeader(screen, cols, s)
	r.drawFooter(screen, cols, rows-1, s)
}

func (r *Renderer) drawDecoration(screen tcell.Screen, v viewport, base tcell.Style) {
	pal := r.theme.Palette
	mid, _ := v.cell(r.w/2, 0)
	line := base.Foreground(rgb(pal.Line))
	switch r.theme.Decoration {
	case theme.DecorationGrid:
		for y := 0; y < v.rows; y += 2 {
			screen.SetContent(mid, y+1, gridRune, nil, base.Foreground(rgb(pal.Text)))
		}
	default:
		left, _ := v.cell(r.w/2-kitchenWidth, 0)
		right, _ := v.cell(r.w/2+kitchenWidth, 0)
		kitchen := base.Foreground(rgb(pal.Kitchen))
		for y := 0; y < v.rows; y++ {
			screen.SetContent(left, y+1, kitchenRune, nil, kitchen)
			screen.SetContent(right, y+1, kitchenRune, nil, kitchen)
			screen.SetContent(mid, y+1, netRune, nil, line)
		}
	}
}

func (r *Renderer) drawPaddle(screen tcell.Screen, v viewport, p pong.Paddle, base tcell.Style) {
	style := base.Foreground(rgb(r.theme.Color(p.Color)))
	x0, y0 := v.cell(p.X, p.Y)
	x1, y1 := v.cellEnd(p.X+p.Width, p.Y+p.Height)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			screen.SetContent(x, y, paddleRune, nil, style)
		}
	}
}

func (r *Renderer) drawHeader(screen tcell.Screen, cols int, s *pong.State) {
	pal := r.theme.Palette
	style := tcell.StyleDefault.Background(rgb(pal.Panel)).Foreground(rgb(pal.Text))
	fill(screen, 0, 0, cols, 1, style)
	drawText(screen, 1, 0, r.theme.Title, style.Bold(true))
	score := s.Scoreline()
	drawText(screen, (cols-len(score))/2, 0, score, style)
}

func (r *Renderer) drawFooter(screen tcell.Screen, cols, row int, s *pong.State) {
	pal := r.theme.Palette
	style := tcell.StyleDefault.Background(rgb(pal.Panel)).Foreground(rgb(pal.Text))
	fill(screen, 0, row, cols, 1, style)
	msg := controls
	if !s.Ball.Active {
		msg = servePrompt
	}
	drawText(screen, (cols-len(msg))/2, row, msg, style)
}

// viewport maps court coordinates onto the cell rows below the header.
type viewport struct {
	cols, rows int
	w, h       float64
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := clampInt(int(math.Floor(x*float64(v.cols)/v.w)), 0, v.cols-1)
	cy := clampInt(int(math.Floor(y*float64(v.rows)/v.h)), 0, v.rows-1)
	return cx, cy + 1
}

// cellEnd maps the exclusive bottom right corner of a rectangle to the last
// cell it covers.
func (v viewport) cellEnd(x, y float64) (int, int) {
	cx := clampInt(int(math.Ceil(x*float64(v.cols)/v.w))-1, 0, v.cols-1)
	cy := clampInt(int(math.Ceil(y*float64(v.rows)/v.h))-1, 0, v.rows-1)
	return cx, cy + 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fill(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
