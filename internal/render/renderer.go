//go:build ebiten

package render

import (
	"image/color"
	"strconv"

	"github.com/kaymed/picklepong/internal/pong"
	"github.com/kaymed/picklepong/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	courtInset   = 50
	kitchenWidth = 120
	gridSpacing  = 40
	handleWidth  = 20
	handleHeight = 30
	scoreBox     = 60
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

var (
	handleColor = color.NRGBA{R: 139, G: 69, B: 19, A: 255}
	gripColor   = color.NRGBA{R: 80, G: 40, B: 10, A: 255}
)

// Renderer draws a match with one theme. It only reads the state it is given.
type Renderer struct {
	theme theme.Theme
	w, h  float32
}

// NewRenderer constructs a Renderer for a court of the configured size.
func NewRenderer(th theme.Theme, cfg pong.Config) *Renderer {
	return &Renderer{theme: th, w: float32(cfg.Width), h: float32(cfg.Height)}
}

// Theme returns the active theme.
func (r *Renderer) Theme() theme.Theme { return r.theme }

// Draw renders one frame of s onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, s *pong.State) {
	pal := r.theme.Palette
	screen.Fill(pal.Background)
	switch r.theme.Decoration {
	case theme.DecorationGrid:
		r.drawGrid(screen)
	default:
		r.drawCourt(screen)
	}

	r.drawPaddle(screen, s.Left)
	r.drawPaddle(screen, s.Right)
	r.drawParticles(screen, s.Particles)
	r.drawBall(screen, s.Ball)

	r.drawScore(screen, s)
	if !s.Ball.Active {
		r.drawServePrompt(screen)
	}
	r.drawControls(screen)
	r.drawTitle(screen)
}

func (r *Renderer) drawCourt(dst *ebiten.Image) {
	pal := r.theme.Palette
	w, h := r.w, r.h
	inW, inH := w-2*courtInset, h-2*courtInset
	mid := w / 2

	vector.DrawFilledRect(dst, courtInset, courtInset, inW, inH, pal.Court, false)
	vector.DrawFilledRect(dst, mid-kitchenWidth, courtInset, kitchenWidth, inH, pal.Kitchen, false)
	vector.DrawFilledRect(dst, mid, courtInset, kitchenWidth, inH, pal.Kitchen, false)

	vector.StrokeRect(dst, courtInset, courtInset, inW, inH, 3, pal.Line, false)
	vector.StrokeLine(dst, mid, courtInset, mid, h-courtInset, 3, pal.Line, false)
	vector.StrokeLine(dst, mid-kitchenWidth, courtInset, mid-kitchenWidth, h-courtInset, 3, pal.Line, false)
	vector.StrokeLine(dst, mid+kitchenWidth, courtInset, mid+kitchenWidth, h-courtInset, 3, pal.Line, false)
	vector.StrokeLine(dst, courtInset, h/2, mid-kitchenWidth, h/2, 3, pal.Line, false)
	vector.StrokeLine(dst, mid+kitchenWidth, h/2, w-courtInset, h/2, 3, pal.Line, false)

	const segment, gap = 15, 8
	for y := float32(courtInset + 5); y < h-courtInset-5; y += segment + gap {
		vector.StrokeLine(dst, mid, y, mid, y+segment, 4, pal.Line, false)
	}
}

func (r *Renderer) drawGrid(dst *ebiten.Image) {
	pal := r.theme.Palette
	for x := float32(0); x <= r.w; x += gridSpacing {
		vector.StrokeLine(dst, x, 0, x, r.h, 1, pal.Line, false)
	}
	for y := float32(0); y <= r.h; y += gridSpacing {
		vector.StrokeLine(dst, 0, y, r.w, y, 1, pal.Line, false)
	}
	vector.DrawFilledRect(dst, r.w/2-kitchenWidth, 0, 2*kitchenWidth, r.h, pal.Kitchen, false)

	center := withAlpha(pal.Text, 0.5)
	const dash, gap = 20, 15
	for y := float32(0); y < r.h; y += dash + gap {
		vector.StrokeLine(dst, r.w/2, y, r.w/2, y+dash, 2, center, false)
	}
}

func (r *Renderer) drawPaddle(dst *ebiten.Image, p pong.Paddle) {
	c := r.theme.Color(p.Color)
	x, y := float32(p.X), float32(p.Y)
	pw, ph := float32(p.Width), float32(p.Height)

	vector.DrawFilledRect(dst, x-4, y-4, pw+8, ph+8, withAlpha(c, 0.25), true)
	vector.DrawFilledRect(dst, x, y, pw, ph, c, false)
	if r.theme.Decoration != theme.DecorationCourt {
		return
	}

	segment := ph / 12
	grip := shade(c, -30)
	for i := 0; i < 12; i += 2 {
		vector.DrawFilledRect(dst, x+2, y+float32(i)*segment, pw-4, segment, grip, false)
	}

	hx := x - handleWidth
	if p.Side == pong.Left {
		hx = x + pw
	}
	hy := y + ph/2 - handleHeight/2
	vector.DrawFilledRect(dst, hx, hy, handleWidth, handleHeight, handleColor, false)
	vector.DrawFilledRect(dst, hx+3, hy+5, handleWidth-6, handleHeight-10, gripColor, false)
}

func (r *Renderer) drawParticles(dst *ebiten.Image, ps []pong.Particle) {
	for _, p := range ps {
		c := withAlpha(r.theme.Color(p.Color), particleAlpha(p))
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size/2), c, true)
	}
}

func (r *Renderer) drawBall(dst *ebiten.Image, b pong.Ball) {
	pal := r.theme.Palette
	n := b.Trail.Len()
	for i := 0; i < n; i++ {
		p := b.Trail.At(i)
		d, a := trailDot(i, n, b.Size)
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(d/2), withAlpha(pal.Trail, a), true)
	}

	c := r.theme.Color(b.Color)
	center := b.Center()
	cx, cy, radius := float32(center.X), float32(center.Y), float32(b.Size/2)
	vector.DrawFilledCircle(dst, cx, cy, radius*1.6, withAlpha(c, 0.2), true)
	vector.DrawFilledCircle(dst, cx, cy, radius, c, true)
	if r.theme.Decoration == theme.DecorationCourt {
		vector.DrawFilledCircle(dst, cx, cy, radius*0.7, shade(c, -30), true)
	}
}

func (r *Renderer) drawScore(dst *ebiten.Image, s *pong.State) {
	pal := r.theme.Palette
	for _, p := range []pong.Paddle{s.Left, s.Right} {
		cx := r.w / 4
		if p.Side == pong.Right {
			cx = 3 * r.w / 4
		}
		c := r.theme.Color(p.Color)
		x, y := cx-scoreBox/2, float32(20)
		vector.DrawFilledRect(dst, x, y, scoreBox, scoreBox, pal.Panel, false)
		vector.StrokeRect(dst, x, y, scoreBox, scoreBox, 3, c, false)
		drawLabel(dst, strconv.Itoa(p.Score), float64(cx), float64(y+scoreBox/2), 3, c, alignCenter)
	}
}

func (r *Renderer) drawServePrompt(dst *ebiten.Image) {
	pal := r.theme.Palette
	const bw, bh = 300, 40
	x, y := r.w/2-bw/2, r.h/2+50
	vector.DrawFilledRect(dst, x, y, bw, bh, pal.Panel, false)
	vector.StrokeRect(dst, x, y, bw, bh, 2, pal.Line, false)
	vector.StrokeRect(dst, x+4, y+4, bw-8, bh-8, 1, withAlpha(pal.Text, 0.3), false)
	drawLabel(dst, "PRESS SPACE TO SERVE", float64(r.w/2), float64(y+bh/2), 2, pal.Text, alignCenter)
}

func (r *Renderer) drawControls(dst *ebiten.Image) {
	pal := r.theme.Palette
	const bh = 30
	y := r.h - bh - 10
	vector.DrawFilledRect(dst, 10, y, r.w-20, bh, pal.Panel, false)
	vector.StrokeRect(dst, 10, y, r.w-20, bh, 2, pal.Line, false)
	mid := float64(y + bh/2)
	drawLabel(dst, "PLAYER 1: W/S", 30, mid, 1.5, pal.Text, alignLeft)
	drawLabel(dst, "PLAYER 2: UP/DOWN", float64(r.w/2), mid, 1.5, pal.Text, alignCenter)
	drawLabel(dst, "QUIT: ESC", float64(r.w-30), mid, 1.5, pal.Text, alignRight)
}

func (r *Renderer) drawTitle(dst *ebiten.Image) {
	pal := r.theme.Palette
	title := r.theme.Title
	const scale = 2
	bw := float32(text.BoundString(basicfont.Face7x13, title).Dx()*scale + 40)
	const bh, y = 60, 10
	x := r.w/2 - bw/2
	vector.DrawFilledRect(dst, x, y, bw, bh, pal.Panel, false)
	vector.StrokeRect(dst, x, y, bw, bh, 3, pal.Line, false)
	stripe := withAlpha(pal.Text, 0.2)
	for sy := float32(y + 4); sy < y+bh-4; sy += 8 {
		vector.StrokeLine(dst, x+3, sy, x+bw-3, sy, 1, stripe, false)
	}
	drawLabel(dst, title, float64(r.w/2), y+bh/2, scale, pal.Text, alignCenter)
}

// drawLabel draws s with basicfont scaled by scale, vertically centered on y
// and horizontally anchored at x according to a.
func drawLabel(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, a align) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	w := float64(b.Dx()) * scale
	switch a {
	case alignCenter:
		x -= w / 2
	case alignRight:
		x -= w
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-float64(b.Min.X)*scale, y-float64(b.Min.Y+b.Max.Y)/2*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}
