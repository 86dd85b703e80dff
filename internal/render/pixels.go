package render

import (
	"image/color"

	"github.com/kaymed/picklepong/internal/core"
	"github.com/kaymed/picklepong/internal/pong"
)

// shade lightens (positive amt) or darkens (negative amt) every channel of c.
func shade(c color.NRGBA, amt int) color.NRGBA {
	ch := func(v uint8) uint8 {
		return uint8(core.Clamp(float64(int(v)+amt), 0, 255))
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// withAlpha scales the alpha of c by a, clamped to [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = core.Clamp(a, 0, 1)
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// particleAlpha fades a particle out linearly over its lifetime.
func particleAlpha(p pong.Particle) float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.Clamp(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

// trailDot returns the diameter and opacity of trail point i out of n, oldest
// first. Newer points are larger and more opaque.
func trailDot(i, n int, ballSize float64) (diameter, alpha float64) {
	if n <= 0 || i < 0 || i >= n {
		return 0, 0
	}
	f := float64(i+1) / float64(n)
	return ballSize * f * 0.8, f * 0.5
}
