// Package theme holds the cosmetic skins. A theme never changes the
// simulation; it only decides how tags and decorations look.
package theme

import (
	"image/color"
	"sort"

	"github.com/kaymed/picklepong/internal/pong"
)

// Decoration selects the court artwork drawn behind the play objects.
type Decoration uint8

const (
	// DecorationCourt draws a pickleball court with kitchen zones and a net.
	DecorationCourt Decoration = iota
	// DecorationGrid draws a neon grid with a dashed center line.
	DecorationGrid
)

// Palette lists every color a renderer needs.
type Palette struct {
	Background color.NRGBA
	Court      color.NRGBA
	Line       color.NRGBA
	Kitchen    color.NRGBA
	Panel      color.NRGBA
	Text       color.NRGBA

	Left  color.NRGBA
	Right color.NRGBA
	Ball  color.NRGBA
	Trail color.NRGBA
}

// Theme is a named skin.
type Theme struct {
	Name       string
	Title      string
	Palette    Palette
	Decoration Decoration
}

// Color resolves a simulation color tag.
func (t Theme) Color(tag pong.ColorTag) color.NRGBA {
	switch tag {
	case pong.TagLeft:
		return t.Palette.Left
	case pong.TagRight:
		return t.Palette.Right
	default:
		return t.Palette.Ball
	}
}

var themes = map[string]Theme{}

// Register adds a theme under the provided name.
func Register(name string, t Theme) {
	if name == "" {
		return
	}
	if t.Name == "" {
		t.Name = name
	}
	themes[name] = t
}

// Themes exposes the registry of available themes.
func Themes() map[string]Theme {
	return themes
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Names returns the registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Blend mixes overlay into base with the given overlay weight in [0, 1].
func Blend(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}
