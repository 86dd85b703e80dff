package theme

import "image/color"

// Grid is the neon arcade skin: dark backdrop with a glowing grid.
var Grid = Theme{
	Name:  "grid",
	Title: "NEON PONG",
	Palette: Palette{
		Background: color.NRGBA{R: 0, G: 0, B: 30, A: 0xff},
		Court:      color.NRGBA{R: 0, G: 0, B: 30, A: 0xff},
		Line:       color.NRGBA{R: 0, G: 100, B: 255, A: 0x33},
		Kitchen:    color.NRGBA{R: 0, G: 100, B: 255, A: 0x14},
		Panel:      color.NRGBA{R: 0, G: 0, B: 60, A: 0xb3},
		Text:       color.NRGBA{R: 255, G: 255, B: 255, A: 0xff},
		Left:       color.NRGBA{R: 0, G: 200, B: 255, A: 0xff},
		Right:      color.NRGBA{R: 255, G: 0, B: 150, A: 0xff},
		Ball:       color.NRGBA{R: 0, G: 255, B: 100, A: 0xff},
		Trail:      color.NRGBA{R: 0, G: 255, B: 100, A: 0xff},
	},
	Decoration: DecorationGrid,
}

func init() {
	Register("grid", Grid)
}
