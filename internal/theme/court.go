package theme

import "image/color"

// Court is the pickleball skin: blue court, white lines, shaded kitchen.
var Court = Theme{
	Name:  "court",
	Title: "PICKLEBALL PONG",
	Palette: Palette{
		Background: color.NRGBA{R: 0x37, G: 0x73, B: 0xb3, A: 0xff},
		Court:      color.NRGBA{R: 0x00, G: 0x8d, B: 0xdf, A: 0xff},
		Line:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Kitchen:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x26},
		Panel:      color.NRGBA{R: 0, G: 0, B: 60, A: 0xb3},
		Text:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Left:       color.NRGBA{R: 0xf5, G: 0x05, B: 0x38, A: 0xff},
		Right:      color.NRGBA{R: 255, G: 0, B: 150, A: 0xff},
		Ball:       color.NRGBA{R: 0xbd, G: 0xe7, B: 0x65, A: 0xff},
		Trail:      color.NRGBA{R: 0, G: 255, B: 100, A: 0xff},
	},
	Decoration: DecorationCourt,
}

func init() {
	Register("court", Court)
}
