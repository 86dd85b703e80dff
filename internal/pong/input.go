package pong

import "github.com/kaymed/picklepong/internal/core"

// KeyState maps raw key identifiers to their pressed state. Drivers build a
// fresh snapshot every frame and hand it to Engine.Tick; unknown keys are
// ignored.
type KeyState map[string]bool

// Clone returns an independent copy of the snapshot.
func (k KeyState) Clone() KeyState {
	out := make(KeyState, len(k))
	for name, down := range k {
		out[name] = down
	}
	return out
}

// Pressed reports whether any of the named keys is down.
func (k KeyState) Pressed(names ...string) bool {
	for _, name := range names {
		if k[name] {
			return true
		}
	}
	return false
}

// Bindings lists the raw key identifiers bound to each action.
type Bindings struct {
	LeftUp    []string
	LeftDown  []string
	RightUp   []string
	RightDown []string
	Serve     []string
	Quit      []string
}

// DefaultBindings drives the left paddle with W/S, the right paddle with the
// arrow keys, serves with space and quits with Escape. Both browser-style and
// ebiten-style key names are listed.
func DefaultBindings() Bindings {
	return Bindings{
		LeftUp:    []string{"w", "W"},
		LeftDown:  []string{"s", "S"},
		RightUp:   []string{"ArrowUp"},
		RightDown: []string{"ArrowDown"},
		Serve:     []string{" ", "Space", "Spacebar"},
		Quit:      []string{"Escape"},
	}
}

// Intents is the per-tick outcome of input mapping.
type Intents struct {
	// Left and Right are -1 (up), 0 or +1 (down).
	Left  int
	Right int
	Serve bool
	Quit  bool
}

// MapKeys translates a key snapshot into intents.
func MapKeys(keys KeyState, b Bindings) Intents {
	return Intents{
		Left:  axis(keys.Pressed(b.LeftUp...), keys.Pressed(b.LeftDown...)),
		Right: axis(keys.Pressed(b.RightUp...), keys.Pressed(b.RightDown...)),
		Serve: keys.Pressed(b.Serve...),
		Quit:  keys.Pressed(b.Quit...),
	}
}

func axis(up, down bool) int {
	dir := 0
	if up {
		dir--
	}
	if down {
		dir++
	}
	return dir
}

// movePaddle steps the paddle by dir*speed*scale and keeps it on the court.
func movePaddle(p *Paddle, dir int, scale, courtHeight float64) {
	p.Y += float64(dir) * p.Speed * scale
	p.Y = core.Clamp(p.Y, 0, courtHeight-p.Height)
}
