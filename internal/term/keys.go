package term

import (
	"time"

	"github.com/kaymed/picklepong/internal/pong"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat on common keyboard settings.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyName translates a tcell key event into the identifier the input mapper
// expects. Ctrl-C is reported as Escape so it quits like the window build.
func KeyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune()), true
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "Escape", true
	default:
		return "", false
	}
}

// HoldTracker turns a stream of key presses into held-key snapshots.
// Terminals only report presses and repeats, so a key counts as held until
// window has passed since it was last seen.
type HoldTracker struct {
	window time.Duration
	seen   map[string]time.Time
}

// NewHoldTracker returns a tracker using window, or DefaultHoldWindow when
// window is not positive.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window, seen: make(map[string]time.Time)}
}

// Press records that name was reported at now.
func (h *HoldTracker) Press(name string, now time.Time) {
	h.seen[name] = now
}

// Snapshot returns the keys still held at now and forgets expired ones.
func (h *HoldTracker) Snapshot(now time.Time) pong.KeyState {
	keys := make(pong.KeyState, len(h.seen))
	for name, at := range h.seen {
		if now.Sub(at) >= h.window {
			delete(h.seen, name)
			continue
		}
		keys[name] = true
	}
	return keys
}
