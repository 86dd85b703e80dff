package app

import (
	"fmt"

	"github.com/kaymed/picklepong/internal/pong"
)

// DescribeEvent formats ev for the verbose log. s is the state the event was
// produced with.
func DescribeEvent(ev pong.Event, s *pong.State) string {
	switch ev.Kind {
	case pong.EventScore:
		return fmt.Sprintf("tick %d: point %s, %s", ev.Tick, ev.Side, s.Scoreline())
	case pong.EventPaddleHit:
		return fmt.Sprintf("tick %d: %s paddle hit at y=%.1f", ev.Tick, ev.Side, ev.Pos.Y)
	case pong.EventWallBounce:
		return fmt.Sprintf("tick %d: wall bounce at x=%.1f", ev.Tick, ev.Pos.X)
	default:
		return fmt.Sprintf("tick %d: %s", ev.Tick, ev.Kind)
	}
}
