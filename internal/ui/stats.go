package ui

import (
	"fmt"

	"github.com/kaymed/picklepong/internal/pong"
)

// Stats formats the live counters shown by the debug panel.
func Stats(s *pong.State) []string {
	if s == nil {
		return nil
	}
	b := s.Ball
	return []string{
		fmt.Sprintf("tick: %d", s.Tick),
		fmt.Sprintf("score: %d - %d", s.Left.Score, s.Right.Score),
		fmt.Sprintf("particles: %d", len(s.Particles)),
		fmt.Sprintf("ball: %s", b.Phase()),
		fmt.Sprintf("velocity: %.2f, %.2f", b.SpeedX, b.SpeedY),
		fmt.Sprintf("trail: %d", b.Trail.Len()),
	}
}
