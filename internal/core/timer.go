package core

import "time"

// FrameClock converts the wall-clock gap between frames into a delta expressed in
// nominal ticks, so 1.0 means exactly one tick at the configured rate.
type FrameClock struct {
	step time.Duration
	last time.Time
}

// NewFrameClock constructs a FrameClock targeting the given TPS.
func NewFrameClock(tps int) *FrameClock {
	fc := &FrameClock{}
	fc.SetTPS(tps)
	return fc
}

// SetTPS changes the nominal tick rate. It is safe to call from the main loop.
func (f *FrameClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one nominal tick.
func (f *FrameClock) Step() time.Duration { return f.step }

// Delta records now as the latest frame and returns the elapsed time since the
// previous frame in ticks. The first frame reports exactly one tick.
func (f *FrameClock) Delta(now time.Time) float64 {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(f.step)
}

// Reset forgets the previous frame so the next Delta reports one tick.
func (f *FrameClock) Reset() { f.last = time.Time{} }
