package pong

import "strconv"

// Config holds the court geometry and the physics constants of a match.
type Config struct {
	Width  float64
	Height float64

	PaddleWidth  float64
	PaddleHeight float64
	// PaddleMargin is the gap between a court edge and the outer face of a paddle.
	PaddleMargin float64
	PaddleSpeed  float64

	BallSize  float64
	BallSpeed float64
	// ServeSlope scales BallSpeed into the vertical component of a fresh serve.
	ServeSlope float64

	// ScaleWithDelta multiplies movement by the frame delta. When false every
	// tick moves exactly one step regardless of dt.
	ScaleWithDelta bool
	// MaxDelta caps the frame delta applied when ScaleWithDelta is on.
	MaxDelta float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		PaddleWidth:  15,
		PaddleHeight: 100,
		PaddleMargin: 50,
		PaddleSpeed:  8,
		BallSize:     16,
		BallSpeed:    7,
		ServeSlope:   0.7,
		MaxDelta:     4,
		Seed:         1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall outside their valid range are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("w", &c.Width)
	positive("h", &c.Height)
	positive("paddle_width", &c.PaddleWidth)
	positive("paddle_height", &c.PaddleHeight)
	positive("paddle_speed", &c.PaddleSpeed)
	positive("ball_size", &c.BallSize)
	positive("ball_speed", &c.BallSpeed)
	positive("max_delta", &c.MaxDelta)
	if v, ok := cfg["paddle_margin"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.PaddleMargin = parsed
		}
	}
	if v, ok := cfg["serve_slope"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.ServeSlope = parsed
		}
	}
	if v, ok := cfg["scale_with_delta"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ScaleWithDelta = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if c.PaddleHeight > c.Height {
		c.PaddleHeight = c.Height
	}
	if c.BallSize > c.Height {
		c.BallSize = c.Height
	}
	return c
}
