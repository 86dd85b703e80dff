package pong

import (
	"strconv"

	"github.com/kaymed/picklepong/internal/core"
)

// Parameters describes the active configuration for the HUD and reports.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Court",
			Params: []core.Parameter{
				floatParam("w", "Width", c.Width),
				floatParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Paddles",
			Params: []core.Parameter{
				floatParam("paddle_width", "Paddle width", c.PaddleWidth),
				floatParam("paddle_height", "Paddle height", c.PaddleHeight),
				floatParam("paddle_margin", "Paddle margin", c.PaddleMargin),
				floatParam("paddle_speed", "Paddle speed", c.PaddleSpeed),
			},
		},
		{
			Name: "Ball",
			Params: []core.Parameter{
				floatParam("ball_size", "Ball size", c.BallSize),
				floatParam("ball_speed", "Ball speed", c.BallSpeed),
				floatParam("serve_slope", "Serve slope", c.ServeSlope),
				intParam("trail", "Trail length", TrailCapacity),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				boolParam("scale_with_delta", "Scale with delta", c.ScaleWithDelta),
				floatParam("max_delta", "Max delta", c.MaxDelta),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
