//go:build !ebiten

package ui

import (
	"github.com/kaymed/picklepong/internal/core"
	"github.com/kaymed/picklepong/internal/pong"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(parameterProvider, int) *HUD { return nil }

// Visible always reports false in the headless build.
func (h *HUD) Visible() bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(*pong.State) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
