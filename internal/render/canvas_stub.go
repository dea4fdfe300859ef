//go:build !ebiten

package render

import (
	"image"
	"image/color"
)

// Canvas is a placeholder that satisfies the API expected by the GUI build.
type Canvas struct{}

// NewCanvas panics to indicate that the ebiten build tag is required for GUI
// support.
func NewCanvas() *Canvas {
	panic("render.NewCanvas requires building with the 'ebiten' tag")
}

// Begin is a no-op placeholder.
func (c *Canvas) Begin(any) {}

// Clear is a no-op placeholder.
func (c *Canvas) Clear(color.Color) {}

// FillRect is a no-op placeholder.
func (c *Canvas) FillRect(image.Rectangle, color.Color) {}

// Present is a no-op placeholder.
func (c *Canvas) Present() {}
