//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas adapts an ebiten frame image to the engine's Renderer contract.
// Rectangles are drawn by scaling a shared 1x1 white image.
type Canvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
}

// NewCanvas allocates a canvas. Begin must be called with the frame's target
// image before drawing.
func NewCanvas() *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{pixel: pixel}
}

// Begin points the canvas at this frame's target image.
func (c *Canvas) Begin(dst *ebiten.Image) { c.dst = dst }

// Clear fills the whole target with one color.
func (c *Canvas) Clear(col color.Color) { c.dst.Fill(col) }

// FillRect draws an axis-aligned filled rectangle in pixel coordinates.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	c.dst.DrawImage(c.pixel, op)
}

// Present is a no-op; ebiten flips the frame itself.
func (c *Canvas) Present() {}
