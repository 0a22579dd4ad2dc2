// Package render paints a tetris session onto a raster canvas.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Canvas is a 2D raster surface with canvas-style coordinates: strokes are
// centred on their path and fills cover [x, x+w) × [y, y+h).
type Canvas interface {
	FillRect(x, y, w, h float32, clr color.Color)
	StrokeRect(x, y, w, h, width float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
}

// ImageCanvas draws onto an in-memory RGBA image. Lines must be axis aligned.
type ImageCanvas struct {
	Image *image.RGBA
}

// NewImageCanvas creates a transparent width × height canvas.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *ImageCanvas) fill(x0, y0, x1, y1 float32, clr color.Color) {
	r := image.Rect(floor(x0), floor(y0), floor(x1), floor(y1)).Intersect(c.Image.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.Image, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// FillRect fills the rectangle at (x, y) of size w × h.
func (c *ImageCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.fill(x, y, x+w, y+h, clr)
}

// StrokeRect outlines a rectangle with a stroke centred on its edges.
func (c *ImageCanvas) StrokeRect(x, y, w, h, width float32, clr color.Color) {
	hw := width / 2
	c.fill(x-hw, y-hw, x+w+hw, y+hw, clr)
	c.fill(x-hw, y+h-hw, x+w+hw, y+h+hw, clr)
	c.fill(x-hw, y-hw, x+hw, y+h+hw, clr)
	c.fill(x+w-hw, y-hw, x+w+hw, y+h+hw, clr)
}

// StrokeLine draws an axis-aligned line of the given width.
func (c *ImageCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	hw := width / 2
	c.fill(min(x0, x1)-hw, min(y0, y1)-hw, max(x0, x1)+hw, max(y0, y1)+hw, clr)
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}
