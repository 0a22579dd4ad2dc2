// Package ebiten provides a render.Canvas backed by an Ebiten image.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws onto an *ebiten.Image, offset by (X, Y) so the playfield can
// sit anywhere on the screen.
type Canvas struct {
	Target    *ebiten.Image
	X, Y      float32
	Antialias bool
}

// NewCanvas creates a canvas drawing onto target with its origin at (x, y).
func NewCanvas(target *ebiten.Image, x, y float32) *Canvas {
	return &Canvas{Target: target, X: x, Y: y}
}

func (c *Canvas) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(c.Target, c.X+x, c.Y+y, w, h, clr, c.Antialias)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(c.Target, c.X+x, c.Y+y, w, h, width, clr, c.Antialias)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.Target, c.X+x0, c.Y+y0, c.X+x1, c.Y+y1, width, clr, c.Antialias)
}
