package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws engine lines onto an ebiten image with anti-aliased strokes.
// Target is swapped to the screen image at the start of every Draw.
type Canvas struct {
	Target *ebiten.Image
	// Alpha scales every color, used for the start-up fade. 1 is opaque.
	Alpha float64
}

// NewCanvas returns an opaque canvas with no target.
func NewCanvas() *Canvas {
	return &Canvas{Alpha: 1}
}

// DrawLine strokes a line on Target. It does nothing without a target.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, col color.Color, thickness float64) {
	if c.Target == nil {
		return
	}
	vector.StrokeLine(c.Target,
		float32(x0), float32(y0), float32(x1), float32(y1),
		float32(thickness), scaleAlpha(col, c.Alpha), true)
}

// ColorFromRGB returns an opaque color.RGBA.
func (c *Canvas) ColorFromRGB(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// scaleAlpha multiplies all premultiplied channels of col by a in [0, 1].
func scaleAlpha(col color.Color, a float64) color.Color {
	if a >= 1 {
		return col
	}
	if a <= 0 {
		return color.RGBA64{}
	}
	r, g, b, al := col.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * a),
		G: uint16(float64(g) * a),
		B: uint16(float64(b) * a),
		A: uint16(float64(al) * a),
	}
}
