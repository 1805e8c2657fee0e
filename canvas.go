package mystify

import "image/color"

// Canvas is the drawing surface the engine renders through. It supplies the
// line primitive and constructs the color handles passed back to it.
type Canvas interface {
	// DrawLine draws a line from (x0, y0) to (x1, y1).
	DrawLine(x0, y0, x1, y1 float64, c color.Color, thickness float64)
	// ColorFromRGB builds a color handle from 8-bit channels.
	ColorFromRGB(r, g, b uint8) color.Color
}

// Line is one recorded DrawLine call.
type Line struct {
	X0, Y0, X1, Y1 float64
	Color          color.Color
	Thickness      float64
}

// RecordingCanvas records every DrawLine call in order. The zero value is
// ready to use.
type RecordingCanvas struct {
	Lines []Line
}

// DrawLine appends the call to Lines.
func (c *RecordingCanvas) DrawLine(x0, y0, x1, y1 float64, col color.Color, thickness float64) {
	c.Lines = append(c.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: col, Thickness: thickness})
}

// ColorFromRGB returns an opaque color.RGBA.
func (c *RecordingCanvas) ColorFromRGB(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Reset drops all recorded lines, keeping the backing array.
func (c *RecordingCanvas) Reset() {
	c.Lines = c.Lines[:0]
}

// CanvasFunc adapts a line-drawing function to Canvas. Colors are built as
// opaque color.RGBA values.
type CanvasFunc func(x0, y0, x1, y1 float64, c color.Color, thickness float64)

// DrawLine calls f.
func (f CanvasFunc) DrawLine(x0, y0, x1, y1 float64, c color.Color, thickness float64) {
	f(x0, y0, x1, y1, c, thickness)
}

// ColorFromRGB returns an opaque color.RGBA.
func (f CanvasFunc) ColorFromRGB(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// nopCanvas is used when an engine is built without a canvas.
type nopCanvas struct{}

func (nopCanvas) DrawLine(float64, float64, float64, float64, color.Color, float64) {}

func (nopCanvas) ColorFromRGB(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
