// Package rasterhost renders a mystify engine offscreen with the gg software
// rasterizer. It backs PNG export and the terminal host, and needs neither a
// GPU nor a display.
package rasterhost

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/phanxgames/mystify"
)

// Canvas is a mystify.Canvas backed by a gg context. Engine coordinates are
// multiplied by the scale factors, so a full-size engine can render into a
// small raster.
type Canvas struct {
	ctx    *gg.Context
	scaleX float64
	scaleY float64
}

// NewCanvas returns a w×h canvas cleared to black, with engine coordinates
// mapped one to one.
func NewCanvas(w, h int) *Canvas {
	return newCanvas(w, h, 1, 1)
}

// NewScaledCanvas returns a w×h canvas that maps an engine screen of
// bounds.Width×bounds.Height onto it.
func NewScaledCanvas(w, h int, bounds mystify.Rect) *Canvas {
	sx, sy := 1.0, 1.0
	if bounds.Width > 0 {
		sx = float64(w) / bounds.Width
	}
	if bounds.Height > 0 {
		sy = float64(h) / bounds.Height
	}
	return newCanvas(w, h, sx, sy)
}

func newCanvas(w, h int, sx, sy float64) *Canvas {
	c := &Canvas{ctx: gg.NewContext(w, h), scaleX: sx, scaleY: sy}
	c.Clear()
	return c
}

// Width returns the raster width in pixels.
func (c *Canvas) Width() int { return c.ctx.Width() }

// Height returns the raster height in pixels.
func (c *Canvas) Height() int { return c.ctx.Height() }

// Clear fills the raster with black.
func (c *Canvas) Clear() {
	c.ctx.ClearWithColor(gg.Black)
}

// DrawLine strokes a line. Thickness is scaled by the smaller scale factor
// and never drops below one pixel.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, col color.Color, thickness float64) {
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(max(thickness*min(c.scaleX, c.scaleY), 1))
	c.ctx.DrawLine(x0*c.scaleX, y0*c.scaleY, x1*c.scaleX, y1*c.scaleY)
	if err := c.ctx.Stroke(); err != nil {
		mystify.Logger().Warn("rasterhost: stroke failed", "err", err)
	}
}

// ColorFromRGB returns an opaque gg color.
func (c *Canvas) ColorFromRGB(r, g, b uint8) color.Color {
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255).Color()
}

// Image returns the current raster.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the raster to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the raster as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.ctx.Close()
}

// Frame clears the canvas and renders the engine's current state onto it.
// The engine must already draw to c.
func (c *Canvas) Frame(engine *mystify.Engine) {
	c.Clear()
	engine.Render()
}

// Snapshot advances engine by frames updates and returns the rendered
// result. The engine is initialized if needed and drawn onto canvas.
func Snapshot(engine *mystify.Engine, canvas *Canvas, frames int) image.Image {
	engine.SetCanvas(canvas)
	if !engine.Ready() {
		engine.Initialize()
	}
	for range frames {
		engine.Update()
	}
	canvas.Frame(engine)
	return canvas.Image()
}

// RenderPNG runs engine for frames updates at full resolution and saves the
// final frame to path. It finalizes the engine before returning.
func RenderPNG(engine *mystify.Engine, frames int, path string) error {
	cfg := engine.Config()
	canvas := NewCanvas(cfg.Width, cfg.Height)
	defer canvas.Close()
	defer engine.Finalize()

	Snapshot(engine, canvas, frames)
	if err := canvas.SavePNG(path); err != nil {
		return err
	}
	mystify.Logger().Info("frame saved", "path", path, "frames", frames, "ticks", engine.Stats().Ticks)
	return nil
}
