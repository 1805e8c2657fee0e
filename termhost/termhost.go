// Package termhost runs a mystify engine in a terminal using tcell.
//
// Each frame is rasterized with gg into a pixmap of cols × rows*2 pixels.
// Every terminal cell shows two vertically stacked pixels as an upper half
// block: the foreground paints the top pixel, the background the bottom.
package termhost

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/mystify"
	"github.com/phanxgames/mystify/rasterhost"
)

const halfBlock = '▀'

// Option configures a Host.
type Option func(*Host)

// WithTPS sets the tick rate. Non-positive values are ignored.
func WithTPS(tps int) Option {
	return func(h *Host) {
		if tps > 0 {
			h.tick = time.Second / time.Duration(tps)
		}
	}
}

// Host draws an engine onto a tcell screen. The caller owns the screen:
// Host never calls Init or Fini.
type Host struct {
	screen tcell.Screen
	engine *mystify.Engine
	canvas *rasterhost.Canvas
	tick   time.Duration
	cols   int
	rows   int
}

// New returns a host for an initialized tcell screen. The engine is
// redirected to the host's raster canvas.
func New(screen tcell.Screen, engine *mystify.Engine, opts ...Option) *Host {
	h := &Host{
		screen: screen,
		engine: engine,
		tick:   time.Second / 30,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.resize()
	return h
}

// Engine returns the engine the host drives.
func (h *Host) Engine() *mystify.Engine {
	return h.engine
}

// resize matches the raster to the current screen size.
func (h *Host) resize() {
	cols, rows := h.screen.Size()
	cols, rows = max(cols, 1), max(rows, 1)
	if h.canvas != nil && cols == h.cols && rows == h.rows {
		return
	}
	if h.canvas != nil {
		h.canvas.Close()
	}
	h.cols, h.rows = cols, rows
	h.canvas = rasterhost.NewScaledCanvas(cols, rows*2, h.engine.Config().Bounds())
	h.engine.SetCanvas(h.canvas)
}

// Frame advances the engine one tick and draws the result to the screen.
func (h *Host) Frame() {
	h.engine.Update()
	h.canvas.Frame(h.engine)
	h.blit(h.canvas.Image())
	h.screen.Show()
}

func (h *Host) blit(img image.Image) {
	b := img.Bounds()
	for y := 0; y < h.rows; y++ {
		for x := 0; x < h.cols; x++ {
			top := cellColor(img, b.Min.X+x, b.Min.Y+2*y)
			bottom := cellColor(img, b.Min.X+x, b.Min.Y+2*y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// quitKey reports whether ev asks the host to stop.
func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Run draws frames until ctx is done or the user presses Escape, q or
// Ctrl-C. It initializes the engine if needed and finalizes it on return.
func (h *Host) Run(ctx context.Context) error {
	if !h.engine.Ready() {
		h.engine.Initialize()
	}
	defer h.engine.Finalize()
	defer h.canvas.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	log := mystify.Logger()
	log.Info("terminal opened", "cols", h.cols, "rows", h.rows, "tick", h.tick)

	h.screen.HideCursor()
	h.Frame()
	for {
		select {
		case <-ctx.Done():
			log.Info("terminal closed", "reason", ctx.Err())
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					log.Info("terminal closed", "reason", "key")
					return nil
				}
			case *tcell.EventResize:
				h.resize()
				h.screen.Sync()
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// Run creates a Host for screen and runs it until ctx is done or the user
// quits.
func Run(ctx context.Context, screen tcell.Screen, engine *mystify.Engine, opts ...Option) error {
	return New(screen, engine, opts...).Run(ctx)
}
