// Package ebitenhost runs a mystify engine in an Ebitengine window.
//
// The host owns the frame loop: it calls Engine.Update once per tick and
// Engine.Render once per frame, clearing the screen to black first. The
// logical screen is the engine's configured size; the window is scaled by
// RunConfig.Scale and is not resizable.
//
// Keys: Escape quits, F12 saves a screenshot.
package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/mystify"
)

// RunConfig holds window and loop options for Run.
type RunConfig struct {
	Title string
	// Scale sizes the window relative to the engine screen. Defaults to 0.5.
	Scale float64
	// TPS is the tick rate. Defaults to 60.
	TPS int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// FadeIn is the start-up fade duration in seconds. Zero disables it.
	FadeIn float32
	// ScreenshotDir is where F12 screenshots go. Defaults to "screenshots".
	ScreenshotDir string
	Fullscreen    bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "Mystify"
	}
	if c.Scale <= 0 {
		c.Scale = 0.5
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Game adapts a mystify engine to ebiten.Game.
type Game struct {
	engine *mystify.Engine
	canvas *Canvas
	cfg    RunConfig
	fade   *fade
	fps    *fpsLabel

	screenshotQueue []string
	shots           int
}

// NewGame wires engine to a new ebiten canvas. The engine's previous canvas
// is replaced.
func NewGame(engine *mystify.Engine, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		engine: engine,
		canvas: NewCanvas(),
		cfg:    cfg,
		fade:   newFade(cfg.FadeIn),
	}
	if cfg.ShowFPS {
		g.fps = newFPSLabel()
	}
	engine.SetCanvas(g.canvas)
	return g
}

// Update handles keys and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots++
		g.Screenshot(fmt.Sprintf("mystify-%d", g.shots))
	}
	g.step(1 / float32(g.cfg.TPS))
	return nil
}

// step advances the fade, the FPS readout and the engine.
func (g *Game) step(dt float32) {
	g.fade.update(dt)
	if g.fps != nil {
		g.fps.update(float64(dt))
	}
	g.engine.Update()
}

// Draw clears the screen and renders the engine onto it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.canvas.Target = screen
	g.canvas.Alpha = g.fade.alpha()
	g.engine.Render()
	g.canvas.Target = nil

	g.flushScreenshots(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout returns the engine's screen size as the logical screen.
func (g *Game) Layout(_, _ int) (int, int) {
	c := g.engine.Config()
	return c.Width, c.Height
}

// Run opens a window and runs engine until the window is closed or Escape
// is pressed. It initializes the engine if needed and finalizes it on
// return.
func Run(engine *mystify.Engine, cfg RunConfig) error {
	g := NewGame(engine, cfg)
	cfg = g.cfg
	ec := engine.Config()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(ec.Width)*cfg.Scale), int(float64(ec.Height)*cfg.Scale))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if !engine.Ready() {
		engine.Initialize()
	}
	defer engine.Finalize()

	mystify.Logger().Info("window opened",
		"title", cfg.Title,
		"screen", fmt.Sprintf("%dx%d", ec.Width, ec.Height),
		"scale", cfg.Scale,
		"tps", cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
