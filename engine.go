package mystify

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// State is the engine lifecycle state.
type State uint8

const (
	StateUninitialized State = iota // before Initialize or after Finalize
	StateReady                      // between Initialize and Finalize
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. The engine draws every random value from
// it, so a seeded generator makes runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds a PCG generator as the random source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = newRand(seed)
	}
}

// WithLogger sets the engine's logger. Without it the engine logs through
// the package-wide logger from SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine owns the simulation state: a fixed set of compounds created by
// Initialize, moved by Update and drawn by Render. An Engine is not safe for
// concurrent use; the host loop owns it.
type Engine struct {
	cfg    Config
	canvas Canvas
	rng    *rand.Rand
	logger *slog.Logger
	mover  mover

	compounds []*Compound
	state     State
	stats     Stats
	debug     bool

	// OnBounce, when set, is called for every wall reflection during Update.
	OnBounce func(BounceEvent)
}

// NewEngine creates an uninitialized engine drawing to canvas. A nil canvas
// discards all drawing until SetCanvas is called. NewEngine panics if cfg
// does not validate; configs from DefaultConfig, DecodeConfig and LoadConfig
// always do.
func NewEngine(cfg Config, canvas Canvas, opts ...Option) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	e := &Engine{cfg: cfg}
	e.SetCanvas(canvas)
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.mover = newMover(cfg, e.rng)
	return e
}

// SetCanvas replaces the drawing surface. Nil discards drawing.
func (e *Engine) SetCanvas(c Canvas) {
	if c == nil {
		c = nopCanvas{}
	}
	e.canvas = c
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Ready reports whether Initialize has been called without a later Finalize.
func (e *Engine) Ready() bool {
	return e.state == StateReady
}

// Compounds returns the compounds in insertion order. The returned slice
// MUST NOT be resized; hosts should treat it as read-only.
func (e *Engine) Compounds() []*Compound {
	return e.compounds
}

// Stats returns counters accumulated since Initialize.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Initialize creates the compounds with random hues, trail lengths,
// positions and velocities. Calling it again discards the previous state.
func (e *Engine) Initialize() {
	e.compounds = make([]*Compound, 0, e.cfg.Compounds)
	for n := 0; n < e.cfg.Compounds; n++ {
		c := newCompound(e.cfg, e.rng, e.mover.speed)
		e.compounds = append(e.compounds, c)
		e.log().Debug("compound initialized",
			"index", n,
			"hue", c.Hue,
			"history_length", c.HistoryLength,
			"vertices", len(c.Latest.Vertices))
	}
	e.stats = Stats{}
	e.state = StateReady
}

// Update advances every compound by one tick: the hue drifts, every vertex
// moves and bounces, and a snapshot of the new shape joins the history.
// Update is a no-op unless the engine is ready.
func (e *Engine) Update() {
	if e.state != StateReady {
		return
	}
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	for ci, c := range e.compounds {
		e.updateCompound(ci, c)
	}
	e.stats.Ticks++

	if e.debug {
		e.stats.UpdateTime = time.Since(t0)
	}
}

func (e *Engine) updateCompound(ci int, c *Compound) {
	c.Hue = wrapHue(c.Hue, e.cfg.HueStep)

	verts := c.Latest.Vertices
	for vi := range verts {
		bx, by := e.mover.move(&verts[vi])
		if bx {
			e.bounced(BounceEvent{Compound: ci, Vertex: vi, Axis: AxisX, Velocity: verts[vi].VX})
		}
		if by {
			e.bounced(BounceEvent{Compound: ci, Vertex: vi, Axis: AxisY, Velocity: verts[vi].VY})
		}
	}

	c.History.Push(c.Latest)
}

func (e *Engine) bounced(ev BounceEvent) {
	e.stats.Bounces++
	if e.OnBounce != nil {
		e.OnBounce(ev)
	}
}

// Render draws every Interval-th history entry of each compound as a closed
// outline in the compound's current hue. Render does not modify the
// simulation and is a no-op unless the engine is ready.
func (e *Engine) Render() {
	if e.state != StateReady {
		return
	}
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	lines := 0
	for _, c := range e.compounds {
		r, g, b := c.Color()
		col := e.canvas.ColorFromRGB(r, g, b)
		c.History.Each(func(i int, p Polygon) {
			if i%e.cfg.Interval != 0 {
				return
			}
			lines += drawOutline(e.canvas, p, col, e.cfg.Thickness)
		})
	}
	e.stats.Lines = lines

	if e.debug {
		e.stats.RenderTime = time.Since(t0)
		e.debugLog()
	}
}

// Finalize releases the compounds and returns the engine to the
// uninitialized state. It always succeeds.
func (e *Engine) Finalize() {
	for _, c := range e.compounds {
		c.History.Clear()
	}
	e.compounds = nil
	e.state = StateUninitialized
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}
