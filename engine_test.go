package mystify

import (
	"bytes"
	"image/color"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func smallConfig() Config {
	c := DefaultConfig()
	c.Width = 64
	c.Height = 48
	return c
}

func newTestEngine(cfg Config, seed uint64) (*Engine, *RecordingCanvas) {
	rc := &RecordingCanvas{}
	e := NewEngine(cfg, rc, WithSeed(seed))
	return e, rc
}

// --- Lifecycle ---

func TestEngineLifecycle(t *testing.T) {
	e, rc := newTestEngine(DefaultConfig(), 1)
	if e.State() != StateUninitialized || e.Ready() {
		t.Fatalf("new engine state = %v", e.State())
	}

	// Update and Render before Initialize do nothing.
	e.Update()
	e.Render()
	if len(rc.Lines) != 0 || e.Stats().Ticks != 0 {
		t.Fatalf("engine did work before Initialize: %d lines, %d ticks", len(rc.Lines), e.Stats().Ticks)
	}

	e.Initialize()
	if !e.Ready() || e.State().String() != "ready" {
		t.Fatalf("state after Initialize = %v", e.State())
	}
	if len(e.Compounds()) != 2 {
		t.Fatalf("compounds = %d, want 2", len(e.Compounds()))
	}

	e.Update()
	e.Render()
	if len(rc.Lines) == 0 {
		t.Error("Render drew nothing after one Update")
	}

	e.Finalize()
	if e.Ready() || e.Compounds() != nil {
		t.Errorf("Finalize left state %v with %d compounds", e.State(), len(e.Compounds()))
	}
	rc.Reset()
	e.Update()
	e.Render()
	if len(rc.Lines) != 0 {
		t.Errorf("Render after Finalize drew %d lines", len(rc.Lines))
	}

	e.Initialize()
	if !e.Ready() || len(e.Compounds()) != 2 || e.Stats().Ticks != 0 {
		t.Error("re-Initialize did not start fresh")
	}
}

func TestNewEngineInvalidConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEngine did not panic on invalid config")
		}
	}()
	c := DefaultConfig()
	c.Interval = 0
	NewEngine(c, nil)
}

func TestEngineNilCanvas(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil, WithSeed(3))
	e.Initialize()
	e.Update()
	e.Render()
	if e.Stats().Lines == 0 {
		t.Error("expected lines to be counted with the nop canvas")
	}
}

func TestStateString(t *testing.T) {
	if StateUninitialized.String() != "uninitialized" || State(7).String() != "unknown" {
		t.Error("unexpected state names")
	}
}

// --- Initialize ---

func TestInitializeCompounds(t *testing.T) {
	cfg := DefaultConfig()
	e, _ := newTestEngine(cfg, 9)
	e.Initialize()
	for i, c := range e.Compounds() {
		if c.Hue < 0 || c.Hue >= 360 || c.Hue != float64(int(c.Hue)) {
			t.Errorf("compound %d hue = %v, want integer in [0, 360)", i, c.Hue)
		}
		if c.HistoryLength < 7 || c.HistoryLength > 15 {
			t.Errorf("compound %d history length = %d", i, c.HistoryLength)
		}
		if c.History.Cap() != c.HistoryLength*cfg.Interval {
			t.Errorf("compound %d history cap = %d, want %d", i, c.History.Cap(), c.HistoryLength*cfg.Interval)
		}
		if c.History.Len() != 0 {
			t.Errorf("compound %d starts with %d history entries", i, c.History.Len())
		}
		if len(c.Latest.Vertices) != 4 {
			t.Errorf("compound %d has %d vertices", i, len(c.Latest.Vertices))
		}
		for j, v := range c.Latest.Vertices {
			if !cfg.Bounds().Contains(v.X, v.Y) {
				t.Errorf("vertex %d/%d at (%v, %v) outside screen", i, j, v.X, v.Y)
			}
			for _, s := range []float64{v.VX, v.VY} {
				if s < 0 {
					s = -s
				}
				if s < cfg.Speed.Min || s >= cfg.Speed.Max {
					t.Errorf("vertex %d/%d speed %v outside %v", i, j, s, cfg.Speed)
				}
			}
		}
	}
}

// --- Update ---

func TestUpdateOnceScenario(t *testing.T) {
	e, _ := newTestEngine(DefaultConfig(), 2024)
	e.Initialize()

	before := make([]Polygon, len(e.Compounds()))
	for i, c := range e.Compounds() {
		before[i] = c.Latest.Clone()
	}
	bounced := make(map[[2]int]bool)
	e.OnBounce = func(ev BounceEvent) {
		bounced[[2]int{ev.Compound, ev.Vertex}] = true
	}

	e.Update()

	for ci, c := range e.Compounds() {
		if c.History.Len() != 1 {
			t.Errorf("compound %d history = %d, want 1", ci, c.History.Len())
		}
		for vi, v := range c.Latest.Vertices {
			if bounced[[2]int{ci, vi}] {
				continue
			}
			old := before[ci].Vertices[vi]
			if v.X != old.X+old.VX || v.Y != old.Y+old.VY {
				t.Errorf("vertex %d/%d moved to (%v, %v), want (%v, %v)",
					ci, vi, v.X, v.Y, old.X+old.VX, old.Y+old.VY)
			}
			if v.VX != old.VX || v.VY != old.VY {
				t.Errorf("vertex %d/%d velocity changed without a bounce", ci, vi)
			}
		}
	}
}

func TestUpdateKeepsVerticesOnScreen(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), smallConfig()} {
		for seed := uint64(1); seed <= 3; seed++ {
			e, _ := newTestEngine(cfg, seed)
			e.Initialize()
			bounds := cfg.Bounds()
			for tick := 0; tick < 2000; tick++ {
				e.Update()
				for ci, c := range e.Compounds() {
					for vi, v := range c.Latest.Vertices {
						if !bounds.Contains(v.X, v.Y) {
							t.Fatalf("%dx%d seed %d tick %d: vertex %d/%d at (%v, %v)",
								cfg.Width, cfg.Height, seed, tick, ci, vi, v.X, v.Y)
						}
					}
				}
			}
		}
	}
}

func TestUpdateBoundsHistory(t *testing.T) {
	cfg := DefaultConfig()
	e, _ := newTestEngine(cfg, 5)
	e.Initialize()
	for tick := 1; tick <= 100; tick++ {
		e.Update()
		for ci, c := range e.Compounds() {
			limit := c.HistoryLength * cfg.Interval
			want := min(tick, limit)
			if c.History.Len() != want {
				t.Fatalf("tick %d compound %d: history = %d, want %d", tick, ci, c.History.Len(), want)
			}
		}
	}
}

func TestUpdateHistoryNewestMatchesLatest(t *testing.T) {
	e, _ := newTestEngine(DefaultConfig(), 8)
	e.Initialize()
	for i := 0; i < 50; i++ {
		e.Update()
	}
	for ci, c := range e.Compounds() {
		newest := c.History.At(c.History.Len() - 1)
		if !slices.Equal(newest.Vertices, c.Latest.Vertices) {
			t.Errorf("compound %d newest snapshot differs from latest", ci)
		}
		oldest := c.History.At(0)
		if slices.Equal(oldest.Vertices, c.Latest.Vertices) {
			t.Errorf("compound %d oldest snapshot aliases latest", ci)
		}
	}
}

func TestUpdateAdvancesHue(t *testing.T) {
	cfg := DefaultConfig()
	e, _ := newTestEngine(cfg, 4)
	e.Initialize()
	starts := make([]float64, len(e.Compounds()))
	for i, c := range e.Compounds() {
		starts[i] = c.Hue
	}
	e.Update()
	for i, c := range e.Compounds() {
		if d := hueDistance(c.Hue, starts[i]); d < 0.099 || d > 0.101 {
			t.Errorf("compound %d hue moved %v, want 0.1", i, d)
		}
	}
	for i := 0; i < 36000-1; i++ {
		e.Update()
		for _, c := range e.Compounds() {
			if c.Hue < 0 || c.Hue >= 360 {
				t.Fatalf("hue %v outside [0, 360)", c.Hue)
			}
		}
	}
	for i, c := range e.Compounds() {
		if d := hueDistance(c.Hue, starts[i]); d > 1e-6 {
			t.Errorf("compound %d hue after 36000 ticks = %v, started %v", i, c.Hue, starts[i])
		}
	}
}

func TestUpdateBounceRightWall(t *testing.T) {
	cfg := DefaultConfig()
	e, _ := newTestEngine(cfg, 6)
	e.Initialize()
	c := e.Compounds()[0]
	c.Latest.Vertices[0] = Vertex{X: float64(cfg.Width) - 0.5, Y: 500, VX: 3, VY: 0.5}

	var events []BounceEvent
	e.OnBounce = func(ev BounceEvent) {
		if ev.Compound == 0 && ev.Vertex == 0 {
			events = append(events, ev)
		}
	}
	e.Update()

	v := c.Latest.Vertices[0]
	if v.VX >= 0 {
		t.Errorf("VX = %v, want negative", v.VX)
	}
	if v.X != float64(cfg.Width)-1 {
		t.Errorf("X = %v, want %v", v.X, float64(cfg.Width)-1)
	}
	if len(events) != 1 || events[0].Axis != AxisX || events[0].Velocity != v.VX {
		t.Errorf("bounce events = %+v", events)
	}
	if e.Stats().Bounces == 0 {
		t.Error("Stats().Bounces not counted")
	}
}

// --- Render ---

func TestRenderSamplesEveryInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compounds = 1
	cfg.Interval = 3
	cfg.HistoryLength = IntRange{2, 2}
	e, rc := newTestEngine(cfg, 10)
	e.Initialize()

	tests := []struct {
		ticks     int
		wantLines int
	}{
		{1, 4},  // index 0
		{3, 4},  // indices 0..2, sampled 0
		{4, 8},  // sampled 0, 3
		{6, 8},  // full: 0..5, sampled 0, 3
		{20, 8}, // still full
	}
	done := 0
	for _, tt := range tests {
		for ; done < tt.ticks; done++ {
			e.Update()
		}
		rc.Reset()
		e.Render()
		if len(rc.Lines) != tt.wantLines {
			t.Errorf("after %d ticks: %d lines, want %d", tt.ticks, len(rc.Lines), tt.wantLines)
		}
		if e.Stats().Lines != tt.wantLines {
			t.Errorf("after %d ticks: Stats().Lines = %d, want %d", tt.ticks, e.Stats().Lines, tt.wantLines)
		}
	}
}

func TestRenderClosedOutlineOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compounds = 1
	e, rc := newTestEngine(cfg, 12)
	e.Initialize()
	e.Update()
	e.Render()

	c := e.Compounds()[0]
	p := c.History.At(0).Vertices
	want := [][4]float64{
		{p[0].X, p[0].Y, p[3].X, p[3].Y},
		{p[3].X, p[3].Y, p[2].X, p[2].Y},
		{p[2].X, p[2].Y, p[1].X, p[1].Y},
		{p[1].X, p[1].Y, p[0].X, p[0].Y},
	}
	if len(rc.Lines) != len(want) {
		t.Fatalf("%d lines, want %d", len(rc.Lines), len(want))
	}
	r, g, b := HSVToRGB(c.Hue, 1, 1)
	wantColor := color.RGBA{R: r, G: g, B: b, A: 0xff}
	for i, l := range rc.Lines {
		got := [4]float64{l.X0, l.Y0, l.X1, l.Y1}
		if got != want[i] {
			t.Errorf("line %d = %v, want %v", i, got, want[i])
		}
		if l.Color != wantColor {
			t.Errorf("line %d color = %v, want %v", i, l.Color, wantColor)
		}
		if l.Thickness != cfg.Thickness {
			t.Errorf("line %d thickness = %v, want %v", i, l.Thickness, cfg.Thickness)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	e, _ := newTestEngine(DefaultConfig(), 13)
	e.Initialize()
	for i := 0; i < 10; i++ {
		e.Update()
	}
	before := e.Compounds()[0].Latest.Clone()
	hue := e.Compounds()[0].Hue
	e.Render()
	e.Render()
	if !slices.Equal(before.Vertices, e.Compounds()[0].Latest.Vertices) || hue != e.Compounds()[0].Hue {
		t.Error("Render changed simulation state")
	}
}

// --- Determinism ---

func runRecorded(seed uint64, ticks int) []Line {
	e, rc := newTestEngine(DefaultConfig(), seed)
	e.Initialize()
	for i := 0; i < ticks; i++ {
		e.Update()
		e.Render()
	}
	return rc.Lines
}

func TestDeterministicDrawCalls(t *testing.T) {
	a := runRecorded(77, 300)
	b := runRecorded(77, 300)
	if len(a) == 0 {
		t.Fatal("no lines recorded")
	}
	if !slices.Equal(a, b) {
		t.Error("same seed produced different draw calls")
	}
	c := runRecorded(78, 300)
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical draw calls")
	}
}

func TestIndependentEngines(t *testing.T) {
	a, _ := newTestEngine(DefaultConfig(), 1)
	b, _ := newTestEngine(DefaultConfig(), 1)
	a.Initialize()
	b.Initialize()
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if b.Stats().Ticks != 0 || b.Compounds()[0].History.Len() != 0 {
		t.Error("updating one engine affected another")
	}
}

func TestWithRandSharesSource(t *testing.T) {
	a := NewEngine(DefaultConfig(), nil, WithRand(newRand(5)))
	b := NewEngine(DefaultConfig(), nil, WithSeed(5))
	a.Initialize()
	b.Initialize()
	if !slices.Equal(a.Compounds()[0].Latest.Vertices, b.Compounds()[0].Latest.Vertices) {
		t.Error("WithRand(newRand(5)) and WithSeed(5) disagree")
	}
}

// --- Logging ---

func TestDebugModeLogsFrames(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine(DefaultConfig(), nil, WithSeed(1), WithLogger(logger))
	e.Initialize()
	if !strings.Contains(buf.String(), "compound initialized") {
		t.Errorf("missing init log: %q", buf.String())
	}

	e.Update()
	e.Render()
	if strings.Contains(buf.String(), "msg=frame") {
		t.Error("frame logged without debug mode")
	}

	e.SetDebugMode(true)
	if !e.DebugMode() {
		t.Fatal("DebugMode() = false")
	}
	e.Update()
	e.Render()
	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "lines=") {
		t.Errorf("missing frame log: %q", out)
	}
}
