package mystify

import "time"

// Stats holds counters accumulated since Initialize. UpdateTime and
// RenderTime are only measured in debug mode.
type Stats struct {
	Ticks      uint64        // Update calls
	Bounces    uint64        // wall reflections, counted per axis
	Lines      int           // lines drawn by the last Render
	UpdateTime time.Duration // duration of the last Update
	RenderTime time.Duration // duration of the last Render
}

// SetDebugMode enables or disables debug mode. When enabled, Update and
// Render are timed and every Render logs its stats at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (e *Engine) DebugMode() bool {
	return e.debug
}

// debugLog writes the frame stats to the engine's logger.
func (e *Engine) debugLog() {
	if !e.debug {
		return
	}
	s := e.stats
	e.log().Debug("frame",
		"tick", s.Ticks,
		"update", s.UpdateTime,
		"render", s.RenderTime,
		"lines", s.Lines,
		"bounces", s.Bounces,
		"history", e.historyLen())
}

// historyLen sums the history lengths of all compounds.
func (e *Engine) historyLen() int {
	n := 0
	for _, c := range e.compounds {
		n += c.History.Len()
	}
	return n
}
