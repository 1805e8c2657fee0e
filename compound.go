package mystify

import (
	"image/color"
	"math/rand/v2"
)

// Compound is one animated polygon with its hue and trail.
type Compound struct {
	Hue           float64  // degrees in [0, 360)
	Latest        Polygon  // current shape, moved every tick
	HistoryLength int      // trail length; the history holds HistoryLength*Interval shapes
	History       *History // past shapes, oldest first
}

func newCompound(cfg Config, rng *rand.Rand, speed func() float64) *Compound {
	c := &Compound{
		Hue:           float64(rng.IntN(360)),
		HistoryLength: cfg.HistoryLength.Random(rng),
	}
	c.History = NewHistory(c.HistoryLength * cfg.Interval)

	bounds := cfg.Bounds()
	c.Latest.Vertices = make([]Vertex, cfg.Vertices)
	for i := range c.Latest.Vertices {
		c.Latest.Vertices[i] = randomVertex(bounds, rng, speed)
	}
	return c
}

// Color returns the compound's current color at full saturation and value.
func (c *Compound) Color() (r, g, b uint8) {
	return HSVToRGB(c.Hue, 1, 1)
}

// drawOutline draws p as a closed outline. It walks the vertices backwards
// starting from the first one, so the wrap-around edge is drawn first. It
// returns the number of lines drawn.
func drawOutline(cv Canvas, p Polygon, col color.Color, thickness float64) int {
	n := len(p.Vertices)
	if n == 0 {
		return 0
	}
	last := p.Vertices[0]
	for i := n - 1; i >= 0; i-- {
		v := p.Vertices[i]
		cv.DrawLine(last.X, last.Y, v.X, v.Y, col, thickness)
		last = v
	}
	return n
}
