package mystify

import "math/rand/v2"

// Vertex is one moving corner of a polygon.
type Vertex struct {
	X, Y   float64 // position in pixels
	VX, VY float64 // velocity in pixels per tick
}

// Polygon is a closed outline. Edges connect consecutive vertices, plus the
// edge from the last vertex back to the first.
type Polygon struct {
	Vertices []Vertex
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	return p.cloneInto(Polygon{})
}

// cloneInto copies p into dst, reusing dst's backing array when it is large
// enough.
func (p Polygon) cloneInto(dst Polygon) Polygon {
	dst.Vertices = append(dst.Vertices[:0], p.Vertices...)
	return dst
}

// Axis identifies the coordinate a bounce happened on.
type Axis uint8

const (
	AxisX Axis = iota // horizontal (left/right walls)
	AxisY             // vertical (top/bottom walls)
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// BounceEvent describes a single wall reflection.
type BounceEvent struct {
	Compound int     // index of the compound in the engine
	Vertex   int     // index of the vertex in the polygon
	Axis     Axis    // axis that was reflected
	Velocity float64 // velocity on Axis after the bounce
}

// mover applies the motion rule. speed draws a fresh per-axis speed.
type mover struct {
	bounds Rect
	speed  func() float64
}

func newMover(cfg Config, rng *rand.Rand) mover {
	return mover{
		bounds: cfg.Bounds(),
		speed: func() float64 {
			return cfg.Speed.Quantized(rng, cfg.SpeedPrecision)
		},
	}
}

// move advances v by its velocity and bounces it off the walls. It returns
// which axes were reflected.
func (m mover) move(v *Vertex) (bx, by bool) {
	v.X += v.VX
	v.Y += v.VY
	bx = m.bounce(&v.X, &v.VX, m.bounds.X, m.bounds.X+m.bounds.Width)
	by = m.bounce(&v.Y, &v.VY, m.bounds.Y, m.bounds.Y+m.bounds.Height)
	return bx, by
}

// bounce reflects the velocity when pos left [low, high). The new speed is
// freshly drawn; its sign is the opposite of the old velocity. The position
// is clamped to low, or high-1 so it is not embedded in the wall.
func (m mover) bounce(pos, vel *float64, low, high float64) bool {
	if *pos >= low && *pos < high {
		return false
	}
	s := m.speed()
	if *vel > 0 {
		*vel = -s
	} else {
		*vel = s
	}
	if *pos < low {
		*pos = low
	} else {
		*pos = high - 1
	}
	return true
}

// randomVertex places a vertex uniformly inside bounds with a random speed
// and direction on each axis.
func randomVertex(bounds Rect, rng *rand.Rand, speed func() float64) Vertex {
	return Vertex{
		X:  bounds.X + rng.Float64()*bounds.Width,
		Y:  bounds.Y + rng.Float64()*bounds.Height,
		VX: randomSign(rng) * speed(),
		VY: randomSign(rng) * speed(),
	}
}

func randomSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
