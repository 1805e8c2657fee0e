package mystify

import "math/rand/v2"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not, so
// a screen of width W holds x in [0, W).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Range is a half-open float range [Min, Max).
// Used for vertex speeds.
type Range struct {
	Min, Max float64
}

// Random returns a uniformly distributed value in [Min, Max).
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Quantized returns a value in [Min, Max) snapped to multiples of
// 1/precision above Min. A precision <= 0 falls back to Random.
func (r Range) Quantized(rng *rand.Rand, precision int) float64 {
	if precision <= 0 {
		return r.Random(rng)
	}
	steps := int((r.Max - r.Min) * float64(precision))
	if steps <= 0 {
		return r.Min
	}
	return r.Min + float64(rng.IntN(steps))/float64(precision)
}

// IntRange is an inclusive integer range [Min, Max].
type IntRange struct {
	Min, Max int
}

// Random returns a uniformly distributed value in [Min, Max].
func (r IntRange) Random(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// newRand returns a PCG-backed generator for the given seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
