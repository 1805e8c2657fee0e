package mystify

import (
	"fmt"
	"math"
)

// HSVToRGB converts a hue in degrees [0, 360] with saturation and value in
// [0, 1] to 8-bit channels. A hue of exactly 360 maps to the last sector,
// matching the 0-degree color within rounding. Hues outside [0, 360] are a
// caller bug and panic.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	rf, gf, bf := hsvToFloat(h, s, v)
	return channel8(rf), channel8(gf), channel8(bf)
}

// hsvToFloat is the six-sector HSV decomposition with channels in [0, 1].
func hsvToFloat(h, s, v float64) (r, g, b float64) {
	if math.IsNaN(h) || h < 0 || h > 360 {
		panic(fmt.Sprintf("mystify: hue %v outside [0, 360]", h))
	}
	sector := int(h / 60)
	if sector == 6 {
		sector = 5
	}
	f := h/60 - float64(sector)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch sector {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	case 5:
		return v, p, q
	}
	panic(fmt.Sprintf("mystify: hue sector %d for hue %v", sector, h))
}

// channel8 scales a [0, 1] channel to [0, 255], truncating and clamping.
func channel8(c float64) uint8 {
	n := int(c * 255)
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}

// wrapHue advances h by step and wraps the result into [0, 360).
func wrapHue(h, step float64) float64 {
	h = math.Mod(h+step, 360)
	if h < 0 {
		h += 360
	}
	return h
}
