package chart

import "math"

// Quantize rounds size up so that its fractional part covers whole device
// pixels. scale is the number of device pixels per unit; values <= 0 are
// treated as 1.
//
// A size whose fractional part is zero is returned unchanged. Otherwise the
// fraction is rounded down to a pixel boundary and one extra pixel is added,
// or set to exactly one pixel when it is smaller than a pixel. The result is
// never smaller than size.
func Quantize(size, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	unit := 1 / scale

	n := math.Trunc(size)
	// size mod n equals size-n for every n >= 1; math.Mod(x, 0) is NaN,
	// so the whole value is the fraction below one unit.
	r := size
	if n != 0 {
		r = math.Mod(size, n)
	}
	if r == 0 {
		return size
	}

	if r > unit {
		r = math.Floor(r/unit)*unit + unit
	} else {
		r = unit
	}
	return n + r
}
