package interp

import "sort"

// Linear resamples the curve (srcX, srcY) onto the points dstX by linear
// interpolation, returning zero for any point outside [srcX[0],
// srcX[len-1]]. srcX must be strictly increasing; dstX may be arbitrary.
func Linear(dstX, srcX, srcY []float64) []float64 {
	out := make([]float64, len(dstX))
	LinearInto(out, dstX, srcX, srcY)
	return out
}

// LinearInto is the allocation-free variant of Linear.
// dst must have the same length as dstX.
func LinearInto(dst, dstX, srcX, srcY []float64) {
	if len(srcX) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	lo := srcX[0]
	hi := srcX[len(srcX)-1]

	for i, x := range dstX {
		if x < lo || x > hi {
			dst[i] = 0
			continue
		}
		dst[i] = at(x, srcX, srcY)
	}
}

// at evaluates the piecewise-linear curve at x, which must lie inside the
// source range.
func at(x float64, srcX, srcY []float64) float64 {
	// Index of the first source point > x; the containing interval is
	// [j-1, j].
	j := sort.SearchFloat64s(srcX, x)
	if j < len(srcX) && srcX[j] == x {
		return srcY[j]
	}
	if j == 0 {
		return srcY[0]
	}
	if j == len(srcX) {
		return srcY[len(srcY)-1]
	}

	x0, x1 := srcX[j-1], srcX[j]
	y0, y1 := srcY[j-1], srcY[j]
	t := (x - x0) / (x1 - x0)

	return y0 + t*(y1-y0)
}
