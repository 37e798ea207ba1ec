package grid

import (
	"errors"
	"fmt"
	"math"
)

// spacingTolerance is the relative tolerance used when checking that an
// externally supplied wavelength axis is evenly spaced.
const spacingTolerance = 1e-9

// Errors returned by grid constructors.
var (
	ErrInvertedBounds = errors.New("grid: wave_min must be less than wave_max")
	ErrTooFewBins     = errors.New("grid: at least 2 wavelength bins required")
	ErrUnevenSpacing  = errors.New("grid: wavelengths must be evenly spaced")
	ErrNotIncreasing  = errors.New("grid: wavelengths must be strictly increasing")
)

// Grid is an evenly spaced, strictly increasing wavelength axis.
// It is immutable after construction and safe to share between components.
type Grid struct {
	wavelengths []float64
	step        float64
}

// New builds a grid of exactly bins points spanning [min, max] inclusive.
func New(min, max float64, bins int) (*Grid, error) {
	if bins < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewBins, bins)
	}
	if !(min < max) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvertedBounds, min, max)
	}

	step := (max - min) / float64(bins-1)
	w := make([]float64, bins)
	for i := range w {
		w[i] = min + float64(i)*step
	}
	// Pin the last point to avoid accumulated rounding at the upper bound.
	w[bins-1] = max

	return &Grid{wavelengths: w, step: step}, nil
}

// FromWavelengths validates an externally supplied axis and wraps it.
// The axis must be strictly increasing with all consecutive differences
// equal within floating tolerance. The slice is copied.
func FromWavelengths(wavelengths []float64) (*Grid, error) {
	if len(wavelengths) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewBins, len(wavelengths))
	}

	step := wavelengths[1] - wavelengths[0]
	if step <= 0 {
		return nil, ErrNotIncreasing
	}
	for i := 1; i < len(wavelengths); i++ {
		d := wavelengths[i] - wavelengths[i-1]
		if d <= 0 {
			return nil, ErrNotIncreasing
		}
		if !nearlyEqual(d, step, spacingTolerance) {
			return nil, fmt.Errorf("%w: step %g at index %d, expected %g",
				ErrUnevenSpacing, d, i, step)
		}
	}

	w := make([]float64, len(wavelengths))
	copy(w, wavelengths)

	return &Grid{wavelengths: w, step: step}, nil
}

// Wavelengths returns the grid points. Callers must treat the slice as
// read-only.
func (g *Grid) Wavelengths() []float64 {
	return g.wavelengths
}

// Bins returns the number of grid points.
func (g *Grid) Bins() int {
	return len(g.wavelengths)
}

// Min returns the first grid point.
func (g *Grid) Min() float64 {
	return g.wavelengths[0]
}

// Max returns the last grid point.
func (g *Grid) Max() float64 {
	return g.wavelengths[len(g.wavelengths)-1]
}

// Step returns the spacing between consecutive grid points.
func (g *Grid) Step() float64 {
	return g.step
}

// nearlyEqual reports whether a and b agree within relative tolerance eps.
func nearlyEqual(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
