package photometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-photometry/phot/bandweight"
	"github.com/cwbudde/algo-photometry/phot/grid"
	"github.com/cwbudde/algo-photometry/phot/interp"
	"github.com/cwbudde/algo-photometry/phot/units"
)

// Errors returned by the engine.
var (
	ErrNilTable       = errors.New("photometry: nil weight table")
	ErrGridMismatch   = errors.New("photometry: table was built for a different grid")
	ErrBandIndex      = errors.New("photometry: band index out of range")
	ErrSpectrumLength = errors.New("photometry: spectrum length does not match grid")
	ErrBatchMismatch  = errors.New("photometry: batch lengths differ")
)

// Engine performs the batched spectral-to-photometric forward transform.
//
// The SED unit is fixed at construction: it selects both the
// amplitude-combination rule (additive for magnitudes, multiplicative for
// flux densities) and whether a unit conversion precedes integration.
// An Engine holds no mutable state after construction and is safe for
// concurrent use.
type Engine struct {
	grid  *grid.Grid
	unit  units.Unit
	table *bandweight.Table

	// combine applies the per-item amplitude to a raw spectrum.
	combine func(dst, sed []float64, amplitude float64)

	// toFluxDensity converts the combined spectrum in place to the
	// flux-density basis assumed by the weight table.
	toFluxDensity func(buf []float64)
}

// New creates an engine over a base grid, an SED unit, and a precomputed
// weight table. The table must have been built for the same grid.
func New(g *grid.Grid, unit units.Unit, table *bandweight.Table) (*Engine, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if table.Grid() != g {
		return nil, ErrGridMismatch
	}

	e := &Engine{grid: g, unit: unit, table: table}

	switch unit {
	case units.Magnitude:
		converter := units.NewConverter(g)
		e.combine = func(dst, sed []float64, amplitude float64) {
			for i, v := range sed {
				dst[i] = amplitude + v
			}
		}
		e.toFluxDensity = func(buf []float64) {
			converter.MagToFluxDensityInto(buf, buf)
		}
	case units.FluxDensity:
		e.combine = func(dst, sed []float64, amplitude float64) {
			for i, v := range sed {
				dst[i] = amplitude * v
			}
		}
		e.toFluxDensity = func(buf []float64) {}
	default:
		return nil, fmt.Errorf("%w: %d", units.ErrUnknownUnit, unit)
	}

	return e, nil
}

// Unit returns the SED unit the engine was configured with.
func (e *Engine) Unit() units.Unit {
	return e.unit
}

// Bands returns the filter names in output column order.
func (e *Engine) Bands() []string {
	return e.table.Bands()
}

// Magnitude evaluates one flux-density spectrum through one filter at the
// given redshift.
//
// Instead of red-shifting the spectrum, the filter's weight curve is
// blue-shifted: the weights are resampled at tableWave/(1+z) onto the base
// grid with zero fill outside the table range. The weight curve is smooth
// and slowly varying, so this is better conditioned than resampling the
// spectrum, and it keeps the output aligned to the fixed grid for any
// redshift.
//
// Non-positive integrated flux yields +Inf (zero) or NaN (negative); the
// engine does not clamp. Redshift is expected to be >= 0 but is not
// validated here.
func (e *Engine) Magnitude(fluxDensity []float64, redshift float64, band int) (float64, error) {
	if len(fluxDensity) != e.grid.Bins() {
		return 0, fmt.Errorf("%w: got %d, want %d",
			ErrSpectrumLength, len(fluxDensity), e.grid.Bins())
	}
	if band < 0 || band >= e.table.NumBands() {
		return 0, fmt.Errorf("%w: %d", ErrBandIndex, band)
	}

	s := newScratch(e.grid.Bins(), len(e.table.Wavelengths()))
	s.blueShift(e.table.Wavelengths(), redshift)

	return e.bandMagnitude(fluxDensity, band, s), nil
}

// bandMagnitude computes the magnitude for one spectrum/band pair using
// weights already blue-shifted into the scratch buffers.
func (e *Engine) bandMagnitude(fluxDensity []float64, band int, s *scratch) float64 {
	interp.LinearInto(s.shifted, e.grid.Wavelengths(), s.shiftedWave, e.table.Weights(band))
	vecmath.MulBlock(s.product, fluxDensity, s.shifted)

	var flux float64
	for _, v := range s.product {
		flux += v
	}

	return -2.5 * math.Log10(flux)
}

// scratch holds per-item working buffers so the batched path allocates
// once per spectrum rather than once per spectrum/band pair.
type scratch struct {
	shiftedWave []float64 // table axis divided by (1+z)
	shifted     []float64 // weights resampled onto the base grid
	product     []float64 // spectrum * shifted weights
}

func newScratch(bins, tableLen int) *scratch {
	return &scratch{
		shiftedWave: make([]float64, tableLen),
		shifted:     make([]float64, bins),
		product:     make([]float64, bins),
	}
}

// blueShift fills shiftedWave with tableWave/(1+z).
func (s *scratch) blueShift(tableWave []float64, redshift float64) {
	inv := 1 / (1 + redshift)
	for i, w := range tableWave {
		s.shiftedWave[i] = w * inv
	}
}
