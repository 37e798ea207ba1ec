package bandweight

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-photometry/phot/bandpass"
	"github.com/cwbudde/algo-photometry/phot/conv"
	"github.com/cwbudde/algo-photometry/phot/grid"
	"github.com/cwbudde/algo-photometry/phot/units"
)

// Errors returned by table construction.
var (
	ErrNoBands          = errors.New("bandweight: at least one filter required")
	ErrEvenOversampling = errors.New("bandweight: oversampling must be an odd positive integer")
	ErrBadZeroPoint     = errors.New("bandweight: zero point flux must be positive")
)

// Table holds precomputed per-filter integration weights such that
// sum(fluxDensity * weights) approximates the filter-integrated photon
// flux normalized by the filter's AB zero point.
//
// A table is built once per configuration; catalog lookups and the box
// convolution happen only here. It is immutable afterwards and safe for
// unsynchronized concurrent reads.
type Table struct {
	grid         *grid.Grid
	bands        []string
	oversampling int

	// wave is the table's wavelength axis: oversampling times finer than
	// the base grid and extending one base step beyond its upper bound.
	wave    []float64
	weights [][]float64
}

// New builds a weight table for the named filters on the given base grid.
// oversampling must be an odd positive integer; values above 1 evaluate
// each response on a finer grid and box-convolve the result into the base
// bins, reducing quadrature error where the response varies quickly.
func New(g *grid.Grid, catalog bandpass.Catalog, bands []string, oversampling int) (*Table, error) {
	if len(bands) == 0 {
		return nil, ErrNoBands
	}
	if oversampling < 1 || oversampling%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenOversampling, oversampling)
	}

	pad := (oversampling - 1) / 2
	step := g.Step() / float64(oversampling)

	// Oversampled axis: the base grid plus pad fine steps of margin on
	// each side and one base step beyond the upper bound.
	count := g.Bins()*oversampling + oversampling - 1
	start := g.Min() - float64(pad)*step

	wave := make([]float64, count)
	for i := range wave {
		wave[i] = start + float64(i)*step
	}

	weights := make([][]float64, len(bands))
	for bi, band := range bands {
		response, err := catalog.ResponseAt(band, wave)
		if err != nil {
			return nil, fmt.Errorf("bandweight: resolving %q: %w", band, err)
		}

		zeroPoint, err := catalog.ZeroPointFlux(band)
		if err != nil {
			return nil, fmt.Errorf("bandweight: resolving %q: %w", band, err)
		}
		if zeroPoint <= 0 {
			return nil, fmt.Errorf("%w: filter %q has %g", ErrBadZeroPoint, band, zeroPoint)
		}

		// Per-point weight converting energy flux density to a
		// zero-point-normalized photon flux contribution.
		w := make([]float64, count)
		for i := range w {
			w[i] = response[i] * wave[i] * step / (units.HCErgAA * zeroPoint)
		}

		// Integrate the fine samples into each coarse bin.
		combined, err := conv.BoxValid(w, oversampling)
		if err != nil {
			return nil, fmt.Errorf("bandweight: convolving %q: %w", band, err)
		}
		weights[bi] = combined
	}

	return &Table{
		grid:         g,
		bands:        append([]string(nil), bands...),
		oversampling: oversampling,
		wave:         wave[pad : count-pad],
		weights:      weights,
	}, nil
}

// Grid returns the base wavelength grid the table was built for.
func (t *Table) Grid() *grid.Grid {
	return t.grid
}

// Bands returns the filter names in table column order.
// Callers must treat the slice as read-only.
func (t *Table) Bands() []string {
	return t.bands
}

// NumBands returns the number of filters in the table.
func (t *Table) NumBands() int {
	return len(t.bands)
}

// Oversampling returns the configured oversampling factor.
func (t *Table) Oversampling() int {
	return t.oversampling
}

// Wavelengths returns the table's wavelength axis. It is aligned
// one-to-one with every weight vector and may extend beyond the base grid.
// Callers must treat the slice as read-only.
func (t *Table) Wavelengths() []float64 {
	return t.wave
}

// Weights returns the weight vector for the band at the given index.
// Callers must treat the slice as read-only.
func (t *Table) Weights(band int) []float64 {
	return t.weights[band]
}
