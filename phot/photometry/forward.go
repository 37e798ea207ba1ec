package photometry

import "fmt"

// Result is the output of a batched forward pass: one row of AB magnitudes
// per input spectrum, one column per filter in table order. Callers merge
// it with whatever other fields their pipeline produces; the engine
// neither requires nor emits anything beyond the photometry itself.
type Result struct {
	Bands []string
	Mags  [][]float64
}

// At returns the magnitude for spectrum i through band b.
func (r *Result) At(i, b int) float64 {
	return r.Mags[i][b]
}

// Len returns the number of spectra in the result.
func (r *Result) Len() int {
	return len(r.Mags)
}

// Forward runs the full physics pass over a batch: combine each spectrum
// with its amplitude (additive in magnitude space, multiplicative in flux
// space, per the configured unit), convert to flux density, then evaluate
// every filter at the item's redshift.
//
// seds holds one spectrum per item, each aligned to the base grid;
// amplitudes and redshifts hold one scalar per item. Items are
// independent: evaluating them one at a time produces identical results.
func (e *Engine) Forward(seds [][]float64, amplitudes, redshifts []float64) (*Result, error) {
	n := len(seds)
	if len(amplitudes) != n || len(redshifts) != n {
		return nil, fmt.Errorf("%w: %d spectra, %d amplitudes, %d redshifts",
			ErrBatchMismatch, n, len(amplitudes), len(redshifts))
	}

	bins := e.grid.Bins()
	for i, sed := range seds {
		if len(sed) != bins {
			return nil, fmt.Errorf("%w: spectrum %d has %d samples, want %d",
				ErrSpectrumLength, i, len(sed), bins)
		}
	}

	numBands := e.table.NumBands()
	result := &Result{
		Bands: e.table.Bands(),
		Mags:  make([][]float64, n),
	}

	s := newScratch(bins, len(e.table.Wavelengths()))
	fluxDensity := make([]float64, bins)

	for i, sed := range seds {
		e.combine(fluxDensity, sed, amplitudes[i])
		e.toFluxDensity(fluxDensity)
		s.blueShift(e.table.Wavelengths(), redshifts[i])

		row := make([]float64, numBands)
		for b := 0; b < numBands; b++ {
			row[b] = e.bandMagnitude(fluxDensity, b, s)
		}
		result.Mags[i] = row
	}

	return result, nil
}
