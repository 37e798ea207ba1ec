package bandpass

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-photometry/phot/interp"
	"github.com/cwbudde/algo-photometry/phot/units"
)

// Errors returned by filter constructors and catalogs.
var (
	ErrEmptyName      = errors.New("bandpass: empty filter name")
	ErrBadSamples     = errors.New("bandpass: need at least 2 response samples")
	ErrNotIncreasing  = errors.New("bandpass: sample wavelengths must be strictly increasing")
	ErrLengthMismatch = errors.New("bandpass: wavelength and response sample counts differ")
	ErrBadSupport     = errors.New("bandpass: filter support must satisfy 0 < lo < hi")
	ErrUnknownFilter  = errors.New("bandpass: unknown filter")
	ErrDuplicate      = errors.New("bandpass: duplicate filter")
)

// Catalog resolves filter names into the two quantities the weight table
// needs: the response function evaluated on a wavelength grid and the
// integrated flux of a magnitude-zero AB source through the filter. It is
// queried once per filter at table construction and never again.
type Catalog interface {
	// ResponseAt evaluates the named filter's transmission at the given
	// wavelengths, returning zero outside the filter's support.
	ResponseAt(name string, wavelengths []float64) ([]float64, error)

	// ZeroPointFlux returns the photon flux of a magnitude-zero AB source
	// through the named filter, in photons/s/cm^2.
	ZeroPointFlux(name string) (float64, error)
}

// zpIntervals is the resolution of the zero-point integration.
const zpIntervals = 8192

// Filter is a named transmission curve sampled at fixed wavelengths.
// Between samples the response is linearly interpolated; outside the
// sampled support it is zero. Filters are immutable after construction.
type Filter struct {
	name string
	wave []float64
	resp []float64
	zp   float64
}

// Sampled builds a filter from a sampled transmission curve. The sample
// wavelengths must be strictly increasing. Both slices are copied.
func Sampled(name string, wavelengths, response []float64) (*Filter, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(wavelengths) != len(response) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wavelengths), len(response))
	}
	if len(wavelengths) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, len(wavelengths))
	}
	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return nil, fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	f := &Filter{
		name: name,
		wave: append([]float64(nil), wavelengths...),
		resp: append([]float64(nil), response...),
	}
	f.zp = f.integrateZeroPoint()

	return f, nil
}

// TopHat builds a filter with constant transmission peak over [lo, hi] and
// zero outside.
func TopHat(name string, lo, hi, peak float64) (*Filter, error) {
	if !(0 < lo && lo < hi) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadSupport, lo, hi)
	}

	return Sampled(name, []float64{lo, hi}, []float64{peak, peak})
}

// Name returns the filter's catalog name.
func (f *Filter) Name() string {
	return f.name
}

// Support returns the wavelength range outside which the response is zero.
func (f *Filter) Support() (lo, hi float64) {
	return f.wave[0], f.wave[len(f.wave)-1]
}

// ResponseAt evaluates the transmission at the given wavelengths.
func (f *Filter) ResponseAt(wavelengths []float64) []float64 {
	return interp.Linear(wavelengths, f.wave, f.resp)
}

// ZeroPointFlux returns the photon flux of a magnitude-zero AB source
// through the filter, in photons/s/cm^2.
//
// The integral uses the filter's own transmission curve, so the response
// normalization cancels when integrated fluxes are divided by the zero
// point.
func (f *Filter) ZeroPointFlux() float64 {
	return f.zp
}

// integrateZeroPoint computes Integral[ T(l) * F_AB(l) * l / hc dl ] over
// the filter support by the midpoint rule on a fine uniform grid.
func (f *Filter) integrateZeroPoint() float64 {
	lo, hi := f.Support()
	step := (hi - lo) / zpIntervals

	point := make([]float64, 1)
	value := make([]float64, 1)

	var sum float64
	for i := 0; i < zpIntervals; i++ {
		point[0] = lo + (float64(i)+0.5)*step
		interp.LinearInto(value, point, f.wave, f.resp)
		sum += value[0] * units.ABReferenceFluxDensity(point[0]) * point[0]
	}

	return sum * step / units.HCErgAA
}
