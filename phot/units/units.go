package units

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/phot/grid"
)

// Physical constants in CGS with wavelengths in Angstrom.
const (
	// PlanckErgS is the Planck constant in erg*s.
	PlanckErgS = 6.62607015e-27

	// SpeedOfLightAAPerS is the speed of light in Angstrom/s.
	SpeedOfLightAAPerS = 2.99792458e18

	// HCErgAA is the energy-per-photon normalization h*c in erg*Angstrom.
	// Dividing an energy flux integrand by HCErgAA/lambda converts it to a
	// photon-count flux.
	HCErgAA = PlanckErgS * SpeedOfLightAAPerS

	// ABFluxDensityErgSCm2Hz is the AB reference flux density (3631 Jy) in
	// erg/s/cm^2/Hz.
	ABFluxDensityErgSCm2Hz = 3.631e-20
)

// Errors returned by unit operations.
var (
	ErrUnknownUnit    = errors.New("units: unknown SED unit")
	ErrLengthMismatch = errors.New("units: spectrum length does not match grid")
)

// Unit identifies the representation of a spectrum.
type Unit int

const (
	// FluxDensity is F_lambda in erg/s/cm^2/Angstrom.
	FluxDensity Unit = iota

	// Magnitude is the AB magnitude system.
	Magnitude
)

// String returns the configuration name of the unit.
func (u Unit) String() string {
	switch u {
	case FluxDensity:
		return "flambda"
	case Magnitude:
		return "mag"
	default:
		return "unknown"
	}
}

// Parse maps a configuration string onto a Unit.
func Parse(s string) (Unit, error) {
	switch s {
	case "flambda":
		return FluxDensity, nil
	case "mag":
		return Magnitude, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// ABReferenceFluxDensity returns the flux density F_lambda of a
// magnitude-zero AB source at the given wavelength, in
// erg/s/cm^2/Angstrom. The flat-in-frequency 3631 Jy standard maps to
// F_lambda = F_nu * c / lambda^2.
func ABReferenceFluxDensity(wavelength float64) float64 {
	return ABFluxDensityErgSCm2Hz * SpeedOfLightAAPerS / (wavelength * wavelength)
}

// Converter maps spectra between AB magnitude and flux density on a fixed
// wavelength grid. The conversion is pointwise; there is no
// cross-wavelength coupling.
type Converter struct {
	reference []float64
}

// NewConverter binds a converter to a wavelength grid, precomputing the AB
// reference flux density at every grid point.
func NewConverter(g *grid.Grid) *Converter {
	w := g.Wavelengths()
	ref := make([]float64, len(w))
	for i, wl := range w {
		ref[i] = ABReferenceFluxDensity(wl)
	}

	return &Converter{reference: ref}
}

// MagToFluxDensity converts an AB magnitude spectrum to flux density:
// F_lambda(i) = F_lambda,AB(i) * 10^(-0.4 * mag(i)).
func (c *Converter) MagToFluxDensity(mag []float64) ([]float64, error) {
	if len(mag) != len(c.reference) {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrLengthMismatch, len(mag), len(c.reference))
	}

	out := make([]float64, len(mag))
	c.MagToFluxDensityInto(out, mag)
	return out, nil
}

// MagToFluxDensityInto is the allocation-free variant of MagToFluxDensity.
// dst and mag must both have the grid's length.
func (c *Converter) MagToFluxDensityInto(dst, mag []float64) {
	for i, m := range mag {
		dst[i] = c.reference[i] * math.Pow(10, -0.4*m)
	}
}

// FluxDensityToMag converts a flux-density spectrum to AB magnitudes:
// mag(i) = -2.5 * log10(F_lambda(i) / F_lambda,AB(i)).
//
// Zero flux maps to +Inf and negative flux to NaN; the converter does not
// clamp non-physical inputs.
func (c *Converter) FluxDensityToMag(flux []float64) ([]float64, error) {
	if len(flux) != len(c.reference) {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrLengthMismatch, len(flux), len(c.reference))
	}

	out := make([]float64, len(flux))
	for i, f := range flux {
		out[i] = -2.5 * math.Log10(f/c.reference[i])
	}

	return out, nil
}
