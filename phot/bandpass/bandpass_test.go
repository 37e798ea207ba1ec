package bandpass

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-photometry/phot/units"
)

func TestTopHatResponse(t *testing.T) {
	f, err := TopHat("box", 5000, 7000, 1.0)
	if err != nil {
		t.Fatalf("TopHat: %v", err)
	}

	got := f.ResponseAt([]float64{4000, 5000, 6000, 7000, 8000})

	want := []float64{0, 1, 1, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %g, got %g", i, want[i], got[i])
		}
	}
}

func TestTopHatZeroPointMatchesAnalyticIntegral(t *testing.T) {
	f, err := TopHat("box", 5000, 7000, 1.0)
	if err != nil {
		t.Fatalf("TopHat: %v", err)
	}

	// For a unit top-hat, Integral[F_AB(l) * l / hc dl] over [lo, hi]
	// reduces to (F_nu * c / hc) * ln(hi/lo).
	want := units.ABFluxDensityErgSCm2Hz * units.SpeedOfLightAAPerS /
		units.HCErgAA * math.Log(7000.0/5000.0)

	got := f.ZeroPointFlux()
	if math.Abs(got-want)/want > 1e-6 {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

func TestSampledValidation(t *testing.T) {
	if _, err := Sampled("", []float64{1, 2}, []float64{0, 1}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	if _, err := Sampled("f", []float64{1}, []float64{0}); !errors.Is(err, ErrBadSamples) {
		t.Fatalf("expected ErrBadSamples, got %v", err)
	}

	if _, err := Sampled("f", []float64{1, 2}, []float64{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	if _, err := Sampled("f", []float64{2, 1}, []float64{0, 1}); !errors.Is(err, ErrNotIncreasing) {
		t.Fatalf("expected ErrNotIncreasing, got %v", err)
	}

	if _, err := TopHat("f", 7000, 5000, 1); !errors.Is(err, ErrBadSupport) {
		t.Fatalf("expected ErrBadSupport, got %v", err)
	}
}

func TestSampledCopiesInput(t *testing.T) {
	wave := []float64{5000, 7000}
	resp := []float64{1, 1}

	f, err := Sampled("box", wave, resp)
	if err != nil {
		t.Fatalf("Sampled: %v", err)
	}

	resp[0] = 0
	if got := f.ResponseAt([]float64{5000})[0]; got != 1 {
		t.Fatalf("filter aliases caller's slice: got %g", got)
	}
}

func TestRegistryResolvesAndRejects(t *testing.T) {
	r := NewRegistry()

	f, err := TopHat("box", 5000, 7000, 1.0)
	if err != nil {
		t.Fatalf("TopHat: %v", err)
	}

	if err := r.Register(f); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Register(f); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	resp, err := r.ResponseAt("box", []float64{6000})
	if err != nil {
		t.Fatalf("ResponseAt: %v", err)
	}
	if resp[0] != 1 {
		t.Fatalf("expected response 1, got %g", resp[0])
	}

	if _, err := r.ResponseAt("missing", []float64{6000}); !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("expected ErrUnknownFilter, got %v", err)
	}

	if _, err := r.ZeroPointFlux("missing"); !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestDefaultCatalog(t *testing.T) {
	names := Default.Names()
	if len(names) != 6 {
		t.Fatalf("expected 6 default filters, got %d", len(names))
	}

	for _, name := range names {
		f := Default.Lookup(name)
		if f == nil {
			t.Fatalf("Lookup(%q) returned nil", name)
		}

		zp, err := Default.ZeroPointFlux(name)
		if err != nil {
			t.Fatalf("ZeroPointFlux(%q): %v", name, err)
		}
		if zp <= 0 {
			t.Fatalf("filter %q: non-positive zero point %g", name, zp)
		}

		lo, hi := f.Support()
		if !(lo < hi) {
			t.Fatalf("filter %q: bad support [%g, %g]", name, lo, hi)
		}
	}
}
