package conv

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestBoxValidWindowOneIsIdentity(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	got, err := BoxValid(x, 1)
	if err != nil {
		t.Fatalf("BoxValid: %v", err)
	}

	if len(got) != len(x) {
		t.Fatalf("expected length %d, got %d", len(x), len(got))
	}

	for i := range x {
		if got[i] != x[i] {
			t.Fatalf("index %d: expected %g, got %g", i, x[i], got[i])
		}
	}
}

func TestBoxValidKnownCase(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	got, err := BoxValid(x, 3)
	if err != nil {
		t.Fatalf("BoxValid: %v", err)
	}

	want := []float64{6, 9, 12}
	if len(got) != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), len(got))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: expected %g, got %g", i, want[i], got[i])
		}
	}
}

func TestBoxValidRejectsBadInput(t *testing.T) {
	if _, err := BoxValid(nil, 3); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	if _, err := BoxValid([]float64{1, 2}, 0); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}

	if _, err := BoxValid([]float64{1, 2}, -1); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}

	if _, err := BoxValid([]float64{1, 2}, 3); !errors.Is(err, ErrWindowTooLong) {
		t.Fatalf("expected ErrWindowTooLong, got %v", err)
	}
}

func TestBoxValidDirectMatchesFFT(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	x := make([]float64, 2048)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}

	// Window above the direct threshold forces the FFT path.
	const window = 129

	fft, err := BoxValid(x, window)
	if err != nil {
		t.Fatalf("BoxValid (fft): %v", err)
	}

	direct := boxValidDirect(x, window)
	if len(fft) != len(direct) {
		t.Fatalf("length mismatch: fft %d, direct %d", len(fft), len(direct))
	}

	for i := range direct {
		if math.Abs(fft[i]-direct[i]) > 1e-8 {
			t.Fatalf("index %d: fft %g, direct %g", i, fft[i], direct[i])
		}
	}
}

func TestBoxValidOutputLength(t *testing.T) {
	for _, window := range []int{1, 2, 5, 17} {
		x := make([]float64, 100)

		got, err := BoxValid(x, window)
		if err != nil {
			t.Fatalf("window %d: %v", window, err)
		}

		if len(got) != 100-window+1 {
			t.Fatalf("window %d: expected length %d, got %d", window, 100-window+1, len(got))
		}
	}
}
