package conv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput    = errors.New("conv: empty input")
	ErrInvalidWindow = errors.New("conv: window must be positive")
	ErrWindowTooLong = errors.New("conv: window longer than input")
)

// directThreshold is the window length above which the FFT path is used.
// Direct accumulation is O(N*W); for wide windows the FFT overlap costs
// less.
const directThreshold = 64

// BoxValid convolves x with a unit box kernel of the given window length
// and returns only the fully overlapping portion, of length
// len(x) - window + 1. Every output point is the sum of the window adjacent
// input points.
//
// A window of 1 returns a copy of x.
func BoxValid(x []float64, window int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if window > len(x) {
		return nil, fmt.Errorf("%w: window %d, input %d", ErrWindowTooLong, window, len(x))
	}

	if window <= directThreshold {
		return boxValidDirect(x, window), nil
	}

	return boxValidFFT(x, window)
}

// boxValidDirect accumulates each output point independently. A running-sum
// formulation would be O(N) but lets rounding error drift along the signal;
// per-point accumulation keeps every output independent of its neighbors.
func boxValidDirect(x []float64, window int) []float64 {
	out := make([]float64, len(x)-window+1)
	for i := range out {
		var sum float64
		for j := 0; j < window; j++ {
			sum += x[i+j]
		}
		out[i] = sum
	}

	return out
}

// boxValidFFT computes the full linear convolution with a ones kernel in
// the frequency domain and trims to the valid portion.
func boxValidFFT(x []float64, window int) ([]float64, error) {
	n := len(x)
	fullLen := n + window - 1
	fftSize := nextPowerOf2(fullLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	signal := make([]complex128, fftSize)
	for i, v := range x {
		signal[i] = complex(v, 0)
	}

	kernel := make([]complex128, fftSize)
	for i := 0; i < window; i++ {
		kernel[i] = complex(1, 0)
	}

	if err := plan.Forward(signal, signal); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kernel, kernel); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range signal {
		signal[i] *= kernel[i]
	}

	if err := plan.Inverse(signal, signal); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Valid portion of the full convolution: indices [window-1, n).
	out := make([]float64, n-window+1)
	for i := range out {
		out[i] = real(signal[window-1+i])
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
