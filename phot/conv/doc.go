// Package conv provides moving-sum (box) convolution for integrating
// finely sampled filter responses into coarse wavelength bins.
//
// Short windows use direct accumulation; long windows switch to an
// FFT-based path. Both paths produce the same result to floating
// tolerance.
package conv
