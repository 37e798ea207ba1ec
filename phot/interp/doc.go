// Package interp provides linear resampling of sampled curves onto
// arbitrary wavelength grids, with zero fill outside the source range.
package interp
