// Package grid provides the evenly spaced wavelength axis shared by the
// photometry components.
//
// A Grid is built once per model configuration and passed by reference to
// the unit converter, the band weight table, and the photometry engine.
// It is immutable after construction.
package grid
