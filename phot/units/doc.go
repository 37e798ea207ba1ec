// Package units converts spectra between AB magnitude and flux density
// representations on a fixed wavelength grid.
//
// CCD photometry works in photon-count flux while spectra are commonly
// expressed as AB magnitudes; the Converter exists so the photometry engine
// can align a decoder's output with the flux-density basis assumed by the
// band weight table.
package units
