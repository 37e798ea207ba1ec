// Package photometry maps intrinsic spectra onto broadband AB magnitudes.
//
// An Engine combines a spectrum with a distance-dilution amplitude,
// converts it to flux density, and integrates it through every filter of a
// precomputed weight table at a per-item redshift. Redshifting is handled
// by blue-shifting the filter weights onto the fixed wavelength grid,
// which keeps the batched evaluation free of per-item spectral
// resampling.
//
// The transform is purely functional over immutable inputs: the weight
// table is read-only after construction and forward calls may run
// concurrently without synchronization.
package photometry
