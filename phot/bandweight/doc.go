// Package bandweight precomputes per-filter integration weights that
// collapse the filter-convolution integral into a single weighted sum.
//
// For a flux-density spectrum F_lambda on the base grid, the photon flux
// through filter b normalized by its AB zero point is approximated by
// sum(F_lambda * Weights(b)). Building a table queries the external filter
// catalog and runs a box convolution per filter, so it is done once and
// amortized across all forward calls.
package bandweight
