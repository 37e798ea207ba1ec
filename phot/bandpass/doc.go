// Package bandpass models optical filter transmission curves and the
// catalog boundary through which the weight table resolves filter names.
//
// The Catalog interface is the external-collaborator seam: the core only
// ever asks a catalog for a response function sampled on a grid and for an
// AB zero-point flux, once per filter at construction time. The
// registry-backed catalog in this package is a self-contained default; an
// adapter over any photometric-system database satisfies the same
// interface.
package bandpass
