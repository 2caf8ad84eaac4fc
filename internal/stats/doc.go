// Package stats provides the numeric aggregation primitives used by skew
// detection: projection profiles over a raster and scalar statistics over
// numeric sequences.
//
// The package has no knowledge of image formats. Rasters are consumed through
// the small Raster interface, and everything else operates on plain []float64
// sequences.
//
// # Purity
//
// Every function in this package is a pure function of its arguments: no
// package-level state, no side effects, identical inputs always produce
// identical outputs. Callers may invoke any function from any number of
// goroutines concurrently.
//
// # Error Handling
//
// Degenerate inputs (zero-length sequences, zero-row rasters) fail with the
// sentinel ErrEmptyInput rather than panicking or returning NaN silently.
package stats
