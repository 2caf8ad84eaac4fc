package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyInput is returned when a sequence or raster with no samples is
// passed to a function that needs at least one.
var ErrEmptyInput = errors.New("empty input")

// Raster is the minimal read-only view of a rectangular intensity grid that
// profile construction needs. It is satisfied by imaging.Grid, but the stats
// package itself is image-format-agnostic.
type Raster interface {
	// Dims returns the raster width and height in samples.
	Dims() (width, height int)
	// Intensity returns the sample at column x, row y as a float.
	Intensity(x, y int) float64
}

// Profile is a projection profile: one aggregate intensity per raster row,
// ordered top to bottom.
type Profile []float64

// BuildProfile sums intensities across each row of r, producing one scalar
// per row. A raster with zero rows or zero columns fails with ErrEmptyInput.
func BuildProfile(r Raster) (Profile, error) {
	width, height := r.Dims()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyInput
	}
	p := make(Profile, height)
	row := make([]float64, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = r.Intensity(x, y)
		}
		p[y] = floats.Sum(row)
	}
	return p, nil
}
