package imaging

import (
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Shrink downscales the grid so that neither dimension exceeds maxDim,
// preserving aspect ratio. Grids already within the limit are returned
// unchanged. Skew search on a shrunk grid is much cheaper and loses almost
// no angular precision.
func (g *Grid) Shrink(maxDim int) (*Grid, error) {
	if maxDim <= 0 || (g.Width <= maxDim && g.Height <= maxDim) {
		return g, nil
	}
	scale := float64(maxDim) / float64(max(g.Width, g.Height))
	w := int(math.Round(float64(g.Width) * scale))
	h := int(math.Round(float64(g.Height) * scale))
	resized := imaging.Resize(g.ToImage(), w, h, imaging.Lanczos)
	return FromImage(resized)
}

// Smooth applies a Gaussian blur with the given radius, returning a new
// grid. Radius <= 0 is a no-op. A light blur before profile construction
// suppresses halftone noise that would otherwise add spurious peaks.
func (g *Grid) Smooth(radius float64) (*Grid, error) {
	if radius <= 0 {
		return g, nil
	}
	blurred := blur.Gaussian(g.ToImage(), radius)
	return FromImage(blurred)
}
