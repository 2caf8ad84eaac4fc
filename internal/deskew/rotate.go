package deskew

import (
	"math"

	"github.com/ironsheep/pagetool/internal/imaging"
)

const deg2Rad = math.Pi / 180

// Rotate rotates the grid by the given angle in degrees around the image
// center. Positive angles rotate clockwise. The output is sized to the full
// rotated extent so no content is lost; samples that fall outside the source
// map to the background intensity.
func Rotate(g *imaging.Grid, degrees float64, interp Interpolation, background uint8) *imaging.Grid {
	theta := degrees * deg2Rad
	sin, cos := math.Sincos(theta)

	w := float64(g.Width)
	h := float64(g.Height)
	// The epsilon keeps float dust (cos of a right angle is ~6e-17, not 0)
	// from inflating the extent by a whole pixel.
	const eps = 1e-9
	outW := int(math.Ceil(w*math.Abs(cos) + h*math.Abs(sin) - eps))
	outH := int(math.Ceil(w*math.Abs(sin) + h*math.Abs(cos) - eps))

	dst, _ := imaging.NewGrid(outW, outH)

	// Inverse mapping: for each destination pixel, rotate back into source
	// space. With Y pointing down, [cos -sin; sin cos] is the clockwise
	// forward transform, so the inverse is its transpose.
	srcCX := (w - 1) / 2
	srcCY := (h - 1) / 2
	dstCX := (float64(outW) - 1) / 2
	dstCY := (float64(outH) - 1) / 2

	for y := 0; y < outH; y++ {
		dy := float64(y) - dstCY
		for x := 0; x < outW; x++ {
			dx := float64(x) - dstCX
			sx := dx*cos + dy*sin + srcCX
			sy := -dx*sin + dy*cos + srcCY
			var v uint8
			switch interp {
			case InterpBilinear:
				v = sampleBilinear(g, sx, sy, background)
			default:
				v = sampleNearest(g, sx, sy, background)
			}
			dst.Set(x, y, v)
		}
	}
	return dst
}

func sampleNearest(g *imaging.Grid, sx, sy float64, background uint8) uint8 {
	x := int(math.Round(sx))
	y := int(math.Round(sy))
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return background
	}
	return g.At(x, y)
}

func sampleBilinear(g *imaging.Grid, sx, sy float64, background uint8) uint8 {
	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	sample := func(x, y int) float64 {
		if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
			return float64(background)
		}
		return g.Intensity(x, y)
	}

	top := sample(x0, y0)*(1-fx) + sample(x0+1, y0)*fx
	bottom := sample(x0, y0+1)*(1-fx) + sample(x0+1, y0+1)*fx
	v := top*(1-fy) + bottom*fy
	return uint8(math.Round(math.Min(255, math.Max(0, v))))
}
