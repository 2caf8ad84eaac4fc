package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pagetool/internal/stats"
)

// heatmap endpoints: cold blue for the profile minimum, warm yellow for the
// maximum. Blending happens in Luv space for perceptual uniformity.
var (
	heatLow  = colorful.Color{R: 0.05, G: 0.05, B: 0.35}
	heatHigh = colorful.Color{R: 0.95, G: 0.85, B: 0.10}
)

// ProfileHeatmap writes the profile as a vertical heatmap strip, one pixel
// row per profile entry, stripWidth pixels wide. Bright rows in the source
// document show up as warm bands, making line structure visible at a glance.
func ProfileHeatmap(path string, profile stats.Profile, stripWidth int) error {
	if len(profile) == 0 {
		return fmt.Errorf("profile heatmap: %w", stats.ErrEmptyInput)
	}
	if stripWidth <= 0 {
		stripWidth = 32
	}

	lo, hi := profile[0], profile[0]
	for _, v := range profile {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, stripWidth, len(profile)))
	for y, v := range profile {
		t := (v - lo) / span
		c := heatLow.BlendLuv(heatHigh, t).Clamped()
		r, g, b := c.RGB255()
		for x := 0; x < stripWidth; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profile heatmap: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("profile heatmap: encode %s: %w", path, err)
	}
	return nil
}
