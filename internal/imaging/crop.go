package imaging

import (
	"fmt"
)

// CropPad returns a copy of g resized to width x height around its center.
//
// When the target is smaller along an axis the grid is center-cropped; when
// larger, it is padded with the background intensity. Used to bring a
// rotated, expanded grid back to the original image footprint.
func (g *Grid) CropPad(width, height int, background uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid crop/pad target %dx%d", width, height)
	}
	dst, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	dst.Fill(background)

	// Offsets of the destination origin within the source frame. Negative
	// values mean padding on that side.
	offX := (g.Width - width) / 2
	offY := (g.Height - height) / 2

	for y := 0; y < height; y++ {
		sy := y + offY
		if sy < 0 || sy >= g.Height {
			continue
		}
		for x := 0; x < width; x++ {
			sx := x + offX
			if sx < 0 || sx >= g.Width {
				continue
			}
			dst.Set(x, y, g.At(sx, sy))
		}
	}
	return dst, nil
}
