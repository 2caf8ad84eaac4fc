package imaging

import (
	"fmt"
	"image"
)

// Grid is an 8-bit grayscale raster with stride equal to Width.
//
// Pixels are stored row-major, top to bottom. A Grid is a value type: copy
// the struct and you share pixels, use Clone for an independent copy.
type Grid struct {
	Width  int
	Height int
	Pixels []uint8
}

// NewGrid allocates a zero-filled grid. Width and height must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height),
	}, nil
}

// At returns the intensity at (x, y). The caller is responsible for bounds.
func (g *Grid) At(x, y int) uint8 {
	return g.Pixels[y*g.Width+x]
}

// Set writes the intensity at (x, y). The caller is responsible for bounds.
func (g *Grid) Set(x, y int, v uint8) {
	g.Pixels[y*g.Width+x] = v
}

// Dims returns the grid dimensions. Together with Intensity it satisfies the
// raster interface of the stats package.
func (g *Grid) Dims() (width, height int) {
	return g.Width, g.Height
}

// Intensity returns the sample at (x, y) as a float in [0, 255].
func (g *Grid) Intensity(x, y int) float64 {
	return float64(g.Pixels[y*g.Width+x])
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	pixels := make([]uint8, len(g.Pixels))
	copy(pixels, g.Pixels)
	return &Grid{Width: g.Width, Height: g.Height, Pixels: pixels}
}

// Fill sets every sample to v.
func (g *Grid) Fill(v uint8) {
	for i := range g.Pixels {
		g.Pixels[i] = v
	}
}

// FromImage converts any image to a grayscale grid using ITU-R BT.601
// luminance weights (0.299*R + 0.587*G + 0.114*B).
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	g, err := NewGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("cannot build grid from %v image: %w", bounds, err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r, gr, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels; weights sum to 1024 for a
			// cheap fixed-point luma.
			luma := (306*(r>>8) + 601*(gr>>8) + 117*(b>>8)) >> 10
			g.Set(x, y, uint8(luma))
		}
	}
	return g, nil
}

// ToImage converts the grid back to a standard library grayscale image.
func (g *Grid) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Pixels[y*g.Width:(y+1)*g.Width])
	}
	return img
}
