package deskew

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pagetool/internal/imaging"
)

func mustGrid(t *testing.T, width, height int) *imaging.Grid {
	t.Helper()
	g, err := imaging.NewGrid(width, height)
	require.NoError(t, err)
	return g
}

func TestRotateZeroIsIdentity(t *testing.T) {
	g := mustGrid(t, 10, 8)
	for i := range g.Pixels {
		g.Pixels[i] = uint8(i * 7)
	}

	for _, interp := range []Interpolation{InterpNearest, InterpBilinear} {
		out := Rotate(g, 0, interp, 255)
		require.Equal(t, g.Width, out.Width, "%v width", interp)
		require.Equal(t, g.Height, out.Height, "%v height", interp)
		require.Equal(t, g.Pixels, out.Pixels, "%v pixels", interp)
	}
}

func TestRotate90SwapsDimensions(t *testing.T) {
	g := mustGrid(t, 30, 20)
	out := Rotate(g, 90, InterpNearest, 0)
	require.Equal(t, 20, out.Width)
	require.Equal(t, 30, out.Height)
}

func TestRotate90MovesContentClockwise(t *testing.T) {
	// A bright pixel near the top edge should end up near the right edge
	// after a clockwise quarter turn.
	g := mustGrid(t, 21, 21)
	g.Set(10, 2, 255)

	out := Rotate(g, 90, InterpNearest, 0)
	found := false
	for y := 0; y < out.Height && !found; y++ {
		for x := 0; x < out.Width; x++ {
			if out.At(x, y) == 255 {
				require.Greater(t, x, out.Width/2, "bright pixel should be in the right half")
				require.InDelta(t, out.Height/2, y, 1, "bright pixel should stay vertically centered")
				found = true
				break
			}
		}
	}
	require.True(t, found, "bright pixel lost during rotation")
}

func TestRotateExpandsToFullExtent(t *testing.T) {
	g := mustGrid(t, 100, 50)
	out := Rotate(g, 45, InterpBilinear, 255)
	// width*cos45 + height*sin45 ≈ 106.07, both axes
	require.InDelta(t, 107, out.Width, 1)
	require.InDelta(t, 107, out.Height, 1)
}

func TestRotateBackgroundFillsCorners(t *testing.T) {
	g := mustGrid(t, 40, 40)
	g.Fill(0)

	out := Rotate(g, 45, InterpNearest, 200)
	// The expanded corners lie outside the source square.
	require.Equal(t, uint8(200), out.At(0, 0))
	require.Equal(t, uint8(200), out.At(out.Width-1, out.Height-1))
	// The center is still source content.
	require.Equal(t, uint8(0), out.At(out.Width/2, out.Height/2))
}

func TestRotateBilinearBlendsNeighbors(t *testing.T) {
	// Rotating a half-black half-white grid by a small angle must produce
	// intermediate intensities along the boundary.
	g := mustGrid(t, 40, 40)
	for y := 20; y < 40; y++ {
		for x := 0; x < 40; x++ {
			g.Set(x, y, 255)
		}
	}

	out := Rotate(g, 2, InterpBilinear, 0)
	blended := false
	for _, v := range out.Pixels {
		if v > 20 && v < 235 {
			blended = true
			break
		}
	}
	require.True(t, blended, "bilinear rotation produced no blended samples")
}
