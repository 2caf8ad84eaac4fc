package stats

import (
	"errors"
	"testing"
)

// sliceRaster adapts a [][]float64 to the Raster interface for tests.
type sliceRaster [][]float64

func (r sliceRaster) Dims() (int, int) {
	if len(r) == 0 {
		return 0, 0
	}
	return len(r[0]), len(r)
}

func (r sliceRaster) Intensity(x, y int) float64 {
	return r[y][x]
}

func TestBuildProfile(t *testing.T) {
	r := sliceRaster{
		{1, 2, 3},
		{0, 0, 0},
		{10, 10, 10},
	}
	p, err := BuildProfile(r)
	if err != nil {
		t.Fatalf("BuildProfile failed: %v", err)
	}
	want := []float64{6, 0, 30}
	if len(p) != len(want) {
		t.Fatalf("profile length = %d, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("profile[%d] = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestBuildProfileEmptyRaster(t *testing.T) {
	_, err := BuildProfile(sliceRaster{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("zero-row raster: err = %v, want ErrEmptyInput", err)
	}

	_, err = BuildProfile(sliceRaster{{}, {}})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("zero-column raster: err = %v, want ErrEmptyInput", err)
	}
}
