package ocr

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeBlankPage writes a plain white PNG; Tesseract should find no words.
func writeBlankPage(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.White)
		}
	}
	path := filepath.Join(dir, "blank.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func skipIfUnavailable(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, ErrUnavailable) {
		t.Skip("OCR support not compiled in")
	}
	if err != nil && strings.Contains(err.Error(), "tesseract") {
		t.Skip("Tesseract not available")
	}
}

func TestMeasureBlankPage(t *testing.T) {
	path := writeBlankPage(t, t.TempDir())

	r, err := Measure(path, "eng")
	skipIfUnavailable(t, err)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if r.Words != 0 {
		t.Errorf("blank page words = %d, want 0", r.Words)
	}
	if r.MeanConfidence != 0 {
		t.Errorf("blank page confidence = %v, want 0", r.MeanConfidence)
	}
}

func TestMeasureMissingFile(t *testing.T) {
	_, err := Measure(filepath.Join(t.TempDir(), "missing.png"), "eng")
	skipIfUnavailable(t, err)
	if err == nil {
		t.Error("Measure on a missing file should fail")
	}
}
