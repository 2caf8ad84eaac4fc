//go:build cgo

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Measure runs Tesseract over the image at path and returns word count and
// mean word confidence. Empty words are ignored. An image in which Tesseract
// finds no words at all yields a zero Readability, not an error.
func Measure(path string, language string) (*Readability, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var sum float64
	words := 0
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		words++
		sum += float64(box.Confidence) / 100.0
	}
	r := &Readability{Words: words}
	if words > 0 {
		r.MeanConfidence = sum / float64(words)
	}
	return r, nil
}
