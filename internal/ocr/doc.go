// Package ocr measures OCR readability of page images using Tesseract.
//
// The deskew tool uses it for verification only: comparing the mean word
// confidence of an image before and after correction gives a quick,
// text-content-independent signal that straightening actually helped.
//
// Tesseract bindings require CGO. On builds without CGO every function
// returns ErrUnavailable so the rest of the tool keeps working.
package ocr

import "errors"

// ErrUnavailable is returned when the binary was built without Tesseract
// support (CGO disabled).
var ErrUnavailable = errors.New("ocr support not compiled in")

// Readability summarizes OCR quality for one image.
type Readability struct {
	// Words is the number of recognized words with non-empty text.
	Words int `json:"words"`
	// MeanConfidence is the average Tesseract word confidence in [0, 1].
	MeanConfidence float64 `json:"mean_confidence"`
}
