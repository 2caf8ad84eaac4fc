//go:build !cgo

package ocr

// Measure is a stub for builds without CGO; it always returns
// ErrUnavailable.
func Measure(path string, language string) (*Readability, error) {
	return nil, ErrUnavailable
}
