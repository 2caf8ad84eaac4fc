package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of seq. Fails with ErrEmptyInput when seq
// has zero length.
func Mean(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Mean(seq, nil), nil
}

// Variance returns the population variance of seq (second central moment,
// divided by n, not n-1). Fails with ErrEmptyInput when seq has zero length.
func Variance(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyInput
	}
	mean := stat.Mean(seq, nil)
	return stat.MomentAbout(2, seq, mean, nil), nil
}

// PeakCount counts local maxima in seq whose value is strictly greater than
// threshold. A sample is a local maximum when it is at least as large as both
// neighbors and strictly larger than one of them; runs of equal values count
// as a single peak. The first and last samples are compared against their one
// neighbor only. Values exactly equal to threshold are excluded.
func PeakCount(seq []float64, threshold float64) int {
	n := len(seq)
	if n == 0 {
		return 0
	}
	if n == 1 {
		if seq[0] > threshold {
			return 1
		}
		return 0
	}
	peaks := 0
	// rising tracks whether we have climbed since the last descent, so a
	// plateau at a summit counts once.
	rising := seq[0] > threshold
	for i := 1; i < n; i++ {
		switch {
		case seq[i] > seq[i-1]:
			rising = seq[i] > threshold
		case seq[i] < seq[i-1]:
			if rising {
				peaks++
			}
			rising = false
		}
	}
	if rising {
		peaks++
	}
	return peaks
}
