package deskew

import (
	"errors"
	"fmt"
)

// ScoringPolicy selects how a candidate angle's projection profile is ranked.
type ScoringPolicy int

const (
	// ScoreVariance ranks candidates by the population variance of the
	// profile. Sharp, separated text lines maximize variance.
	ScoreVariance ScoringPolicy = iota
	// ScorePeakCount ranks candidates by the number of profile peaks above
	// the profile mean.
	ScorePeakCount
)

// Interpolation selects the resampling rule used when rotating a grid.
type Interpolation int

const (
	// InterpNearest samples the closest source pixel.
	InterpNearest Interpolation = iota
	// InterpBilinear blends the four neighboring source pixels.
	InterpBilinear
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidRange indicates a malformed search configuration:
	// MinAngle > MaxAngle or Step <= 0.
	ErrInvalidRange = errors.New("invalid angle range")
	// ErrCancelled indicates the caller's context expired; the search
	// stops between candidates, never mid-candidate.
	ErrCancelled = errors.New("search cancelled")
)

// Config holds the per-invocation search parameters. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// MinAngle and MaxAngle bound the search range in degrees. Positive
	// angles are clockwise.
	MinAngle float64
	MaxAngle float64
	// Step is the candidate increment in degrees. Must be positive.
	Step float64
	// Scoring ranks candidate profiles.
	Scoring ScoringPolicy
	// Interpolation is used for both search rotations and the final
	// correction.
	Interpolation Interpolation
	// ExpandToFit sizes the corrected output to the full rotated extent
	// instead of the input footprint.
	ExpandToFit bool
	// Background is the intensity used for samples that fall outside the
	// source grid. Defaults to white, the usual scan background.
	Background uint8
	// Workers caps concurrent candidate evaluations. Zero means one per
	// available CPU.
	Workers int
}

// DefaultConfig returns the search parameters that work well for typical
// scanned pages: a ±5 degree range at 0.1 degree resolution, variance
// scoring, bilinear resampling, white background, same-size output.
func DefaultConfig() Config {
	return Config{
		MinAngle:      -5,
		MaxAngle:      5,
		Step:          0.1,
		Scoring:       ScoreVariance,
		Interpolation: InterpBilinear,
		Background:    255,
	}
}

// Validate checks the search range. Returns ErrInvalidRange (wrapped with
// detail) when MinAngle > MaxAngle or Step is not positive.
func (c Config) Validate() error {
	if c.MinAngle > c.MaxAngle {
		return fmt.Errorf("%w: min %.3f > max %.3f", ErrInvalidRange, c.MinAngle, c.MaxAngle)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step %.3f must be > 0", ErrInvalidRange, c.Step)
	}
	return nil
}

// Candidates returns the angles to evaluate: MinAngle upward by Step, both
// bounds always included. When the span is not an exact multiple of Step the
// final increment is clamped to MaxAngle. A zero-width range yields exactly
// one candidate.
func (c Config) Candidates() []float64 {
	const eps = 1e-9
	var angles []float64
	for i := 0; ; i++ {
		a := c.MinAngle + float64(i)*c.Step
		if a >= c.MaxAngle-eps {
			break
		}
		angles = append(angles, a)
	}
	return append(angles, c.MaxAngle)
}

// String returns the policy name as accepted by ParseScoring.
func (p ScoringPolicy) String() string {
	switch p {
	case ScoreVariance:
		return "variance"
	case ScorePeakCount:
		return "peaks"
	default:
		return fmt.Sprintf("ScoringPolicy(%d)", int(p))
	}
}

// ParseScoring converts a policy name ("variance" or "peaks") to a
// ScoringPolicy.
func ParseScoring(s string) (ScoringPolicy, error) {
	switch s {
	case "variance":
		return ScoreVariance, nil
	case "peaks":
		return ScorePeakCount, nil
	default:
		return 0, fmt.Errorf("unknown scoring policy %q (want variance or peaks)", s)
	}
}

// String returns the interpolation name as accepted by ParseInterpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation converts an interpolation name ("nearest" or
// "bilinear") to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "nearest":
		return InterpNearest, nil
	case "bilinear":
		return InterpBilinear, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q (want nearest or bilinear)", s)
	}
}
