package deskew

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/ironsheep/pagetool/internal/imaging"
	"github.com/ironsheep/pagetool/internal/stats"
)

// Detection pairs a winning angle in degrees with its score.
type Detection struct {
	Angle float64 `json:"angle_degrees"`
	Score float64 `json:"score"`
}

// Result is the outcome of a full correction: the detected angle, its score,
// and the corrected grid. The caller owns the grid exclusively.
type Result struct {
	Angle float64
	Score float64
	Grid  *imaging.Grid
}

// ScoredAngle is one evaluated candidate, exposed for diagnostics.
type ScoredAngle struct {
	Angle float64 `json:"angle_degrees"`
	Score float64 `json:"score"`
}

// Detect searches the configured angle range for the rotation whose
// projection profile scores highest and returns it together with its score.
//
// The input grid is only read, never mutated, and no state survives the
// call. Cancellation via ctx is honored between candidates and surfaces as
// ErrCancelled.
func Detect(ctx context.Context, g *imaging.Grid, cfg Config) (Detection, error) {
	det, _, err := detect(ctx, g, cfg, false)
	return det, err
}

// DetectScored is Detect plus the full list of evaluated candidates in
// search order, for score-curve diagnostics.
func DetectScored(ctx context.Context, g *imaging.Grid, cfg Config) (Detection, []ScoredAngle, error) {
	return detect(ctx, g, cfg, true)
}

func detect(ctx context.Context, g *imaging.Grid, cfg Config, keepScores bool) (Detection, []ScoredAngle, error) {
	if err := cfg.Validate(); err != nil {
		return Detection{}, nil, err
	}
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return Detection{}, nil, stats.ErrEmptyInput
	}

	angles := cfg.Candidates()
	scores := make([]float64, len(angles))
	errs := make([]error, len(angles))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(angles) {
		workers = len(angles)
	}

	// Each worker writes only its own candidate's slot, so the slices need
	// no locking; wg.Wait is the single synchronization barrier.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i], errs[i] = scoreCandidate(g, angles[i], cfg)
			}
		}()
	}

	cancelled := false
feed:
	for i := range angles {
		// Non-blocking check first: a ready worker must not win the
		// select below against an already-expired context.
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		default:
		}
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		return Detection{}, nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}
	for _, err := range errs {
		if err != nil {
			return Detection{}, nil, err
		}
	}

	best := 0
	for i := 1; i < len(angles); i++ {
		if betterCandidate(scores[i], angles[i], scores[best], angles[best]) {
			best = i
		}
	}

	var scored []ScoredAngle
	if keepScores {
		scored = make([]ScoredAngle, len(angles))
		for i := range angles {
			scored[i] = ScoredAngle{Angle: angles[i], Score: scores[i]}
		}
	}
	return Detection{Angle: angles[best], Score: scores[best]}, scored, nil
}

// betterCandidate reports whether (score, angle) beats the current best.
// Exact score ties prefer the angle closest to zero, then the more negative
// angle, so the selection is a total order independent of evaluation order.
func betterCandidate(score, angle, bestScore, bestAngle float64) bool {
	if score != bestScore {
		return score > bestScore
	}
	absA, absB := math.Abs(angle), math.Abs(bestAngle)
	if absA != absB {
		return absA < absB
	}
	return angle < bestAngle
}

// scoreCandidate rotates the grid by the candidate angle, builds the
// projection profile, and scores it under the configured policy. The working
// grid and profile are local to the call and released on return.
func scoreCandidate(g *imaging.Grid, angle float64, cfg Config) (float64, error) {
	rotated := Rotate(g, angle, cfg.Interpolation, cfg.Background)
	profile, err := stats.BuildProfile(rotated)
	if err != nil {
		return 0, fmt.Errorf("candidate %.3f: %w", angle, err)
	}
	return scoreProfile(profile, cfg.Scoring)
}

func scoreProfile(p stats.Profile, policy ScoringPolicy) (float64, error) {
	switch policy {
	case ScoreVariance:
		v, err := stats.Variance(p)
		if err != nil {
			return 0, err
		}
		return v, nil
	case ScorePeakCount:
		mean, err := stats.Mean(p)
		if err != nil {
			return 0, err
		}
		return float64(stats.PeakCount(p, mean)), nil
	default:
		return 0, fmt.Errorf("unknown scoring policy %d", int(policy))
	}
}

// Apply rotates g by the given angle once, using the configured
// interpolation and background. Unless cfg.ExpandToFit is set, the result is
// cropped or padded back to the input footprint around its center.
//
// Detection may run on a shrunk or smoothed working copy; Apply is meant for
// the original full-resolution grid.
func Apply(g *imaging.Grid, angle float64, cfg Config) (*imaging.Grid, error) {
	corrected := Rotate(g, angle, cfg.Interpolation, cfg.Background)
	if cfg.ExpandToFit {
		return corrected, nil
	}
	corrected, err := corrected.CropPad(g.Width, g.Height, cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("crop to input footprint: %w", err)
	}
	return corrected, nil
}

// Correct runs Detect and then applies the winning rotation to the original
// grid. A small winning margin (for example on inputs without horizontal
// line structure) is not an error; the best-scoring angle is always applied.
func Correct(ctx context.Context, g *imaging.Grid, cfg Config) (*Result, error) {
	det, err := Detect(ctx, g, cfg)
	if err != nil {
		return nil, err
	}
	corrected, err := Apply(g, det.Angle, cfg)
	if err != nil {
		return nil, err
	}
	return &Result{Angle: det.Angle, Score: det.Score, Grid: corrected}, nil
}
