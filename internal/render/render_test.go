package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/pagetool/internal/deskew"
	"github.com/ironsheep/pagetool/internal/stats"
)

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file %s is empty", path)
	}
}

func TestScoreCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	candidates := []deskew.ScoredAngle{
		{Angle: -1, Score: 10},
		{Angle: 0, Score: 25},
		{Angle: 1, Score: 12},
	}
	if err := ScoreCurve(path, candidates); err != nil {
		t.Fatalf("ScoreCurve failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestScoreCurveNoCandidates(t *testing.T) {
	if err := ScoreCurve(filepath.Join(t.TempDir(), "curve.png"), nil); err == nil {
		t.Error("ScoreCurve with no candidates should fail")
	}
}

func TestProfilePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	profile := stats.Profile{0, 0, 900, 0, 0, 870, 0}
	if err := ProfilePlot(path, profile); err != nil {
		t.Fatalf("ProfilePlot failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestProfilePlotEmpty(t *testing.T) {
	if err := ProfilePlot(filepath.Join(t.TempDir(), "p.png"), nil); err == nil {
		t.Error("ProfilePlot with empty profile should fail")
	}
}

func TestProfileHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")
	profile := stats.Profile{0, 100, 900, 100, 0}
	if err := ProfileHeatmap(path, profile, 16); err != nil {
		t.Fatalf("ProfileHeatmap failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestProfileHeatmapConstantProfile(t *testing.T) {
	// A flat profile must not divide by zero.
	path := filepath.Join(t.TempDir(), "flat.png")
	profile := stats.Profile{5, 5, 5}
	if err := ProfileHeatmap(path, profile, 0); err != nil {
		t.Fatalf("ProfileHeatmap failed: %v", err)
	}
	requireNonEmptyFile(t, path)
}
