// Package render produces diagnostic images for the deskew pipeline: score
// curves over the angle search, projection profile plots, and a compact
// heatmap view of a profile.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ironsheep/pagetool/internal/deskew"
	"github.com/ironsheep/pagetool/internal/stats"
)

// ScoreCurve writes a line plot of candidate angle versus score to path.
// The output format follows the file extension (.png, .svg, .pdf).
func ScoreCurve(path string, candidates []deskew.ScoredAngle) error {
	if len(candidates) == 0 {
		return fmt.Errorf("score curve: no candidates to plot")
	}
	pts := make(plotter.XYs, 0, len(candidates))
	for _, c := range candidates {
		pts = append(pts, plotter.XY{X: c.Angle, Y: c.Score})
	}

	p := plot.New()
	p.Title.Text = "Skew search"
	p.X.Label.Text = "angle (degrees)"
	p.Y.Label.Text = "score"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("score curve: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("score curve: save %s: %w", path, err)
	}
	return nil
}

// ProfilePlot writes a line plot of the projection profile (row index on X,
// summed intensity on Y) to path.
func ProfilePlot(path string, profile stats.Profile) error {
	if len(profile) == 0 {
		return fmt.Errorf("profile plot: %w", stats.ErrEmptyInput)
	}
	pts := make(plotter.XYs, 0, len(profile))
	for i, v := range profile {
		pts = append(pts, plotter.XY{X: float64(i), Y: v})
	}

	p := plot.New()
	p.Title.Text = "Projection profile"
	p.X.Label.Text = "row"
	p.Y.Label.Text = "intensity sum"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("profile plot: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("profile plot: save %s: %w", path, err)
	}
	return nil
}
