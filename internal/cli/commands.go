package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironsheep/pagetool/internal/deskew"
	"github.com/ironsheep/pagetool/internal/imaging"
	"github.com/ironsheep/pagetool/internal/ocr"
	"github.com/ironsheep/pagetool/internal/render"
	"github.com/ironsheep/pagetool/internal/stats"
)

func runDeskew(args []string) error {
	fs := flag.NewFlagSet("deskew", flag.ContinueOnError)
	in := fs.String("in", "", "input image (required)")
	out := fs.String("out", "", "output image (required)")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	plotDir := fs.String("plot-dir", "", "write score curve and profile plots to this directory")
	timeout := fs.Duration("timeout", 0, "abort the search after this duration (0 = no limit)")
	sf := addSearchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return usagef("-in and -out are required")
	}

	cfg, maxRes, blur, err := sf.resolve(fs)
	if err != nil {
		return err
	}
	original, working, err := loadWorkingGrid(*in, maxRes, blur)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	det, scored, err := deskew.DetectScored(ctx, working, cfg)
	if err != nil {
		return err
	}
	corrected, err := deskew.Apply(original, det.Angle, cfg)
	if err != nil {
		return err
	}
	if err := imaging.Save(corrected, *out); err != nil {
		return err
	}

	if *plotDir != "" {
		if err := writePlots(*plotDir, scored, corrected); err != nil {
			return err
		}
	}

	if *asJSON {
		return printJSON(map[string]interface{}{
			"angle_degrees": det.Angle,
			"score":         det.Score,
			"width":         corrected.Width,
			"height":        corrected.Height,
			"output":        *out,
		})
	}
	fmt.Printf("angle: %+.2f degrees  score: %.4g  wrote %s (%dx%d)\n",
		det.Angle, det.Score, *out, corrected.Width, corrected.Height)
	return nil
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	in := fs.String("in", "", "input image (required)")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	timeout := fs.Duration("timeout", 0, "abort the search after this duration (0 = no limit)")
	sf := addSearchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return usagef("-in is required")
	}

	cfg, maxRes, blur, err := sf.resolve(fs)
	if err != nil {
		return err
	}
	_, working, err := loadWorkingGrid(*in, maxRes, blur)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	det, err := deskew.Detect(ctx, working, cfg)
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(det)
	}
	fmt.Printf("angle: %+.2f degrees  score: %.4g\n", det.Angle, det.Score)
	return nil
}

func runProfile(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	in := fs.String("in", "", "input image (required)")
	angle := fs.Float64("angle", 0, "rotate by this angle in degrees before profiling")
	dump := fs.Bool("dump", false, "print one profile value per line")
	plot := fs.String("plot", "", "write a profile line plot to this file")
	heatmap := fs.String("heatmap", "", "write a profile heatmap strip to this file")
	sf := addSearchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return usagef("-in is required")
	}

	cfg, maxRes, blur, err := sf.resolve(fs)
	if err != nil {
		return err
	}
	_, working, err := loadWorkingGrid(*in, maxRes, blur)
	if err != nil {
		return err
	}
	if *angle != 0 {
		working = deskew.Rotate(working, *angle, cfg.Interpolation, cfg.Background)
	}

	profile, err := stats.BuildProfile(working)
	if err != nil {
		return err
	}
	mean, err := stats.Mean(profile)
	if err != nil {
		return err
	}
	variance, err := stats.Variance(profile)
	if err != nil {
		return err
	}
	peaks := stats.PeakCount(profile, mean)

	fmt.Printf("rows: %d  mean: %.2f  variance: %.4g  peaks above mean: %d\n",
		len(profile), mean, variance, peaks)
	if *dump {
		for _, v := range profile {
			fmt.Printf("%.1f\n", v)
		}
	}
	if *plot != "" {
		if err := render.ProfilePlot(*plot, profile); err != nil {
			return err
		}
	}
	if *heatmap != "" {
		if err := render.ProfileHeatmap(*heatmap, profile, 32); err != nil {
			return err
		}
	}
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	in := fs.String("in", "", "input image (required)")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return usagef("-in is required")
	}

	width, height, format, err := imaging.Dimensions(*in)
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(map[string]interface{}{
			"width":  width,
			"height": height,
			"format": format,
		})
	}
	fmt.Printf("%s: %dx%d %s\n", *in, width, height, format)
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	before := fs.String("before", "", "image before correction (required)")
	after := fs.String("after", "", "image after correction (required)")
	lang := fs.String("lang", "eng", "Tesseract language code")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *before == "" || *after == "" {
		return usagef("-before and -after are required")
	}

	b, err := ocr.Measure(*before, *lang)
	if err != nil {
		return err
	}
	a, err := ocr.Measure(*after, *lang)
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(map[string]interface{}{
			"before": b,
			"after":  a,
		})
	}
	fmt.Printf("before: %4d words, mean confidence %.3f\n", b.Words, b.MeanConfidence)
	fmt.Printf("after:  %4d words, mean confidence %.3f\n", a.Words, a.MeanConfidence)
	fmt.Printf("delta:  %+.3f\n", a.MeanConfidence-b.MeanConfidence)
	return nil
}

func writePlots(dir string, scored []deskew.ScoredAngle, corrected *imaging.Grid) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("plot dir: %w", err)
	}
	if err := render.ScoreCurve(filepath.Join(dir, "score_curve.png"), scored); err != nil {
		return err
	}
	profile, err := stats.BuildProfile(corrected)
	if err != nil {
		return err
	}
	if err := render.ProfilePlot(filepath.Join(dir, "profile.png"), profile); err != nil {
		return err
	}
	return render.ProfileHeatmap(filepath.Join(dir, "profile_heatmap.png"), profile, 32)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
