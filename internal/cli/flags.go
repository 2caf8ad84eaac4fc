package cli

import (
	"flag"
	"fmt"

	"github.com/ironsheep/pagetool/internal/config"
	"github.com/ironsheep/pagetool/internal/deskew"
	"github.com/ironsheep/pagetool/internal/imaging"
)

// searchFlags collects the flags shared by every subcommand that runs the
// angle search. Flags explicitly set on the command line win over the config
// file, which wins over built-in defaults.
type searchFlags struct {
	configPath string

	minAngle float64
	maxAngle float64
	step     float64
	scoring  string
	interp   string
	expand   bool
	bg       int
	workers  int
	maxRes   int
	blur     float64
}

func addSearchFlags(fs *flag.FlagSet) *searchFlags {
	def := config.Default()
	sf := &searchFlags{}
	fs.StringVar(&sf.configPath, "config", "", "JSON config file (partial files override defaults)")
	fs.Float64Var(&sf.minAngle, "min", *def.MinAngle, "minimum candidate angle in degrees")
	fs.Float64Var(&sf.maxAngle, "max", *def.MaxAngle, "maximum candidate angle in degrees")
	fs.Float64Var(&sf.step, "step", *def.Step, "candidate angle increment in degrees")
	fs.StringVar(&sf.scoring, "scoring", *def.Scoring, "scoring policy: variance or peaks")
	fs.StringVar(&sf.interp, "interp", *def.Interpolation, "interpolation: nearest or bilinear")
	fs.BoolVar(&sf.expand, "expand", *def.ExpandToFit, "size output to the full rotated extent")
	fs.IntVar(&sf.bg, "bg", *def.Background, "background intensity 0-255 for out-of-bounds samples")
	fs.IntVar(&sf.workers, "workers", *def.Workers, "concurrent candidate evaluations (0 = one per CPU)")
	fs.IntVar(&sf.maxRes, "max-resolution", *def.MaxResolution, "shrink image to this max dimension before searching (0 = off)")
	fs.Float64Var(&sf.blur, "blur", *def.BlurRadius, "Gaussian blur radius applied before searching (0 = off)")
	return sf
}

// resolve layers defaults, the optional config file, and explicitly set
// flags into the final engine config plus preprocessing knobs.
func (sf *searchFlags) resolve(fs *flag.FlagSet) (deskew.Config, int, float64, error) {
	base := config.Default()
	if sf.configPath != "" {
		file, err := config.Load(sf.configPath)
		if err != nil {
			return deskew.Config{}, 0, 0, usagef("config: %v", err)
		}
		base.Merge(file)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min":
			base.MinAngle = &sf.minAngle
		case "max":
			base.MaxAngle = &sf.maxAngle
		case "step":
			base.Step = &sf.step
		case "scoring":
			base.Scoring = &sf.scoring
		case "interp":
			base.Interpolation = &sf.interp
		case "expand":
			base.ExpandToFit = &sf.expand
		case "bg":
			base.Background = &sf.bg
		case "workers":
			base.Workers = &sf.workers
		case "max-resolution":
			base.MaxResolution = &sf.maxRes
		case "blur":
			base.BlurRadius = &sf.blur
		}
	})

	cfg, err := base.EngineConfig()
	if err != nil {
		return deskew.Config{}, 0, 0, usagef("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return deskew.Config{}, 0, 0, err
	}
	return cfg, base.GetMaxResolution(), base.GetBlurRadius(), nil
}

// loadWorkingGrid loads the image and applies shrink/blur preprocessing,
// returning both the original and the (possibly identical) working grid.
func loadWorkingGrid(path string, maxRes int, blur float64) (original, working *imaging.Grid, err error) {
	original, _, err = imaging.Load(path)
	if err != nil {
		return nil, nil, err
	}
	working, err = original.Shrink(maxRes)
	if err != nil {
		return nil, nil, fmt.Errorf("shrink: %w", err)
	}
	working, err = working.Smooth(blur)
	if err != nil {
		return nil, nil, fmt.Errorf("smooth: %w", err)
	}
	return original, working, nil
}
