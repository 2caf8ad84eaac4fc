// Package config loads tool configuration from JSON files.
//
// All fields are pointers so a partial config file only overrides the values
// it names; everything omitted keeps its default. The same schema is shared
// by every subcommand that accepts -config.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironsheep/pagetool/internal/deskew"
)

// File is the on-disk configuration schema.
type File struct {
	// Search parameters
	MinAngle *float64 `json:"min_angle,omitempty"`
	MaxAngle *float64 `json:"max_angle,omitempty"`
	Step     *float64 `json:"step,omitempty"`
	// "variance" or "peaks"
	Scoring *string `json:"scoring,omitempty"`
	// "nearest" or "bilinear"
	Interpolation *string `json:"interpolation,omitempty"`
	ExpandToFit   *bool   `json:"expand_to_fit,omitempty"`
	// 0-255 intensity used outside the source image
	Background *int `json:"background,omitempty"`
	Workers    *int `json:"workers,omitempty"`

	// Preprocessing
	// Shrink the image so neither dimension exceeds this before searching.
	// Zero disables.
	MaxResolution *int `json:"max_resolution,omitempty"`
	// Gaussian blur radius applied before searching. Zero disables.
	BlurRadius *float64 `json:"blur_radius,omitempty"`
}

// Default returns a File with every field set to the tool defaults.
func Default() *File {
	base := deskew.DefaultConfig()
	scoring := base.Scoring.String()
	interp := base.Interpolation.String()
	background := int(base.Background)
	maxRes := 1500
	blur := 0.0
	return &File{
		MinAngle:      &base.MinAngle,
		MaxAngle:      &base.MaxAngle,
		Step:          &base.Step,
		Scoring:       &scoring,
		Interpolation: &interp,
		ExpandToFit:   &base.ExpandToFit,
		Background:    &background,
		Workers:       &base.Workers,
		MaxResolution: &maxRes,
		BlurRadius:    &blur,
	}
}

// Load reads a JSON config file. The file must have a .json extension.
// Fields omitted from the file are left nil so partial configs are safe.
func Load(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	return &f, nil
}

// Merge overlays other onto f: every non-nil field of other wins.
func (f *File) Merge(other *File) {
	if other == nil {
		return
	}
	if other.MinAngle != nil {
		f.MinAngle = other.MinAngle
	}
	if other.MaxAngle != nil {
		f.MaxAngle = other.MaxAngle
	}
	if other.Step != nil {
		f.Step = other.Step
	}
	if other.Scoring != nil {
		f.Scoring = other.Scoring
	}
	if other.Interpolation != nil {
		f.Interpolation = other.Interpolation
	}
	if other.ExpandToFit != nil {
		f.ExpandToFit = other.ExpandToFit
	}
	if other.Background != nil {
		f.Background = other.Background
	}
	if other.Workers != nil {
		f.Workers = other.Workers
	}
	if other.MaxResolution != nil {
		f.MaxResolution = other.MaxResolution
	}
	if other.BlurRadius != nil {
		f.BlurRadius = other.BlurRadius
	}
}

// EngineConfig converts the file to a deskew.Config, validating enum names
// and value ranges.
func (f *File) EngineConfig() (deskew.Config, error) {
	cfg := deskew.DefaultConfig()
	if f.MinAngle != nil {
		cfg.MinAngle = *f.MinAngle
	}
	if f.MaxAngle != nil {
		cfg.MaxAngle = *f.MaxAngle
	}
	if f.Step != nil {
		cfg.Step = *f.Step
	}
	if f.Scoring != nil {
		s, err := deskew.ParseScoring(*f.Scoring)
		if err != nil {
			return deskew.Config{}, err
		}
		cfg.Scoring = s
	}
	if f.Interpolation != nil {
		i, err := deskew.ParseInterpolation(*f.Interpolation)
		if err != nil {
			return deskew.Config{}, err
		}
		cfg.Interpolation = i
	}
	if f.ExpandToFit != nil {
		cfg.ExpandToFit = *f.ExpandToFit
	}
	if f.Background != nil {
		if *f.Background < 0 || *f.Background > 255 {
			return deskew.Config{}, fmt.Errorf("background %d out of range 0-255", *f.Background)
		}
		cfg.Background = uint8(*f.Background)
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	return cfg, nil
}

// GetMaxResolution returns the preprocessing shrink limit, 0 when unset.
func (f *File) GetMaxResolution() int {
	if f.MaxResolution == nil {
		return 0
	}
	return *f.MaxResolution
}

// GetBlurRadius returns the preprocessing blur radius, 0 when unset.
func (f *File) GetBlurRadius() float64 {
	if f.BlurRadius == nil {
		return 0
	}
	return *f.BlurRadius
}
