package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/pagetool/internal/deskew"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	f := Default()
	cfg, err := f.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	want := deskew.DefaultConfig()
	if cfg != want {
		t.Errorf("Default().EngineConfig() = %+v, want %+v", cfg, want)
	}
	if f.GetMaxResolution() == 0 {
		t.Error("default max resolution should be enabled")
	}
}

func TestLoadPartialConfig(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"max_angle": 2.5, "scoring": "peaks"}`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.MaxAngle == nil || *f.MaxAngle != 2.5 {
		t.Errorf("MaxAngle = %v, want 2.5", f.MaxAngle)
	}
	if f.MinAngle != nil {
		t.Errorf("MinAngle should stay nil in a partial config, got %v", *f.MinAngle)
	}

	base := Default()
	base.Merge(f)
	cfg, err := base.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	if cfg.MaxAngle != 2.5 {
		t.Errorf("merged MaxAngle = %v, want 2.5", cfg.MaxAngle)
	}
	if cfg.Scoring != deskew.ScorePeakCount {
		t.Errorf("merged Scoring = %v, want peaks", cfg.Scoring)
	}
	// untouched fields keep their defaults
	if cfg.MinAngle != deskew.DefaultConfig().MinAngle {
		t.Errorf("merged MinAngle = %v, want default", cfg.MinAngle)
	}
}

func TestLoadRejectsNonJSONExtension(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `{}`)
	if _, err := Load(path); err == nil {
		t.Error("Load should reject non-.json files")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeConfig(t, "bad.json", `{"max_angle": `)
	if _, err := Load(path); err == nil {
		t.Error("Load should reject malformed JSON")
	}
}

func TestEngineConfigValidation(t *testing.T) {
	bad := "entropy"
	f := Default()
	f.Scoring = &bad
	if _, err := f.EngineConfig(); err == nil {
		t.Error("unknown scoring policy should fail")
	}

	f = Default()
	outOfRange := 300
	f.Background = &outOfRange
	if _, err := f.EngineConfig(); err == nil {
		t.Error("background above 255 should fail")
	}

	f = Default()
	interp := "lanczos"
	f.Interpolation = &interp
	if _, err := f.EngineConfig(); err == nil {
		t.Error("unknown interpolation should fail")
	}
}
