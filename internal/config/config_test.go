package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fibzoom/internal/spiral"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Title != "Infinite Fibonacci Zoom" {
		t.Errorf("unexpected title %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 1000 || cfg.Window.Height != 800 {
		t.Errorf("expected 1000x800, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Params() != spiral.DefaultParams() {
		t.Error("default config should map to the default animation parameters")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.yaml")
	data := []byte("animation:\n  step: 0.01\n  eye:\n    x: 0.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Animation.Step != 0.01 {
		t.Errorf("expected step 0.01, got %v", cfg.Animation.Step)
	}
	if cfg.Animation.Eye.X != 0.5 || cfg.Animation.Eye.Y != spiral.DefaultEye.Y {
		t.Errorf("unexpected eye %+v", cfg.Animation.Eye)
	}
	if cfg.Animation.ResetPeriod != spiral.DefaultResetPeriod {
		t.Errorf("unset keys should keep defaults, got period %v", cfg.Animation.ResetPeriod)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  max_terms: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, spiral.ErrInvalidParams) {
		t.Errorf("expected wrapped validation error, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("deep")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestValidateWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Window.FPS = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("slow")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Animation.Step != 0.003 {
		t.Errorf("expected step 0.003, got %v", cfg.Animation.Step)
	}
	if cfg.Window != DefaultConfig().Window {
		t.Error("presets must not change window settings")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 || names[0] != "classic" {
		t.Fatalf("unexpected preset list %v", names)
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
