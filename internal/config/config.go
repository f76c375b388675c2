package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fibzoom/internal/spiral"
)

const (
	DefaultTitle  = "Infinite Fibonacci Zoom"
	DefaultWidth  = 1000
	DefaultHeight = 800
	DefaultFPS    = 60
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
}

type AnimationConfig struct {
	Step        float64   `yaml:"step"`
	ResetPeriod float64   `yaml:"reset_period"`
	BaseScale   float64   `yaml:"base_scale"`
	Eye         EyeConfig `yaml:"eye"`
	MaxTerms    int       `yaml:"max_terms"`
	Ceiling     float64   `yaml:"ceiling"`
	ArcSteps    int       `yaml:"arc_steps"`
}

type EyeConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Animation: AnimationConfig{
			Step:        spiral.DefaultStep,
			ResetPeriod: spiral.DefaultResetPeriod,
			BaseScale:   spiral.DefaultBaseScale,
			Eye:         EyeConfig{X: spiral.DefaultEye.X, Y: spiral.DefaultEye.Y},
			MaxTerms:    spiral.DefaultMaxTerms,
			Ceiling:     spiral.DefaultCeiling,
			ArcSteps:    spiral.DefaultArcSteps,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the animation section for the frame pipeline. Culling and
// fade thresholds are not configurable and always take their defaults.
func (c *Config) Params() spiral.Params {
	a := c.Animation
	p := spiral.DefaultParams()
	p.Step = a.Step
	p.ResetPeriod = a.ResetPeriod
	p.BaseScale = a.BaseScale
	p.Eye = spiral.Pt(a.Eye.X, a.Eye.Y)
	p.MaxTerms = a.MaxTerms
	p.Ceiling = a.Ceiling
	p.ArcSteps = a.ArcSteps
	return p
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Window.FPS)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
