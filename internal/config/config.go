package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Soundwave - Esc: quit"

	// Board dimensions in world units
	BoardWidth  = 16.0
	BoardHeight = 9.0

	// Analysis parameters
	TargetRate     = 30.0
	TravelRatio    = 0.75
	DistanceMargin = 1.0

	// Gameplay parameters
	DefaultDifficulty = "normal"
	LeadInSeconds     = 3.0
	TransitionSpeed   = 4.0
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Board    BoardConfig    `yaml:"board"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnalysisConfig struct {
	TargetRate     float64 `yaml:"target_rate"`     // analysis windows per second
	TravelRatio    float64 `yaml:"travel_ratio"`    // share of ripple reach a pop position may use
	DistanceMargin float64 `yaml:"distance_margin"` // world units subtracted from the reach
}

type GameplayConfig struct {
	Difficulty      string  `yaml:"difficulty"`
	LeadInSeconds   float64 `yaml:"lead_in_seconds"`
	TransitionSpeed float64 `yaml:"transition_speed"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Board: BoardConfig{
			Width:  BoardWidth,
			Height: BoardHeight,
		},
		Analysis: AnalysisConfig{
			TargetRate:     TargetRate,
			TravelRatio:    TravelRatio,
			DistanceMargin: DistanceMargin,
		},
		Gameplay: GameplayConfig{
			Difficulty:      DefaultDifficulty,
			LeadInSeconds:   LeadInSeconds,
			TransitionSpeed: TransitionSpeed,
		},
	}
}

// Load reads a YAML tuning file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Board.Width <= 2 || c.Board.Height <= 2:
		return errors.Errorf("board must be larger than 2x2 units, got %gx%g", c.Board.Width, c.Board.Height)
	case c.Analysis.TargetRate <= 0:
		return errors.Errorf("analysis target_rate must be positive, got %g", c.Analysis.TargetRate)
	case c.Analysis.TravelRatio <= 0 || c.Analysis.TravelRatio > 1:
		return errors.Errorf("analysis travel_ratio must be in (0,1], got %g", c.Analysis.TravelRatio)
	case c.Analysis.DistanceMargin < 0:
		return errors.Errorf("analysis distance_margin must not be negative, got %g", c.Analysis.DistanceMargin)
	case c.Gameplay.LeadInSeconds < 0:
		return errors.Errorf("gameplay lead_in_seconds must not be negative, got %g", c.Gameplay.LeadInSeconds)
	case c.Gameplay.TransitionSpeed <= 0:
		return errors.Errorf("gameplay transition_speed must be positive, got %g", c.Gameplay.TransitionSpeed)
	}
	return nil
}
