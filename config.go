package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultSettings []byte

// Config is the game's tunable settings. The embedded settings.yaml supplies
// defaults; an optional on-disk file overrides them field by field.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Scale           float64 `yaml:"scale"`
	TransitionSpeed float64 `yaml:"transition_speed"`
	StartMap        string  `yaml:"start_map"`
	PlayerSpeed     float64 `yaml:"player_speed"`
}

func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSettings, &cfg); err != nil {
		return cfg, fmt.Errorf("config: defaults: %w", err)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.TransitionSpeed <= 0 {
		return fmt.Errorf("transition_speed must be positive, got %g", c.TransitionSpeed)
	}
	if c.StartMap == "" {
		return fmt.Errorf("start_map required")
	}
	if c.PlayerSpeed <= 0 {
		return fmt.Errorf("player_speed must be positive, got %g", c.PlayerSpeed)
	}
	return nil
}
