package targeting

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"reticle/internal/physics"
)

// Config holds the per-call targeting parameters.
type Config struct {
	Radius        float32           `json:"radius"`      // reticle radius in pixels
	MaxDistance   float32           `json:"maxDistance"` // world units
	Sides         int               `json:"sides"`
	IgnoredLayers physics.LayerMask `json:"ignoredLayers"`
}

var (
	errNegativeRadius = errors.New("radius must not be negative")
	errMaxDistance    = errors.New("maxDistance must be positive")
)

func DefaultConfig() Config {
	return Config{
		Radius:        50,
		MaxDistance:   100,
		Sides:         DefaultReticleSides,
		IgnoredLayers: physics.NoLayers,
	}
}

// Validate returns the first problem found. A zero radius is valid and turns
// targeting into a plain center raycast.
func (c Config) Validate() error {
	if c.Radius < 0 {
		return errNegativeRadius
	}
	if c.MaxDistance <= 0 {
		return errMaxDistance
	}
	return nil
}

// LoadConfig reads a JSON config. Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Apply copies the engine-level settings from cfg. A zero Sides keeps the octagon.
func (e *Engine) Apply(cfg Config) {
	if cfg.Sides == 0 {
		e.Sides = DefaultReticleSides
		return
	}
	e.Sides = cfg.Sides
}
