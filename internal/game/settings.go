package game

import (
	"encoding/json"
	"fmt"
	"os"

	"reticle/internal/camera"
	"reticle/internal/targeting"
)

// Settings is the demo's config file. Missing fields keep their defaults.
type Settings struct {
	Targeting targeting.Config  `json:"targeting"`
	Pitch     camera.PitchRange `json:"pitch"`
	Window    WindowSettings    `json:"window"`
}

type WindowSettings struct {
	Width     int32 `json:"width"`
	Height    int32 `json:"height"`
	TargetFPS int32 `json:"targetFPS"`
}

func DefaultSettings() Settings {
	return Settings{
		Targeting: targeting.DefaultConfig(),
		Pitch:     camera.PitchRange{Min: -80, Max: 80},
		Window:    WindowSettings{Width: 1280, Height: 720, TargetFPS: 120},
	}
}

// LoadSettings reads path over the defaults. On any error the defaults are
// returned alongside it.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Targeting.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings %s: %w", path, err)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		s.Window = DefaultSettings().Window
	}
	return s, nil
}

func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
