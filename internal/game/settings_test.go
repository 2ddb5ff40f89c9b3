package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reticle/internal/physics"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reticle.json")
	s := DefaultSettings()
	s.Targeting.Radius = 35
	s.Targeting.IgnoredLayers = physics.LayerBit(physics.LayerGlass)
	s.Pitch.Min = 300
	s.Pitch.Max = 30

	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded != s {
		t.Errorf("Expected %+v, got %+v", s, loaded)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSettings(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
	if s != DefaultSettings() {
		t.Error("Expected defaults for a missing file")
	}

	partial := filepath.Join(dir, "partial.json")
	os.WriteFile(partial, []byte(`{"pitch": {"min": -45, "max": 45}, "window": {"width": 0}}`), 0644)
	s, err = LoadSettings(partial)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Pitch.Min != -45 || s.Pitch.Max != 45 {
		t.Errorf("Expected pitch [-45, 45], got %+v", s.Pitch)
	}
	if s.Targeting != DefaultSettings().Targeting {
		t.Errorf("Expected default targeting, got %+v", s.Targeting)
	}
	if s.Window != DefaultSettings().Window {
		t.Errorf("Expected default window after zero width, got %+v", s.Window)
	}

	invalid := filepath.Join(dir, "invalid.json")
	os.WriteFile(invalid, []byte(`{"targeting": {"radius": -5}}`), 0644)
	if _, err := LoadSettings(invalid); err == nil {
		t.Error("Expected error for negative radius")
	}
}
