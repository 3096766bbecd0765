package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/heartbeat/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "classic" {
		t.Errorf("expected name classic, got %s", cfg.Name)
	}
	if cfg.Heart.Count != 12000 {
		t.Errorf("expected 12000 heart points, got %d", cfg.Heart.Count)
	}
	if cfg.Explosion.Enabled {
		t.Error("classic scene should not enable the burst cube")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg, err := GetPreset(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		if cfg.Name != name {
			t.Errorf("preset %s reports name %s", name, cfg.Name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}

func TestGetPreset_Burst(t *testing.T) {
	cfg, err := GetPreset("burst")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Explosion.Enabled {
		t.Error("burst should enable the explosion cloud")
	}
	if cfg.Beat.A1 != 0.1 || cfg.Beat.A2 != 0.05 {
		t.Errorf("unexpected burst amplitudes %+v", cfg.Beat)
	}
	if cfg.Styles.Heart.BaseIntensity != 1.0 {
		t.Errorf("expected base intensity 1, got %f", cfg.Styles.Heart.BaseIntensity)
	}
}

func TestGetPreset_IsolatedCopies(t *testing.T) {
	a, _ := GetPreset("burst")
	a.Heart.Count = 1
	b, _ := GetPreset("burst")
	if b.Heart.Count == 1 {
		t.Error("presets must not share state between calls")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	_, err := GetPreset("nonexistent")
	if !errors.Is(err, scene.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative heart count", func(c *Config) { c.Heart.Count = -1 }},
		{"negative explosion count", func(c *Config) { c.Explosion.Count = -5 }},
		{"zero stride", func(c *Config) { c.Text.Stride = 0 }},
		{"zero layers", func(c *Config) { c.Text.Layers = 0 }},
		{"empty canvas", func(c *Config) { c.Text.CanvasWidth = 0 }},
		{"beat reaches zero scale", func(c *Config) { c.Beat.A1, c.Beat.A2 = 0.7, 0.3 }},
		{"zero fps", func(c *Config) { c.Render.FPS = 0 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if !errors.Is(err, scene.ErrInvalidParams) {
			t.Errorf("%s: expected ErrInvalidParams, got %v", tt.name, err)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg, _ := GetPreset("burst")
	cfg.Text.Caption = "hello"
	cfg.Seed = 7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Text.Caption != "hello" {
		t.Errorf("expected caption hello, got %q", loaded.Text.Caption)
	}
	if loaded.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Seed)
	}
	if loaded.Text.AlphaThreshold != 128 {
		t.Errorf("expected alpha threshold 128, got %d", loaded.Text.AlphaThreshold)
	}
	if !loaded.Explosion.Enabled {
		t.Error("explosion flag lost in round trip")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("text:\n  caption: hi\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Text.Caption != "hi" {
		t.Errorf("expected caption hi, got %q", cfg.Text.Caption)
	}
	if cfg.Heart.Count != 12000 {
		t.Errorf("expected default heart count, got %d", cfg.Heart.Count)
	}
	if cfg.Text.Layers != 6 {
		t.Errorf("expected default layers, got %d", cfg.Text.Layers)
	}
}

func TestLoadOver_KeepsPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("render:\n  fps: 24\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base, err := GetPreset("burst")
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Render.FPS != 24 {
		t.Errorf("expected fps 24, got %d", cfg.Render.FPS)
	}
	if !cfg.Explosion.Enabled || cfg.Heart.Count != 15000 || !cfg.Render.Bloom {
		t.Error("expected burst values to survive the overlay")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("text:\n  stride: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, scene.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}
