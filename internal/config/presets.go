package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/heartbeat/internal/scene"
)

// Presets maps names to scene builders. Each call returns a fresh copy so
// callers may override fields.
var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"burst":   burst,
	"calm":    calm,
}

// burst is the heavier scene: more particles, a stronger pulse, a burst cube
// that fires on the peaks, and bloom.
func burst() *Config {
	cfg := DefaultConfig()
	cfg.Name = "burst"
	cfg.Heart.Count = 15000
	cfg.Beat = scene.BeatParams{A1: 0.1, W1: 3.0, A2: 0.05, W2: 6.0}
	cfg.Explosion.Enabled = true

	cfg.Styles.Heart.BaseIntensity = 1.0
	cfg.Styles.Heart.Green, cfg.Styles.Heart.Blue = 0.1, 0.4
	cfg.Styles.Text.BaseIntensity = 1.0
	cfg.Styles.Text.Green, cfg.Styles.Text.Blue = 0.1, 0.4
	cfg.Styles.Text.SizeGain = 0.03

	cfg.Render.Bloom = true
	return cfg
}

// calm slows the beat to a resting pulse for small terminals.
func calm() *Config {
	cfg := DefaultConfig()
	cfg.Name = "calm"
	cfg.Heart.Count = 4000
	cfg.Beat = scene.BeatParams{A1: 0.06, W1: 2.0, A2: 0.03, W2: 4.0}
	cfg.Motion.SpinRate = 0.2
	cfg.Text.Stride = 6
	cfg.Text.Layers = 3
	return cfg
}

func GetPreset(name string) (*Config, error) {
	build, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", scene.ErrUnknownPreset, name, ListPresets())
	}
	return build(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
