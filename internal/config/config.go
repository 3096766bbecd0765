package config

import (
	"fmt"
	"os"

	"github.com/san-kum/heartbeat/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 30
	DefaultWidth  = 1280
	DefaultHeight = 720
)

type Config struct {
	Name      string                `yaml:"name"`
	Seed      int64                 `yaml:"seed"`
	Heart     scene.HeartParams     `yaml:"heart"`
	Text      scene.TextParams      `yaml:"text"`
	Explosion scene.ExplosionParams `yaml:"explosion"`
	Beat      scene.BeatParams      `yaml:"beat"`
	Motion    scene.MotionParams    `yaml:"motion"`
	Styles    scene.Styles          `yaml:"styles"`
	Render    RenderConfig          `yaml:"render"`
}

type RenderConfig struct {
	FPS    int  `yaml:"fps"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Bloom  bool `yaml:"bloom"`
	GPU    bool `yaml:"gpu"`
	Audio  bool `yaml:"audio"`
}

// DefaultConfig returns the classic scene: the heart, the caption and no burst.
func DefaultConfig() *Config {
	return &Config{
		Name:      "classic",
		Heart:     scene.DefaultHeartParams(),
		Text:      scene.DefaultTextParams(),
		Explosion: scene.DefaultExplosionParams(),
		Beat:      scene.BeatParams{A1: 0.08, W1: 3.0, A2: 0.04, W2: 6.0},
		Motion:    scene.DefaultMotionParams(),
		Styles: scene.Styles{
			Heart: scene.ShapeStyle{
				BaseSize: 0.035, SizeGain: 0.06,
				BaseIntensity: 0.8, IntensityGain: 2.0,
				Green: 0.12, Blue: 0.35, Opacity: 0.95, Scales: true,
			},
			Text: scene.ShapeStyle{
				BaseSize:      0.03,
				BaseIntensity: 0.8, IntensityGain: 2.0,
				Green: 0.12, Blue: 0.35, Opacity: 0.95,
			},
			Explosion: scene.ShapeStyle{
				BaseSize:      0.02,
				BaseIntensity: 1.0, IntensityGain: 2.0,
				Green: 0.1, Blue: 0.4, Opacity: 0.6,
			},
		},
		Render: RenderConfig{
			FPS:    DefaultFPS,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Animation extracts the animator constants.
func (c *Config) Animation() scene.Animation {
	return scene.Animation{
		Beat:      c.Beat,
		Motion:    c.Motion,
		Styles:    c.Styles,
		Explosion: c.Explosion,
	}
}

// Validate reports the first parameter that would produce a broken scene.
func (c *Config) Validate() error {
	switch {
	case c.Heart.Count < 0:
		return &scene.ParamError{Field: "heart.count", Reason: "negative"}
	case c.Explosion.Count < 0:
		return &scene.ParamError{Field: "explosion.count", Reason: "negative"}
	case c.Text.Stride < 1:
		return &scene.ParamError{Field: "text.stride", Reason: "must be at least 1"}
	case c.Text.Layers < 1:
		return &scene.ParamError{Field: "text.layers", Reason: "must be at least 1"}
	case c.Text.CanvasWidth <= 0 || c.Text.CanvasHeight <= 0:
		return &scene.ParamError{Field: "text canvas", Reason: "must be positive"}
	case abs(c.Beat.A1)+abs(c.Beat.A2) >= 1:
		return &scene.ParamError{Field: "beat", Reason: fmt.Sprintf("|a1|+|a2| = %.3f lets the heart scale reach zero", abs(c.Beat.A1)+abs(c.Beat.A2))}
	case c.Render.FPS <= 0:
		return &scene.ParamError{Field: "render.fps", Reason: "must be positive"}
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Load reads a YAML file over the classic defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, so fields the file omits keep their
// base values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
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
