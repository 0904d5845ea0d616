package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/field"
)

const (
	DefaultVariant = "starfield"
	DefaultWidth   = 1280
	DefaultHeight  = 720
	DefaultFrames  = 300
	DefaultFPS     = 60
	DefaultTheme   = "starfield"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	Variant string       `yaml:"variant"`
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Seed    int64        `yaml:"seed"`
	Frames  int          `yaml:"frames"`
	FPS     int          `yaml:"fps"`
	Theme   string       `yaml:"theme"`
	Tuning  TuningConfig `yaml:"tuning,omitempty"`
	Page    PageConfig   `yaml:"page"`
}

// TuningConfig overrides preset values; unset fields keep the preset.
type TuningConfig struct {
	Density        *float64 `yaml:"density,omitempty"`
	Count          *int     `yaml:"count,omitempty"`
	Boundary       string   `yaml:"boundary,omitempty"`
	Coloring       string   `yaml:"coloring,omitempty"`
	Speed          *float64 `yaml:"speed,omitempty"`
	InteractRadius *float64 `yaml:"interact_radius,omitempty"`
	Push           *float64 `yaml:"push,omitempty"`
	LinkDistance   *float64 `yaml:"link_distance,omitempty"`
	LinkScale      *float64 `yaml:"link_scale,omitempty"`
	NoiseEvery     *int     `yaml:"noise_every,omitempty"`
	Scanlines      *int     `yaml:"scanlines,omitempty"`
}

type PageConfig struct {
	Cards []CardConfig `yaml:"cards"`
	Tags  []string     `yaml:"tags"`
}

type CardConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant: DefaultVariant,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Frames:  DefaultFrames,
		FPS:     DefaultFPS,
		Theme:   DefaultTheme,
		Page: PageConfig{
			Cards: []CardConfig{
				{ID: "about", Title: "About", Body: "Backend and graphics programming."},
				{ID: "projects", Title: "Projects", Body: "Simulations, tools and small engines."},
				{ID: "skills", Title: "Skills", Body: "Go, rendering, systems."},
				{ID: "contact", Title: "Contact", Body: "Say hello."},
			},
			Tags: []string{"Go", "Graphics", "Simulation", "CLI"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Resolve builds the variant named by c with its tuning overrides applied
// and validated.
func (c *Config) Resolve() (field.Variant, error) {
	preset := GetPreset(c.Variant)
	if preset == nil {
		return field.Variant{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, c.Variant, ListPresets())
	}
	v, err := c.Tuning.Apply(*preset)
	if err != nil {
		return field.Variant{}, err
	}
	if err := v.Validate(); err != nil {
		return field.Variant{}, err
	}
	return v, nil
}

func (t TuningConfig) Apply(v field.Variant) (field.Variant, error) {
	if t.Density != nil {
		v.Density = *t.Density
	}
	if t.Count != nil {
		v.Count = *t.Count
	}
	if t.Boundary != "" {
		b, err := field.ParseBoundary(t.Boundary)
		if err != nil {
			return v, err
		}
		v.Boundary = b
	}
	if t.Coloring != "" {
		c, err := field.ParseColoring(t.Coloring)
		if err != nil {
			return v, err
		}
		v.Coloring = c
	}
	if t.Speed != nil {
		v.Speed = *t.Speed
	}
	if t.InteractRadius != nil {
		v.InteractRadius = *t.InteractRadius
	}
	if t.Push != nil {
		v.Push = *t.Push
	}
	if t.LinkDistance != nil {
		v.LinkDistance = *t.LinkDistance
	}
	if t.LinkScale != nil {
		v.LinkScale = *t.LinkScale
	}
	if t.NoiseEvery != nil {
		v.NoiseEvery = *t.NoiseEvery
	}
	if t.Scanlines != nil {
		v.ScanlineSpacing = *t.Scanlines
	}
	return v, nil
}
