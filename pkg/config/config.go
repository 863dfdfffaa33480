// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/reframe"
)

// Config represents the configuration file for reframe.
type Config struct {
	// Output
	OutputPath string `yaml:"output"`

	// Layouts (labels or short names, empty = all)
	Layouts []string `yaml:"layouts"`

	// Fill
	Fill       string  `yaml:"fill"`
	Color      string  `yaml:"color"`
	BlurRadius float64 `yaml:"blur_radius"`

	// Encoding
	Quality       int    `yaml:"quality"`
	QualityPreset string `yaml:"quality_preset"`
	Workers       int    `yaml:"workers"`

	// Advice
	Advice AdviceConfig `yaml:"advice"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// AdviceConfig represents the advice service settings.
// The API key is never read from the file; it comes from GEMINI_API_KEY.
type AdviceConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Model      string `yaml:"model"`
	MaxRetries int    `yaml:"max_retries"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Fill
		Fill:       "solid",
		Color:      "#ffffff",
		BlurRadius: pipeline.DefaultBlurRadius,

		// Encoding (quality 0 falls back to the preset)
		QualityPreset: string(reframe.QualityMedium),
		Workers:       4,

		// Advice
		Advice: AdviceConfig{
			Model:      "gemini-1.5-pro",
			MaxRetries: 3,
		},

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ParseColor parses "#rrggbb", "rrggbb" or "#rgb" into an opaque colour.
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q", hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Apply copies the file settings onto builder.
// An explicit quality wins over a quality preset.
func (c Config) Apply(builder *reframe.ConfigBuilder) error {
	if len(c.Layouts) > 0 {
		builder.WithLayouts(c.Layouts...)
	}

	if c.Fill != "" {
		kind, err := pipeline.ParseFillKind(c.Fill)
		if err != nil {
			return err
		}
		builder.WithFill(kind)
	}
	if c.Color != "" {
		col, err := ParseColor(c.Color)
		if err != nil {
			return err
		}
		builder.WithColor(col)
	}
	if c.BlurRadius > 0 {
		builder.WithBlurRadius(c.BlurRadius)
	}

	if c.QualityPreset != "" {
		builder.WithQualityPreset(reframe.QualityPreset(c.QualityPreset))
	}
	if c.Quality != 0 {
		builder.WithQuality(c.Quality)
	}
	if c.Workers != 0 {
		builder.WithWorkers(c.Workers)
	}

	builder.WithAdvice(c.Advice.Enabled)
	if c.Advice.Model != "" {
		builder.WithModel(c.Advice.Model)
	}
	builder.WithMaxRetries(c.Advice.MaxRetries)

	return nil
}
