// Package reframe provides a high-level API for fitting images into social
// media layouts and packaging the results.
package reframe

import (
	"image/color"

	"github.com/user/reframe/pkg/orchestrator"
	"github.com/user/reframe/pkg/pipeline"
)

// QualityPreset represents a JPEG quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// GetQuality returns the JPEG quality for the given preset.
func GetQuality(preset QualityPreset) int {
	switch preset {
	case QualityLow:
		return 70
	case QualityHigh:
		return 95
	default: // medium
		return 85
	}
}

// Config represents the configuration for a packaging run.
type Config struct {
	// Layouts
	Layouts []string // Labels or short names (empty = all)

	// Fill
	Fill       pipeline.FillKind
	Color      color.Color // Solid fill colour
	BlurRadius float64     // Gaussian sigma for blur fill

	// Encoding
	Quality int // JPEG quality (1-100)
	Workers int // Parallel renderings (min: 1)

	// Advice
	Advice     bool   // Ask the advice service about each image
	Model      string // Gemini model name
	APIKey     string // Gemini API key
	MaxRetries int    // Retries after a rate-limited response
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

func defaults() Config {
	return Config{
		// Fill
		Fill:       pipeline.FillSolid,
		Color:      color.White,
		BlurRadius: pipeline.DefaultBlurRadius,

		// Encoding (medium quality preset)
		Quality: GetQuality(QualityMedium),
		Workers: 4,

		// Advice
		Model:      "gemini-1.5-pro",
		MaxRetries: 3,
	}
}

// Build returns the final Config, applying constraints.
// Quality is passed through unchanged so that out-of-range values are
// rejected by the packager.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Enforce minimum workers of 1
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return cfg
}

// WithLayouts selects the layouts to render. Empty means all.
func (b *ConfigBuilder) WithLayouts(names ...string) *ConfigBuilder {
	b.config.Layouts = names
	return b
}

// WithFill sets the fill strategy kind.
func (b *ConfigBuilder) WithFill(kind pipeline.FillKind) *ConfigBuilder {
	b.config.Fill = kind
	return b
}

// WithColor sets the solid fill colour.
func (b *ConfigBuilder) WithColor(c color.Color) *ConfigBuilder {
	b.config.Color = c
	return b
}

// WithBlurRadius sets the blur fill sigma.
func (b *ConfigBuilder) WithBlurRadius(radius float64) *ConfigBuilder {
	b.config.BlurRadius = radius
	return b
}

// WithQuality sets the JPEG quality (1-100).
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	b.config.Quality = GetQuality(preset)
	return b
}

// WithWorkers sets the number of parallel renderings.
// Values below 1 will be forced to 1.
func (b *ConfigBuilder) WithWorkers(workers int) *ConfigBuilder {
	b.config.Workers = workers
	return b
}

// WithAdvice enables the advice service.
func (b *ConfigBuilder) WithAdvice(enabled bool) *ConfigBuilder {
	b.config.Advice = enabled
	return b
}

// WithModel sets the Gemini model name.
func (b *ConfigBuilder) WithModel(model string) *ConfigBuilder {
	b.config.Model = model
	return b
}

// WithAPIKey sets the Gemini API key.
func (b *ConfigBuilder) WithAPIKey(key string) *ConfigBuilder {
	b.config.APIKey = key
	return b
}

// WithMaxRetries sets how often a rate-limited advice request is retried.
func (b *ConfigBuilder) WithMaxRetries(n int) *ConfigBuilder {
	b.config.MaxRetries = n
	return b
}

// Strategy returns the fill strategy described by the config.
func (c Config) Strategy() pipeline.FillStrategy {
	switch c.Fill {
	case pipeline.FillSampledCorner:
		return pipeline.SampledCorner()
	case pipeline.FillBlurExtend:
		return pipeline.BlurExtend(c.BlurRadius)
	default:
		return pipeline.SolidColor(c.Color)
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputs []string, outputPath string) orchestrator.Config {
	return orchestrator.Config{
		Inputs:     inputs,
		OutputPath: outputPath,

		Layouts:  c.Layouts,
		Strategy: c.Strategy(),
		Quality:  c.Quality,

		Advice: c.Advice,
	}
}
