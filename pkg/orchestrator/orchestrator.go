// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/user/reframe/pkg/layouts"
	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	Inputs     []string // Files or directories
	OutputPath string   // Zip archive path

	// Rendering
	Layouts  []string // Layout labels or short names; empty means all
	Strategy pipeline.FillStrategy
	Quality  int

	// Advice
	Advice bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Strategy: pipeline.SolidColor(nil),
		Quality:  90,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	loadStage   pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult]
	packStage   pipeline.Stage[pipeline.PackageInput, pipeline.PackageResult]
	adviseStage pipeline.Stage[pipeline.AdviseInput, pipeline.AdviseResult]
	fs          ports.FileSystem
	logger      ports.Logger
}

// New creates a new Orchestrator. adviseStage may be nil when no advisor is configured.
func New(
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult],
	packStage pipeline.Stage[pipeline.PackageInput, pipeline.PackageResult],
	adviseStage pipeline.Stage[pipeline.AdviseInput, pipeline.AdviseResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		loadStage:   loadStage,
		packStage:   packStage,
		adviseStage: adviseStage,
		fs:          fs,
		logger:      logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Resolve layouts
	targets, err := layouts.Select(config.Layouts)
	if err != nil {
		o.logger.Error(l10n.F("Failed to resolve layouts: %s", err))
		return RunResult{}, fmt.Errorf("layouts: %w", err)
	}
	o.logger.Info(l10n.F("Rendering %d layouts", len(targets)))

	// 2. Load inputs
	o.logger.Info(l10n.T("Loading images"))
	loaded, err := o.loadStage.Execute(ctx, pipeline.LoadInput{Paths: config.Inputs})
	if err != nil {
		o.logger.Error(l10n.F("Failed to load images: %s", err))
		return RunResult{}, fmt.Errorf("load stage: %w", err)
	}
	o.logger.Info(l10n.F("Loaded %d images", len(loaded.Images)))

	// 3. Render and package
	o.logger.Info(l10n.F("Packaging %d renderings with %s fill at quality %d",
		len(loaded.Images)*len(targets), config.Strategy, config.Quality))
	packed, err := o.packStage.Execute(ctx, pipeline.PackageInput{
		Images:   loaded.Images,
		Layouts:  targets,
		Strategy: config.Strategy,
		Quality:  config.Quality,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to package images: %s", err))
		return RunResult{}, fmt.Errorf("pack stage: %w", err)
	}
	o.logger.Info(l10n.F("Archive built: %d entries, %d bytes", len(packed.Entries), len(packed.Archive)))

	// 4. Write archive
	if err := o.fs.WriteFile(config.OutputPath, packed.Archive); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	result := RunResult{
		Inputs:      describeInputs(loaded.Images),
		Layouts:     targets,
		Strategy:    config.Strategy.String(),
		Quality:     config.Quality,
		Entries:     packed.Entries,
		ArchiveSize: len(packed.Archive),
		OutputPath:  config.OutputPath,
	}

	// 5. Advice (optional, never fails the run)
	if config.Advice && o.adviseStage != nil {
		o.logger.Info(l10n.F("Requesting advice for %d images", len(loaded.Images)))
		advised, err := o.adviseStage.Execute(ctx, pipeline.AdviseInput{Images: loaded.Images, Layouts: targets})
		if err != nil {
			o.logger.Warn(l10n.F("Advice skipped: %s", err))
		} else {
			result.Advice = advised.Advice
		}
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))
	return result, nil
}

func describeInputs(images []pipeline.NamedImage) []InputInfo {
	infos := make([]InputInfo, len(images))
	for i, img := range images {
		b := img.Image.Bounds()
		infos[i] = InputInfo{
			Name:   img.Name,
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: img.Format,
		}
	}
	return infos
}

// InputInfo describes one loaded image.
type InputInfo struct {
	Name   string
	Width  int
	Height int
	Format string
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Inputs
	Inputs []InputInfo

	// Rendering settings
	Layouts  []pipeline.TargetLayout
	Strategy string
	Quality  int

	// Archive
	Entries     []pipeline.ArchiveEntry
	ArchiveSize int
	OutputPath  string

	// Advice, empty unless requested
	Advice []ports.Advice
}
