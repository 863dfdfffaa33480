// Package main provides the CLI entry point for reframe.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/user/reframe/pkg/adapters/filesink"
	"github.com/user/reframe/pkg/adapters/geminiadvisor"
	"github.com/user/reframe/pkg/adapters/ggrenderer"
	"github.com/user/reframe/pkg/adapters/logger"
	"github.com/user/reframe/pkg/adapters/nullsink"
	"github.com/user/reframe/pkg/adapters/osfilesystem"
	"github.com/user/reframe/pkg/config"
	"github.com/user/reframe/pkg/layouts"
	"github.com/user/reframe/pkg/orchestrator"
	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
	"github.com/user/reframe/pkg/reframe"
	"github.com/user/reframe/pkg/stages/advise"
	"github.com/user/reframe/pkg/stages/load"
	"github.com/user/reframe/pkg/stages/pack"
	"github.com/user/reframe/pkg/summarizer"
)

var version = "dev"

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "reframe",
		Usage:   l10n.T("Fit images into social media layouts without cropping"),
		Version: version,
		Description: l10n.T("reframe fits each image into fixed social media placements and packages the JPEG results into one zip archive."),
		Commands: []*cli.Command{
			packCommand(),
			layoutsCommand(),
		},
	}
}

func packCommand() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     l10n.T("Render images into layouts and write a zip archive"),
		ArgsUsage: "<image-or-directory>...",
		Flags: []cli.Flag{
			// Output
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: l10n.T("Output"), Usage: l10n.T("Output zip file path (required unless set in config)")},
			&cli.StringFlag{Name: "summary", Category: l10n.T("Output"), Usage: l10n.T("Output execution summary to file (Markdown format)")},

			// Layout and fill
			&cli.StringSliceFlag{Name: "layout", Aliases: []string{"l"}, Category: l10n.T("Layout and Fill"), Usage: l10n.T("Layout label or short name, repeatable (default: all)")},
			&cli.StringFlag{Name: "fill", Aliases: []string{"f"}, Category: l10n.T("Layout and Fill"), Usage: l10n.T("Fill strategy (solid, corner, blur)")},
			&cli.StringFlag{Name: "color", Category: l10n.T("Layout and Fill"), Usage: l10n.T("Solid fill color (hex, e.g., #ffffff)")},
			&cli.Float64Flag{Name: "blur-radius", Category: l10n.T("Layout and Fill"), Usage: l10n.T("Blur fill sigma in pixels (default: 30)")},

			// Quality
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Category: l10n.T("Quality"), Usage: l10n.T("JPEG quality (1-100, overrides quality preset)")},
			&cli.StringFlag{Name: "quality-preset", Category: l10n.T("Quality"), Usage: l10n.T("Quality preset (low, medium, high)")},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Category: l10n.T("Quality"), Usage: l10n.T("Number of parallel renderings")},

			// Config
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: l10n.T("Config"), Usage: l10n.T("YAML config file")},

			// Advice
			&cli.BoolFlag{Name: "advice", Category: l10n.T("Advice"), Usage: l10n.T("Ask Gemini how to extend each background (needs GEMINI_API_KEY)")},
			&cli.StringFlag{Name: "model", Category: l10n.T("Advice"), Usage: l10n.T("Gemini model name")},
			&cli.IntFlag{Name: "max-retries", Category: l10n.T("Advice"), Usage: l10n.T("Retries after a rate-limited advice request")},

			// Debug
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Category: l10n.T("Debug"), Usage: l10n.T("Enable debug output")},
			&cli.StringFlag{Name: "debug-dir", Value: "./debug", Category: l10n.T("Debug"), Usage: l10n.T("Directory for debug output")},

			// Logging
			&cli.StringFlag{Name: "log-level", Value: "info", Category: l10n.T("Logging"), Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: l10n.T("Logging"), Usage: l10n.T("Suppress all log output")},
		},
		Action: runPack,
	}
}

func layoutsCommand() *cli.Command {
	return &cli.Command{
		Name:  "layouts",
		Usage: l10n.T("List the available layouts"),
		Action: func(c *cli.Context) error {
			for _, l := range layouts.All() {
				fmt.Fprintf(c.App.Writer, "%-10s %-20s %dx%d\n", layouts.ShortName(l.Label), l.Label, l.Width, l.Height)
			}
			return nil
		},
	}
}

// runPack executes the pack command.
func runPack(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New(l10n.T("At least one input image or directory is required"))
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	opts, err := buildOptions(c)
	if err != nil {
		return err
	}
	if opts.output == "" {
		return errors.New(l10n.T("Output path is required (--output or config output)"))
	}
	cfg := opts.config

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	// Create debug sink
	var sink ports.DebugSink
	if opts.debug {
		if err := fs.MkdirAll(opts.debugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(opts.debugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	loadStage := load.NewStage(fs, renderer, log)
	packStage := pack.NewStage(renderer, sink, log, cfg.Workers)

	var adviseStage pipeline.Stage[pipeline.AdviseInput, pipeline.AdviseResult]
	if cfg.Advice {
		if cfg.APIKey == "" {
			log.Warn(l10n.T("Advice disabled: GEMINI_API_KEY is not set"))
		} else {
			advisor, err := geminiadvisor.New(ctx, geminiadvisor.Config{
				APIKey:     cfg.APIKey,
				Model:      cfg.Model,
				MaxRetries: cfg.MaxRetries,
			}, log)
			if err != nil {
				log.Warn(l10n.F("Advice disabled: %s", err))
			} else {
				adviseStage = advise.NewStage(advisor, sink, log)
			}
		}
	}

	// Create orchestrator
	orch := orchestrator.New(loadStage, packStage, adviseStage, fs, log)

	output := opts.output
	orchConfig := cfg.ToOrchestratorConfig(c.Args().Slice(), output)

	log.Info(l10n.F("Packaging %d inputs into %s...", c.NArg(), output))

	// Run pipeline
	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", output))

	// Write summary
	if path := c.String("summary"); path != "" {
		summary := summarizer.FromRunResult(result).Build()
		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)
		if err := summarizer.NewWriter(formatter, fs).Write(path, summary); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}

	return nil
}

// options holds everything the pack command resolves from flags and the config file.
type options struct {
	config   reframe.Config
	output   string
	debug    bool
	debugDir string
}

// buildOptions merges defaults, the optional config file and CLI overrides.
func buildOptions(c *cli.Context) (options, error) {
	builder := reframe.NewConfigBuilder()
	opts := options{
		output:   c.String("output"),
		debugDir: c.String("debug-dir"),
	}

	// Apply config file
	if path := c.String("config"); path != "" {
		fileCfg, err := config.LoadFromFile(path)
		if err != nil {
			return options{}, fmt.Errorf("load config: %w", err)
		}
		if err := fileCfg.Apply(builder); err != nil {
			return options{}, fmt.Errorf("config %s: %w", path, err)
		}
		if opts.output == "" {
			opts.output = fileCfg.OutputPath
		}
		opts.debug = fileCfg.Debug
		if !c.IsSet("debug-dir") && fileCfg.DebugDir != "" {
			opts.debugDir = fileCfg.DebugDir
		}
	}

	// Apply overrides
	if c.IsSet("layout") {
		builder.WithLayouts(c.StringSlice("layout")...)
	}
	if c.IsSet("fill") {
		kind, err := pipeline.ParseFillKind(c.String("fill"))
		if err != nil {
			return options{}, err
		}
		builder.WithFill(kind)
	}
	if c.IsSet("color") {
		col, err := config.ParseColor(c.String("color"))
		if err != nil {
			return options{}, err
		}
		builder.WithColor(col)
	}
	if c.IsSet("blur-radius") {
		builder.WithBlurRadius(c.Float64("blur-radius"))
	}
	if c.IsSet("quality-preset") {
		builder.WithQualityPreset(reframe.QualityPreset(c.String("quality-preset")))
	}
	if c.IsSet("quality") {
		builder.WithQuality(c.Int("quality"))
	}
	if c.IsSet("workers") {
		builder.WithWorkers(c.Int("workers"))
	}
	if c.IsSet("advice") {
		builder.WithAdvice(c.Bool("advice"))
	}
	if c.IsSet("model") {
		builder.WithModel(c.String("model"))
	}
	if c.IsSet("max-retries") {
		builder.WithMaxRetries(c.Int("max-retries"))
	}
	if c.IsSet("debug") {
		opts.debug = c.Bool("debug")
	}

	builder.WithAPIKey(os.Getenv("GEMINI_API_KEY"))

	opts.config = builder.Build()
	return opts, nil
}
