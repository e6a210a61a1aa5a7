// Package main provides the CLI entry point for shotprep.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/shotprep/pkg/adapters/filesink"
	"github.com/user/shotprep/pkg/adapters/ggrenderer"
	"github.com/user/shotprep/pkg/adapters/logger"
	"github.com/user/shotprep/pkg/adapters/nullsink"
	"github.com/user/shotprep/pkg/adapters/osfilesystem"
	"github.com/user/shotprep/pkg/config"
	"github.com/user/shotprep/pkg/orchestrator"
	"github.com/user/shotprep/pkg/ports"
	"github.com/user/shotprep/pkg/shotprep"
	"github.com/user/shotprep/pkg/stages/fit"
	"github.com/user/shotprep/pkg/stages/letterbox"
	"github.com/user/shotprep/pkg/stages/mask"
	"github.com/user/shotprep/pkg/stages/mockup"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Store   StoreCmd   `cmd:"" help:"Resize screenshots to the store canvas with letterbox padding."`
	Mockup  MockupCmd  `cmd:"" help:"Composite screenshots into a device bezel mockup."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// commonOptions are flags shared by both pipelines.
type commonOptions struct {
	SourceDir string `short:"s" help:"Directory containing source screenshots (default: current directory)."`
	OutputDir string `short:"o" help:"Output directory."`
	Config    string `short:"c" help:"YAML configuration file."`
	Workers   int    `help:"Number of parallel workers (default: 1)."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug artifact output."`
	DebugDir string `default:"./debug" help:"Directory for debug artifacts."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// StoreCmd defines the store subcommand.
type StoreCmd struct {
	Sources []string `arg:"" optional:"" help:"Screenshot file names (default: configured manifest)."`

	// Canvas options
	Width      *int    `short:"W" help:"Canvas width (default: 1284)."`
	Height     *int    `short:"H" help:"Canvas height (default: 2778)."`
	Background *string `help:"Letterbox background color (hex, e.g., #000000)."`

	commonOptions
}

// MockupCmd defines the mockup subcommand.
type MockupCmd struct {
	Sources []string `arg:"" optional:"" help:"Screenshot file names (default: configured manifest)."`

	// Bezel options
	Frame  string `short:"f" help:"Device frame image path (default: configured frame asset)."`
	Device string `help:"Device preset for the screen geometry (iphone-16)."`

	commonOptions
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("shotprep"),
		kong.Description("Prepare App Store screenshots and device mockups."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// runtimeParts bundles the adapters a pipeline run needs.
type runtimeParts struct {
	log  ports.Logger
	orch *orchestrator.Orchestrator
}

// setup creates the logger, adapters, stages and orchestrator.
func (opts *commonOptions) setup() (runtimeParts, error) {
	var log ports.Logger
	if opts.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(opts.LogLevel))
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.ArtifactSink
	if opts.Debug {
		if err := fs.MkdirAll(opts.DebugDir); err != nil {
			return runtimeParts{}, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(opts.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		fit.NewStage(renderer, log),
		letterbox.NewStage(renderer, log),
		mask.NewStage(renderer, log),
		mockup.NewStage(renderer, sink, log),
		renderer,
		fs,
		sink,
		log,
	)

	return runtimeParts{log: log, orch: orch}, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()

	return ctx, cancel
}

// loadFileConfig loads the YAML file if given, otherwise the defaults.
func (opts *commonOptions) loadFileConfig() (config.Config, error) {
	if opts.Config == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(opts.Config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Run executes the store command.
func (cmd *StoreCmd) Run() error {
	parts, err := cmd.setup()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(parts.log)
	defer cancel()

	orchCfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	_, err = parts.orch.RunStore(ctx, orchCfg)
	return err
}

// buildConfig resolves file config, presets and CLI overrides for the store
// pipeline.
func (cmd *StoreCmd) buildConfig() (orchestrator.Config, error) {
	fileCfg, err := cmd.loadFileConfig()
	if err != nil {
		return orchestrator.Config{}, err
	}

	builder := shotprep.NewConfigBuilder().
		WithSourceDir(fileCfg.SourceDir).
		WithManifest(fileCfg.Store.Screenshots).
		WithCanvasWidth(fileCfg.Store.CanvasWidth).
		WithCanvasHeight(fileCfg.Store.CanvasHeight).
		WithBackground(config.ParseColor(fileCfg.Store.Background)).
		WithWorkers(fileCfg.Workers)
	if fileCfg.OutputDir != "" {
		builder.WithOutputDir(fileCfg.OutputDir)
	}

	// Apply CLI overrides
	if cmd.SourceDir != "" {
		builder.WithSourceDir(cmd.SourceDir)
	}
	if cmd.OutputDir != "" {
		builder.WithOutputDir(cmd.OutputDir)
	}
	if len(cmd.Sources) > 0 {
		builder.WithManifest(cmd.Sources)
	}
	if cmd.Width != nil {
		builder.WithCanvasWidth(*cmd.Width)
	}
	if cmd.Height != nil {
		builder.WithCanvasHeight(*cmd.Height)
	}
	if cmd.Background != nil {
		builder.WithBackground(config.ParseColor(*cmd.Background))
	}
	if cmd.Workers > 0 {
		builder.WithWorkers(cmd.Workers)
	}

	cfg := builder.Build()
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(cfg.SourceDir, "appstore")
	}
	return cfg.ToOrchestratorConfig(), nil
}

// Run executes the mockup command.
func (cmd *MockupCmd) Run() error {
	parts, err := cmd.setup()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(parts.log)
	defer cancel()

	orchCfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	_, err = parts.orch.RunMockup(ctx, orchCfg)
	return err
}

// buildConfig resolves file config, presets and CLI overrides for the mockup
// pipeline.
func (cmd *MockupCmd) buildConfig() (orchestrator.Config, error) {
	fileCfg, err := cmd.loadFileConfig()
	if err != nil {
		return orchestrator.Config{}, err
	}

	builder := shotprep.NewConfigBuilder().
		WithSourceDir(fileCfg.SourceDir).
		WithManifest(fileCfg.Mockup.Screenshots).
		WithFramePath(fileCfg.Mockup.FramePath).
		WithRegion(fileCfg.ToMockupConfig().Region).
		WithWorkers(fileCfg.Workers)
	if fileCfg.OutputDir != "" {
		builder.WithOutputDir(fileCfg.OutputDir)
	}

	// Apply CLI overrides
	if cmd.SourceDir != "" {
		builder.WithSourceDir(cmd.SourceDir)
	}
	if cmd.OutputDir != "" {
		builder.WithOutputDir(cmd.OutputDir)
	}
	if len(cmd.Sources) > 0 {
		builder.WithManifest(cmd.Sources)
	}
	if cmd.Frame != "" {
		builder.WithFramePath(cmd.Frame)
	}
	if cmd.Device != "" {
		builder.WithDevicePreset(shotprep.DevicePreset(cmd.Device))
	}
	if cmd.Workers > 0 {
		builder.WithWorkers(cmd.Workers)
	}

	cfg := builder.Build()
	if cfg.OutputDir == "" {
		// Mockups are written next to the sources.
		cfg.OutputDir = cfg.SourceDir
	}
	if cfg.FramePath != "" && !filepath.IsAbs(cfg.FramePath) {
		cfg.FramePath = filepath.Join(cfg.SourceDir, cfg.FramePath)
	}
	return cfg.ToOrchestratorConfig(), nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("shotprep version %s", version))
	return nil
}
