// Package shotprep provides a high-level API for preparing promotional
// screenshots.
package shotprep

import (
	"image/color"

	"github.com/user/shotprep/pkg/orchestrator"
	"github.com/user/shotprep/pkg/pipeline"
)

// CanvasPreset is a named store canvas size.
type CanvasPreset string

const (
	// Canvas67 is the 6.7" display canvas (iPhone 14 Plus, 13/12 Pro Max).
	Canvas67 CanvasPreset = "appstore-6.7"
)

// GetCanvasSize returns the canvas dimensions for the given preset.
func GetCanvasSize(preset CanvasPreset) pipeline.Dimension {
	switch preset {
	default: // appstore-6.7
		return pipeline.Dimension{Width: 1284, Height: 2778}
	}
}

// DevicePreset is a named bezel geometry.
type DevicePreset string

const (
	// DeviceIPhone16 is the iPhone 16 portrait bezel (1359x2736 frame).
	DeviceIPhone16 DevicePreset = "iphone-16"
)

// GetScreenRegion returns the screen geometry for the given device preset.
func GetScreenRegion(preset DevicePreset) pipeline.ScreenRegion {
	switch preset {
	default: // iphone-16
		return pipeline.ScreenRegion{
			Left:   90,
			Top:    90,
			Right:  1268,
			Bottom: 2645,
			Radius: 110,
		}
	}
}

// Config represents the configuration for a screenshot preparation run.
type Config struct {
	// Input/Output
	SourceDir string
	OutputDir string
	Manifest  []string

	// Store pipeline
	Canvas     pipeline.Dimension
	Background color.Color

	// Mockup pipeline
	FramePath string
	Region    pipeline.ScreenRegion

	// Batch
	Workers int
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a ConfigBuilder with the appstore-6.7 canvas and
// iphone-16 bezel defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			SourceDir:  ".",
			Canvas:     GetCanvasSize(Canvas67),
			Background: color.Black,
			Region:     GetScreenRegion(DeviceIPhone16),
			Workers:    1,
		},
	}
}

// WithSourceDir sets the directory containing the source screenshots.
func (b *ConfigBuilder) WithSourceDir(dir string) *ConfigBuilder {
	b.config.SourceDir = dir
	return b
}

// WithOutputDir sets the directory outputs are written to.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.config.OutputDir = dir
	return b
}

// WithManifest sets the list of screenshot file names to process.
func (b *ConfigBuilder) WithManifest(names []string) *ConfigBuilder {
	b.config.Manifest = names
	return b
}

// WithCanvas sets the store canvas dimensions.
func (b *ConfigBuilder) WithCanvas(width, height int) *ConfigBuilder {
	b.config.Canvas = pipeline.Dimension{Width: width, Height: height}
	return b
}

// WithCanvasWidth sets the store canvas width.
func (b *ConfigBuilder) WithCanvasWidth(width int) *ConfigBuilder {
	b.config.Canvas.Width = width
	return b
}

// WithCanvasHeight sets the store canvas height.
func (b *ConfigBuilder) WithCanvasHeight(height int) *ConfigBuilder {
	b.config.Canvas.Height = height
	return b
}

// WithBackground sets the letterbox background color.
func (b *ConfigBuilder) WithBackground(c color.Color) *ConfigBuilder {
	b.config.Background = c
	return b
}

// WithFramePath sets the device frame asset path.
func (b *ConfigBuilder) WithFramePath(path string) *ConfigBuilder {
	b.config.FramePath = path
	return b
}

// WithRegion sets the bezel screen region.
func (b *ConfigBuilder) WithRegion(region pipeline.ScreenRegion) *ConfigBuilder {
	b.config.Region = region
	return b
}

// WithDevicePreset sets the screen region from a device preset.
func (b *ConfigBuilder) WithDevicePreset(preset DevicePreset) *ConfigBuilder {
	b.config.Region = GetScreenRegion(preset)
	return b
}

// WithWorkers sets the number of concurrent batch workers.
func (b *ConfigBuilder) WithWorkers(workers int) *ConfigBuilder {
	b.config.Workers = workers
	return b
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.Canvas.Width < 1 {
		cfg.Canvas.Width = 1
	}
	if cfg.Canvas.Height < 1 {
		cfg.Canvas.Height = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Background == nil {
		cfg.Background = color.Black
	}

	return cfg
}

// ToOrchestratorConfig converts Config to an orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		SourceDir:  c.SourceDir,
		Manifest:   c.Manifest,
		OutputDir:  c.OutputDir,
		Canvas:     c.Canvas,
		Background: c.Background,
		FramePath:  c.FramePath,
		Region:     c.Region,
		Workers:    c.Workers,
	}
}
