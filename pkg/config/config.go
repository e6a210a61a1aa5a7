// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"github.com/user/shotprep/pkg/orchestrator"
	"github.com/user/shotprep/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for shotprep.
type Config struct {
	// Input/Output
	SourceDir string `yaml:"source_dir"`
	OutputDir string `yaml:"output_dir"`

	// Store pipeline
	Store StoreConfig `yaml:"store"`

	// Mockup pipeline
	Mockup MockupConfig `yaml:"mockup"`

	// Batch
	Workers int `yaml:"workers"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// StoreConfig holds the store-screenshot pipeline settings.
type StoreConfig struct {
	CanvasWidth  int      `yaml:"canvas_width"`
	CanvasHeight int      `yaml:"canvas_height"`
	Background   string   `yaml:"background"`
	Screenshots  []string `yaml:"screenshots"`
}

// MockupConfig holds the device-mockup pipeline settings.
type MockupConfig struct {
	FramePath   string       `yaml:"frame"`
	Region      RegionConfig `yaml:"region"`
	Screenshots []string     `yaml:"screenshots"`
}

// RegionConfig describes the bezel's screen rectangle and corner radius.
type RegionConfig struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Radius int `yaml:"radius"`
}

// Defaults returns a Config with default values: the 6.7" store canvas and
// the iPhone 16 bezel geometry.
func Defaults() Config {
	return Config{
		SourceDir: ".",
		OutputDir: "",

		Store: StoreConfig{
			CanvasWidth:  1284,
			CanvasHeight: 2778,
			Background:   "#000000",
			Screenshots: []string{
				"PreWorkout.PNG",
				"Workout.PNG",
				"Activity.PNG",
				"Bubble.PNG",
			},
		},

		Mockup: MockupConfig{
			FramePath: "iPhone 16 - Black - Portrait.png",
			Region: RegionConfig{
				Left:   90,
				Top:    90,
				Right:  1268,
				Bottom: 2645,
				Radius: 110,
			},
			Screenshots: []string{
				"PreWorkout.PNG",
				"Workout.PNG",
				"Activity.PNG",
				"Bubble.PNG",
				"Splash.PNG",
			},
		},

		Workers: 1,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file, layered over Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToStoreConfig converts Config to an orchestrator.Config for the store
// pipeline.
func (c Config) ToStoreConfig() orchestrator.Config {
	return orchestrator.Config{
		SourceDir: c.SourceDir,
		Manifest:  c.Store.Screenshots,
		OutputDir: c.OutputDir,
		Canvas: pipeline.Dimension{
			Width:  c.Store.CanvasWidth,
			Height: c.Store.CanvasHeight,
		},
		Background: ParseColor(c.Store.Background),
		Workers:    c.Workers,
	}
}

// ToMockupConfig converts Config to an orchestrator.Config for the mockup
// pipeline.
func (c Config) ToMockupConfig() orchestrator.Config {
	return orchestrator.Config{
		SourceDir: c.SourceDir,
		Manifest:  c.Mockup.Screenshots,
		OutputDir: c.OutputDir,
		FramePath: c.Mockup.FramePath,
		Region: pipeline.ScreenRegion{
			Left:   c.Mockup.Region.Left,
			Top:    c.Mockup.Region.Top,
			Right:  c.Mockup.Region.Right,
			Bottom: c.Mockup.Region.Bottom,
			Radius: c.Mockup.Region.Radius,
		},
		Workers: c.Workers,
	}
}
