// Package orchestrator coordinates the screenshot pipelines over a manifest.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/user/shotprep/pkg/pipeline"
	"github.com/user/shotprep/pkg/ports"
)

// ErrFrameNotFound is returned by RunMockup when the device frame asset is
// missing. It is fatal for the whole run, unlike a missing manifest entry.
var ErrFrameNotFound = errors.New("frame asset not found")

// Config contains all configuration for a batch run.
type Config struct {
	// Input
	SourceDir string
	Manifest  []string

	// Output
	OutputDir string

	// Store pipeline
	Canvas     pipeline.Dimension
	Background color.Color

	// Mockup pipeline
	FramePath string
	Region    pipeline.ScreenRegion

	// Batch
	Workers int
}

// DefaultConfig returns a Config with the standard store canvas and bezel
// geometry.
func DefaultConfig() Config {
	return Config{
		Canvas:     pipeline.Dimension{Width: 1284, Height: 2778},
		Background: color.Black,
		Region: pipeline.ScreenRegion{
			Left:   90,
			Top:    90,
			Right:  1268,
			Bottom: 2645,
			Radius: 110,
		},
		Workers: 1,
	}
}

// RunResult summarizes a batch run.
type RunResult struct {
	Processed int
	Skipped   int
	Outputs   []string
}

// Orchestrator drives the manifest through the configured pipeline.
type Orchestrator struct {
	fitStage       pipeline.Stage[pipeline.FitInput, pipeline.FitResult]
	letterboxStage pipeline.Stage[pipeline.LetterboxInput, pipeline.LetterboxResult]
	maskStage      pipeline.Stage[pipeline.MaskInput, pipeline.MaskResult]
	mockupStage    pipeline.Stage[pipeline.MockupInput, pipeline.MockupResult]
	renderer       ports.Renderer
	fs             ports.FileSystem
	sink           ports.ArtifactSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	fitStage pipeline.Stage[pipeline.FitInput, pipeline.FitResult],
	letterboxStage pipeline.Stage[pipeline.LetterboxInput, pipeline.LetterboxResult],
	maskStage pipeline.Stage[pipeline.MaskInput, pipeline.MaskResult],
	mockupStage pipeline.Stage[pipeline.MockupInput, pipeline.MockupResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.ArtifactSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		fitStage:       fitStage,
		letterboxStage: letterboxStage,
		maskStage:      maskStage,
		mockupStage:    mockupStage,
		renderer:       renderer,
		fs:             fs,
		sink:           sink,
		logger:         logger,
	}
}

// RunStore scales each manifest entry into the store canvas and writes the
// letterboxed result. Missing sources are skipped; decode or write failures
// are reported per entry and do not block the rest of the batch.
func (o *Orchestrator) RunStore(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Preparing store screenshots (%dx%d canvas)", config.Canvas.Width, config.Canvas.Height)

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return RunResult{}, fmt.Errorf("create output directory: %w", err)
	}

	return o.runBatch(ctx, config, "-appstore", func(ctx context.Context, name string, src image.Image) (image.Image, error) {
		fitted, err := o.fitStage.Execute(ctx, pipeline.FitInput{
			Image: src,
			Box:   config.Canvas,
		})
		if err != nil {
			return nil, fmt.Errorf("fit stage: %w", err)
		}
		if o.sink.Enabled() {
			o.sink.SaveScaled(name, fitted.Image)
		}

		boxed, err := o.letterboxStage.Execute(ctx, pipeline.LetterboxInput{
			Image:      fitted.Image,
			Canvas:     config.Canvas,
			Background: config.Background,
		})
		if err != nil {
			return nil, fmt.Errorf("letterbox stage: %w", err)
		}
		return boxed.Image, nil
	})
}

// RunMockup composites each manifest entry into the device frame. The frame
// asset is a precondition for the whole run: if it is missing the run aborts
// before any entry is processed.
func (o *Orchestrator) RunMockup(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Creating device mockups")

	exists, err := o.fs.Exists(config.FramePath)
	if err != nil {
		return RunResult{}, fmt.Errorf("check frame asset: %w", err)
	}
	if !exists {
		o.logger.Error("Frame asset not found at %s", config.FramePath)
		return RunResult{}, fmt.Errorf("%w: %s", ErrFrameNotFound, config.FramePath)
	}

	frameData, err := o.fs.ReadFile(config.FramePath)
	if err != nil {
		return RunResult{}, fmt.Errorf("read frame asset: %w", err)
	}
	frame, err := o.renderer.DecodeImage(frameData)
	if err != nil {
		return RunResult{}, fmt.Errorf("decode frame asset: %w", err)
	}

	// The screen region is fixed for the whole run, so the mask is
	// rasterized once and shared across entries.
	masked, err := o.maskStage.Execute(ctx, pipeline.MaskInput{
		Size:   config.Region.Size(),
		Radius: config.Region.Radius,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("mask stage: %w", err)
	}
	if o.sink.Enabled() {
		o.sink.SaveMask(masked.Mask)
	}

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return RunResult{}, fmt.Errorf("create output directory: %w", err)
	}

	return o.runBatch(ctx, config, "-mockup", func(ctx context.Context, name string, src image.Image) (image.Image, error) {
		result, err := o.mockupStage.Execute(ctx, pipeline.MockupInput{
			Name:       name,
			Screenshot: src,
			Frame:      frame,
			Region:     config.Region,
			Mask:       masked.Mask,
		})
		if err != nil {
			return nil, fmt.Errorf("mockup stage: %w", err)
		}
		return result.Image, nil
	})
}

// processFunc turns one decoded screenshot into its output raster.
type processFunc func(ctx context.Context, name string, src image.Image) (image.Image, error)

// entryOutcome holds the per-entry result for ordered collection.
type entryOutcome struct {
	index   int
	name    string
	output  string
	skipped bool
	err     error
}

// runBatch processes the manifest entries with a worker pool. Entries are
// independent, so they can run concurrently; outcomes are collected and
// reported in manifest order.
func (o *Orchestrator) runBatch(ctx context.Context, config Config, suffix string, process processFunc) (RunResult, error) {
	numEntries := len(config.Manifest)
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > numEntries && numEntries > 0 {
		workers = numEntries
	}

	o.logger.Debug("Processing %d screenshots with %d workers", numEntries, workers)

	jobs := make(chan int, numEntries)
	outcomes := make(chan entryOutcome, numEntries)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				outcomes <- o.processEntry(ctx, config, idx, suffix, process)
			}
		}()
	}

	for i := 0; i < numEntries; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	collected := make([]entryOutcome, 0, numEntries)
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}

	// Report in manifest order regardless of completion order.
	byIndex := make([]entryOutcome, numEntries)
	for _, outcome := range collected {
		byIndex[outcome.index] = outcome
	}

	result := RunResult{}
	failed := 0
	for _, outcome := range byIndex {
		switch {
		case outcome.err != nil:
			failed++
			o.logger.Error("Failed to process %s: %s", outcome.name, outcome.err)
		case outcome.skipped:
			result.Skipped++
			o.logger.Warn("Skipping %s - not found", outcome.name)
		default:
			result.Processed++
			result.Outputs = append(result.Outputs, outcome.output)
		}
	}

	o.logger.Info("Done! %d processed, %d skipped", result.Processed, result.Skipped)

	if failed > 0 {
		return result, fmt.Errorf("%d of %d screenshots failed", failed, numEntries)
	}
	return result, nil
}

// processEntry runs one manifest entry through load, transform, and save.
func (o *Orchestrator) processEntry(ctx context.Context, config Config, idx int, suffix string, process processFunc) entryOutcome {
	name := config.Manifest[idx]
	outcome := entryOutcome{index: idx, name: name}

	srcPath := filepath.Join(config.SourceDir, name)
	exists, err := o.fs.Exists(srcPath)
	if err != nil {
		outcome.err = fmt.Errorf("check %s: %w", name, err)
		return outcome
	}
	if !exists {
		outcome.skipped = true
		return outcome
	}

	o.logger.Debug("Processing %s", name)

	data, err := o.fs.ReadFile(srcPath)
	if err != nil {
		outcome.err = fmt.Errorf("read %s: %w", name, err)
		return outcome
	}
	src, err := o.renderer.DecodeImage(data)
	if err != nil {
		outcome.err = fmt.Errorf("decode %s: %w", name, err)
		return outcome
	}

	out, err := process(ctx, name, src)
	if err != nil {
		outcome.err = err
		return outcome
	}

	encoded, err := o.renderer.EncodeImage(out, ports.FormatPNG, 0)
	if err != nil {
		outcome.err = fmt.Errorf("encode %s: %w", name, err)
		return outcome
	}

	outPath := filepath.Join(config.OutputDir, OutputName(name, suffix))
	if err := o.fs.WriteFile(outPath, encoded); err != nil {
		outcome.err = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}

	bounds := out.Bounds()
	o.logger.Info("Saved %s (%dx%d)", outPath, bounds.Dx(), bounds.Dy())
	outcome.output = outPath
	return outcome
}

// OutputName derives the output file name for a manifest entry:
// the source base name, a pipeline suffix, and a .png extension.
func OutputName(name, suffix string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + suffix + ".png"
}
