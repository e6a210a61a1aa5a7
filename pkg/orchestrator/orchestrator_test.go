package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/shotprep/pkg/adapters/ggrenderer"
	"github.com/user/shotprep/pkg/adapters/logger"
	"github.com/user/shotprep/pkg/mocks"
	"github.com/user/shotprep/pkg/pipeline"
	"github.com/user/shotprep/pkg/stages/fit"
	"github.com/user/shotprep/pkg/stages/letterbox"
	"github.com/user/shotprep/pkg/stages/mask"
	"github.com/user/shotprep/pkg/stages/mockup"
)

func newOrchestrator(fs *mocks.FileSystem) *Orchestrator {
	renderer := ggrenderer.New()
	log := logger.NewNoop()
	sink := mocks.NewArtifactSink(false)
	return New(
		fit.NewStage(renderer, log),
		letterbox.NewStage(renderer, log),
		mask.NewStage(renderer, log),
		mockup.NewStage(renderer, sink, log),
		renderer,
		fs,
		sink,
		log,
	)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return encodePNG(t, img)
}

// framePNG builds a 100x120 bezel with a transparent screen hole from
// (10, 10) to (90, 110).
func framePNG(t *testing.T) []byte {
	t.Helper()
	frame := image.NewNRGBA(image.Rect(0, 0, 100, 120))
	hole := image.Rect(10, 10, 90, 110)
	for y := 0; y < 120; y++ {
		for x := 0; x < 100; x++ {
			if image.Pt(x, y).In(hole) {
				continue
			}
			frame.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	return encodePNG(t, frame)
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return img
}

func storeConfig(manifest ...string) Config {
	config := DefaultConfig()
	config.SourceDir = "shots"
	config.OutputDir = "out"
	config.Manifest = manifest
	config.Canvas = pipeline.Dimension{Width: 100, Height: 200}
	return config
}

func TestOrchestrator_RunStore(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile(filepath.Join("shots", "Workout.PNG"), solidPNG(t, 10, 20, color.NRGBA{R: 255, A: 255}))
	fs.SetFile(filepath.Join("shots", "Activity.PNG"), solidPNG(t, 30, 20, color.NRGBA{G: 255, A: 255}))

	config := storeConfig("Workout.PNG", "Activity.PNG")
	config.Workers = 2

	result, err := newOrchestrator(fs).RunStore(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Processed != 2 || result.Skipped != 0 {
		t.Errorf("expected 2 processed, 0 skipped, got %d and %d", result.Processed, result.Skipped)
	}

	// Outputs come back in manifest order.
	expected := []string{
		filepath.Join("out", "Workout-appstore.png"),
		filepath.Join("out", "Activity-appstore.png"),
	}
	if len(result.Outputs) != len(expected) {
		t.Fatalf("expected %d outputs, got %v", len(expected), result.Outputs)
	}
	for i, path := range expected {
		if result.Outputs[i] != path {
			t.Errorf("output %d: expected %s, got %s", i, path, result.Outputs[i])
		}
	}

	// The portrait source fills the full canvas; the landscape one gets
	// letterbox bars above and below.
	data, ok := fs.GetFile(expected[0])
	if !ok {
		t.Fatal("store output for Workout.PNG was not written")
	}
	out := decodePNG(t, data)
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 200 {
		t.Fatalf("expected 100x200 output, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if got := color.RGBAModel.Convert(out.At(50, 100)).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("center: expected red, got %v", got)
	}

	data, ok = fs.GetFile(expected[1])
	if !ok {
		t.Fatal("store output for Activity.PNG was not written")
	}
	out = decodePNG(t, data)
	if got := color.RGBAModel.Convert(out.At(0, 0)).(color.RGBA); got != (color.RGBA{A: 255}) {
		t.Errorf("letterbox bar: expected black, got %v", got)
	}
	if got := color.RGBAModel.Convert(out.At(50, 100)).(color.RGBA); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("center: expected green, got %v", got)
	}
}

func TestOrchestrator_RunStore_SkipsMissingSources(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile(filepath.Join("shots", "Workout.PNG"), solidPNG(t, 10, 20, color.NRGBA{R: 255, A: 255}))

	result, err := newOrchestrator(fs).RunStore(context.Background(), storeConfig("PreWorkout.PNG", "Workout.PNG"))
	if err != nil {
		t.Fatalf("missing source should not fail the run: %v", err)
	}
	if result.Processed != 1 || result.Skipped != 1 {
		t.Errorf("expected 1 processed, 1 skipped, got %d and %d", result.Processed, result.Skipped)
	}
	if _, ok := fs.GetFile(filepath.Join("out", "PreWorkout-appstore.png")); ok {
		t.Error("skipped entry should not produce an output")
	}
}

func TestOrchestrator_RunStore_DecodeFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile(filepath.Join("shots", "Bubble.PNG"), []byte("not a png"))
	fs.SetFile(filepath.Join("shots", "Workout.PNG"), solidPNG(t, 10, 20, color.NRGBA{R: 255, A: 255}))

	result, err := newOrchestrator(fs).RunStore(context.Background(), storeConfig("Bubble.PNG", "Workout.PNG"))
	if err == nil {
		t.Fatal("expected error for undecodable source")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("expected one failed entry out of two, got: %v", err)
	}

	// The failure is isolated; the other entry still completes.
	if result.Processed != 1 {
		t.Errorf("expected 1 processed, got %d", result.Processed)
	}
	if _, ok := fs.GetFile(filepath.Join("out", "Workout-appstore.png")); !ok {
		t.Error("healthy entry should still be written")
	}
}

func mockupConfig(manifest ...string) Config {
	config := DefaultConfig()
	config.SourceDir = "shots"
	config.OutputDir = "out"
	config.Manifest = manifest
	config.FramePath = filepath.Join("frames", "bezel.png")
	config.Region = pipeline.ScreenRegion{Left: 10, Top: 10, Right: 90, Bottom: 110, Radius: 0}
	return config
}

func TestOrchestrator_RunMockup(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile(filepath.Join("frames", "bezel.png"), framePNG(t))
	fs.SetFile(filepath.Join("shots", "Splash.PNG"), solidPNG(t, 40, 50, color.NRGBA{G: 255, A: 255}))

	result, err := newOrchestrator(fs).RunMockup(context.Background(), mockupConfig("Splash.PNG"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Processed != 1 {
		t.Fatalf("expected 1 processed, got %d", result.Processed)
	}

	data, ok := fs.GetFile(filepath.Join("out", "Splash-mockup.png"))
	if !ok {
		t.Fatal("mockup output was not written")
	}
	out := decodePNG(t, data)
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 120 {
		t.Fatalf("expected frame-sized 100x120 output, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if got := color.RGBAModel.Convert(out.At(50, 60)).(color.RGBA); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("screen center: expected green, got %v", got)
	}
	if got := color.RGBAModel.Convert(out.At(5, 5)).(color.RGBA); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("bezel: expected blue, got %v", got)
	}
}

func TestOrchestrator_RunMockup_MissingFrameAborts(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile(filepath.Join("shots", "Splash.PNG"), solidPNG(t, 40, 50, color.NRGBA{G: 255, A: 255}))

	_, err := newOrchestrator(fs).RunMockup(context.Background(), mockupConfig("Splash.PNG"))
	if !errors.Is(err, ErrFrameNotFound) {
		t.Fatalf("expected ErrFrameNotFound, got %v", err)
	}
	if len(fs.GetAllFiles()) != 1 {
		t.Error("no outputs should be written when the frame is missing")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		suffix   string
		expected string
	}{
		{"Workout.PNG", "-appstore", "Workout-appstore.png"},
		{"Splash.png", "-mockup", "Splash-mockup.png"},
		{"photo.jpeg", "-appstore", "photo-appstore.png"},
		{"noext", "-mockup", "noext-mockup.png"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.name, tt.suffix); got != tt.expected {
			t.Errorf("OutputName(%q, %q): expected %q, got %q", tt.name, tt.suffix, got, tt.expected)
		}
	}
}
