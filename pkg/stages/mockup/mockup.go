// Package mockup implements the device-bezel composition stage.
package mockup

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/user/shotprep/pkg/pipeline"
	"github.com/user/shotprep/pkg/ports"
)

// Stage composes a screenshot into a device bezel.
//
// The screenshot is stretched to the exact screen region (not aspect
// preserving), its corners are rounded by the mask, and the frame is
// layered on top so its opaque bezel occludes the screenshot's edges.
type Stage struct {
	renderer ports.Renderer
	sink     ports.ArtifactSink
	logger   ports.Logger
}

// NewStage creates a new mockup stage.
func NewStage(renderer ports.Renderer, sink ports.ArtifactSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("mockup"),
	}
}

// Execute builds the mockup. The result has exactly the frame's dimensions.
func (s *Stage) Execute(ctx context.Context, input pipeline.MockupInput) (pipeline.MockupResult, error) {
	region := input.Region
	if region.Width() <= 0 || region.Height() <= 0 {
		return pipeline.MockupResult{}, fmt.Errorf("screen region %dx%d is empty", region.Width(), region.Height())
	}
	if input.Mask == nil {
		return pipeline.MockupResult{}, fmt.Errorf("mockup requires a corner mask")
	}
	maskBounds := input.Mask.Bounds()
	if maskBounds.Dx() != region.Width() || maskBounds.Dy() != region.Height() {
		return pipeline.MockupResult{}, fmt.Errorf(
			"mask %dx%d does not match %dx%d screen region",
			maskBounds.Dx(), maskBounds.Dy(), region.Width(), region.Height(),
		)
	}

	s.logger.Debug("Screen region: (%d, %d) to (%d, %d)", region.Left, region.Top, region.Right, region.Bottom)

	// Stretch to the exact screen rectangle. Distortion from an aspect
	// mismatch is accepted here, unlike the store pipeline's fit scaling.
	stretched := s.renderer.ResizeImage(input.Screenshot, region.Width(), region.Height())

	masked := applyAlphaMask(stretched, input.Mask)
	if s.sink.Enabled() {
		s.sink.SaveMaskedScreen(input.Name, masked)
	}

	frameBounds := input.Frame.Bounds()
	canvas := s.renderer.CreateTransparentCanvas(frameBounds.Dx(), frameBounds.Dy())
	canvas.DrawImage(masked, region.Left, region.Top)

	// The frame goes on top so its opaque bezel covers the screenshot edges
	// and the transparent screen hole lets the screenshot show through.
	canvas.DrawImage(input.Frame, 0, 0)

	return pipeline.MockupResult{Image: canvas.ToImage()}, nil
}

// applyAlphaMask imposes the mask as the image's alpha channel, discarding
// any alpha the image already had.
func applyAlphaMask(img image.Image, mask *image.Alpha) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	maskMin := mask.Bounds().Min
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			out.Pix[out.PixOffset(x, y)+3] = mask.AlphaAt(maskMin.X+x, maskMin.Y+y).A
		}
	}
	return out
}
