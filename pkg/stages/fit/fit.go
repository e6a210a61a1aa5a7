// Package fit implements the aspect-preserving scale-to-fit stage.
package fit

import (
	"context"

	"github.com/user/shotprep/pkg/pipeline"
	"github.com/user/shotprep/pkg/ports"
)

// Stage scales a screenshot to fit inside a bounding box without distortion.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new fit stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("fit"),
	}
}

// Execute scales the input image so it fits entirely inside the box,
// maximized, with the aspect ratio preserved.
func (s *Stage) Execute(ctx context.Context, input pipeline.FitInput) (pipeline.FitResult, error) {
	bounds := input.Image.Bounds()
	width, height, scale := FitDimensions(bounds.Dx(), bounds.Dy(), input.Box.Width, input.Box.Height)

	s.logger.Debug("Scaling %dx%d to %dx%d (scale %.4f)", bounds.Dx(), bounds.Dy(), width, height, scale)

	resized := s.renderer.ResizeImage(input.Image, width, height)
	return pipeline.FitResult{
		Image: resized,
		Size:  pipeline.Dimension{Width: width, Height: height},
		Scale: scale,
	}, nil
}

// FitDimensions computes the scaled dimensions for fitting a srcW x srcH
// image inside a boxW x boxH bounding box, preserving aspect ratio and
// maximizing size. This is exposed as a standalone function for testing and
// reuse.
//
// The scale is computed width-first: s = boxW/srcW. If the resulting height
// overflows the box, the height ratio is used instead and the height snaps
// to boxH. The free axis is truncated to an integer, not rounded, so the
// output matches the reference renditions pixel for pixel.
func FitDimensions(srcW, srcH, boxW, boxH int) (width, height int, scale float64) {
	scale = float64(boxW) / float64(srcW)
	width = boxW
	height = int(float64(srcH) * scale)

	if height > boxH {
		scale = float64(boxH) / float64(srcH)
		width = int(float64(srcW) * scale)
		height = boxH
	}

	return width, height, scale
}
