// Package letterbox implements the canvas padding stage.
package letterbox

import (
	"context"
	"fmt"

	"github.com/user/shotprep/pkg/pipeline"
	"github.com/user/shotprep/pkg/ports"
)

// Stage centers a scaled screenshot on a solid-color canvas of exact
// dimensions, leaving background bars on the shorter axis.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new letterbox stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("letterbox"),
	}
}

// Execute pastes the scaled image centered on the background canvas.
// The result always has exactly the requested canvas dimensions.
func (s *Stage) Execute(ctx context.Context, input pipeline.LetterboxInput) (pipeline.LetterboxResult, error) {
	bounds := input.Image.Bounds()
	if bounds.Dx() > input.Canvas.Width || bounds.Dy() > input.Canvas.Height {
		return pipeline.LetterboxResult{}, fmt.Errorf(
			"scaled image %dx%d exceeds %dx%d canvas",
			bounds.Dx(), bounds.Dy(), input.Canvas.Width, input.Canvas.Height,
		)
	}

	// Centering offsets use floor division, matching the reference output.
	x := (input.Canvas.Width - bounds.Dx()) / 2
	y := (input.Canvas.Height - bounds.Dy()) / 2

	s.logger.Debug("Centering %dx%d at (%d, %d)", bounds.Dx(), bounds.Dy(), x, y)

	canvas := s.renderer.CreateCanvas(input.Canvas.Width, input.Canvas.Height, input.Background)
	canvas.DrawImage(input.Image, x, y)

	return pipeline.LetterboxResult{Image: canvas.ToImage()}, nil
}
