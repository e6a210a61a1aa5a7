// Package mask implements the rounded-corner mask stage.
package mask

import (
	"context"

	"github.com/user/shotprep/pkg/pipeline"
	"github.com/user/shotprep/pkg/ports"
)

// Stage produces the alpha mask that rounds a screenshot's corners.
//
// The mask is deterministic for a given size and radius. Radius zero (or
// negative) yields a fully opaque mask; a radius above half the short side
// is clamped to it, degenerating the shape into a stadium.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new mask stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("mask"),
	}
}

// Execute rasterizes the rounded-rectangle mask.
func (s *Stage) Execute(ctx context.Context, input pipeline.MaskInput) (pipeline.MaskResult, error) {
	s.logger.Debug("Generated %dx%d corner mask (radius %d)", input.Size.Width, input.Size.Height, input.Radius)
	return pipeline.MaskResult{
		Mask: s.renderer.RoundedMask(input.Size.Width, input.Size.Height, input.Radius),
	}, nil
}
