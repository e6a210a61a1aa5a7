// Package nullsink provides a no-op artifact sink implementation.
package nullsink

import (
	"image"

	"github.com/user/shotprep/pkg/ports"
)

// Sink is a no-op implementation of ports.ArtifactSink.
// It discards all artifact output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveScaled does nothing.
func (s *Sink) SaveScaled(name string, img image.Image) error {
	return nil
}

// SaveMask does nothing.
func (s *Sink) SaveMask(mask *image.Alpha) error {
	return nil
}

// SaveMaskedScreen does nothing.
func (s *Sink) SaveMaskedScreen(name string, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.ArtifactSink
var _ ports.ArtifactSink = (*Sink)(nil)
