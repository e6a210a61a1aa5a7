package mocks

import (
	"image"
	"sync"

	"github.com/user/shotprep/pkg/ports"
)

// ArtifactSink is a mock implementation of ports.ArtifactSink.
type ArtifactSink struct {
	mu sync.RWMutex

	enabled bool

	Scaled        map[string]image.Image
	Mask          *image.Alpha
	MaskedScreens map[string]image.Image
}

// NewArtifactSink creates a new mock ArtifactSink.
func NewArtifactSink(enabled bool) *ArtifactSink {
	return &ArtifactSink{
		enabled:       enabled,
		Scaled:        make(map[string]image.Image),
		MaskedScreens: make(map[string]image.Image),
	}
}

func (m *ArtifactSink) Enabled() bool {
	return m.enabled
}

func (m *ArtifactSink) SaveScaled(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Scaled[name] = img
	return nil
}

func (m *ArtifactSink) SaveMask(mask *image.Alpha) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mask = mask
	return nil
}

func (m *ArtifactSink) SaveMaskedScreen(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MaskedScreens[name] = img
	return nil
}

var _ ports.ArtifactSink = (*ArtifactSink)(nil)
