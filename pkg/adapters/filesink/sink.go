// Package filesink provides a file-based artifact sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/shotprep/pkg/ports"
)

// Sink saves intermediate rasters to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveScaled saves the aspect-fit scaled screenshot for a manifest entry.
func (s *Sink) SaveScaled(name string, img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, "scaled", baseName(name)+".png"), img)
}

// SaveMask saves the rounded-corner alpha mask.
func (s *Sink) SaveMask(mask *image.Alpha) error {
	return s.savePNG(filepath.Join(s.baseDir, "mask.png"), mask)
}

// SaveMaskedScreen saves the stretched, corner-masked screenshot for an entry.
func (s *Sink) SaveMaskedScreen(name string, img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, "masked", baseName(name)+".png"), img)
}

func (s *Sink) savePNG(path string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return s.fs.WriteFile(path, data)
}

func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Ensure Sink implements ports.ArtifactSink
var _ ports.ArtifactSink = (*Sink)(nil)
