package ports

import (
	"image"
)

// ArtifactSink abstracts debug output for intermediate rasters.
// It allows saving the in-between stages of a composition for inspection.
type ArtifactSink interface {
	// Enabled returns true if artifact output is enabled.
	Enabled() bool

	// SaveScaled saves the aspect-fit scaled screenshot for a manifest entry.
	SaveScaled(name string, img image.Image) error

	// SaveMask saves the rounded-corner alpha mask.
	SaveMask(mask *image.Alpha) error

	// SaveMaskedScreen saves the stretched, corner-masked screenshot for a
	// manifest entry.
	SaveMaskedScreen(name string, img image.Image) error
}
