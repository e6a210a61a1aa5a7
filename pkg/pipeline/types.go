package pipeline

import (
	"image"
	"image/color"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// ScreenRegion is the rectangular screen area inside a device bezel image,
// expressed in the bezel's coordinate space, plus the corner radius of the
// display cutout.
type ScreenRegion struct {
	Left   int
	Top    int
	Right  int
	Bottom int
	Radius int
}

// Width returns the horizontal extent of the region.
func (r ScreenRegion) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the region.
func (r ScreenRegion) Height() int {
	return r.Bottom - r.Top
}

// Size returns the region extent as a Dimension.
func (r ScreenRegion) Size() Dimension {
	return Dimension{Width: r.Width(), Height: r.Height()}
}

// =============================================================================
// Fit Stage Types
// =============================================================================

// FitInput contains parameters for aspect-preserving scaling.
type FitInput struct {
	// Image is the source screenshot.
	Image image.Image

	// Box is the bounding box the scaled image must fit inside.
	Box Dimension
}

// FitResult contains the scaled screenshot.
type FitResult struct {
	// Image is the resampled screenshot. It fits entirely inside the
	// requested box and matches it exactly on at least one axis.
	Image image.Image

	// Size holds the scaled dimensions.
	Size Dimension

	// Scale is the uniform scale factor that was applied.
	Scale float64
}

// =============================================================================
// Letterbox Stage Types
// =============================================================================

// LetterboxInput contains parameters for canvas padding.
type LetterboxInput struct {
	// Image is the already-scaled screenshot. It must not exceed the canvas
	// on either axis.
	Image image.Image

	// Canvas is the exact output dimensions.
	Canvas Dimension

	// Background is the solid color used for the padding bars.
	Background color.Color
}

// LetterboxResult contains the padded canvas.
type LetterboxResult struct {
	// Image has exactly the requested canvas dimensions.
	Image image.Image
}

// =============================================================================
// Mask Stage Types
// =============================================================================

// MaskInput contains parameters for rounded-corner mask generation.
type MaskInput struct {
	Size   Dimension
	Radius int
}

// MaskResult contains the generated alpha mask.
type MaskResult struct {
	Mask *image.Alpha
}

// =============================================================================
// Mockup Stage Types
// =============================================================================

// MockupInput contains parameters for bezel composition.
type MockupInput struct {
	// Name is the manifest entry name, used for artifact output.
	Name string

	// Screenshot is the source screenshot. It is stretched to the screen
	// region without preserving aspect ratio.
	Screenshot image.Image

	// Frame is the device bezel. Its screen-region pixels must be
	// transparent so the screenshot shows through.
	Frame image.Image

	// Region is the screen area inside the frame.
	Region ScreenRegion

	// Mask is the rounded-corner mask, sized exactly to the region.
	Mask *image.Alpha
}

// MockupResult contains the composed mockup.
type MockupResult struct {
	// Image has exactly the frame's dimensions.
	Image image.Image
}
