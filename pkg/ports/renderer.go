package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the raster operations the pipelines need.
type Renderer interface {
	// CreateCanvas creates a drawing canvas filled with a solid background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// CreateTransparentCanvas creates a fully transparent drawing canvas.
	CreateTransparentCanvas(width, height int) Canvas

	// DecodeImage decodes raw bytes into an image.Image, detecting the format.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality is only meaningful for JPEG output.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resamples an image to exactly width x height.
	// It does not preserve aspect ratio; callers decide the target dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// RoundedMask rasterizes a width x height alpha mask shaped as a
	// rectangle with corners rounded by radius. Pixels inside the rounded
	// rectangle are opaque, pixels outside are transparent.
	RoundedMask(width, height, radius int) *image.Alpha
}

// Canvas provides compositing operations over a backing raster.
type Canvas interface {
	// DrawImage composites an image over the canvas at the given position.
	DrawImage(img image.Image, x, y int)

	// ToImage returns the canvas contents as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)
