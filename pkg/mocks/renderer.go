// Package mocks provides mock implementations for testing.
package mocks

import (
	"image"
	"image/color"

	"github.com/user/shotprep/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc            func(width, height int, bg color.Color) ports.Canvas
	CreateTransparentCanvasFunc func(width, height int) ports.Canvas
	DecodeImageFunc             func(data []byte) (image.Image, error)
	EncodeImageFunc             func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc             func(img image.Image, width, height int) image.Image
	RoundedMaskFunc             func(width, height, radius int) *image.Alpha

	// Recorded calls for verification
	ResizeCalls []ResizeCall
}

// ResizeCall records a call to ResizeImage.
type ResizeCall struct {
	Width  int
	Height int
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) CreateTransparentCanvas(width, height int) ports.Canvas {
	if m.CreateTransparentCanvasFunc != nil {
		return m.CreateTransparentCanvasFunc(width, height)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	m.ResizeCalls = append(m.ResizeCalls, ResizeCall{Width: width, Height: height})
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) RoundedMask(width, height, radius int) *image.Alpha {
	if m.RoundedMaskFunc != nil {
		return m.RoundedMaskFunc(width, height, radius)
	}
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	return mask
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that records draws.
type Canvas struct {
	width  int
	height int
	Draws  []DrawCall
}

// DrawCall records a call to DrawImage.
type DrawCall struct {
	Image image.Image
	X     int
	Y     int
}

// NewCanvas creates a mock canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.Draws = append(m.Draws, DrawCall{Image: img, X: x, Y: y})
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
