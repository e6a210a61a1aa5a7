package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/shotprep/pkg/ports"
)

func TestCreateCanvas(t *testing.T) {
	canvas := New().CreateCanvas(40, 30, color.RGBA{R: 255, A: 255})

	img := canvas.ToImage()
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("expected 40x30 canvas, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	for _, pt := range []image.Point{{0, 0}, {20, 15}, {39, 29}} {
		got := color.RGBAModel.Convert(img.At(pt.X, pt.Y)).(color.RGBA)
		if got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("at %v: expected red fill, got %v", pt, got)
		}
	}
}

func TestCreateTransparentCanvas(t *testing.T) {
	canvas := New().CreateTransparentCanvas(10, 10)

	img := canvas.ToImage()
	_, _, _, a := img.At(5, 5).RGBA()
	if a != 0 {
		t.Errorf("expected fully transparent canvas, got alpha %d", a)
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	renderer := New()
	canvas := renderer.CreateCanvas(20, 20, color.Black)

	patch := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			patch.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	canvas.DrawImage(patch, 3, 7)

	img := canvas.ToImage()
	if got := color.RGBAModel.Convert(img.At(3, 7)).(color.RGBA); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("patch origin: expected green, got %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(7, 11)).(color.RGBA); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("patch far corner: expected green, got %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(2, 7)).(color.RGBA); got != (color.RGBA{A: 255}) {
		t.Errorf("outside patch: expected black, got %v", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	renderer := New()

	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}

	encoded, err := renderer.EncodeImage(src, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := renderer.DecodeImage(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", decoded.Bounds(), src.Bounds())
	}
	// PNG is lossless.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
			if got != src.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d, %d) changed: %v vs %v", x, y, got, src.NRGBAAt(x, y))
			}
		}
	}
}

func TestEncodeImage_JPEG(t *testing.T) {
	renderer := New()
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	encoded, err := renderer.EncodeImage(src, ports.FormatJPEG, 85)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := renderer.DecodeImage(encoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestEncodeImage_UnsupportedFormat(t *testing.T) {
	_, err := New().EncodeImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)), ports.ImageFormat(99), 0)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestDecodeImage_Invalid(t *testing.T) {
	_, err := New().DecodeImage([]byte("not an image"))
	if err == nil {
		t.Fatal("expected error for invalid data")
	}
}

func TestResizeImage(t *testing.T) {
	renderer := New()

	src := image.NewNRGBA(image.Rect(0, 0, 10, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			src.SetNRGBA(x, y, color.NRGBA{B: 200, A: 255})
		}
	}

	resized := renderer.ResizeImage(src, 37, 74)
	if resized.Bounds().Dx() != 37 || resized.Bounds().Dy() != 74 {
		t.Fatalf("expected 37x74, got %dx%d", resized.Bounds().Dx(), resized.Bounds().Dy())
	}

	// Resampling a uniform image yields the same uniform color.
	for _, pt := range []image.Point{{0, 0}, {18, 37}, {36, 73}} {
		got := color.RGBAModel.Convert(resized.At(pt.X, pt.Y)).(color.RGBA)
		if got != (color.RGBA{B: 200, A: 255}) {
			t.Errorf("at %v: expected uniform blue, got %v", pt, got)
		}
	}
}

func TestRoundedMask_Policies(t *testing.T) {
	renderer := New()

	t.Run("zero radius is opaque", func(t *testing.T) {
		mask := renderer.RoundedMask(16, 16, 0)
		for i, a := range mask.Pix {
			if a != 0xff {
				t.Fatalf("pixel %d: expected alpha 255, got %d", i, a)
			}
		}
	})

	t.Run("corners are cut", func(t *testing.T) {
		mask := renderer.RoundedMask(100, 100, 30)
		if a := mask.AlphaAt(0, 0).A; a != 0 {
			t.Errorf("corner: expected alpha 0, got %d", a)
		}
		if a := mask.AlphaAt(50, 50).A; a != 0xff {
			t.Errorf("center: expected alpha 255, got %d", a)
		}
	})

	t.Run("oversized radius clamps to half the short side", func(t *testing.T) {
		oversized := renderer.RoundedMask(60, 100, 1000)
		clamped := renderer.RoundedMask(60, 100, 30)
		for i := range clamped.Pix {
			if oversized.Pix[i] != clamped.Pix[i] {
				t.Fatalf("pixel %d differs between oversized and clamped radius", i)
			}
		}
	})
}
