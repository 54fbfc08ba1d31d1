package palette

import (
	"image"
	"image/color"
	"testing"
)

func TestImageRaster_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 14, 23))
	img.Set(10, 20, color.NRGBA{1, 2, 3, 255})
	img.Set(13, 22, color.NRGBA{200, 100, 50, 255})

	r := NewImageRaster(img)
	if r.Width() != 4 || r.Height() != 3 {
		t.Fatalf("size: got %dx%d, want 4x3", r.Width(), r.Height())
	}
	if got := r.At(0, 0); got != (Color{1, 2, 3}) {
		t.Errorf("At(0,0): got %v", got)
	}
	if got := r.At(3, 2); got != (Color{200, 100, 50}) {
		t.Errorf("At(3,2): got %v", got)
	}
}

func TestImageRaster_RGBAFastPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(2, 1, color.RGBA{9, 8, 7, 255})

	r := NewImageRaster(img)
	if got := r.At(2, 1); got != (Color{9, 8, 7}) {
		t.Errorf("At(2,1): got %v", got)
	}
	if r.Image() != image.Image(img) {
		t.Error("Image did not return the wrapped image")
	}
}

func TestImageRaster_Gray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 1, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0x80ff})

	if got := NewImageRaster(img).At(0, 0); got != (Color{0x80, 0x80, 0x80}) {
		t.Errorf("At(0,0): got %v", got)
	}
}

func TestNewSliceRaster_LengthMismatch(t *testing.T) {
	if _, err := NewSliceRaster(2, 2, make([]Color, 3)); err == nil {
		t.Error("NewSliceRaster should fail when len(colors) != w*h")
	}
}

func TestSameDimensions(t *testing.T) {
	a := mustRaster(t, 2, 1, Color{}, Color{})
	b := mustRaster(t, 1, 2, Color{}, Color{})
	if SameDimensions(a, b) {
		t.Error("2x1 and 1x2 should not match")
	}
	if !SameDimensions(a, a) {
		t.Error("raster should match itself")
	}
}
