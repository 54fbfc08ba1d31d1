package palette

import (
	"fmt"
	"image"
)

// Point is a pixel coordinate inside a Raster. (0,0) is the top-left pixel.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Raster is a read-only grid of colors.
//
// Implementations must return a valid Color for every 0 <= x < Width() and
// 0 <= y < Height(). Nothing in this package writes through a Raster.
type Raster interface {
	Width() int
	Height() int
	At(x, y int) Color
}

// SameDimensions reports whether a and b have the same width and height.
func SameDimensions(a, b Raster) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

// SliceRaster is a Raster backed by a row-major slice of colors.
type SliceRaster struct {
	W, H   int
	Colors []Color
}

// NewSliceRaster wraps colors as a w×h raster. len(colors) must equal w*h.
func NewSliceRaster(w, h int, colors []Color) (*SliceRaster, error) {
	if w < 0 || h < 0 || len(colors) != w*h {
		return nil, fmt.Errorf("raster %dx%d needs %d colors, got %d", w, h, w*h, len(colors))
	}
	return &SliceRaster{W: w, H: h, Colors: colors}, nil
}

func (r *SliceRaster) Width() int  { return r.W }
func (r *SliceRaster) Height() int { return r.H }

func (r *SliceRaster) At(x, y int) Color {
	return r.Colors[y*r.W+x]
}

// ImageRaster adapts a decoded image.Image to the Raster interface.
//
// Coordinates are relative to the image bounds, so (0,0) is always
// img.Bounds().Min. Alpha is discarded and 16-bit channels are reduced to 8
// bits by dropping the low byte.
type ImageRaster struct {
	img    image.Image
	rgba   *image.RGBA
	bounds image.Rectangle
}

// NewImageRaster wraps img. Images already in *image.RGBA form are read
// straight from their pixel buffer.
func NewImageRaster(img image.Image) *ImageRaster {
	r := &ImageRaster{img: img, bounds: img.Bounds()}
	if rgba, ok := img.(*image.RGBA); ok {
		r.rgba = rgba
	}
	return r
}

func (r *ImageRaster) Width() int  { return r.bounds.Dx() }
func (r *ImageRaster) Height() int { return r.bounds.Dy() }

func (r *ImageRaster) At(x, y int) Color {
	px, py := r.bounds.Min.X+x, r.bounds.Min.Y+y
	if r.rgba != nil {
		i := r.rgba.PixOffset(px, py)
		return Color{R: r.rgba.Pix[i], G: r.rgba.Pix[i+1], B: r.rgba.Pix[i+2]}
	}
	cr, cg, cb, _ := r.img.At(px, py).RGBA()
	return Color{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)}
}

// Image returns the wrapped image.
func (r *ImageRaster) Image() image.Image {
	return r.img
}
