package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/cast-color-mcp/internal/palette"
)

const (
	// reticleSize is odd so the reticle's center pixel sits on the match.
	reticleSize = 27

	swatchHeight  = 24
	captionHeight = 16
)

// reticle is the marker composited over the matched pixel: a white ring with
// a dark outline and a clear center.
var reticle = newReticle()

func newReticle() *image.NRGBA {
	img := imaging.New(reticleSize, reticleSize, color.Transparent)
	c := float64(reticleSize / 2)
	outline := color.NRGBA{0, 0, 0, 255}
	ring := color.NRGBA{255, 255, 255, 255}

	for y := 0; y < reticleSize; y++ {
		for x := 0; x < reticleSize; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			switch {
			case d >= 9.5 && d < 10.5:
				img.SetNRGBA(x, y, ring)
			case (d >= 8.5 && d < 9.5) || (d >= 10.5 && d < 11.5):
				img.SetNRGBA(x, y, outline)
			}
		}
	}
	return img
}

// ImageResult is a rendered image encoded as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// encodePNG encodes img as a base64 PNG result.
func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// RenderReticle returns a copy of img with the reticle centered on at.
// Coordinates are relative to the image bounds. The reticle is clipped at
// the image edges.
func RenderReticle(img image.Image, at palette.Point) *image.NRGBA {
	b := img.Bounds()
	pos := image.Pt(b.Min.X+at.X-reticleSize/2, b.Min.Y+at.Y-reticleSize/2)
	return imaging.Overlay(img, reticle, pos, 1.0)
}

// RenderGradient draws g pixel for pixel.
func RenderGradient(g palette.Gradient) *image.NRGBA {
	dst := imaging.New(g.Width(), g.Height(), color.Transparent)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			dst.Set(x, y, g.At(x, y))
		}
	}
	return dst
}

// GradientImage renders a gradient from a to b and encodes it as PNG.
func GradientImage(a, b palette.Color, size palette.Size) (*ImageResult, error) {
	g, err := palette.GenerateGradient(a, b, size)
	if err != nil {
		return nil, err
	}
	return encodePNG(RenderGradient(g))
}

// RenderSwatches lays colors out left to right as equal-width blocks filling
// a width×height strip. The last block absorbs any remainder.
func RenderSwatches(colors []palette.Color, width, height int) *image.NRGBA {
	dst := imaging.New(width, height, color.Transparent)
	if len(colors) == 0 || width <= 0 {
		return dst
	}

	step := width / len(colors)
	for i, c := range colors {
		x0 := i * step
		x1 := x0 + step
		if i == len(colors)-1 {
			x1 = width
		}
		block := imaging.New(x1-x0, height, c)
		dst = imaging.Paste(dst, block, image.Pt(x0, 0))
	}
	return dst
}

// PreviewOptions controls RenderCastPreview.
type PreviewOptions struct {
	// Zoom scales a window around the match by this factor. Values <= 1
	// render the whole cast image.
	Zoom int

	// Radius is the half-size of the zoom window in source pixels.
	Radius int
}

const (
	// DefaultPreviewRadius is the zoom window half-size used when
	// PreviewOptions.Radius is zero.
	DefaultPreviewRadius = 32

	// MaxPreviewZoom and MaxPreviewRadius bound the zoomed view to
	// (2*MaxPreviewRadius+1)*MaxPreviewZoom pixels per side.
	MaxPreviewZoom   = 8
	MaxPreviewRadius = 128
)

// ErrInvalidPreviewOptions is returned for a zoom or radius outside the
// supported range.
var ErrInvalidPreviewOptions = errors.New("invalid preview options")

// Validate checks that zoom and radius are within [0, MaxPreviewZoom] and
// [0, MaxPreviewRadius].
func (o PreviewOptions) Validate() error {
	if o.Zoom < 0 || o.Zoom > MaxPreviewZoom {
		return fmt.Errorf("%w: zoom %d outside [0,%d]", ErrInvalidPreviewOptions, o.Zoom, MaxPreviewZoom)
	}
	if o.Radius < 0 || o.Radius > MaxPreviewRadius {
		return fmt.Errorf("%w: radius %d outside [0,%d]", ErrInvalidPreviewOptions, o.Radius, MaxPreviewRadius)
	}
	return nil
}

// RenderCastPreview draws the cast image with the reticle on res.Point, a
// strip with the base swatch, the blended result and the gray, and a caption
// with the coordinate, swatch hex and ratio.
func RenderCastPreview(cast image.Image, res palette.Result, opts PreviewOptions) *image.NRGBA {
	marked := RenderReticle(cast, res.Point)

	var view image.Image = marked
	if opts.Zoom > 1 {
		radius := opts.Radius
		if radius <= 0 {
			radius = DefaultPreviewRadius
		}
		window := cropAround(marked, res.Point, radius)
		view = imaging.Resize(window, window.Bounds().Dx()*opts.Zoom, window.Bounds().Dy()*opts.Zoom, imaging.NearestNeighbor)
	}

	w, h := view.Bounds().Dx(), view.Bounds().Dy()
	blended := palette.Blend(res.Base, res.Gray, res.Ratio)
	strip := RenderSwatches([]palette.Color{res.Base, blended, res.Gray}, w, swatchHeight)

	canvas := imaging.New(w, h+swatchHeight+captionHeight, color.White)
	canvas = imaging.Paste(canvas, view, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, strip, image.Pt(0, h))

	caption := fmt.Sprintf("%d,%d %s %.0f%%", res.Point.X, res.Point.Y, res.Base.Hex(), res.Ratio*100)
	drawCaption(canvas, 2, h+swatchHeight+captionHeight-4, caption)

	return canvas
}

// CastPreviewImage validates opts, then renders and encodes a cast preview.
func CastPreviewImage(cast image.Image, res palette.Result, opts PreviewOptions) (*ImageResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return encodePNG(RenderCastPreview(cast, res, opts))
}

// cropAround cuts a (2*radius+1)-pixel square centered on p, clipped to the
// image.
func cropAround(img *image.NRGBA, p palette.Point, radius int) *image.NRGBA {
	rect := image.Rect(p.X-radius, p.Y-radius, p.X+radius+1, p.Y+radius+1).Intersect(img.Bounds())
	return imaging.Crop(img, rect)
}

// drawCaption writes text with its baseline at (x, y). Text past the right
// edge is clipped.
func drawCaption(dst *image.NRGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
