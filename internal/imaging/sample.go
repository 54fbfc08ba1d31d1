package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/cast-color-mcp/internal/palette"
)

// ColorResult contains a sampled color in the representations the cast
// tools work with.
type ColorResult struct {
	Hex   string        `json:"hex"`   // Hex format "#rrggbb" (no alpha)
	RGB   palette.Color `json:"rgb"`   // RGB components
	Alpha uint8         `json:"alpha"` // Alpha/opacity (0-255)
	HSV   palette.HSV   `json:"hsv"`   // HSV representation
}

// NewColorResult describes c in every representation.
func NewColorResult(c palette.Color) ColorResult {
	return ColorResult{
		Hex:   c.Hex(),
		RGB:   c,
		Alpha: 255,
		HSV:   palette.RGBToHSV(c),
	}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
//
// For 16-bit images, values are scaled down by right-shifting 8 bits.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("%w: (%d,%d) outside image bounds", palette.ErrOutOfBounds, x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	result := NewColorResult(palette.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
	result.Alpha = uint8(a >> 8)
	return &result, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points, in input
// order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// On error, no partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// NearestColorResult is the pixel of an image closest to a target color.
type NearestColorResult struct {
	X        int         `json:"x"`
	Y        int         `json:"y"`
	Color    ColorResult `json:"color"`
	Distance int         `json:"distance"`
}

// FindNearestColor scans the whole raster, column by column, for the pixel
// closest to target.
func FindNearestColor(r palette.Raster, target palette.Color) (*NearestColorResult, error) {
	p, err := palette.NearestInRaster(r, target)
	if err != nil {
		return nil, err
	}
	c := r.At(p.X, p.Y)
	return &NearestColorResult{
		X:        p.X,
		Y:        p.Y,
		Color:    NewColorResult(c),
		Distance: palette.Distance(c, target),
	}, nil
}
