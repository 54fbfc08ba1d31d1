package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB color with 8-bit channels.
//
// Color is a value type; every operation in this package returns a new Color
// rather than modifying one in place.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSV is a color in the HSV (Hue, Saturation, Value) color space.
//
// HSV values are only ever derived from a Color via RGBToHSV:
//   - H: hue in degrees, [0, 360)
//   - S: saturation as a ratio, [0, 1]
//   - V: value (brightness) as a ratio, [0, 1]
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// NewColor builds a Color from integer channels, failing with
// ErrInvalidColorComponent if any channel lies outside [0,255].
func NewColor(r, g, b int) (Color, error) {
	for _, ch := range [...]struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.v < 0 || ch.v > 255 {
			return Color{}, fmt.Errorf("%w: %s=%d outside [0,255]", ErrInvalidColorComponent, ch.name, ch.v)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses a color written as "#RRGGBB", "RRGGBB" or the short "#RGB"
// form.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	// colorful.Hex scans with Sscanf, which accepts short or trailing input.
	if !isHexColor(s) {
		return Color{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidColorComponent, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidColorComponent, s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// isHexColor reports whether s is "#" followed by exactly 3 or 6 hex digits.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// IsAchromatic reports whether all three channels are equal.
func (c Color) IsAchromatic() bool {
	return c.R == c.G && c.G == c.B
}

// RGBA implements color.Color so a Color can be drawn directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// RGBToHSV converts a Color to HSV.
//
// The hue is taken from whichever channel holds the maximum; when two
// channels tie for the maximum the first of red, green, blue wins. Only the
// red-max sector needs wrapping into [0,360); the green and blue sectors land
// in range on their own. Achromatic colors have hue 0.
func RGBToHSV(c Color) HSV {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max, maxIdx := rf, 0
	if gf > max {
		max, maxIdx = gf, 1
	}
	if bf > max {
		max, maxIdx = bf, 2
	}
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxIdx == 0:
		h = math.Mod((gf-bf)/delta, 6)
		if h < 0 {
			h += 6
		}
		h *= 60
	case maxIdx == 1:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h >= 360 {
		h -= 360
	}

	var s float64
	if max != 0 {
		s = delta / max
	}

	return HSV{H: h, S: s, V: max}
}

// HSVToRGB converts an HSV triple back to a Color.
//
// Hue selects one of six half-open 60° sectors; the last sector covers
// [300,360). Channels are rounded to the nearest integer. Saturation 0
// collapses to a single gray regardless of hue.
func HSVToRGB(hsv HSV) (Color, error) {
	if !(hsv.H >= 0 && hsv.H < 360) {
		return Color{}, fmt.Errorf("%w: hue %v outside [0,360)", ErrInvalidColorComponent, hsv.H)
	}
	if !(hsv.S >= 0 && hsv.S <= 1) {
		return Color{}, fmt.Errorf("%w: saturation %v outside [0,1]", ErrInvalidColorComponent, hsv.S)
	}
	if !(hsv.V >= 0 && hsv.V <= 1) {
		return Color{}, fmt.Errorf("%w: value %v outside [0,1]", ErrInvalidColorComponent, hsv.V)
	}

	c := hsv.V * hsv.S
	x := c * (1 - math.Abs(math.Mod(hsv.H/60, 2)-1))
	m := hsv.V - c

	var r, g, b float64
	switch {
	case hsv.H < 60:
		r, g, b = c, x, 0
	case hsv.H < 120:
		r, g, b = x, c, 0
	case hsv.H < 180:
		r, g, b = 0, c, x
	case hsv.H < 240:
		r, g, b = 0, x, c
	case hsv.H < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: toChannel((r + m) * 255),
		G: toChannel((g + m) * 255),
		B: toChannel((b + m) * 255),
	}, nil
}

// AverageGray returns the gray whose channels all equal the rounded mean of
// c's channels.
func AverageGray(c Color) Color {
	sum := int(c.R) + int(c.G) + int(c.B)
	avg := toChannel(float64(sum) / 3)
	return Color{R: avg, G: avg, B: avg}
}

// toChannel rounds f to the nearest integer and clamps it to [0,255].
func toChannel(f float64) uint8 {
	f = math.Round(f)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
