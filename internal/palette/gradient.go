package palette

import (
	"fmt"
	"math"
)

// Size is the width and height of a rectangle in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// MaxGradientArea bounds the number of colors a gradient may hold.
const MaxGradientArea = 1 << 24

// validateGradientSize checks the preconditions of GenerateGradient.
func validateGradientSize(s Size) error {
	if s.Height <= 1 {
		return fmt.Errorf("%w: height %d, need at least 2", ErrInvalidGradientSize, s.Height)
	}
	if s.Width <= 0 {
		return fmt.Errorf("%w: width %d, need at least 1", ErrInvalidGradientSize, s.Width)
	}
	// Compared by division so huge sides cannot overflow Area.
	if s.Width > MaxGradientArea/s.Height {
		return fmt.Errorf("%w: %v exceeds %d colors", ErrInvalidGradientSize, s, MaxGradientArea)
	}
	return nil
}

// Gradient is a rectangle of colors fading vertically from one color to
// another. Colors are stored row-major: the column varies fastest and rows
// run top to bottom, which is the order a renderer writes pixels in.
//
// Gradient implements Raster.
type Gradient struct {
	Size   Size
	Colors []Color
}

// Len returns the number of colors in the gradient.
func (g Gradient) Len() int { return len(g.Colors) }

func (g Gradient) Width() int  { return g.Size.Width }
func (g Gradient) Height() int { return g.Size.Height }

func (g Gradient) At(x, y int) Color {
	return g.Colors[y*g.Size.Width+x]
}

// GenerateGradient builds a size.Width×size.Height gradient from a (top row)
// to b (bottom row).
//
// The interpolation fraction of row y is t = y/(Height-1), shared by every
// column of that row. Each channel is a + (b-a)*t truncated to an integer.
// Heights below 2, and sizes above MaxGradientArea, fail with
// ErrInvalidGradientSize before anything is allocated.
func GenerateGradient(a, b Color, size Size) (Gradient, error) {
	if err := validateGradientSize(size); err != nil {
		return Gradient{}, err
	}

	colors := make([]Color, 0, size.Area())
	span := float64(size.Height - 1)
	for y := 0; y < size.Height; y++ {
		row := lerp(a, b, float64(y)/span)
		for x := 0; x < size.Width; x++ {
			colors = append(colors, row)
		}
	}
	return Gradient{Size: size, Colors: colors}, nil
}

// lerp interpolates each channel linearly and truncates toward zero.
func lerp(a, b Color, t float64) Color {
	ch := func(from, to uint8) uint8 {
		return uint8(float64(from) + (float64(to)-float64(from))*t)
	}
	return Color{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B)}
}

// Blend returns the color produced by using base at the given ratio and gray
// for the rest: ratio 1 is base, ratio 0 is gray. ratio is clamped to [0,1].
func Blend(base, gray Color, ratio float64) Color {
	ratio = math.Max(0, math.Min(1, ratio))
	return lerp(base, gray, 1-ratio)
}
