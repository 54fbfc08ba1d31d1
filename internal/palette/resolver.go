package palette

import (
	"fmt"
	"math"
)

const (
	// DefaultThreshold is the saturation/value cut-off above which a color is
	// matched directly against the cast image.
	DefaultThreshold = 0.995

	// FullIntensity is the ratio reported by the direct-search branch: the
	// matched swatch is used undiluted. Ratios are fractions in [0,1], so
	// this is 1 where percentage-based tools report 100.
	FullIntensity = 1.0
)

// DefaultGradientSize is the synthetic gradient used for ratio estimation,
// matching the gradient bar of the cast preview.
var DefaultGradientSize = Size{Width: 23, Height: 197}

// Branch identifies which resolution policy produced a Result.
type Branch string

const (
	// BranchDirect means the color was matched by a full scan of the cast
	// image (achromatic, or saturation/value above the threshold).
	BranchDirect Branch = "direct"

	// BranchHueBucket means the color was matched through its hue column in
	// the cast-grayscale image and a gradient toward gray.
	BranchHueBucket Branch = "hue_bucket"
)

// Config holds the tunables of a Resolver.
type Config struct {
	// Threshold is compared with strict > against both saturation and value.
	Threshold float64 `json:"threshold"`

	// GradientSize is the size of the synthetic gradient searched for the
	// blend ratio. The zero value derives it from the lookup rasters: one
	// column, as many rows as the rasters have.
	GradientSize Size `json:"gradient_size"`
}

// DefaultConfig returns the threshold and gradient size the cast palette was
// calibrated with.
func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		GradientSize: DefaultGradientSize,
	}
}

// Validate checks that the threshold is a ratio and that a non-zero gradient
// size is usable.
func (c Config) Validate() error {
	if !(c.Threshold >= 0 && c.Threshold <= 1) {
		return fmt.Errorf("threshold %v outside [0,1]", c.Threshold)
	}
	if c.GradientSize == (Size{}) {
		return nil
	}
	return validateGradientSize(c.GradientSize)
}

// Result is the answer to "where in the cast image does this color live, and
// how strongly should that swatch be used".
type Result struct {
	// Point is the matched pixel in the cast-color image.
	Point Point `json:"point"`

	// Ratio is the blend factor in [0,1]: 1 uses the swatch undiluted, 0 is
	// fully grayed out.
	Ratio float64 `json:"ratio"`

	Branch Branch `json:"branch"`

	// Base is the cast-color pixel at Point.
	Base Color `json:"base"`

	// Gray is the average-gray equivalent of the input color.
	Gray Color `json:"gray"`

	// HSV is the input color in HSV.
	HSV HSV `json:"hsv"`
}

// Resolver maps colors onto a cast palette. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	cfg Config
}

// NewResolver validates cfg and returns a Resolver using it.
func NewResolver(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// Config returns the configuration the resolver was built with.
func (r *Resolver) Config() Config {
	return r.cfg
}

// ResolveCast resolves c against the default configuration.
func ResolveCast(c Color, castColor, castGray Raster) (Result, error) {
	r := &Resolver{cfg: DefaultConfig()}
	return r.ResolveCast(c, castColor, castGray)
}

// ResolveCast finds the cast swatch for c and the ratio to blend it toward
// gray.
//
// Colors that are achromatic, or whose saturation or value exceeds the
// threshold, are matched by scanning the whole cast-color raster and get
// FullIntensity. Every other color is located through its hue column: the
// column of castGray whose row best matches the color's average gray picks
// the base swatch, and the ratio comes from where the original color falls
// on a gradient from that swatch to the gray.
//
// castColor and castGray must have identical dimensions.
func (r *Resolver) ResolveCast(c Color, castColor, castGray Raster) (Result, error) {
	if !SameDimensions(castColor, castGray) {
		return Result{}, fmt.Errorf("%w: cast %dx%d, grayscale %dx%d", ErrMismatchedRasterDimensions,
			castColor.Width(), castColor.Height(), castGray.Width(), castGray.Height())
	}
	if castColor.Width() <= 0 || castColor.Height() <= 0 {
		return Result{}, fmt.Errorf("%w: cast raster is %dx%d", ErrEmptyCandidateSet,
			castColor.Width(), castColor.Height())
	}

	hsv := RGBToHSV(c)
	gray := AverageGray(c)
	res := Result{Gray: gray, HSV: hsv}

	if r.useDirectSearch(c, hsv) {
		p, err := NearestInRaster(castColor, c)
		if err != nil {
			return Result{}, err
		}
		res.Point = p
		res.Ratio = FullIntensity
		res.Branch = BranchDirect
		res.Base = castColor.At(p.X, p.Y)
		return res, nil
	}

	column := hueColumn(hsv.H, castGray.Width())
	row, err := NearestInColumn(castGray, column, gray)
	if err != nil {
		return Result{}, err
	}
	base := castColor.At(column, row)

	grad, err := GenerateGradient(base, gray, r.gradientSize(castColor))
	if err != nil {
		return Result{}, err
	}
	index, err := NearestIndex(grad.Colors, c)
	if err != nil {
		return Result{}, err
	}

	res.Point = Point{X: column, Y: row}
	res.Ratio = 1 - float64(index)/float64(grad.Len())
	res.Branch = BranchHueBucket
	res.Base = base
	return res, nil
}

// useDirectSearch decides the resolution branch. The threshold comparison
// is strict.
func (r *Resolver) useDirectSearch(c Color, hsv HSV) bool {
	return c.IsAchromatic() || hsv.S > r.cfg.Threshold || hsv.V > r.cfg.Threshold
}

func (r *Resolver) gradientSize(lookup Raster) Size {
	if r.cfg.GradientSize == (Size{}) {
		return Size{Width: 1, Height: lookup.Height()}
	}
	return r.cfg.GradientSize
}

// hueColumn maps a hue in degrees onto one of width columns.
func hueColumn(hue float64, width int) int {
	col := int(math.Floor(hue / 360 * float64(width)))
	if col >= width {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}
