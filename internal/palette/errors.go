package palette

import "errors"

// Sentinel errors returned by the palette package. Callers match them with
// errors.Is; the returned errors usually wrap one of these with context.
var (
	// ErrInvalidColorComponent reports a channel outside [0,255], or an HSV
	// component outside its range.
	ErrInvalidColorComponent = errors.New("invalid color component")

	// ErrInvalidGradientSize reports a gradient with height <= 1 or width <= 0.
	ErrInvalidGradientSize = errors.New("invalid gradient size")

	// ErrEmptyCandidateSet reports a nearest-color search over zero candidates.
	ErrEmptyCandidateSet = errors.New("empty candidate set")

	// ErrMismatchedRasterDimensions reports a cast-color and cast-grayscale
	// raster pair whose width or height differ.
	ErrMismatchedRasterDimensions = errors.New("mismatched raster dimensions")

	// ErrOutOfBounds reports a coordinate outside a raster.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
