// Package palette matches arbitrary RGB colors against a cast palette image.
//
// A cast palette is a pair of same-sized rasters: the cast-color image, whose
// columns are organized by hue and whose pixels are the available swatches,
// and its cast-grayscale counterpart, used to find a brightness-matched row
// within a hue column.
//
// # Resolution
//
// ResolveCast answers two questions for an input color: which pixel of the
// cast image is the closest swatch, and what ratio that swatch should be
// blended toward gray to reproduce the input. Two policies exist:
//
//   - Direct: achromatic colors, and colors whose saturation or value is
//     above the threshold (0.995 by default), are matched by a full scan of
//     the cast-color image. The ratio is always FullIntensity.
//   - Hue bucket: every other color maps its hue onto a column, finds the
//     row whose gray best matches the color's average gray, then searches a
//     synthetic gradient from that swatch to the gray for the original color.
//     The ratio is 1 - index/len(gradient).
//
// # Searching
//
// Distances are sums of squared channel differences. Every search keeps the
// first candidate encountered on ties: whole-raster scans are column-major,
// single-column scans run top to bottom, and slices are scanned by index.
//
// # Rasters
//
// The package reads pixels only through the Raster interface. ImageRaster
// adapts any image.Image; decoding files is left to the caller.
//
// # Errors
//
// Precondition violations are reported synchronously and wrap one of the
// sentinel errors (ErrInvalidColorComponent, ErrInvalidGradientSize,
// ErrEmptyCandidateSet, ErrMismatchedRasterDimensions, ErrOutOfBounds). The
// package never logs.
package palette
