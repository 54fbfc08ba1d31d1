// Package imaging loads, samples and renders the images around cast color
// lookups.
//
// The palette package does the matching and knows nothing about files. This
// package is its image collaborator: it decodes cast palette assets into
// rasters, samples colors from arbitrary images, and renders previews of a
// lookup (reticle on the matched swatch, gradient bars, swatch strips).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Rendering functions are
// stateless and never modify their input images.
//
// # Lookup Pairs
//
// LoadLookupPair loads the cast-color and cast-grayscale images and checks
// that their dimensions match. When no grayscale image is supplied one is
// derived from the cast image with a luminance filter. Decoded images are
// flattened to RGBA once and cached as rasters.
//
// # Rendered Output
//
// Renderers return *image.NRGBA; the *Image helpers encode them as base64 PNG
// for transport:
//   - GradientImage: a vertical gradient bar between two colors
//   - CastPreviewImage: the cast image with a reticle on the match, a strip
//     with the base swatch, the blended result and the gray, and a caption
package imaging
