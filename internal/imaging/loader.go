package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
	_ "golang.org/x/image/bmp" // Register BMP format decoder

	"github.com/ironsheep/cast-color-mcp/internal/palette"
)

// ImageCache provides thread-safe caching of loaded images and their rasters
// to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O. Rasters built from cached images are kept alongside them, so a cast
// palette is only flattened once per process.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	pair, err := cache.LoadLookupPair("assets/cast.png", "assets/cast-grayscale.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := palette.ResolveCast(c, pair.Cast, pair.Gray)
type ImageCache struct {
	mu      sync.RWMutex
	images  map[string]image.Image
	rasters map[string]*palette.ImageRaster
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images:  make(map[string]image.Image),
		rasters: make(map[string]*palette.ImageRaster),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF and BMP.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadRaster returns the image at path as a palette raster.
//
// The decoded image is flattened into an *image.RGBA once and the raster is
// cached under the same path, so repeated lookups read pixels straight from
// memory.
func (c *ImageCache) LoadRaster(path string) (*palette.ImageRaster, error) {
	c.mu.RLock()
	if r, ok := c.rasters[path]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	r := palette.NewImageRaster(clone.AsRGBA(img))

	c.mu.Lock()
	c.rasters[path] = r
	c.mu.Unlock()

	return r, nil
}

// derivedGrayKey is the raster cache key for a grayscale derived from path.
func derivedGrayKey(path string) string {
	return path + "#grayscale"
}

// LookupPair holds the cast-color and cast-grayscale rasters of a cast
// palette. Both rasters always have the same dimensions.
type LookupPair struct {
	Cast *palette.ImageRaster
	Gray *palette.ImageRaster

	// CastPath and GrayPath are the files the rasters came from. GrayPath is
	// empty when the grayscale was derived from the cast image.
	CastPath string
	GrayPath string
}

// GrayDerived reports whether the grayscale raster was computed from the
// cast image rather than loaded from a file.
func (p *LookupPair) GrayDerived() bool {
	return p.GrayPath == ""
}

// LoadLookupPair loads a cast palette.
//
// If grayPath is empty the grayscale raster is derived from the cast image
// with a luminance grayscale filter. Mismatched dimensions fail with
// palette.ErrMismatchedRasterDimensions.
func (c *ImageCache) LoadLookupPair(castPath, grayPath string) (*LookupPair, error) {
	cast, err := c.LoadRaster(castPath)
	if err != nil {
		return nil, fmt.Errorf("cast image: %w", err)
	}

	var gray *palette.ImageRaster
	if grayPath != "" {
		gray, err = c.LoadRaster(grayPath)
		if err != nil {
			return nil, fmt.Errorf("grayscale image: %w", err)
		}
	} else {
		gray = c.derivedGray(castPath, cast)
	}

	if !palette.SameDimensions(cast, gray) {
		grayName := grayPath
		if grayName == "" {
			grayName = derivedGrayKey(castPath)
		}
		return nil, fmt.Errorf("%w: %s is %dx%d, %s is %dx%d", palette.ErrMismatchedRasterDimensions,
			castPath, cast.Width(), cast.Height(), grayName, gray.Width(), gray.Height())
	}

	return &LookupPair{Cast: cast, Gray: gray, CastPath: castPath, GrayPath: grayPath}, nil
}

func (c *ImageCache) derivedGray(castPath string, cast *palette.ImageRaster) *palette.ImageRaster {
	key := derivedGrayKey(castPath)

	c.mu.RLock()
	if r, ok := c.rasters[key]; ok {
		c.mu.RUnlock()
		return r
	}
	c.mu.RUnlock()

	var gray image.Image = effect.Grayscale(cast.Image())
	r := palette.NewImageRaster(gray)

	c.mu.Lock()
	c.rasters[key] = r
	c.mu.Unlock()

	return r
}

// Clear removes all images and rasters from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.rasters = make(map[string]*palette.ImageRaster)
	c.mu.Unlock()
}

// Evict removes a specific image, and any raster built from it, from the
// cache.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	delete(c.rasters, path)
	delete(c.rasters, derivedGrayKey(path))
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "bmp" or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// The format is determined by file extension; color depth and alpha by the
// decoded Go image type (*image.RGBA64, *image.NRGBA64 and *image.Gray16 are
// 16-bit).
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// LookupInfo describes a cast palette pair.
type LookupInfo struct {
	Cast        palette.Size `json:"cast"`
	Gray        palette.Size `json:"gray"`
	GrayDerived bool         `json:"gray_derived"`
	Matching    bool         `json:"matching"`
}

// GetLookupInfo reports the dimensions of a cast palette pair without
// requiring them to match. An empty grayPath describes the derived
// grayscale.
func GetLookupInfo(cache *ImageCache, castPath, grayPath string) (*LookupInfo, error) {
	cast, err := cache.LoadRaster(castPath)
	if err != nil {
		return nil, err
	}
	var gray *palette.ImageRaster
	if grayPath != "" {
		if gray, err = cache.LoadRaster(grayPath); err != nil {
			return nil, err
		}
	} else {
		gray = cache.derivedGray(castPath, cast)
	}

	return &LookupInfo{
		Cast:        palette.Size{Width: cast.Width(), Height: cast.Height()},
		Gray:        palette.Size{Width: gray.Width(), Height: gray.Height()},
		GrayDerived: grayPath == "",
		Matching:    palette.SameDimensions(cast, gray),
	}, nil
}
