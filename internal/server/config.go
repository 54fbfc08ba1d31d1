package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/cast-color-mcp/internal/palette"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvCastImage    = "CAST_MCP_CAST_IMAGE"
	EnvGrayImage    = "CAST_MCP_GRAY_IMAGE"
	EnvThreshold    = "CAST_MCP_THRESHOLD"
	EnvGradientSize = "CAST_MCP_GRADIENT_SIZE"
	EnvLogLevel     = "CAST_MCP_LOG_LEVEL"
)

// Config holds the server defaults. Tool arguments override the image paths
// and resolver settings per call.
type Config struct {
	// CastImage and GrayImage are the default cast palette files. An empty
	// GrayImage derives the grayscale from CastImage.
	CastImage string
	GrayImage string

	// Resolver is the default threshold and gradient size.
	Resolver palette.Config

	// Debug enables per-request logging.
	Debug bool
}

// DefaultConfig returns a config with no palette files and the default
// resolver settings.
func DefaultConfig() Config {
	return Config{Resolver: palette.DefaultConfig()}
}

// ConfigFromEnv builds a Config from the process environment.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv)
}

// LoadConfig builds a Config from the variables returned by getenv. Unset
// variables keep their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	cfg.CastImage = getenv(EnvCastImage)
	cfg.GrayImage = getenv(EnvGrayImage)
	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvThreshold); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		cfg.Resolver.Threshold = threshold
	}

	if v := getenv(EnvGradientSize); v != "" {
		size, err := parseSize(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvGradientSize, err)
		}
		cfg.Resolver.GradientSize = size
	}

	if err := cfg.Resolver.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseSize parses "WxH". "auto" selects the size derived from the lookup
// rasters.
func parseSize(s string) (palette.Size, error) {
	if strings.EqualFold(s, "auto") {
		return palette.Size{}, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return palette.Size{}, fmt.Errorf("size %q is not WxH", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return palette.Size{}, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return palette.Size{}, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	return palette.Size{Width: width, Height: height}, nil
}
