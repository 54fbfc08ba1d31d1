// Package server implements the MCP (Model Context Protocol) server for cast
// palette color lookup.
//
// The server exposes the palette resolver and a few image inspection helpers
// as JSON-RPC 2.0 tools, so an MCP client can ask which swatch of a cast
// image reproduces a color and how strongly to blend it toward gray.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Cast Palette:
//   - cast_resolve: Swatch coordinate and blend ratio for a color
//   - cast_preview: Cast image with a reticle on the match, as PNG
//   - cast_lookup_info: Dimensions of the cast-color/grayscale pair
//
// Color Conversion:
//   - color_rgb_to_hsv, color_hsv_to_rgb
//   - gradient_generate: Vertical gradient between two colors, as PNG
//
// Image Inspection:
//   - image_load, image_sample_color, image_sample_colors_multi
//   - image_nearest_color: Pixel closest to a color
//
// Colors may be passed as "#rrggbb", [r, g, b] or {"r", "g", "b"}.
//
// # Configuration
//
// Config carries the default cast images and resolver settings, normally
// read from the environment by ConfigFromEnv. Cast tools accept cast_path,
// gray_path, threshold, gradient_width and gradient_height to override them
// per call. Without a grayscale image the server derives one from the cast
// image.
//
// # Image Caching
//
// Images and their rasters are cached by path for the lifetime of the
// process, so a cast palette is decoded once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
