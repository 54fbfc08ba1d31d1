package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema describes a color argument in any of the accepted forms.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description + ` as "#rrggbb", [r, g, b] or {"r", "g", "b"} with channels 0-255`,
		"oneOf": []interface{}{
			map[string]interface{}{"type": "string"},
			map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
				"minItems": 3,
				"maxItems": 3,
			},
			map[string]interface{}{"type": "object"},
		},
	}
}

// castPathProperties are the optional palette file overrides shared by the
// cast tools.
func castPathProperties(props map[string]interface{}) map[string]interface{} {
	props["cast_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Cast-color image. Defaults to the server's configured cast image",
	}
	props["gray_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Cast-grayscale image with the same dimensions. Derived from the cast image when omitted",
	}
	return props
}

// resolverProperties are the per-call resolver overrides.
func resolverProperties(props map[string]interface{}) map[string]interface{} {
	props["threshold"] = map[string]interface{}{
		"type":        "number",
		"description": "Saturation/value cut-off for direct matching, 0-1 (default: 0.995)",
	}
	props["gradient_width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Width of the ratio gradient (default: 23)",
	}
	props["gradient_height"] = map[string]interface{}{
		"type":        "integer",
		"description": "Height of the ratio gradient, at least 2; width*height at most 16777216 (default: 197)",
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Cast Palette
		{
			Name:        "cast_resolve",
			Description: "Find the swatch in the cast palette image that best reproduces a color, and the ratio to blend that swatch toward gray. Returns the pixel coordinate, ratio, branch, swatch and gray hex values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": resolverProperties(castPathProperties(map[string]interface{}{
					"color": colorSchema("Color to resolve"),
				})),
				"required": []string{"color"},
			},
		},
		{
			Name:        "cast_preview",
			Description: "Resolve a color and render the cast image with a reticle on the matched swatch, a strip with swatch, blend and gray, and a caption. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": resolverProperties(castPathProperties(map[string]interface{}{
					"color": colorSchema("Color to resolve"),
					"zoom": map[string]interface{}{
						"type":        "integer",
						"description": "Magnify a window around the match by this factor, at most 8 (default: 1, whole image)",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Half-size of the zoom window in source pixels, at most 128 (default: 32)",
					},
				})),
				"required": []string{"color"},
			},
		},
		{
			Name:        "cast_lookup_info",
			Description: "Report the dimensions of the cast-color and cast-grayscale images and whether they match.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": castPathProperties(map[string]interface{}{}),
			},
		},

		// Color Conversion
		{
			Name:        "color_rgb_to_hsv",
			Description: "Convert an RGB color to HSV (hue in degrees 0-360, saturation and value 0-1).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to convert"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_hsv_to_rgb",
			Description: "Convert an HSV color to RGB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees, 0 <= h < 360",
					},
					"s": map[string]interface{}{
						"type":        "number",
						"description": "Saturation, 0-1",
					},
					"v": map[string]interface{}{
						"type":        "number",
						"description": "Value, 0-1",
					},
				},
				"required": []string{"h", "s", "v"},
			},
		},
		{
			Name:        "gradient_generate",
			Description: "Render a vertical linear gradient from one color (top) to another (bottom). Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color_a": colorSchema("Top color"),
					"color_b": colorSchema("Bottom color"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Gradient width in pixels (default: 23)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Gradient height in pixels, at least 2; width*height at most 16777216 (default: 197)",
					},
				},
				"required": []string{"color_a", "color_b"},
			},
		},

		// Image Inspection
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel coordinate. Returns hex, RGB and HSV values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple points in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Array of points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_nearest_color",
			Description: "Find the pixel of an image whose color is closest to a target color. Scans column by column and returns the first best match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"color": colorSchema("Target color"),
				},
				"required": []string{"path", "color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
