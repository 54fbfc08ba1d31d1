package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/cast-color-mcp/internal/imaging"
	"github.com/ironsheep/cast-color-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "cast_resolve", "image_load").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errNoCastImage is returned by cast tools when neither the call nor the
// server config names a cast image.
var errNoCastImage = errors.New("no cast image: pass cast_path or set " + EnvCastImage)

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Cast Palette
	case "cast_resolve":
		return s.handleCastResolve(args)
	case "cast_preview":
		return s.handleCastPreview(args)
	case "cast_lookup_info":
		return s.handleCastLookupInfo(args)

	// Color Conversion
	case "color_rgb_to_hsv":
		return s.handleColorRGBToHSV(args)
	case "color_hsv_to_rgb":
		return s.handleColorHSVToRGB(args)
	case "gradient_generate":
		return s.handleGradientGenerate(args)

	// Image Inspection
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_nearest_color":
		return s.handleImageNearestColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// colorValue is a color tool argument. It accepts "#rrggbb", [r, g, b] or
// {"r": .., "g": .., "b": ..}; channels are range-checked.
type colorValue struct {
	palette.Color
	set bool
}

func (v *colorValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var c palette.Color
	var err error
	switch data[0] {
	case '"':
		var s string
		if err = json.Unmarshal(data, &s); err != nil {
			return err
		}
		c, err = palette.ParseHex(s)
	case '[':
		var rgb []int
		if err = json.Unmarshal(data, &rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("%w: expected 3 channels, got %d", palette.ErrInvalidColorComponent, len(rgb))
		}
		c, err = palette.NewColor(rgb[0], rgb[1], rgb[2])
	case '{':
		var rgb struct {
			R int `json:"r"`
			G int `json:"g"`
			B int `json:"b"`
		}
		if err = json.Unmarshal(data, &rgb); err != nil {
			return err
		}
		c, err = palette.NewColor(rgb.R, rgb.G, rgb.B)
	default:
		return fmt.Errorf("%w: unsupported color %s", palette.ErrInvalidColorComponent, data)
	}
	if err != nil {
		return err
	}

	v.Color = c
	v.set = true
	return nil
}

// require fails when the argument was omitted.
func (v colorValue) require(name string) (palette.Color, error) {
	if !v.set {
		return palette.Color{}, fmt.Errorf("missing required argument: %s", name)
	}
	return v.Color, nil
}

// === Cast Palette Handlers ===

type castPathArgs struct {
	CastPath string `json:"cast_path"`
	GrayPath string `json:"gray_path"`
}

// paths applies the configured palette files. A call that names its own
// cast image does not inherit the configured grayscale.
func (a castPathArgs) paths(cfg Config) (string, string, error) {
	if a.CastPath == "" {
		if cfg.CastImage == "" {
			return "", "", errNoCastImage
		}
		a.CastPath = cfg.CastImage
		if a.GrayPath == "" {
			a.GrayPath = cfg.GrayImage
		}
	}
	return a.CastPath, a.GrayPath, nil
}

func (s *Server) loadLookupPair(a castPathArgs) (*imaging.LookupPair, error) {
	castPath, grayPath, err := a.paths(s.cfg)
	if err != nil {
		return nil, err
	}
	return s.cache.LoadLookupPair(castPath, grayPath)
}

type resolverArgs struct {
	Threshold      *float64 `json:"threshold,omitempty"`
	GradientWidth  int      `json:"gradient_width"`
	GradientHeight int      `json:"gradient_height"`
}

// resolver builds a Resolver from the configured defaults and any per-call
// overrides.
func (s *Server) resolver(a resolverArgs) (*palette.Resolver, error) {
	cfg := s.cfg.Resolver
	if a.Threshold != nil {
		cfg.Threshold = *a.Threshold
	}
	if a.GradientWidth != 0 || a.GradientHeight != 0 {
		size := cfg.GradientSize
		if size == (palette.Size{}) {
			size = palette.DefaultGradientSize
		}
		if a.GradientWidth != 0 {
			size.Width = a.GradientWidth
		}
		if a.GradientHeight != 0 {
			size.Height = a.GradientHeight
		}
		cfg.GradientSize = size
	}
	return palette.NewResolver(cfg)
}

type castResolveArgs struct {
	Color colorValue `json:"color"`
	castPathArgs
	resolverArgs
}

// castResolveResult is the JSON shape of a resolved color.
type castResolveResult struct {
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Ratio  float64        `json:"ratio"`
	Branch palette.Branch `json:"branch"`
	Base   string         `json:"base"`
	Gray   string         `json:"gray"`
	Blend  string         `json:"blend"`
	HSV    palette.HSV    `json:"hsv"`
}

func newCastResolveResult(res palette.Result) *castResolveResult {
	return &castResolveResult{
		X:      res.Point.X,
		Y:      res.Point.Y,
		Ratio:  res.Ratio,
		Branch: res.Branch,
		Base:   res.Base.Hex(),
		Gray:   res.Gray.Hex(),
		Blend:  palette.Blend(res.Base, res.Gray, res.Ratio).Hex(),
		HSV:    res.HSV,
	}
}

func (s *Server) resolveCast(c palette.Color, paths castPathArgs, ra resolverArgs) (*imaging.LookupPair, palette.Result, error) {
	r, err := s.resolver(ra)
	if err != nil {
		return nil, palette.Result{}, err
	}
	pair, err := s.loadLookupPair(paths)
	if err != nil {
		return nil, palette.Result{}, err
	}
	res, err := r.ResolveCast(c, pair.Cast, pair.Gray)
	if err != nil {
		return nil, palette.Result{}, err
	}
	return pair, res, nil
}

func (s *Server) handleCastResolve(args json.RawMessage) (interface{}, error) {
	var a castResolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	_, res, err := s.resolveCast(c, a.castPathArgs, a.resolverArgs)
	if err != nil {
		return nil, err
	}
	return newCastResolveResult(res), nil
}

type castPreviewArgs struct {
	Color  colorValue `json:"color"`
	Zoom   int        `json:"zoom"`
	Radius int        `json:"radius"`
	castPathArgs
	resolverArgs
}

type castPreviewResult struct {
	Match *castResolveResult `json:"match"`
	*imaging.ImageResult
}

func (s *Server) handleCastPreview(args json.RawMessage) (interface{}, error) {
	var a castPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	if a.Zoom == 0 {
		a.Zoom = 1
	}
	pair, res, err := s.resolveCast(c, a.castPathArgs, a.resolverArgs)
	if err != nil {
		return nil, err
	}
	img, err := imaging.CastPreviewImage(pair.Cast.Image(), res, imaging.PreviewOptions{Zoom: a.Zoom, Radius: a.Radius})
	if err != nil {
		return nil, err
	}
	return &castPreviewResult{Match: newCastResolveResult(res), ImageResult: img}, nil
}

func (s *Server) handleCastLookupInfo(args json.RawMessage) (interface{}, error) {
	var a castPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	castPath, grayPath, err := a.paths(s.cfg)
	if err != nil {
		return nil, err
	}
	return imaging.GetLookupInfo(s.cache, castPath, grayPath)
}

// === Color Conversion Handlers ===

type colorArgs struct {
	Color colorValue `json:"color"`
}

func (s *Server) handleColorRGBToHSV(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	return imaging.NewColorResult(c), nil
}

type colorHSVArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

func (s *Server) handleColorHSVToRGB(args json.RawMessage) (interface{}, error) {
	var a colorHSVArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := palette.HSVToRGB(palette.HSV{H: a.H, S: a.S, V: a.V})
	if err != nil {
		return nil, err
	}
	return imaging.NewColorResult(c), nil
}

type gradientGenerateArgs struct {
	ColorA colorValue `json:"color_a"`
	ColorB colorValue `json:"color_b"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

func (s *Server) handleGradientGenerate(args json.RawMessage) (interface{}, error) {
	var a gradientGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	from, err := a.ColorA.require("color_a")
	if err != nil {
		return nil, err
	}
	to, err := a.ColorB.require("color_b")
	if err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = palette.DefaultGradientSize.Width
	}
	if a.Height == 0 {
		a.Height = palette.DefaultGradientSize.Height
	}
	return imaging.GradientImage(from, to, palette.Size{Width: a.Width, Height: a.Height})
}

// === Image Inspection Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageNearestColorArgs struct {
	Path  string     `json:"path"`
	Color colorValue `json:"color"`
}

func (s *Server) handleImageNearestColor(args json.RawMessage) (interface{}, error) {
	var a imageNearestColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.require("color")
	if err != nil {
		return nil, err
	}
	r, err := s.cache.LoadRaster(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.FindNearestColor(r, c)
}
