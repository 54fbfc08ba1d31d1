package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"cast_resolve",
		"cast_preview",
		"cast_lookup_info",
		"color_rgb_to_hsv",
		"color_hsv_to_rgb",
		"gradient_generate",
		"image_load",
		"image_sample_color",
		"image_sample_colors_multi",
		"image_nearest_color",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Tool %s defined twice", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required argument must be described.
			required, _ := tool.InputSchema["required"].([]string)
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required argument %s has no property", name)
				}
			}
		})
	}
}

func TestToolDefinitions_CastToolsAcceptPaletteOverrides(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	tests := []struct {
		tool  string
		props []string
	}{
		{"cast_resolve", []string{"color", "cast_path", "gray_path", "threshold", "gradient_width", "gradient_height"}},
		{"cast_preview", []string{"color", "cast_path", "gray_path", "zoom", "radius", "threshold"}},
		{"cast_lookup_info", []string{"cast_path", "gray_path"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			props := toolMap[tt.tool].InputSchema["properties"].(map[string]interface{})
			for _, name := range tt.props {
				if _, ok := props[name]; !ok {
					t.Errorf("missing property %s", name)
				}
			}
		})
	}
}
