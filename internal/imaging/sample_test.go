package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/cast-color-mcp/internal/palette"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.RGB != (palette.Color{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v, want (255,128,64)", result.RGB)
	}
	if result.Alpha != 255 {
		t.Errorf("Alpha: got %d, want 255", result.Alpha)
	}
	if math.Abs(result.HSV.H-20.1) > 0.1 {
		t.Errorf("HSV.H: got %v, want about 20", result.HSV.H)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHue float64
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000", 0},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00ff00", 120},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000ff", 240},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff", 0},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", 0},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if math.Abs(result.HSV.H-tt.wantHue) > 1e-9 {
				t.Errorf("Hue: got %v, want %v", result.HSV.H, tt.wantHue)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if !errors.Is(err, palette.ErrOutOfBounds) {
				t.Errorf("got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	expectedHex := []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}
	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
		if sample.Color.Hex != expectedHex[i] {
			t.Errorf("sample %d (%s) hex: got %s, want %s", i, sample.Label, sample.Color.Hex, expectedHex[i])
		}
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	points := []LabeledPoint{
		{X: 50, Y: 50, Label: "valid"},
		{X: 200, Y: 50, Label: "invalid"},
	}

	if _, err := SampleColorsMulti(img, points); err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestFindNearestColor(t *testing.T) {
	r := palette.NewImageRaster(createPatternImage(10, 10))

	result, err := FindNearestColor(r, palette.Color{R: 10, G: 240, B: 20})
	if err != nil {
		t.Fatalf("FindNearestColor failed: %v", err)
	}
	// First green pixel in column-major order
	if result.X != 5 || result.Y != 0 {
		t.Errorf("got (%d,%d), want (5,0)", result.X, result.Y)
	}
	if result.Color.Hex != "#00ff00" {
		t.Errorf("Hex: got %s, want #00ff00", result.Color.Hex)
	}
	if result.Distance != 100+225+400 {
		t.Errorf("Distance: got %d, want %d", result.Distance, 100+225+400)
	}
}

func TestFindNearestColor_Empty(t *testing.T) {
	r := palette.NewImageRaster(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if _, err := FindNearestColor(r, palette.Color{}); !errors.Is(err, palette.ErrEmptyCandidateSet) {
		t.Errorf("got %v, want ErrEmptyCandidateSet", err)
	}
}
