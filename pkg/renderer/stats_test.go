package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestCalculateAverageLuminance(t *testing.T) {
	fill := func(c color.RGBA) *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 3, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		return img
	}

	tests := []struct {
		name     string
		img      *image.RGBA
		expected float64
	}{
		{"black", fill(color.RGBA{0, 0, 0, 255}), 0},
		{"white", fill(color.RGBA{255, 255, 255, 255}), 1},
		{"red", fill(color.RGBA{255, 0, 0, 255}), 0.2126},
		{"green", fill(color.RGBA{0, 255, 0, 255}), 0.7152},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAverageLuminance(tt.img); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("CalculateAverageLuminance = %f, want %f", got, tt.expected)
			}
		})
	}
}
