package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Frame    int           // Frame index
	Passes   int           // Sample passes completed
	Workers  int           // Workers that shared the passes
	Pixels   int           // Pixels per pass
	Duration time.Duration // Wall time including the merge
}

// PrimaryRays returns the number of camera rays cast for the frame
func (s RenderStats) PrimaryRays() int {
	return s.Passes * s.Pixels
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// 8-bit image in [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	sum := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sum += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return sum / float64(total)
}
