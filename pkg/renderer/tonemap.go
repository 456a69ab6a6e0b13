package renderer

import (
	"image"
	"math"
)

// Gamma is the display encoding exponent
const Gamma = 2.2

// ToneMapChannel gamma-encodes one accumulated channel to a byte.
// Samples are already normalized by the renderer, so no averaging happens.
func ToneMapChannel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Pow(v, 1.0/Gamma)*255)))
}

// ToneMap converts a frame to packed 8-bit RGB, row-major from the top
func ToneMap(f *Frame) []byte {
	out := make([]byte, len(f.Pix))
	for i, v := range f.Pix {
		out[i] = ToneMapChannel(v)
	}
	return out
}

// ToImage converts a frame to an opaque RGBA image for the encoders
func ToImage(f *Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			src := f.offset(x, y)
			dst := img.PixOffset(x, y)
			img.Pix[dst] = ToneMapChannel(f.Pix[src])
			img.Pix[dst+1] = ToneMapChannel(f.Pix[src+1])
			img.Pix[dst+2] = ToneMapChannel(f.Pix[src+2])
			img.Pix[dst+3] = 255
		}
	}
	return img
}
