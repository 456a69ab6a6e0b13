package output

import (
	"bytes"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"

	"github.com/pkg/errors"
)

// GIFWriter collects frames into a looping animated GIF
type GIFWriter struct {
	anim  gif.GIF
	delay int // Hundredths of a second per frame
}

// NewGIFWriter creates an empty animation. delay is in 100ths of a second
// (e.g. 4 => 25 fps).
func NewGIFWriter(delay int) *GIFWriter {
	return &GIFWriter{delay: delay}
}

// Add quantizes img to the Plan 9 palette with Floyd-Steinberg dithering and
// appends it as the next frame
func (g *GIFWriter) Add(img image.Image) {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min)
	g.anim.Image = append(g.anim.Image, paletted)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

// Len returns the number of frames collected
func (g *GIFWriter) Len() int {
	return len(g.anim.Image)
}

// Bytes encodes the animation
func (g *GIFWriter) Bytes() ([]byte, error) {
	if g.Len() == 0 {
		return nil, errors.New("gif has no frames")
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, &g.anim); err != nil {
		return nil, errors.Wrap(err, "encoding gif")
	}
	return buf.Bytes(), nil
}
