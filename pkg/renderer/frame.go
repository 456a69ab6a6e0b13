package renderer

import (
	"github.com/pkg/errors"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

// Frame is a dense linear RGB accumulation buffer, row-major from the top.
// Directly visible lights are kept apart in an emission plane until
// ResolveEmission, so a pixel that sees the same light on every pass ends up
// with exactly that light's color.
type Frame struct {
	Width, Height int
	Pix           []float64 // len = Width*Height*3
	emit          []emission
}

// emission counts hits of the first light seen by a pixel; hits of other
// colors are summed in rest.
type emission struct {
	color core.Vec3
	hits  int
	rest  core.Vec3
}

func (e *emission) add(c core.Vec3, hits int) {
	switch {
	case e.hits == 0:
		e.color = c
		e.hits = hits
	case c == e.color:
		e.hits += hits
	default:
		e.rest = e.rest.Add(c.Multiply(float64(hits)))
	}
}

// NewFrame creates a zeroed frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
		emit:   make([]emission, width*height),
	}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

// Add accumulates c into pixel (x, y)
func (f *Frame) Add(x, y int, c core.Vec3) {
	i := f.offset(x, y)
	f.Pix[i] += c.X
	f.Pix[i+1] += c.Y
	f.Pix[i+2] += c.Z
}

// AddEmission records one direct hit of a light of color c at pixel (x, y)
func (f *Frame) AddEmission(x, y int, c core.Vec3) {
	f.emit[y*f.Width+x].add(c, 1)
}

// At returns the accumulated color of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	i := f.offset(x, y)
	return core.NewVec3(f.Pix[i], f.Pix[i+1], f.Pix[i+2])
}

// Merge adds every pixel of other into f
func (f *Frame) Merge(other *Frame) error {
	if other.Width != f.Width || other.Height != f.Height {
		return errors.Errorf("cannot merge %dx%d frame into %dx%d frame", other.Width, other.Height, f.Width, f.Height)
	}
	for i, v := range other.Pix {
		f.Pix[i] += v
	}
	for i, e := range other.emit {
		if e.hits > 0 {
			f.emit[i].add(e.color, e.hits)
		}
		f.emit[i].rest = f.emit[i].rest.Add(e.rest)
	}
	return nil
}

// ResolveEmission folds the emission plane into Pix and clears it. Each hit
// is weighted by 1/samples, or by 1 when unscaled is set.
func (f *Frame) ResolveEmission(samples int, unscaled bool) {
	for i := range f.emit {
		e := &f.emit[i]
		if e.hits == 0 && e.rest == (core.Vec3{}) {
			continue
		}
		// hits/samples is exactly 1 for a pixel lit on every pass
		fraction, rest := float64(e.hits), e.rest
		if !unscaled {
			fraction /= float64(samples)
			rest = rest.Divide(float64(samples))
		}
		f.Add(i%f.Width, i/f.Width, e.color.Multiply(fraction).Add(rest))
		*e = emission{}
	}
}
