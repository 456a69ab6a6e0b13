package scene

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
)

// Oscillator bounces a sphere back and forth along an axis. The offset moves
// by Speed per frame and reverses once it has left [-Limit, Limit].
type Oscillator struct {
	Sphere *geometry.Sphere
	Base   core.Vec3 // Center at offset zero
	Axis   core.Vec3 // Direction of travel
	Limit  float64
	Speed  float64 // Distance moved per frame
	Offset float64
	Sign   float64 // +1 or -1
}

// NewOscillator creates an oscillator and places the sphere at its start
func NewOscillator(sphere *geometry.Sphere, base, axis core.Vec3, offset, limit, speed, sign float64) *Oscillator {
	o := &Oscillator{
		Sphere: sphere,
		Base:   base,
		Axis:   axis,
		Limit:  limit,
		Speed:  speed,
		Offset: offset,
		Sign:   sign,
	}
	o.apply()
	return o
}

// Step advances the oscillator by one frame
func (o *Oscillator) Step() {
	if o.Offset > o.Limit || o.Offset < -o.Limit {
		o.Sign = -o.Sign
	}
	o.Offset += o.Sign * o.Speed
	o.apply()
}

func (o *Oscillator) apply() {
	o.Sphere.SetCenter(o.Base.Add(o.Axis.Multiply(o.Offset)))
}
