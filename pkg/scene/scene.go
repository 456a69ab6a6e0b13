package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
)

// MaxDistance bounds the nearest-hit search
const MaxDistance = 1e9

// Scene contains all the elements needed for rendering.
// Shapes are traversed in order; there is no acceleration structure.
type Scene struct {
	Shapes     []geometry.Shape // Objects in the scene
	Animations []*Oscillator    // Stepped between frames by the sequence renderer
}

// New creates a scene from the given shapes
func New(shapes ...geometry.Shape) *Scene {
	return &Scene{Shapes: shapes}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Animate registers an oscillator to be stepped after every frame
func (s *Scene) Animate(o *Oscillator) {
	s.Animations = append(s.Animations, o)
}

// Step advances every animation by one frame. It must not run concurrently
// with a render.
func (s *Scene) Step() {
	for _, a := range s.Animations {
		a.Step()
	}
}

// NearestHit returns the closest intersection along the ray, or
// geometry.NoHit when nothing is hit within MaxDistance.
func (s *Scene) NearestHit(ray core.Ray) geometry.HitResult {
	closest := geometry.NoHit
	closestSoFar := MaxDistance

	for _, shape := range s.Shapes {
		if hit := shape.Hit(ray); hit.Hit && hit.Distance < closestSoFar {
			closestSoFar = hit.Distance
			closest = hit
		}
	}

	return closest
}

// Validate checks every material in the scene
func (s *Scene) Validate() error {
	for i, shape := range s.Shapes {
		var err error
		switch sh := shape.(type) {
		case *geometry.Sphere:
			if sh.Radius <= 0 {
				return errors.Errorf("shape %d: sphere radius %g must be positive", i, sh.Radius)
			}
			err = sh.Material.Validate()
		case *geometry.Triangle:
			if sh.Normal() == (core.Vec3{}) {
				return errors.Errorf("shape %d: degenerate triangle", i)
			}
			err = sh.Material.Validate()
		}
		if err != nil {
			return errors.Wrapf(err, "shape %d", i)
		}
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
