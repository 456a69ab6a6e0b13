package material

import "github.com/df07/go-bounce-pathtracer/pkg/core"

// NewEmissive creates a light-emitting material. Emitters return their
// color directly and never scatter.
func NewEmissive(emission core.Vec3) Material {
	m := New()
	m.Emissive = true
	m.Color = emission
	return m
}
