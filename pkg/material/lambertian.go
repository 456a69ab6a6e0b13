package material

import "github.com/df07/go-bounce-pathtracer/pkg/core"

// NewDiffuse creates a purely diffuse material with the given albedo
func NewDiffuse(albedo core.Vec3) Material {
	m := New()
	m.Color = albedo
	return m
}
