package scene

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// NewLightWallScene creates a single emissive triangle large enough to fill
// the default camera's view. Every sample hits the light directly, so the
// rendered image is flat.
func NewLightWallScene(color core.Vec3) *Scene {
	return New(geometry.NewTriangle(
		core.NewVec3(-100, -100, 0),
		core.NewVec3(100, -100, 0),
		core.NewVec3(0, 100, 0),
		material.NewEmissive(color),
	))
}
