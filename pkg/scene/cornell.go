package scene

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// Palette used by the built-in scenes
var (
	Red     = core.NewVec3(1, 0.5, 0.5)
	Green   = core.NewVec3(0.5, 1, 0.5)
	Blue    = core.NewVec3(0.5, 0.5, 1)
	Yellow  = core.NewVec3(1.0, 1.0, 0.1)
	Cyan    = core.NewVec3(0.1, 1.0, 1.0)
	Magenta = core.NewVec3(1.0, 0.1, 1.0)
	Gray    = core.NewVec3(0.5, 0.5, 0.5)
	White   = core.NewVec3(1, 1, 1)
)

// NewBounceScene creates the animated Cornell-style box: a 2x2x2 room with
// colored walls, eight light panels in the ceiling corners, a yellow panel in
// the middle and three spheres bouncing vertically. step is the distance the
// outer spheres travel per frame; the glass sphere moves twice as fast.
func NewBounceScene(step float64) *Scene {
	s := &Scene{}

	mirror := material.NewDiffuse(Green).WithSpecular(0.3, 0.1)
	glass := material.NewDiffuse(White).WithSpecular(0.3, 1.0).WithRefraction(0.95, 0.1, 0)
	glossy := material.NewDiffuse(Blue).WithSpecular(0.3, 1.0)

	left := geometry.NewSphere(core.Vec3{}, 0.3, mirror)
	middle := geometry.NewSphere(core.Vec3{}, 0.4, glass)
	right := geometry.NewSphere(core.Vec3{}, 0.3, glossy)
	s.Add(left, middle, right)

	up := core.NewVec3(0, 1, 0)
	s.Animate(NewOscillator(left, core.NewVec3(-0.65, 0, 0), up, -0.7, 0.7, step, 1))
	s.Animate(NewOscillator(middle, core.NewVec3(0, 0, 0), up, 0, 0.6, 2*step, 1))
	s.Animate(NewOscillator(right, core.NewVec3(0.65, 0, 0), up, 0.7, 0.7, step, -1))

	// Center panel
	yellow := material.NewDiffuse(Yellow)
	s.Add(
		tri(-0.15, 0.6, -0.6, -0.15, -0.6, -0.6, 0.15, 0.6, -0.6, yellow),
		tri(0.15, 0.6, -0.6, -0.15, -0.6, -0.6, 0.15, -0.6, -0.6, yellow),
	)

	// Ceiling lights
	light := material.NewEmissive(White)
	s.Add(
		tri(-1, 1, 1, -0.5, 1, 1, -1, 1, 0.5, light),
		tri(-1, 1, 0.5, -0.5, 1, 1, -0.5, 1, 0.5, light),
		tri(1, 1, 1, 0.5, 1, 1, 1, 1, 0.5, light),
		tri(1, 1, 0.5, 0.5, 1, 1, 0.5, 1, 0.5, light),
		tri(-1, 1, -1, -1, 1, -0.5, -0.5, 1, -1, light),
		tri(-1, 1, -0.5, -0.5, 1, -0.5, -0.5, 1, -1, light),
		tri(1, 1, -1, 1, 1, -0.5, 0.5, 1, -1, light),
		tri(1, 1, -0.5, 0.5, 1, -0.5, 0.5, 1, -1, light),
	)

	white := material.NewDiffuse(White)
	s.Add(
		// bottom
		tri(1, -1, 1, -1, -1, -1, -1, -1, 1, white),
		tri(1, -1, 1, 1, -1, -1, -1, -1, -1, white),
		// top
		tri(1, 1, 1, -1, 1, 1, -1, 1, -1, white),
		tri(1, 1, 1, -1, 1, -1, 1, 1, -1, white),
	)

	cyan := material.NewDiffuse(Cyan)
	blue := material.NewDiffuse(Blue)
	red := material.NewDiffuse(Red)
	s.Add(
		// back
		tri(1, -1, -1, -1, 1, -1, -1, -1, -1, cyan),
		tri(1, -1, -1, 1, 1, -1, -1, 1, -1, cyan),
		// left
		tri(-1, -1, -1, -1, 1, 1, -1, -1, 1, blue),
		tri(-1, -1, -1, -1, 1, -1, -1, 1, 1, blue),
		// right
		tri(1, 1, 1, 1, -1, -1, 1, -1, 1, red),
		tri(1, -1, -1, 1, 1, 1, 1, 1, -1, red),
	)

	return s
}

func tri(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, m material.Material) *geometry.Triangle {
	return geometry.NewTriangle(core.NewVec3(x1, y1, z1), core.NewVec3(x2, y2, z2), core.NewVec3(x3, y3, z3), m)
}
