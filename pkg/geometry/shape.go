package geometry

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// Epsilon rejects intersections this close to the ray origin so a bounce
// starting on a surface does not immediately hit that surface again.
const Epsilon = 0.0005

// HitResult contains information about a ray-object intersection
type HitResult struct {
	Hit      bool              // Whether the ray hit anything
	Distance float64           // Parameter t along the ray
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Surface normal at the hit point
	Material material.Material // Copy of the hit object's material
}

// NoHit is returned by every intersection test that misses
var NoHit = HitResult{}

// Shape is implemented by *Sphere and *Triangle
type Shape interface {
	Hit(ray core.Ray) HitResult
}
