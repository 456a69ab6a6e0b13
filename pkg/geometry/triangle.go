package geometry

import (
	"math"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	P1, P2, P3 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Winding normal, computed once
}

// NewTriangle creates a new triangle from three vertices. The normal follows
// the winding: (P2-P1) x (P3-P1).
func NewTriangle(p1, p2, p3 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		P1:       p1,
		P2:       p2,
		P3:       p3,
		Material: mat,
	}
	t.computeNormal()
	return t
}

func (t *Triangle) computeNormal() {
	t.normal = t.P2.Subtract(t.P1).Cross(t.P3.Subtract(t.P1)).Normalize()
}

// Normal returns the winding normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle by intersecting its plane
// and running a same-side test against each edge.
func (t *Triangle) Hit(ray core.Ray) HitResult {
	n := t.normal
	if n.Dot(ray.Direction) > 0 {
		n = n.Negate()
	}

	denom := ray.Direction.Dot(n)
	if math.Abs(denom) < 1e-12 {
		return NoHit // parallel to the plane
	}

	dist := (n.Dot(t.P1) - ray.Origin.Dot(n)) / denom
	if dist < Epsilon {
		return NoHit
	}

	p := ray.At(dist)

	// The same-side test needs the winding normal, not the flipped one
	c1 := t.P2.Subtract(t.P1).Cross(p.Subtract(t.P1))
	c2 := t.P3.Subtract(t.P2).Cross(p.Subtract(t.P2))
	c3 := t.P1.Subtract(t.P3).Cross(p.Subtract(t.P3))
	if c1.Dot(t.normal) < 0 || c2.Dot(t.normal) < 0 || c3.Dot(t.normal) < 0 {
		return NoHit
	}

	return HitResult{
		Hit:      true,
		Distance: dist,
		Point:    p,
		Normal:   n,
		Material: t.Material,
	}
}
