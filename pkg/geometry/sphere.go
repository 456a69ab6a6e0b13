package geometry

import (
	"math"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// SetCenter moves the sphere. Only call between renders.
func (s *Sphere) SetCenter(center core.Vec3) {
	s.Center = center
}

// Hit tests if a ray intersects with the sphere. The ray direction must be
// normalized.
func (s *Sphere) Hit(ray core.Ray) HitResult {
	toCenter := s.Center.Subtract(ray.Origin)

	// Project the center onto the ray, then measure its distance from the ray
	originToCenter := toCenter.Length()
	projection := toCenter.Dot(ray.Direction)
	centerToRay := math.Sqrt(math.Max(0, originToCenter*originToCenter-projection*projection))
	if centerToRay > s.Radius {
		return NoHit
	}

	halfChord := math.Sqrt(s.Radius*s.Radius - centerToRay*centerToRay)
	t1 := projection - halfChord
	t2 := projection + halfChord

	// A root at the origin means the ray starts on this sphere
	if math.Abs(t1) < Epsilon || math.Abs(t2) < Epsilon {
		return NoHit
	}

	t := t1
	if t1 < 0 {
		t = t2
	}
	if t < 0 {
		return NoHit
	}

	point := ray.At(t)
	return HitResult{
		Hit:      true,
		Distance: t,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}
}
