package integrator

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

// PathTracer implements recursive unidirectional path tracing with Russian
// roulette termination. It holds no mutable state, so one value can serve
// many goroutines as long as each brings its own sampler.
type PathTracer struct {
	config Config
	scene  Intersector
}

// BounceOptions parameterizes a single bounce
type BounceOptions struct {
	// Cosine scales the continuation by |cos| between the incoming ray and
	// the normal. The recursive integrator sets it, the primary hit does not.
	Cosine bool
}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer(scene Intersector, config Config) *PathTracer {
	return &PathTracer{
		config: config,
		scene:  scene,
	}
}

// NearestHit forwards to the scene
func (pt *PathTracer) NearestHit(ray core.Ray) geometry.HitResult {
	return pt.scene.NearestHit(ray)
}

// Trace returns the radiance arriving along ray. Terminal states are a miss,
// an emitter, exceeding MaxDepth and Russian roulette.
func (pt *PathTracer) Trace(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth > pt.config.MaxDepth {
		return core.Vec3{}
	}

	hit := pt.scene.NearestHit(ray)
	if !hit.Hit {
		return core.Vec3{}
	}

	// Lights are pure emitters
	if hit.Material.Emissive {
		return hit.Material.Color
	}

	survive, weight := pt.RussianRoulette(sampler.Get1D())
	if !survive {
		return core.Vec3{}
	}

	return pt.Bounce(ray, hit, depth+1, sampler, BounceOptions{Cosine: true}).Multiply(weight)
}

// RussianRoulette decides whether a path continues for the uniform sample u.
// Survivors are weighted by 1/P to keep the estimator unbiased.
func (pt *PathTracer) RussianRoulette(u float64) (bool, float64) {
	p := pt.config.SurvivalProbability
	if u > p {
		return false, 0
	}
	return true, 1.0 / p
}

// Bounce scatters ray off a non-emissive hit and traces the continuation at
// depth. The lobe is picked by the material from one uniform sample.
func (pt *PathTracer) Bounce(ray core.Ray, hit geometry.HitResult, depth int, sampler core.Sampler, opts BounceOptions) core.Vec3 {
	normal := hit.Normal
	mat := hit.Material

	random := core.RandomDirection(normal, sampler)
	direction := random

	lobe := mat.SelectLobe(sampler.Get1D())
	switch lobe {
	case material.LobeSpecular:
		reflected := ray.Direction.Reflect(normal).Normalize()
		direction = blend(reflected, random, mat.Roughness, random)
	case material.LobeRefractive:
		refracted := ray.Direction.Refract(normal, mat.RefractIndex).Normalize()
		direction = blend(refracted, random.Negate(), mat.RefractRoughness, random)
	}

	color := pt.Trace(core.NewRay(hit.Point, direction), depth, sampler)
	if opts.Cosine {
		cosine := ray.Direction.Negate().Dot(normal)
		if cosine < 0 {
			cosine = -cosine
		}
		color = color.Multiply(cosine)
	}

	if lobe == material.LobeDiffuse {
		color = color.MultiplyVec(mat.Color)
	}
	return color
}

// blend interpolates from ideal towards scattered by t and renormalizes.
// A blend that cancels out falls back to fallback.
func blend(ideal, scattered core.Vec3, t float64, fallback core.Vec3) core.Vec3 {
	d := ideal.Lerp(scattered, t)
	if d.LengthSquared() < 1e-12 {
		return fallback
	}
	return d.Normalize()
}
