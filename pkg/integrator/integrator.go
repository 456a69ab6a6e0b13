package integrator

import (
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
)

// Intersector answers nearest-hit queries. *scene.Scene implements it.
type Intersector interface {
	NearestHit(ray core.Ray) geometry.HitResult
}

// Config contains the path tracing parameters
type Config struct {
	MaxDepth            int     // Deepest recursion level that still does work
	SurvivalProbability float64 // Russian roulette continuation probability
}

// DefaultConfig returns the classic settings: 9 levels (0..8), P = 0.8
func DefaultConfig() Config {
	return Config{
		MaxDepth:            8,
		SurvivalProbability: 0.8,
	}
}
