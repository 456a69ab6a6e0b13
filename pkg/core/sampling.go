package core

import "pgregory.net/rand"

// Sampler provides uniform random numbers for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	// Get1D returns a uniform float64 in [0, 1)
	Get1D() float64
}

// RandomSampler draws from a private random stream. It must not be shared
// between goroutines; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler with its own stream seeded from seed
func NewRandomSampler(seed uint64) *RandomSampler {
	return &RandomSampler{random: rand.New(seed)}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// SeedStream derives the seed of stream index from a base seed.
// A zero base seed draws a fresh non-deterministic seed for every stream.
func SeedStream(base uint64, index int) uint64 {
	if base == 0 {
		return rand.Uint64()
	}
	// splitmix64 finalizer so neighbouring indices give unrelated streams
	z := base + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// RandomUnitVector returns a uniformly distributed unit vector by rejection
// sampling points in the unit ball
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		d := NewVec3(
			2*sampler.Get1D()-1,
			2*sampler.Get1D()-1,
			2*sampler.Get1D()-1,
		)
		if d.LengthSquared() <= 1.0 {
			return d.Normalize()
		}
	}
}

// RandomDirection returns a random bounce direction biased towards normal
func RandomDirection(normal Vec3, sampler Sampler) Vec3 {
	return RandomUnitVector(sampler).Add(normal).Normalize()
}
