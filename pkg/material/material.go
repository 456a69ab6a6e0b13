package material

import (
	"github.com/pkg/errors"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
)

// Material describes how a surface emits or redirects light.
//
// A uniform sample r selects the transport lobe: r < SpecularRate reflects,
// SpecularRate <= r <= RefractRate refracts and anything above is diffuse.
type Material struct {
	Emissive         bool      // Light source: returns Color and never scatters
	Color            core.Vec3 // Emitted color, or diffuse albedo
	SpecularRate     float64   // Probability of mirror reflection
	Roughness        float64   // 0 = perfect mirror, 1 = fully randomized reflection
	RefractRate      float64   // Upper bound of the refraction range
	RefractIndex     float64   // Ratio of indices passed to the refraction
	RefractRoughness float64   // 0 = clean refraction, 1 = fully randomized transmission
}

// Lobe identifies the transport mode chosen at a bounce
type Lobe int

const (
	LobeDiffuse Lobe = iota
	LobeSpecular
	LobeRefractive
)

func (l Lobe) String() string {
	switch l {
	case LobeSpecular:
		return "specular"
	case LobeRefractive:
		return "refractive"
	default:
		return "diffuse"
	}
}

// New returns a black diffuse material with default roughness and index
func New() Material {
	return Material{Roughness: 1.0, RefractIndex: 1.0}
}

// SelectLobe picks the transport lobe for the uniform sample r
func (m Material) SelectLobe(r float64) Lobe {
	if r < m.SpecularRate {
		return LobeSpecular
	}
	if m.SpecularRate <= r && r <= m.RefractRate {
		return LobeRefractive
	}
	return LobeDiffuse
}

// Validate checks that the lobe ranges are ordered so every lobe is reachable
// with the intended probability.
func (m Material) Validate() error {
	if m.Emissive {
		return nil
	}
	if m.SpecularRate < 0 || m.SpecularRate > 1 {
		return errors.Errorf("specular rate %g outside [0,1]", m.SpecularRate)
	}
	if m.RefractRate < 0 || m.RefractRate > 1 {
		return errors.Errorf("refract rate %g outside [0,1]", m.RefractRate)
	}
	// RefractRate 0 is a reflect-or-diffuse material: the refraction range is empty.
	if m.RefractRate > 0 && m.RefractRate < m.SpecularRate {
		return errors.Errorf("refract rate %g below specular rate %g", m.RefractRate, m.SpecularRate)
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return errors.Errorf("roughness %g outside [0,1]", m.Roughness)
	}
	if m.RefractRoughness < 0 || m.RefractRoughness > 1 {
		return errors.Errorf("refract roughness %g outside [0,1]", m.RefractRoughness)
	}
	if m.RefractIndex <= 0 {
		return errors.Errorf("refract index %g must be positive", m.RefractIndex)
	}
	return nil
}
