// Package loaders reads scene descriptions from disk.
package loaders

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

// Color is an RGB triple written either as [r, g, b] or as a palette name
// such as "red" or "white".
type Color core.Vec3

var palette = map[string]core.Vec3{
	"red":     scene.Red,
	"green":   scene.Green,
	"blue":    scene.Blue,
	"yellow":  scene.Yellow,
	"cyan":    scene.Cyan,
	"magenta": scene.Magenta,
	"gray":    scene.Gray,
	"white":   scene.White,
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		named, ok := palette[value.Value]
		if !ok {
			return errors.Errorf("line %d: unknown color %q", value.Line, value.Value)
		}
		*c = Color(named)
		return nil
	}
	var rgb [3]float64
	if err := value.Decode(&rgb); err != nil {
		return errors.Wrapf(err, "line %d: color", value.Line)
	}
	*c = Color(core.NewVec3(rgb[0], rgb[1], rgb[2]))
	return nil
}

// Point is a position written as [x, y, z]
type Point [3]float64

func (p Point) vec() core.Vec3 {
	return core.NewVec3(p[0], p[1], p[2])
}

// MaterialCfg is a named surface description
type MaterialCfg struct {
	Color            Color    `yaml:"color"`
	Emissive         bool     `yaml:"emissive"`
	Specular         float64  `yaml:"specular"`
	Roughness        *float64 `yaml:"roughness"` // Defaults to 1
	Refract          float64  `yaml:"refract"`
	Index            *float64 `yaml:"index"` // Defaults to 1
	RefractRoughness float64  `yaml:"refractRoughness"`
}

// Build converts the description to a material
func (m MaterialCfg) Build() material.Material {
	if m.Emissive {
		return material.NewEmissive(core.Vec3(m.Color))
	}
	roughness, index := 1.0, 1.0
	if m.Roughness != nil {
		roughness = *m.Roughness
	}
	if m.Index != nil {
		index = *m.Index
	}
	mat := material.NewDiffuse(core.Vec3(m.Color)).WithSpecular(m.Specular, roughness)
	if m.Refract > 0 {
		mat = mat.WithRefraction(m.Refract, index, m.RefractRoughness)
	}
	return mat
}

// SphereCfg places a sphere. An optional animation bounces it along an axis
// around its center.
type SphereCfg struct {
	Center   Point          `yaml:"center"`
	Radius   float64        `yaml:"radius"`
	Material string         `yaml:"material"`
	Animate  *OscillatorCfg `yaml:"animate"`
}

// OscillatorCfg describes a bounce animation
type OscillatorCfg struct {
	Axis   Point   `yaml:"axis"`
	Offset float64 `yaml:"offset"` // Starting offset along the axis
	Limit  float64 `yaml:"limit"`
	Speed  float64 `yaml:"speed"`
	Sign   float64 `yaml:"sign"` // +1 or -1, defaults to +1
}

// TriangleCfg places a triangle; the winding picks the front face
type TriangleCfg struct {
	Points   [3]Point `yaml:"points"`
	Material string   `yaml:"material"`
}

// SceneFile is the YAML scene document
type SceneFile struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Materials   map[string]MaterialCfg `yaml:"materials"`
	Spheres     []SphereCfg            `yaml:"spheres"`
	Triangles   []TriangleCfg          `yaml:"triangles"`
}

// LoadScene reads and builds a YAML scene file
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	s, err := ParseScene(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return s, nil
}

// ParseScene decodes a YAML scene, builds its shapes in document order
// (spheres first) and validates every material.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	var file SceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	return file.Build()
}

// Build converts the document to a scene
func (f SceneFile) Build() (*scene.Scene, error) {
	materials := make(map[string]material.Material, len(f.Materials))
	for name, cfg := range f.Materials {
		materials[name] = cfg.Build()
	}
	lookup := func(name string) (material.Material, error) {
		m, ok := materials[name]
		if !ok {
			return material.Material{}, errors.Errorf("unknown material %q", name)
		}
		return m, nil
	}

	s := scene.New()
	for i, sc := range f.Spheres {
		m, err := lookup(sc.Material)
		if err != nil {
			return nil, errors.Wrapf(err, "sphere %d", i)
		}
		sphere := geometry.NewSphere(sc.Center.vec(), sc.Radius, m)
		s.Add(sphere)

		if a := sc.Animate; a != nil {
			sign := a.Sign
			if sign == 0 {
				sign = 1
			}
			if sign != 1 && sign != -1 {
				return nil, errors.Errorf("sphere %d: animation sign %g must be 1 or -1", i, a.Sign)
			}
			axis := a.Axis.vec()
			if axis.IsNearZero() {
				return nil, errors.Errorf("sphere %d: animation axis must be non-zero", i)
			}
			s.Animate(scene.NewOscillator(sphere, sc.Center.vec(), axis, a.Offset, a.Limit, a.Speed, sign))
		}
	}

	for i, tc := range f.Triangles {
		m, err := lookup(tc.Material)
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %d", i)
		}
		s.Add(geometry.NewTriangle(tc.Points[0].vec(), tc.Points[1].vec(), tc.Points[2].vec(), m))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
