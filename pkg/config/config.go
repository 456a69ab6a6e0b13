// Package config loads run settings from YAML. Zero-config runs use Default,
// which reproduces the classic 256x256 bounce animation.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/integrator"
	"github.com/df07/go-bounce-pathtracer/pkg/renderer"
)

// Vec is a 3-vector written as a YAML sequence, e.g. [0, 0, 4]
type Vec [3]float64

// Vec3 converts to the renderer's vector type
func (v Vec) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Camera places the eye and the screen plane
type Camera struct {
	Eye     Vec     `yaml:"eye"`
	ScreenZ float64 `yaml:"screenZ"`
}

// Animation controls the frame sequence
type Animation struct {
	Frames int     `yaml:"frames"` // Last frame index, inclusive
	Step   float64 `yaml:"step"`   // Sphere travel per frame in the bounce scene
}

// Output describes where frames are written
type Output struct {
	URL     string `yaml:"url"`     // Directory or blob bucket URL
	Pattern string `yaml:"pattern"` // Frame key, formatted with the frame index
	Format  string `yaml:"format"`  // png, bmp or tiff
	GIF     string `yaml:"gif"`     // Optional animated GIF key
}

// Config is the full run configuration
type Config struct {
	Width               int       `yaml:"width"`
	Height              int       `yaml:"height"`
	Samples             int       `yaml:"samples"`
	Workers             int       `yaml:"workers"`
	MaxDepth            int       `yaml:"maxDepth"`
	SurvivalProbability float64   `yaml:"survivalProbability"`
	Seed                uint64    `yaml:"seed"`
	Camera              Camera    `yaml:"camera"`
	Animation           Animation `yaml:"animation"`
	Scene               string    `yaml:"scene"` // Built-in scene ID or YAML scene file
	Output              Output    `yaml:"output"`
	UnscaledEmitters    bool      `yaml:"unscaledEmitters"`
}

// Formats lists the supported frame encodings
var Formats = []string{"png", "bmp", "tiff"}

// Default returns the configuration of the classic bounce animation
func Default() Config {
	rc := renderer.DefaultConfig()
	ic := integrator.DefaultConfig()
	return Config{
		Width:               rc.Width,
		Height:              rc.Height,
		Samples:             rc.Samples,
		MaxDepth:            ic.MaxDepth,
		SurvivalProbability: ic.SurvivalProbability,
		Camera: Camera{
			Eye:     Vec{rc.Camera.Eye.X, rc.Camera.Eye.Y, rc.Camera.Eye.Z},
			ScreenZ: rc.Camera.ScreenZ,
		},
		Animation: Animation{Frames: 150, Step: 0.025},
		Scene:     "bounce",
		Output: Output{
			URL:     "Images",
			Pattern: "image_%d.png",
			Format:  "png",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and output settings
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("image size %dx%d must be positive", c.Width, c.Height)
	case c.Samples <= 0:
		return errors.Errorf("samples %d must be positive", c.Samples)
	case c.Workers < 0:
		return errors.Errorf("workers %d must not be negative", c.Workers)
	case c.MaxDepth < 0:
		return errors.Errorf("maxDepth %d must not be negative", c.MaxDepth)
	case !(c.SurvivalProbability > 0 && c.SurvivalProbability <= 1):
		return errors.Errorf("survivalProbability %g must be in (0, 1]", c.SurvivalProbability)
	case c.Camera.ScreenZ >= c.Camera.Eye[2]:
		return errors.Errorf("screenZ %g must be in front of the eye at z=%g", c.Camera.ScreenZ, c.Camera.Eye[2])
	case c.Animation.Frames < 0:
		return errors.Errorf("animation frames %d must not be negative", c.Animation.Frames)
	case c.Output.URL == "":
		return errors.New("output url is required")
	case strings.Count(c.Output.Pattern, "%") != 1 || strings.Contains(fmt.Sprintf(c.Output.Pattern, 0), "%!"):
		return errors.Errorf("output pattern %q must contain exactly one integer verb such as %%d", c.Output.Pattern)
	}
	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return errors.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
}

// Renderer returns the frame renderer settings
func (c Config) Renderer() renderer.Config {
	return renderer.Config{
		Width:   c.Width,
		Height:  c.Height,
		Samples: c.Samples,
		Workers: c.Workers,
		Seed:    c.Seed,
		Camera: renderer.Camera{
			Eye:     c.Camera.Eye.Vec3(),
			ScreenZ: c.Camera.ScreenZ,
		},
		Integrator: integrator.Config{
			MaxDepth:            c.MaxDepth,
			SurvivalProbability: c.SurvivalProbability,
		},
		UnscaledEmitters: c.UnscaledEmitters,
	}
}
