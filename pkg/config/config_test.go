package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/renderer"
)

func TestDefault_MatchesRenderer(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	want := renderer.DefaultConfig()
	if diff := cmp.Diff(want, cfg.Renderer()); diff != "" {
		t.Errorf("Renderer config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Animation.Frames != 150 || cfg.Animation.Step != 0.025 {
		t.Errorf("Unexpected animation defaults %+v", cfg.Animation)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
width: 64
height: 32
samples: 10
seed: 42
camera:
  eye: [0, 0.5, 5]
output:
  format: tiff
  gif: bounce.gif
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Default()
	want.Width = 64
	want.Height = 32
	want.Samples = 10
	want.Seed = 42
	want.Camera.Eye = Vec{0, 0.5, 5}
	want.Output.Format = "tiff"
	want.Output.GIF = "bounce.gif"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}

	if eye := cfg.Renderer().Camera.Eye; eye != core.NewVec3(0, 0.5, 5) {
		t.Errorf("Expected eye (0,0.5,5), got %v", eye)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Empty document should give defaults (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "widht: 10"},
		{"zero samples", "samples: 0"},
		{"negative workers", "workers: -1"},
		{"survival above one", "survivalProbability: 1.5"},
		{"zero survival", "survivalProbability: 0"},
		{"screen behind eye", "camera: {eye: [0, 0, 1], screenZ: 2}"},
		{"bad format", "output: {format: jpeg}"},
		{"pattern without index", "output: {pattern: image.png}"},
		{"pattern with two verbs", "output: {pattern: '%s_%d.png'}"},
		{"string verb", "output: {pattern: 'image_%s.png'}"},
		{"malformed", "width: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.yaml)); err == nil {
				t.Errorf("Expected error for %q", tt.yaml)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("samples: 3\nanimation: {frames: 2}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Samples != 3 || cfg.Animation.Frames != 2 || cfg.Animation.Step != 0.025 {
		t.Errorf("Unexpected config %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
