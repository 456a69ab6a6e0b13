package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-bounce-pathtracer/pkg/config"
	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
	"github.com/df07/go-bounce-pathtracer/pkg/output"
	"github.com/df07/go-bounce-pathtracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"bounce scene", "bounce", false},
		{"light wall scene", "light-wall", false},

		// YAML scenes (by name)
		{"glass-box by name", "glass-box", false},

		// YAML scenes (by path)
		{"direct YAML path", "scenes/glass-box.yaml", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid YAML path", "scenes/nonexistent.yaml", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, 0.025)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.GetPrimitiveCount() == 0 {
				t.Errorf("Scene '%s' has no shapes", tt.sceneType)
			}
			if err := scene.Validate(); err != nil {
				t.Errorf("Scene '%s' invalid: %v", tt.sceneType, err)
			}
		})
	}
}

func TestValidateScene(t *testing.T) {
	s := scene.NewLightWallScene(scene.White)
	if got, err := validateScene("light-wall", s); err != nil || got != s {
		t.Fatalf("validateScene(light-wall) = %v, %v", got, err)
	}

	s.Add(geometry.NewSphere(core.Vec3{}, 0, material.NewDiffuse(scene.White)))
	got, err := validateScene("light-wall", s)
	if err == nil || got != nil {
		t.Errorf("Expected error for zero radius sphere, got %v, %v", got, err)
	}
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseOutput(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	closeErr := errors.New("bucket gone")
	runErr := errors.New("render failed")

	var err error
	closeOutput(failingCloser{closeErr}, logger, &err)
	if errors.Cause(err) != closeErr {
		t.Errorf("Expected close error, got %v", err)
	}

	err = runErr
	closeOutput(failingCloser{closeErr}, logger, &err)
	if err != runErr {
		t.Errorf("Expected run error to be kept, got %v", err)
	}

	err = nil
	closeOutput(failingCloser{}, logger, &err)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Width = 8
	cfg.Height = 8
	cfg.Samples = 2
	cfg.Workers = 2
	cfg.Seed = 3
	cfg.Animation.Frames = 2
	cfg.Output.URL = dir
	cfg.Output.GIF = "bounce.gif"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), cfg, logger); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range []string{"image_0.png", "image_1.png", "image_2.png", "bounce.gif", output.ManifestKey} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s in output: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, output.ManifestKey))
	if err != nil {
		t.Fatal(err)
	}
	var manifest struct {
		Run    string
		Frames []struct{ Key string }
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if manifest.Run == "" || len(manifest.Frames) != 3 {
		t.Errorf("Unexpected manifest:\n%s", data)
	}
}

func TestRun_UnknownScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "nonexistent"
	cfg.Output.URL = t.TempDir()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), cfg, logger); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
