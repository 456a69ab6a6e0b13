package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDiffuse(core.NewVec3(1, 1, 1)))

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "near side from outside",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			shouldHit:      true,
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "far side from inside keeps outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:         "miss beside the sphere",
			rayOrigin:    core.NewVec3(2, 0, 5),
			rayDirection: core.NewVec3(0, 0, -1),
			shouldHit:    false,
		},
		{
			name:         "sphere behind the origin",
			rayOrigin:    core.NewVec3(0, 0, 5),
			rayDirection: core.NewVec3(0, 0, 1),
			shouldHit:    false,
		},
		{
			name:         "ray starting on the surface",
			rayOrigin:    core.NewVec3(0, 0, 1),
			rayDirection: core.NewVec3(0, 0, -1),
			shouldHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection))

			if hit.Hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, hit.Hit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if !vecNear(hit.Normal, tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if !vecNear(hit.Point, tt.rayOrigin.Add(tt.rayDirection.Multiply(tt.expectedT))) {
				t.Errorf("Hit point %v is not on the ray at t=%f", hit.Point, tt.expectedT)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.New())
	hit := sphere.Hit(core.NewRay(core.NewVec3(0.6, 0, 2), core.NewVec3(0, 0, -1)))
	if !hit.Hit {
		t.Fatal("Expected hit, got miss")
	}

	expectedPoint := core.NewVec3(0.6, 0, 0.8)
	if !vecNear(hit.Point, expectedPoint) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestSphere_SetCenter(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 0.5, material.New())
	ray := core.NewRay(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1))

	if sphere.Hit(ray).Hit {
		t.Fatal("Expected miss before moving the sphere")
	}
	sphere.SetCenter(core.NewVec3(0, 2, 0))
	hit := sphere.Hit(ray)
	if !hit.Hit || math.Abs(hit.Distance-4.5) > 1e-9 {
		t.Errorf("Expected hit at t=4.5 after moving, got %+v", hit)
	}
}
