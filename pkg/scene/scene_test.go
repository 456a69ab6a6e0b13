package scene

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-bounce-pathtracer/pkg/core"
	"github.com/df07/go-bounce-pathtracer/pkg/geometry"
	"github.com/df07/go-bounce-pathtracer/pkg/material"
)

func TestNearestHit_PicksClosest(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewDiffuse(Red))
	far := geometry.NewSphere(core.NewVec3(0, 0, -5), 0.5, material.NewDiffuse(Blue))

	// Order must not matter
	for _, s := range []*Scene{New(near, far), New(far, near)} {
		hit := s.NearestHit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
		if !hit.Hit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.Distance-4.5) > 1e-9 {
			t.Errorf("Expected nearest distance 4.5, got %f", hit.Distance)
		}
		if hit.Material.Color != Red {
			t.Errorf("Expected red material, got %v", hit.Material.Color)
		}
	}
}

func TestNearestHit_Miss(t *testing.T) {
	s := New(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.New()))
	hit := s.NearestHit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)))
	if hit != geometry.NoHit {
		t.Errorf("Expected NoHit, got %+v", hit)
	}

	if hit := New().NearestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); hit.Hit {
		t.Error("Empty scene should never be hit")
	}
}

func TestNearestHit_BeyondMaxDistance(t *testing.T) {
	s := New(geometry.NewSphere(core.NewVec3(0, 0, -2*MaxDistance), 1, material.New()))
	if s.NearestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))).Hit {
		t.Error("Expected hits beyond MaxDistance to be ignored")
	}
}

func TestOscillator_Bounces(t *testing.T) {
	sphere := geometry.NewSphere(core.Vec3{}, 0.1, material.New())
	o := NewOscillator(sphere, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0, 0.5, 0.25, 1)

	if sphere.Center != core.NewVec3(1, 0, 0) {
		t.Fatalf("Expected sphere placed at base, got %v", sphere.Center)
	}

	var offsets []float64
	for i := 0; i < 8; i++ {
		o.Step()
		offsets = append(offsets, o.Offset)
		if sphere.Center.Y != o.Offset || sphere.Center.X != 1 {
			t.Fatalf("Sphere center %v out of sync with offset %f", sphere.Center, o.Offset)
		}
	}

	// Reverses only after leaving [-0.5, 0.5]
	want := []float64{0.25, 0.5, 0.75, 0.5, 0.25, 0, -0.25, -0.5}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("offset sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestBounceScene(t *testing.T) {
	s := NewBounceScene(0.025)

	if err := s.Validate(); err != nil {
		t.Fatalf("Bounce scene should validate: %v", err)
	}
	if got := s.GetPrimitiveCount(); got != 3+2+8+4+6 {
		t.Errorf("Expected 23 primitives, got %d", got)
	}
	if len(s.Animations) != 3 {
		t.Fatalf("Expected 3 animations, got %d", len(s.Animations))
	}

	left := s.Shapes[0].(*geometry.Sphere)
	if left.Center != core.NewVec3(-0.65, -0.7, 0) {
		t.Errorf("Expected left sphere at (-0.65,-0.7,0), got %v", left.Center)
	}
	s.Step()
	if math.Abs(left.Center.Y-(-0.675)) > 1e-12 {
		t.Errorf("Expected left sphere to rise to -0.675, got %f", left.Center.Y)
	}
	middle := s.Shapes[1].(*geometry.Sphere)
	if math.Abs(middle.Center.Y-0.05) > 1e-12 {
		t.Errorf("Expected middle sphere to rise to 0.05, got %f", middle.Center.Y)
	}

	// Looking straight up from below a corner hits a light panel
	hit := s.NearestHit(core.NewRay(core.NewVec3(-0.9, -0.99, 0.9), core.NewVec3(0, 1, 0)))
	if !hit.Hit || !hit.Material.Emissive {
		t.Errorf("Expected to hit a ceiling light, got %+v", hit)
	}
}

func TestValidate_RejectsBadMaterial(t *testing.T) {
	bad := material.NewDiffuse(White).WithSpecular(0.8, 0.1).WithRefraction(0.5, 1, 0)
	s := New(geometry.NewSphere(core.Vec3{}, 1, bad))
	if err := s.Validate(); err == nil {
		t.Error("Expected validation error for unordered rates")
	}

	degenerate := New(geometry.NewTriangle(core.Vec3{}, core.Vec3{}, core.NewVec3(1, 0, 0), material.New()))
	if err := degenerate.Validate(); err == nil {
		t.Error("Expected validation error for degenerate triangle")
	}
}

func TestBuiltin(t *testing.T) {
	for _, info := range builtinScenes {
		s, ok := Builtin(info.ID, 0.025)
		if !ok || s == nil {
			t.Errorf("Builtin(%q) not found", info.ID)
		}
	}
	if _, ok := Builtin("nonexistent", 0.025); ok {
		t.Error("Expected unknown scene to be rejected")
	}
}
