package bounds

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// elongatedMesh returns the vertices of a 4x1x1 box rotated 45 degrees about Y
func elongatedMesh(t *testing.T) []core.Vec3 {
	t.Helper()

	transform := geometry.Transform{
		Scale:       core.NewVec3(4, 1, 1),
		RotationDeg: core.NewVec3(0, 45, 0),
		Translation: core.NewVec3(0.5, -0.25, 1),
	}
	corners := geometry.UnitBoxCorners()
	return transform.ApplyAll(corners[:])
}

func TestSearchOrientation_ChosenIsMinimum(t *testing.T) {
	vertices := elongatedMesh(t)

	best, candidates, err := SearchOrientation(vertices, DefaultOOBBConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(candidates) != 36 {
		t.Errorf("Expected 36 candidates (0..175 by 5), got %d", len(candidates))
	}

	for _, c := range candidates {
		if c.Area < best.Area {
			t.Errorf("Candidate at %f has area %f below chosen %f", c.AngleDeg, c.Area, best.Area)
		}
	}

	// Box long axis sits at 45 degrees; 135 fits equally well with the axes swapped
	if math.Abs(best.AngleDeg-45) > 1e-9 && math.Abs(best.AngleDeg-135) > 1e-9 {
		t.Errorf("Expected best angle 45 or 135, got %f", best.AngleDeg)
	}
	if math.Abs(best.Area-4) > 1e-9 {
		t.Errorf("Expected best area 4, got %f", best.Area)
	}
}

func TestComputeOOBB_TighterThanAABB(t *testing.T) {
	vertices := elongatedMesh(t)

	aabb, err := ComputeAABB(vertices)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	oobb, err := ComputeOOBB(vertices, DefaultOOBBConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if oobb.Volume() > aabb.Volume() {
		t.Errorf("Expected OOBB volume %f <= AABB volume %f", oobb.Volume(), aabb.Volume())
	}
	if oobb.Kind != OOBB {
		t.Errorf("Expected kind oobb, got %v", oobb.Kind)
	}
	if oobb.Height() != aabb.Height() {
		t.Errorf("Expected OOBB height %f to match AABB height %f", oobb.Height(), aabb.Height())
	}

	// All vertices remain inside the oriented box
	mesh := oobb.Mesh()
	for _, tri := range mesh.Triangles {
		for _, v := range vertices {
			if tri.Normal.Dot(v.Subtract(tri.A)) > 1e-9 {
				t.Fatalf("Vertex %v lies outside the OOBB face with normal %v", v, tri.Normal)
			}
		}
	}
}

func TestComputeOOBB_AxisAlignedInputMatchesAABB(t *testing.T) {
	corners := geometry.BoxCorners(core.NewVec3(-2, 0, -0.5), core.NewVec3(2, 1, 0.5))
	vertices := corners[:]

	aabb, _ := ComputeAABB(vertices)
	oobb, err := ComputeOOBB(vertices, DefaultOOBBConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Mod(oobb.AngleDeg, 90) != 0 {
		t.Errorf("Expected angle 0 or 90, got %f", oobb.AngleDeg)
	}
	if math.Abs(oobb.Volume()-aabb.Volume()) > 1e-9 {
		t.Errorf("Expected equal volumes, got OOBB %f and AABB %f", oobb.Volume(), aabb.Volume())
	}
}

func TestSearchOrientation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		vertices []core.Vec3
		cfg      OOBBConfig
		expected error
	}{
		{"No vertices", nil, DefaultOOBBConfig(), ErrNoVertices},
		{"Zero step", []core.Vec3{{}}, OOBBConfig{AngleStep: 0, MaxAngle: 175}, ErrInvalidAngle},
		{"Negative max", []core.Vec3{{}}, OOBBConfig{AngleStep: 5, MaxAngle: -1}, ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := SearchOrientation(tt.vertices, tt.cfg); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}
