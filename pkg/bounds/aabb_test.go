package bounds

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestComputeAABB_Extrema(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0.3, -1, 2),
		core.NewVec3(-0.7, 0.4, 0),
		core.NewVec3(1.5, 0.2, -3),
		core.NewVec3(0, 2.5, 1),
	}

	volume, err := ComputeAABB(vertices)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if volume.Min != core.NewVec3(-0.7, -1, -3) {
		t.Errorf("Expected min (-0.7,-1,-3), got %v", volume.Min)
	}
	if volume.Max != core.NewVec3(1.5, 2.5, 2) {
		t.Errorf("Expected max (1.5,2.5,2), got %v", volume.Max)
	}
	if volume.Kind != AABB {
		t.Errorf("Expected kind aabb, got %v", volume.Kind)
	}

	const tolerance = 1e-12
	if w := volume.Width(); w < 2.2-tolerance || w > 2.2+tolerance {
		t.Errorf("Expected width 2.2, got %f", w)
	}
	if h := volume.Height(); h != 3.5 {
		t.Errorf("Expected height 3.5, got %f", h)
	}
	if d := volume.Depth(); d != 5 {
		t.Errorf("Expected depth 5, got %f", d)
	}

	// Every corner lies on the box extrema
	for i, c := range volume.Corners {
		if (c.X != volume.Min.X && c.X != volume.Max.X) ||
			(c.Y != volume.Min.Y && c.Y != volume.Max.Y) ||
			(c.Z != volume.Min.Z && c.Z != volume.Max.Z) {
			t.Errorf("Corner %d %v is not a box corner", i, c)
		}
	}
}

func TestComputeAABB_NoVertices(t *testing.T) {
	if _, err := ComputeAABB(nil); !errors.Is(err, ErrNoVertices) {
		t.Errorf("Expected ErrNoVertices, got %v", err)
	}
}

func TestVolume_Mesh(t *testing.T) {
	volume, err := ComputeAABB([]core.Vec3{core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	mesh := volume.Mesh()
	if mesh.TriangleCount() != 12 {
		t.Fatalf("Expected 12 triangles, got %d", mesh.TriangleCount())
	}

	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.1, 0.2, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected the box mesh to be hit")
	}
	if hit.Distance < 4-1e-9 || hit.Distance > 4+1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
}

func TestKind_Next(t *testing.T) {
	tests := []struct {
		from, to Kind
	}{
		{None, AABB},
		{AABB, OOBB},
		{OOBB, None},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			if got := tt.from.Next(); got != tt.to {
				t.Errorf("Expected %v, got %v", tt.to, got)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{None, AABB, OOBB} {
		got, err := ParseKind(" " + kind.String() + " ")
		if err != nil {
			t.Fatalf("Unexpected error for %v: %v", kind, err)
		}
		if got != kind {
			t.Errorf("Expected %v, got %v", kind, got)
		}
	}

	if got, err := ParseKind("OOBB"); err != nil || got != OOBB {
		t.Errorf("Expected case-insensitive parse, got %v, %v", got, err)
	}

	if _, err := ParseKind("sphere"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}
