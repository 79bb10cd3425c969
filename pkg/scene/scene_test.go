package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()

	cfg := DefaultBoxSceneConfig()
	cfg.Width = 32
	cfg.Height = 32
	s, err := NewBoxScene(cfg)
	if err != nil {
		t.Fatalf("Failed to create box scene: %v", err)
	}
	return s
}

func TestNewBoxScene(t *testing.T) {
	s := newTestScene(t)

	for c := Category(0); c < NumCategories; c++ {
		if s.Object(c) == nil {
			t.Errorf("Expected object in slot %s", c)
		}
	}

	if _, ok := s.Objects[SphereSlot].(*SphereObject); !ok {
		t.Errorf("Expected sphere slot to hold a sphere, got %T", s.Objects[SphereSlot])
	}
	if _, ok := s.Volume(); !ok {
		t.Error("Expected a bounding volume object")
	}
	if len(s.Lights) != 2 || s.ActiveLights() != 2 {
		t.Errorf("Expected 2 active lights, got %d of %d", s.ActiveLights(), len(s.Lights))
	}
	if s.BoundingVolume != bounds.AABB || !s.ShowBoundingVolume {
		t.Errorf("Expected visible AABB, got %v visible=%v", s.BoundingVolume, s.ShowBoundingVolume)
	}
}

func TestNewBoxScene_InvalidSize(t *testing.T) {
	cfg := DefaultBoxSceneConfig()
	cfg.Width = 0
	if _, err := NewBoxScene(cfg); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestNewBoxScene_WallsFaceInward(t *testing.T) {
	s := newTestScene(t)

	for c := FrontWall; c <= RightWall; c++ {
		obj := s.Objects[c].(*MeshObject)
		if obj.Mesh.TriangleCount() != 2 {
			t.Fatalf("Expected 2 triangles in %s, got %d", c, obj.Mesh.TriangleCount())
		}
		for _, tri := range obj.Mesh.Triangles {
			// The box is centered at the origin, so inward means toward it
			if tri.Normal.Dot(tri.A.Negate()) <= 0 {
				t.Errorf("Expected %s normal %v to face the box center", c, tri.Normal)
			}
		}
	}
}

func TestScene_ToggleLight(t *testing.T) {
	s := newTestScene(t)

	if err := s.ToggleLight(0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Lights[0].Active {
		t.Error("Expected light 0 to be off")
	}
	if s.ActiveLights() != 1 {
		t.Errorf("Expected 1 active light, got %d", s.ActiveLights())
	}

	if err := s.ToggleLight(0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.Lights[0].Active {
		t.Error("Expected light 0 to be on again")
	}

	for _, index := range []int{-1, 2} {
		if err := s.ToggleLight(index); !errors.Is(err, ErrLightIndex) {
			t.Errorf("Index %d: expected ErrLightIndex, got %v", index, err)
		}
	}
}

func TestScene_CycleBoundingVolume(t *testing.T) {
	s := newTestScene(t)

	expected := []bounds.Kind{bounds.OOBB, bounds.None, bounds.AABB}
	for _, want := range expected {
		if got := s.CycleBoundingVolume(); got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
}

func TestScene_ToggleBoundingVolumeVisibility(t *testing.T) {
	s := newTestScene(t)

	if s.ToggleBoundingVolumeVisibility() {
		t.Error("Expected volume hidden after first toggle")
	}
	if !s.ToggleBoundingVolumeVisibility() {
		t.Error("Expected volume visible after second toggle")
	}
}

func TestScene_SetView(t *testing.T) {
	s := newTestScene(t)

	if err := s.SetView(ViewBack); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Plane.View != ViewBack {
		t.Errorf("Expected back view, got %v", s.Plane.View)
	}
	if mirror := s.Objects[Mirror].(*MeshObject); !mirror.Mesh.Empty() {
		t.Error("Expected mirror to be empty when viewing from the back")
	}

	if err := s.SetView(ViewLeft); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mirror := s.Objects[Mirror].(*MeshObject); mirror.Mesh.Empty() {
		t.Error("Expected mirror to be restored for the left view")
	}

	if err := s.SetView(ViewDirection(42)); !errors.Is(err, ErrUnknownView) {
		t.Errorf("Expected ErrUnknownView, got %v", err)
	}
}

func TestScene_SetThreading(t *testing.T) {
	s := newTestScene(t)
	s.SetThreading(16)
	if s.Threading != 16 {
		t.Errorf("Expected threading 16, got %d", s.Threading)
	}
}

func TestPointLight_Attenuation(t *testing.T) {
	light := NewPointLight(core.Vec3{}, core.NewVec3(1, 1, 1), 1)

	if got := light.Attenuation(0); got != 1 {
		t.Errorf("Expected attenuation 1 at distance 0, got %f", got)
	}

	expected := 1.0 / (1.0 + 0.09*2 + 0.032*4)
	if got := light.Attenuation(2); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected attenuation %f at distance 2, got %f", expected, got)
	}
}

func TestEllipsoidModel_OutwardFaces(t *testing.T) {
	radii := core.NewVec3(1, 0.7, 0.45)
	model := EllipsoidModel(radii, 8, 12)
	mesh, err := model.Place(geometry.NewUniformTransform(core.Vec3{}, core.Vec3{}, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	center := core.NewVec3(0, radii.Y, 0)
	for i, tri := range mesh.Triangles {
		centroid := tri.A.Add(tri.B).Add(tri.C).Multiply(1.0 / 3.0)
		if tri.Normal.Dot(centroid.Subtract(center)) <= 0 {
			t.Errorf("Triangle %d faces inward", i)
		}
	}

	box := mesh.Bounds()
	if box.Min.Y < -1e-9 {
		t.Errorf("Expected ellipsoid to rest on y=0, min y %f", box.Min.Y)
	}
}

func TestNewBoxScene_EmptyDetailedModel(t *testing.T) {
	cfg := DefaultBoxSceneConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.DetailedModel = &Model{}

	s, err := NewBoxScene(cfg)
	if err != nil {
		t.Fatalf("Expected an empty model to be accepted, got %v", err)
	}

	detailed, ok := s.Object(DetailedMesh).(*MeshObject)
	if !ok {
		t.Fatalf("Expected a mesh in the detailed slot, got %T", s.Object(DetailedMesh))
	}
	if !detailed.Mesh.Empty() {
		t.Errorf("Expected an empty detailed mesh, got %d triangles", detailed.Mesh.TriangleCount())
	}
	if _, ok := s.Volume(); ok {
		t.Error("Expected no bounding volume around an empty mesh")
	}
	if s.Object(BoundingVolume) != nil {
		t.Errorf("Expected the bounding volume slot to stay empty, got %T", s.Object(BoundingVolume))
	}
}
