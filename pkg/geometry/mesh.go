package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a triangulated object. A mesh with no triangles is a valid
// placeholder that never intersects anything.
type Mesh struct {
	Vertices  []core.Vec3
	Triangles []Triangle
}

// NewMesh creates a mesh from vertices and zero-based triangle indices
func NewMesh(vertices []core.Vec3, faces [][3]int) (*Mesh, error) {
	triangles := make([]Triangle, 0, len(faces))

	for i, face := range faces {
		for _, index := range face {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d index %d (of %d vertices): %w", i, index, len(vertices), ErrFaceIndex)
			}
		}
		triangles = append(triangles, NewTriangle(vertices[face[0]], vertices[face[1]], vertices[face[2]]))
	}

	return &Mesh{
		Vertices:  vertices,
		Triangles: triangles,
	}, nil
}

// Empty returns true if the mesh has no triangles
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Triangles) == 0
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Triangles)
}

// Bounds returns the axis-aligned box around all mesh vertices
func (m *Mesh) Bounds() core.AABB {
	if m == nil {
		return core.AABB{}
	}
	return core.NewAABBFromPoints(m.Vertices...)
}

// Intersect returns the closest triangle hit along the ray
func (m *Mesh) Intersect(ray core.Ray) (Hit, bool) {
	if m.Empty() {
		return Hit{}, false
	}

	var closest Hit
	hitAnything := false

	for i := range m.Triangles {
		if hit, ok := m.Triangles[i].Intersect(ray); ok && (!hitAnything || hit.Distance < closest.Distance) {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Transform places a model in the scene: vertices are scaled, rotated about
// X, Y and Z (in that order, in degrees) and then translated.
type Transform struct {
	Scale       core.Vec3
	RotationDeg core.Vec3
	Translation core.Vec3
}

// NewUniformTransform creates a transform with the same scale on every axis
func NewUniformTransform(translation core.Vec3, rotationDeg core.Vec3, scale float64) Transform {
	return Transform{
		Scale:       core.NewVec3(scale, scale, scale),
		RotationDeg: rotationDeg,
		Translation: translation,
	}
}

// Apply transforms a single point
func (t Transform) Apply(v core.Vec3) core.Vec3 {
	scaled := v.MultiplyVec(t.Scale)
	rotated := t.rotation().Mul3x1(mgl64.Vec3{scaled.X, scaled.Y, scaled.Z})
	return core.NewVec3(rotated[0], rotated[1], rotated[2]).Add(t.Translation)
}

// ApplyAll transforms a slice of points into a new slice
func (t Transform) ApplyAll(vertices []core.Vec3) []core.Vec3 {
	rotation := t.rotation()
	out := make([]core.Vec3, len(vertices))

	for i, v := range vertices {
		scaled := v.MultiplyVec(t.Scale)
		rotated := rotation.Mul3x1(mgl64.Vec3{scaled.X, scaled.Y, scaled.Z})
		out[i] = core.NewVec3(rotated[0], rotated[1], rotated[2]).Add(t.Translation)
	}

	return out
}

// rotation composes the X, Y, Z rotations so that X is applied first
func (t Transform) rotation() mgl64.Mat3 {
	rx := mgl64.Rotate3DX(mgl64.DegToRad(t.RotationDeg.X))
	ry := mgl64.Rotate3DY(mgl64.DegToRad(t.RotationDeg.Y))
	rz := mgl64.Rotate3DZ(mgl64.DegToRad(t.RotationDeg.Z))
	return rz.Mul3(ry).Mul3(rx)
}

// NewTransformedMesh applies a transform to vertices and builds the mesh
func NewTransformedMesh(vertices []core.Vec3, faces [][3]int, transform Transform) (*Mesh, error) {
	return NewMesh(transform.ApplyAll(vertices), faces)
}
