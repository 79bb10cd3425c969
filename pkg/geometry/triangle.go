package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle is a single triangle with its edges and normal precomputed for the
// Möller-Trumbore test
type Triangle struct {
	A, B, C core.Vec3 // The three vertices
	Edge1   core.Vec3 // B - A
	Edge2   core.Vec3 // C - A
	Normal  core.Vec3 // normalize(Edge1 x Edge2)
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Vec3) Triangle {
	edge1 := b.Subtract(a)
	edge2 := c.Subtract(a)

	return Triangle{
		A:      a,
		B:      b,
		C:      c,
		Edge1:  edge1,
		Edge2:  edge2,
		Normal: edge1.Cross(edge2).Normalize(),
	}
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The returned hit carries the triangle's precomputed normal.
func (t *Triangle) Intersect(ray core.Ray) (Hit, bool) {
	// Calculate determinant
	p := ray.Direction.Cross(t.Edge2)
	det := t.Edge1.Dot(p)

	// Ray is parallel to the triangle's plane, or the triangle is degenerate
	if math.Abs(det) < Epsilon {
		return Hit{}, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.A)

	u := invDet * s.Dot(p)
	if u < 0.0 || u > 1.0 {
		return Hit{}, false
	}

	q := s.Cross(t.Edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Hit{}, false
	}

	distance := invDet * t.Edge2.Dot(q)

	// Behind or exactly at the ray origin
	if distance <= Epsilon {
		return Hit{}, false
	}

	return Hit{
		Distance: distance,
		Point:    ray.At(distance),
		Normal:   t.Normal,
	}, true
}
