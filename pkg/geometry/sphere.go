package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents an analytic sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests if a ray with a unit direction intersects with the sphere and
// returns the nearer of the two roots
func (s *Sphere) Intersect(ray core.Ray) (Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Projection onto the ray direction and squared offset
	b := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// Ray starts on the surface and runs tangent to it
	if math.Abs(c) < Epsilon && math.Abs(b) < Epsilon {
		return Hit{}, false
	}

	discriminant := b*b - c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return Hit{}, false
	}

	distance := -b - math.Sqrt(discriminant)

	// Sphere is behind the ray or the origin lies inside it
	if distance <= Epsilon {
		return Hit{}, false
	}

	point := ray.At(distance)

	return Hit{
		Distance: distance,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
	}, true
}
