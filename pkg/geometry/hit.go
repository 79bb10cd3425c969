package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Epsilon is the smallest distance along a ray that counts as an intersection.
// It also bounds the determinant below which a ray is treated as parallel to a
// triangle's plane.
const Epsilon = 1e-6

// Hit contains information about a ray-primitive intersection
type Hit struct {
	Distance float64   // Distance along the ray, always > Epsilon
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal at the intersection
}
