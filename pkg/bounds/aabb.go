package bounds

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ComputeAABB computes the axis-aligned bounding box of the vertices in one pass
func ComputeAABB(vertices []core.Vec3) (Volume, error) {
	if len(vertices) == 0 {
		return Volume{}, ErrNoVertices
	}

	box := core.NewAABBFromPoints(vertices...)

	return Volume{
		Kind:    AABB,
		Corners: geometry.BoxCorners(box.Min, box.Max),
		Min:     box.Min,
		Max:     box.Max,
	}, nil
}
