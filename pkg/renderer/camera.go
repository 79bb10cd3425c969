package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays through a projection plane
type Camera struct {
	plane scene.ProjectionPlane
}

// NewCamera creates a camera for the given projection plane
func NewCamera(plane scene.ProjectionPlane) *Camera {
	return &Camera{plane: plane}
}

// GetRay generates the ray for pixel (i, j). The ray starts at the pixel
// center on the plane and points away from the camera position.
func (c *Camera) GetRay(i, j int) core.Ray {
	center := c.plane.PixelCenter(i, j)
	direction := center.Subtract(c.plane.Camera).Normalize()

	return core.NewRay(center, direction)
}
