package bounds

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Kind selects which bounding volume gates the detailed mesh
type Kind int

const (
	None Kind = iota
	AABB
	OOBB
)

func (k Kind) String() string {
	switch k {
	case AABB:
		return "aabb"
	case OOBB:
		return "oobb"
	default:
		return "none"
	}
}

// ParseKind parses "none", "aabb" or "oobb"
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return None, nil
	case "aabb":
		return AABB, nil
	case "oobb":
		return OOBB, nil
	}
	return None, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Next cycles None -> AABB -> OOBB -> None
func (k Kind) Next() Kind {
	return (k + 1) % 3
}

// Volume is a box around a set of vertices. For an AABB, Min/Max are the world
// extrema; for an OOBB they are the extents in the box's own rotated frame
// and AngleDeg is its rotation about Y.
type Volume struct {
	Kind     Kind
	Corners  [8]core.Vec3
	Min      core.Vec3
	Max      core.Vec3
	AngleDeg float64
}

// Width is the extent along the box's local X axis
func (v Volume) Width() float64 { return v.Max.X - v.Min.X }

// Height is the extent along Y
func (v Volume) Height() float64 { return v.Max.Y - v.Min.Y }

// Depth is the extent along the box's local Z axis
func (v Volume) Depth() float64 { return v.Max.Z - v.Min.Z }

// Volume returns the enclosed volume
func (v Volume) Volume() float64 {
	return v.Width() * v.Height() * v.Depth()
}

// Mesh converts the box to 12 triangles so it can be intersected like any
// other object
func (v Volume) Mesh() *geometry.Mesh {
	return geometry.NewBoxMesh(v.Corners)
}
