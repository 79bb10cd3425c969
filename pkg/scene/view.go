package scene

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ViewDirection is one of the six canonical camera placements around the box
type ViewDirection int

const (
	ViewFront ViewDirection = iota
	ViewBack
	ViewTop
	ViewBottom
	ViewLeft
	ViewRight
)

var viewNames = map[ViewDirection]string{
	ViewFront:  "front",
	ViewBack:   "back",
	ViewTop:    "top",
	ViewBottom: "bottom",
	ViewLeft:   "left",
	ViewRight:  "right",
}

func (v ViewDirection) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseView parses a view name such as "front" or "LEFT"
func ParseView(name string) (ViewDirection, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for view, viewName := range viewNames {
		if viewName == lower {
			return view, nil
		}
	}
	return ViewFront, fmt.Errorf("%q: %w", name, ErrUnknownView)
}

// Wall returns the wall the camera sits outside of for this view
func (v ViewDirection) Wall() Category {
	switch v {
	case ViewBack:
		return RearWall
	case ViewTop:
		return UpperWall
	case ViewBottom:
		return LowerWall
	case ViewLeft:
		return LeftWall
	case ViewRight:
		return RightWall
	default:
		return FrontWall
	}
}

// DefaultViewport is the side length of the square projection plane
const DefaultViewport = 2.0

// ProjectionPlane is the plane primary rays pass through. Pixel (i, j) has its
// center at Origin + (i+0.5)*U + (j+0.5)*V; j grows upward in the image.
type ProjectionPlane struct {
	View   ViewDirection
	Camera core.Vec3
	Origin core.Vec3
	U      core.Vec3
	V      core.Vec3
}

// NewProjectionPlane places the camera and plane for a view. The plane lies on
// the near wall of the box, one unit from the center.
func NewProjectionPlane(view ViewDirection, width, height int) ProjectionPlane {
	du := DefaultViewport / float64(width)
	dv := DefaultViewport / float64(height)
	half := DefaultViewport / 2

	switch view {
	case ViewBack:
		return ProjectionPlane{
			View:   view,
			Camera: core.NewVec3(0, 0.5, -4),
			Origin: core.NewVec3(half, -half, -1),
			U:      core.NewVec3(-du, 0, 0),
			V:      core.NewVec3(0, dv, 0),
		}
	case ViewTop:
		return ProjectionPlane{
			View:   view,
			Camera: core.NewVec3(0.1, 4, 0),
			Origin: core.NewVec3(-half, 1, half),
			U:      core.NewVec3(du, 0, 0),
			V:      core.NewVec3(0, 0, -dv),
		}
	case ViewBottom:
		return ProjectionPlane{
			View:   view,
			Camera: core.NewVec3(0.1, -4, 0),
			Origin: core.NewVec3(-half, -1, half),
			U:      core.NewVec3(du, 0, 0),
			V:      core.NewVec3(0, 0, -dv),
		}
	case ViewLeft:
		return ProjectionPlane{
			View:   view,
			Camera: core.NewVec3(-4, 0.1, 0),
			Origin: core.NewVec3(-1, -half, -half),
			U:      core.NewVec3(0, 0, du),
			V:      core.NewVec3(0, dv, 0),
		}
	case ViewRight:
		return ProjectionPlane{
			View:   view,
			Camera: core.NewVec3(4, 0.1, 0),
			Origin: core.NewVec3(1, -half, half),
			U:      core.NewVec3(0, 0, -du),
			V:      core.NewVec3(0, dv, 0),
		}
	default:
		return ProjectionPlane{
			View:   ViewFront,
			Camera: core.NewVec3(0, 0.5, 4),
			Origin: core.NewVec3(-half, -half, 1),
			U:      core.NewVec3(du, 0, 0),
			V:      core.NewVec3(0, dv, 0),
		}
	}
}

// PixelCenter returns the center of pixel (i, j) on the plane
func (p ProjectionPlane) PixelCenter(i, j int) core.Vec3 {
	return p.Origin.
		Add(p.U.Multiply(float64(i) + 0.5)).
		Add(p.V.Multiply(float64(j) + 0.5))
}
