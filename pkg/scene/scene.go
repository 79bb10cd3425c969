package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// Scene contains all the elements needed for rendering. It is owned by the
// caller and must not be mutated while a render pass is running.
type Scene struct {
	Objects            [NumCategories]Object // Indexed by Category, nil slots are empty
	Lights             []PointLight
	Plane              ProjectionPlane
	BoundingVolume     bounds.Kind // Volume gating the detailed mesh
	ShowBoundingVolume bool        // Whether the volume may be reported as a hit
	Threading          int         // Requested worker count
	Width              int
	Height             int

	mirror *geometry.Mesh
	logger log.Logger
}

// Object returns the object in a slot, or nil
func (s *Scene) Object(c Category) Object {
	if c < 0 || c >= NumCategories {
		return nil
	}
	return s.Objects[c]
}

// Volume returns the bounding volume object, if any
func (s *Scene) Volume() (*BoundingVolumeObject, bool) {
	bv, ok := s.Objects[BoundingVolume].(*BoundingVolumeObject)
	return bv, ok && bv != nil
}

// ActiveLights returns the number of lights that are switched on
func (s *Scene) ActiveLights() int {
	count := 0
	for _, light := range s.Lights {
		if light.Active {
			count++
		}
	}
	return count
}

// TriangleCount returns the total number of triangles across mesh objects
func (s *Scene) TriangleCount() int {
	total := 0
	for _, obj := range s.Objects {
		if m, ok := obj.(*MeshObject); ok {
			total += m.Mesh.TriangleCount()
		}
	}
	return total
}

// ToggleLight switches a light on or off. Indices are zero-based.
func (s *Scene) ToggleLight(index int) error {
	if index < 0 || index >= len(s.Lights) {
		return fmt.Errorf("light %d of %d: %w", index, len(s.Lights), ErrLightIndex)
	}

	s.Lights[index].Active = !s.Lights[index].Active
	if s.Lights[index].Active {
		s.log().Noticef("Enabled point light %d", index+1)
	} else {
		s.log().Noticef("Disabled point light %d", index+1)
	}
	return nil
}

// CycleBoundingVolume advances none -> AABB -> OOBB -> none
func (s *Scene) CycleBoundingVolume() bounds.Kind {
	s.BoundingVolume = s.BoundingVolume.Next()

	switch s.BoundingVolume {
	case bounds.None:
		s.log().Noticef("Disabled bounding volume for the detailed mesh")
	default:
		s.log().Noticef("Switched to %s for the detailed mesh", s.BoundingVolume)
	}
	return s.BoundingVolume
}

// ToggleBoundingVolumeVisibility shows or hides the active bounding volume
func (s *Scene) ToggleBoundingVolumeVisibility() bool {
	s.ShowBoundingVolume = !s.ShowBoundingVolume
	if s.ShowBoundingVolume {
		s.log().Noticef("Showing bounding volume")
	} else {
		s.log().Noticef("Hiding bounding volume")
	}
	return s.ShowBoundingVolume
}

// SetView moves the camera and reloads the objects that depend on the view.
// The mirror does not take part when looking from the back.
func (s *Scene) SetView(view ViewDirection) error {
	if _, ok := viewNames[view]; !ok {
		return fmt.Errorf("view %d: %w", int(view), ErrUnknownView)
	}

	s.Plane = NewProjectionPlane(view, s.Width, s.Height)

	mirror := s.mirror
	if view == ViewBack {
		mirror = &geometry.Mesh{}
	}
	s.Objects[Mirror] = &MeshObject{Slot: Mirror, Mesh: mirror, Material: MirrorMaterial()}

	s.log().Noticef("Viewing from the %s", view)
	return nil
}

// SetThreading records the requested worker count. The renderer validates it.
func (s *Scene) SetThreading(workers int) {
	s.Threading = workers
	s.log().Infof("Threading set to %d", workers)
}

func (s *Scene) log() log.Logger {
	if s.logger == nil {
		s.logger = log.New("scene")
	}
	return s.logger
}
