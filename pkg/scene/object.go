package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Object is one of MeshObject, SphereObject or BoundingVolumeObject.
// Consumers dispatch with a type switch.
type Object interface {
	Category() Category
	isObject()
}

// MeshObject is a triangulated object
type MeshObject struct {
	Slot     Category
	Mesh     *geometry.Mesh
	Material Material
}

func (o *MeshObject) Category() Category { return o.Slot }
func (*MeshObject) isObject()            {}

// SphereObject is the single analytic sphere of a scene
type SphereObject struct {
	Sphere   geometry.Sphere
	Material Material
}

func (*SphereObject) Category() Category { return SphereSlot }
func (*SphereObject) isObject()          {}

// BoundingVolumeObject holds both boxes around the Target object. The scene's
// bounding volume mode selects which one is in use.
type BoundingVolumeObject struct {
	Target   Category
	AABB     bounds.Volume
	OOBB     bounds.Volume
	Material Material

	aabbMesh *geometry.Mesh
	oobbMesh *geometry.Mesh
}

// NewBoundingVolumeObject builds both bounding volumes around a mesh
func NewBoundingVolumeObject(target Category, mesh *geometry.Mesh, cfg bounds.OOBBConfig) (*BoundingVolumeObject, error) {
	aabb, err := bounds.ComputeAABB(mesh.Vertices)
	if err != nil {
		return nil, err
	}
	oobb, err := bounds.ComputeOOBB(mesh.Vertices, cfg)
	if err != nil {
		return nil, err
	}

	return &BoundingVolumeObject{
		Target:   target,
		AABB:     aabb,
		OOBB:     oobb,
		Material: BoundingVolumeMaterial(),
		aabbMesh: aabb.Mesh(),
		oobbMesh: oobb.Mesh(),
	}, nil
}

func (*BoundingVolumeObject) Category() Category { return BoundingVolume }
func (*BoundingVolumeObject) isObject()          {}

// Mesh returns the triangles of the selected volume, or nil for bounds.None
func (o *BoundingVolumeObject) Mesh(kind bounds.Kind) *geometry.Mesh {
	switch kind {
	case bounds.AABB:
		return o.aabbMesh
	case bounds.OOBB:
		return o.oobbMesh
	default:
		return nil
	}
}

// Volume returns the selected volume
func (o *BoundingVolumeObject) Volume(kind bounds.Kind) (bounds.Volume, bool) {
	switch kind {
	case bounds.AABB:
		return o.AABB, true
	case bounds.OOBB:
		return o.OOBB, true
	default:
		return bounds.Volume{}, false
	}
}
