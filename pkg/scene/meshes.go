package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Model is an untransformed triangle model: vertices plus zero-based faces
type Model struct {
	Vertices []core.Vec3
	Faces    [][3]int
}

// Place transforms the model into the scene
func (m Model) Place(transform geometry.Transform) (*geometry.Mesh, error) {
	return geometry.NewTransformedMesh(m.Vertices, m.Faces, transform)
}

// PlaneModel is a unit square in the XZ plane centered at the origin, facing +Y
func PlaneModel() Model {
	return Model{
		Vertices: []core.Vec3{
			core.NewVec3(-0.5, 0, -0.5),
			core.NewVec3(0.5, 0, -0.5),
			core.NewVec3(0.5, 0, 0.5),
			core.NewVec3(-0.5, 0, 0.5),
		},
		Faces: [][3]int{{0, 3, 2}, {0, 2, 1}},
	}
}

// CubeModel is the unit cube centered at the origin
func CubeModel() Model {
	corners := geometry.UnitBoxCorners()
	return Model{
		Vertices: corners[:],
		Faces:    geometry.BoxFaces(),
	}
}

// MirrorModel is an upright panel just in front of the rear wall, facing +Z
func MirrorModel() Model {
	const (
		z    = -0.98
		left = -0.55
		top  = 0.6
	)
	return Model{
		Vertices: []core.Vec3{
			core.NewVec3(left, -0.5, z),
			core.NewVec3(-left, -0.5, z),
			core.NewVec3(-left, top, z),
			core.NewVec3(left, top, z),
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

// EllipsoidModel is a subdivided ellipsoid resting on y=0 with the given
// radii. Faces are wound outward.
func EllipsoidModel(radii core.Vec3, rings, segments int) Model {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	center := core.NewVec3(0, radii.Y, 0)
	point := func(theta, phi float64) core.Vec3 {
		return core.NewVec3(
			radii.X*math.Sin(theta)*math.Cos(phi),
			radii.Y*math.Cos(theta),
			radii.Z*math.Sin(theta)*math.Sin(phi),
		).Add(center)
	}

	vertices := []core.Vec3{point(0, 0)} // north pole
	for i := 1; i < rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		for j := 0; j < segments; j++ {
			vertices = append(vertices, point(theta, 2*math.Pi*float64(j)/float64(segments)))
		}
	}
	south := len(vertices)
	vertices = append(vertices, point(math.Pi, 0))

	ring := func(i, j int) int {
		return 1 + (i-1)*segments + j%segments
	}

	var faces [][3]int
	for j := 0; j < segments; j++ {
		faces = append(faces, [3]int{0, ring(1, j+1), ring(1, j)})
	}
	for i := 1; i < rings-1; i++ {
		for j := 0; j < segments; j++ {
			a, b := ring(i, j), ring(i, j+1)
			c, d := ring(i+1, j), ring(i+1, j+1)
			faces = append(faces, [3]int{a, b, c}, [3]int{b, d, c})
		}
	}
	for j := 0; j < segments; j++ {
		faces = append(faces, [3]int{ring(rings-1, j), ring(rings-1, j+1), south})
	}

	return Model{Vertices: vertices, Faces: faces}
}

// DetailedModel is the stand-in for a scanned model: an elongated ellipsoid
func DetailedModel() Model {
	return EllipsoidModel(core.NewVec3(1.0, 0.7, 0.45), 12, 24)
}
