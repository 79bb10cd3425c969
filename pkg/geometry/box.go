package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Corner indices of a box. Front faces +Z, top faces +Y, right faces +X.
const (
	BottomFrontLeft = iota
	BottomFrontRight
	TopFrontLeft
	TopFrontRight
	TopBackLeft
	TopBackRight
	BottomBackLeft
	BottomBackRight
)

// boxFaces lists the 12 triangles of a box over its corner indices, wound so
// that every normal points outward.
var boxFaces = [12][3]int{
	{BottomFrontLeft, BottomFrontRight, TopFrontLeft},
	{TopFrontLeft, BottomFrontRight, TopFrontRight},
	{TopFrontLeft, TopFrontRight, TopBackLeft},
	{TopBackLeft, TopFrontRight, TopBackRight},
	{TopBackLeft, TopBackRight, BottomBackLeft},
	{BottomBackLeft, TopBackRight, BottomBackRight},
	{BottomBackLeft, BottomBackRight, BottomFrontLeft},
	{BottomFrontLeft, BottomBackRight, BottomFrontRight},
	{BottomFrontRight, BottomBackRight, TopFrontRight},
	{TopFrontRight, BottomBackRight, TopBackRight},
	{BottomBackLeft, BottomFrontLeft, TopBackLeft},
	{TopBackLeft, BottomFrontLeft, TopFrontLeft},
}

// BoxFaces returns a copy of the box triangle index table
func BoxFaces() [][3]int {
	faces := make([][3]int, len(boxFaces))
	copy(faces, boxFaces[:])
	return faces
}

// BoxCorners returns the eight corners of the axis-aligned box [min, max]
// in corner index order
func BoxCorners(min, max core.Vec3) [8]core.Vec3 {
	return [8]core.Vec3{
		BottomFrontLeft:  core.NewVec3(min.X, min.Y, max.Z),
		BottomFrontRight: core.NewVec3(max.X, min.Y, max.Z),
		TopFrontLeft:     core.NewVec3(min.X, max.Y, max.Z),
		TopFrontRight:    core.NewVec3(max.X, max.Y, max.Z),
		TopBackLeft:      core.NewVec3(min.X, max.Y, min.Z),
		TopBackRight:     core.NewVec3(max.X, max.Y, min.Z),
		BottomBackLeft:   core.NewVec3(min.X, min.Y, min.Z),
		BottomBackRight:  core.NewVec3(max.X, min.Y, min.Z),
	}
}

// UnitBoxCorners returns the corners of the unit cube centered at the origin
func UnitBoxCorners() [8]core.Vec3 {
	return BoxCorners(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5))
}

// NewBoxMesh creates the 12-triangle mesh of a box from its corners
func NewBoxMesh(corners [8]core.Vec3) *Mesh {
	vertices := make([]core.Vec3, len(corners))
	copy(vertices, corners[:])

	triangles := make([]Triangle, len(boxFaces))
	for i, face := range boxFaces {
		triangles[i] = NewTriangle(vertices[face[0]], vertices[face[1]], vertices[face[2]])
	}

	return &Mesh{
		Vertices:  vertices,
		Triangles: triangles,
	}
}
