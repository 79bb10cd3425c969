package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material holds the Phong coefficients and the recursion weights of a surface
type Material struct {
	Ambient      core.Vec3
	Diffuse      core.Vec3
	Specular     core.Vec3
	Shininess    float64
	Reflectivity float64 // Weight of the reflected ray
	Refractivity float64 // Weight of the transmitted ray
}

func grey(v float64) core.Vec3 {
	return core.NewVec3(v, v, v)
}

// WallMaterial is a matte white with a faint reflection
func WallMaterial() Material {
	return Material{
		Ambient:      grey(0.15),
		Diffuse:      grey(0.75),
		Specular:     grey(0.15),
		Shininess:    1,
		Reflectivity: 0.01,
	}
}

// CubeMaterial is the semi-transparent red of the cube
func CubeMaterial() Material {
	return Material{
		Ambient:      core.NewVec3(0.25, 0, 0),
		Diffuse:      core.NewVec3(0.75, 0, 0),
		Specular:     core.NewVec3(0.75, 0, 0),
		Shininess:    4,
		Reflectivity: 0.1,
		Refractivity: 0.6,
	}
}

// MirrorMaterial is dark with a strong reflection
func MirrorMaterial() Material {
	return Material{
		Ambient:      grey(0.1),
		Diffuse:      grey(0.1),
		Specular:     grey(1),
		Shininess:    25,
		Reflectivity: 0.7,
	}
}

// SphereMaterial is a shiny blue
func SphereMaterial() Material {
	return Material{
		Ambient:      core.NewVec3(0, 0, 0.25),
		Diffuse:      core.NewVec3(0, 0, 0.75),
		Specular:     core.NewVec3(0, 0, 0.75),
		Shininess:    35,
		Reflectivity: 0.01,
	}
}

// BoundingVolumeMaterial is a mostly transparent grey
func BoundingVolumeMaterial() Material {
	return Material{
		Ambient:      grey(0.2),
		Diffuse:      grey(0.2),
		Specular:     grey(0.2),
		Shininess:    1,
		Reflectivity: 0.1,
		Refractivity: 0.8,
	}
}

// DetailedMeshMaterial is a green with a soft reflection
func DetailedMeshMaterial() Material {
	return Material{
		Ambient:      core.NewVec3(0, 0.55, 0),
		Diffuse:      core.NewVec3(0, 0.75, 0),
		Specular:     core.NewVec3(0, 0.75, 0),
		Shininess:    2,
		Reflectivity: 0.2,
	}
}
