package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an omnidirectional light with distance falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
	Constant  float64
	Linear    float64
	Quadratic float64
	Active    bool
}

// NewPointLight creates an active point light with the standard falloff
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Constant:  1.0,
		Linear:    0.09,
		Quadratic: 0.032,
		Active:    true,
	}
}

// Attenuation returns 1 / (constant + linear*d + quadratic*d^2)
func (l PointLight) Attenuation(distance float64) float64 {
	denom := l.Constant + l.Linear*distance + l.Quadratic*distance*distance
	if denom <= 0 {
		return 1.0
	}
	return 1.0 / denom
}
