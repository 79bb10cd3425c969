package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace returns the color seen along the ray and the distance the ray and
	// all of its descendants traveled. Primary rays are traced at depth 1.
	Trace(ray core.Ray, depth int) (core.Vec3, float64)
}

// FogConfig parameterises the distance falloff clamp(-log(d+Offset)*Scale+Bias, 0, 1)
type FogConfig struct {
	Offset float64
	Scale  float64
	Bias   float64
}

// DefaultFogConfig returns the falloff used by the box scene
func DefaultFogConfig() FogConfig {
	return FogConfig{
		Offset: 0.3,
		Scale:  0.15,
		Bias:   0.95,
	}
}

// Attenuation returns the fog factor for a traveled distance
func (f FogConfig) Attenuation(distance float64) float64 {
	a := -math.Log(distance+f.Offset)*f.Scale + f.Bias
	return math.Max(0, math.Min(1, a))
}

// Config contains the tracer settings
type Config struct {
	MaxDepth       int       // Deepest recursion level that is still traced
	MinIntensity   float64   // Secondary rays are only spawned above this intensity
	ShadowBias     float64   // Offset of shadow ray origins along the light direction
	DiffuseWeight  float64   // Weight of the diffuse term per light
	SpecularWeight float64   // Weight of the specular term per light
	Background     core.Vec3 // Color returned on a miss or when recursion ends
	Fog            FogConfig
}

// DefaultConfig returns the tracer settings used by the box scene
func DefaultConfig() Config {
	return Config{
		MaxDepth:       3,
		MinIntensity:   0.05,
		ShadowBias:     1e-4,
		DiffuseWeight:  0.8,
		SpecularWeight: 0.3,
		Background:     core.Vec3{},
		Fog:            DefaultFogConfig(),
	}
}

// Epsilon is the minimum distance a shadow ray must travel before an occluder counts
const Epsilon = geometry.Epsilon
