package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// phong computes the local color at a hit. Each unshadowed light adds its
// weighted diffuse and specular terms, then the running sum is scaled by that
// light's falloff.
func (w *Whitted) phong(ray core.Ray, hit SurfaceHit) core.Vec3 {
	m := hit.Material

	color := m.Ambient
	if !w.anyLightActive() {
		color = core.Vec3{}
	}

	for _, light := range w.lights {
		if !light.Active || w.inShadow(hit, light) {
			continue
		}

		toLight := light.Position.Subtract(hit.Point).Normalize()

		diffuseFactor := math.Max(hit.Normal.Dot(toLight), 0)
		diffuse := m.Diffuse.MultiplyVec(light.Color).Multiply(diffuseFactor * light.Intensity)

		reflected := toLight.Negate().Reflect(hit.Normal)
		specularFactor := math.Pow(math.Max(ray.Direction.Dot(reflected), 0), m.Shininess)
		specular := m.Specular.Multiply(specularFactor)

		color = color.
			Add(diffuse.Multiply(w.config.DiffuseWeight)).
			Add(specular.Multiply(w.config.SpecularWeight))

		color = color.Multiply(light.Attenuation(light.Position.Distance(hit.Point)))
	}

	return color
}

// inShadow casts a shadow ray from the hit toward the light
func (w *Whitted) inShadow(hit SurfaceHit, light scene.PointLight) bool {
	toLight := light.Position.Subtract(hit.Point).Normalize()
	origin := hit.Point.Add(toLight.Multiply(w.config.ShadowBias))

	return w.occluded(core.NewRay(origin, toLight), light.Position.Distance(origin), hit.Category)
}

func (w *Whitted) anyLightActive() bool {
	for _, light := range w.lights {
		if light.Active {
			return true
		}
	}
	return false
}
