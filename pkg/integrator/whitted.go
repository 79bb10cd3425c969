package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Whitted is a recursive ray tracer with Phong shading, hard shadows, mirror
// reflection and straight-through transmission. It works on a snapshot of the
// scene taken at construction and is safe for concurrent use.
type Whitted struct {
	config Config

	objects  [scene.NumCategories]scene.Object
	lights   []scene.PointLight
	viewWall scene.Category
	volume   *scene.BoundingVolumeObject
	bvKind   bounds.Kind
	showBV   bool
}

// NewWhitted snapshots the scene state needed for one render pass
func NewWhitted(s *scene.Scene, config Config) *Whitted {
	w := &Whitted{
		config:   config,
		objects:  s.Objects,
		lights:   append([]scene.PointLight(nil), s.Lights...),
		viewWall: s.Plane.View.Wall(),
		bvKind:   s.BoundingVolume,
		showBV:   s.ShowBoundingVolume,
	}
	if volume, ok := s.Volume(); ok {
		w.volume = volume
	} else {
		w.bvKind = bounds.None
	}
	return w
}

// Config returns the tracer settings
func (w *Whitted) Config() Config {
	return w.config
}

// Trace follows a ray through the scene
func (w *Whitted) Trace(ray core.Ray, depth int) (core.Vec3, float64) {
	if depth > w.config.MaxDepth {
		return w.config.Background, 0
	}

	hit, ok := w.ClosestHit(ray, depth == 1)
	if !ok {
		return w.config.Background, 0
	}

	color := w.phong(ray, hit)

	distance := hit.Distance
	color = color.Multiply(w.config.Fog.Attenuation(distance))

	if color.Intensity() <= w.config.MinIntensity {
		return color, distance
	}

	if hit.Material.Refractivity > 0 {
		transmitted, d := w.Trace(core.NewRay(hit.Point, ray.Direction), depth+1)
		color = color.Add(transmitted.Multiply(hit.Material.Refractivity))
		distance += d
	}

	if hit.Material.Reflectivity > 0 {
		reflected, d := w.Trace(core.NewRay(hit.Point, ray.Direction.Reflect(hit.Normal)), depth+1)
		color = color.Add(reflected.Multiply(hit.Material.Reflectivity))
		distance += d
	}

	return color, distance
}
