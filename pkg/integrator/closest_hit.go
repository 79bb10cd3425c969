package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SurfaceHit is a hit together with what was hit
type SurfaceHit struct {
	geometry.Hit
	Category scene.Category
	Material scene.Material
}

// volumeGate intersects the bounding volume at most once per query
type volumeGate struct {
	mesh    *geometry.Mesh
	ray     core.Ray
	tested  bool
	hit     geometry.Hit
	hitting bool
}

func (g *volumeGate) test() (geometry.Hit, bool) {
	if !g.tested {
		g.hit, g.hitting = g.mesh.Intersect(g.ray)
		g.tested = true
	}
	return g.hit, g.hitting
}

func (w *Whitted) newGate(ray core.Ray) *volumeGate {
	if w.volume == nil || w.bvKind == bounds.None {
		return nil
	}
	return &volumeGate{mesh: w.volume.Mesh(w.bvKind), ray: ray}
}

// culled reports whether the gate rules out the volume's target for this ray
func (w *Whitted) culled(gate *volumeGate, c scene.Category) bool {
	if gate == nil || c != w.volume.Target {
		return false
	}
	_, ok := gate.test()
	return !ok
}

// ClosestHit finds the nearest surface along the ray. On primary rays the
// wall the camera looks through is skipped.
func (w *Whitted) ClosestHit(ray core.Ray, primary bool) (SurfaceHit, bool) {
	var closest SurfaceHit
	hitAnything := false

	consider := func(hit geometry.Hit, c scene.Category, m scene.Material) {
		if !hitAnything || hit.Distance < closest.Distance {
			closest = SurfaceHit{Hit: hit, Category: c, Material: m}
			hitAnything = true
		}
	}

	gate := w.newGate(ray)

	for c, obj := range w.objects {
		category := scene.Category(c)
		if obj == nil || (primary && category == w.viewWall) {
			continue
		}

		switch o := obj.(type) {
		case *scene.SphereObject:
			if hit, ok := o.Sphere.Intersect(ray); ok {
				consider(hit, category, o.Material)
			}
		case *scene.BoundingVolumeObject:
			if gate == nil || !w.showBV {
				continue
			}
			if hit, ok := gate.test(); ok {
				consider(hit, category, o.Material)
			}
		case *scene.MeshObject:
			if w.culled(gate, category) {
				continue
			}
			if hit, ok := o.Mesh.Intersect(ray); ok {
				consider(hit, category, o.Material)
			}
		}
	}

	return closest, hitAnything
}

// occluded reports whether anything lies strictly between the surface and a
// point at the given distance along the shadow ray
func (w *Whitted) occluded(ray core.Ray, maxDistance float64, from scene.Category) bool {
	blocks := func(hit geometry.Hit, ok bool) bool {
		return ok && hit.Distance > Epsilon && hit.Distance < maxDistance
	}

	gate := w.newGate(ray)

	for c, obj := range w.objects {
		category := scene.Category(c)
		if obj == nil {
			continue
		}

		switch o := obj.(type) {
		case *scene.SphereObject:
			if blocks(o.Sphere.Intersect(ray)) {
				return true
			}
		case *scene.BoundingVolumeObject:
			// Only an active, visible volume casts a shadow, and never on
			// itself or the object it bounds
			if gate == nil || !w.showBV || from == category || from == o.Target {
				continue
			}
			if blocks(gate.test()) {
				return true
			}
		case *scene.MeshObject:
			if category == scene.Mirror || w.culled(gate, category) {
				continue
			}
			if blocks(o.Mesh.Intersect(ray)) {
				return true
			}
		}
	}

	return false
}
