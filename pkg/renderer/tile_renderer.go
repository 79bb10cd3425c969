package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given camera and integrator
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders pixels within the specified bounds into the
// framebuffer. It writes nothing outside the bounds.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer) (TileStats, error) {
	if !bounds.In(fb.Bounds()) {
		return TileStats{}, fmt.Errorf("tile %v in %v: %w", bounds, fb.Bounds(), ErrTileOutOfBounds)
	}

	start := time.Now()
	stats := TileStats{Bounds: bounds}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, distance := tr.integrator.Trace(tr.camera.GetRay(i, j), 1)
			fb.Set(i, j, color)

			stats.Pixels++
			stats.Distance += distance
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
