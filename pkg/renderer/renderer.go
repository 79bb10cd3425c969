package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains the renderer settings
type Config struct {
	Integrator integrator.Config
}

// DefaultConfig returns the default renderer settings
func DefaultConfig() Config {
	return Config{
		Integrator: integrator.DefaultConfig(),
	}
}

// Renderer turns a scene into a framebuffer, one full pass at a time
type Renderer struct {
	scene       *scene.Scene
	config      Config
	framebuffer *Framebuffer
	stats       RenderStats
	logger      log.Logger
}

// NewRenderer creates a renderer for a scene
func NewRenderer(s *scene.Scene, config Config) *Renderer {
	return &Renderer{
		scene:  s,
		config: config,
		logger: log.New("renderer"),
	}
}

// Render traces every pixel of the current scene configuration into a freshly
// allocated framebuffer. The scene must not change until Render returns.
func (r *Renderer) Render() (RenderStats, error) {
	if r.scene == nil {
		return RenderStats{}, ErrNoScene
	}

	threading, err := ParseThreading(r.scene.Threading)
	if err != nil {
		return RenderStats{}, err
	}

	width, height := r.scene.Width, r.scene.Height
	r.logger.Infof("Rendering %dx%d from the %s with %d workers", width, height, r.scene.Plane.View, threading)

	start := time.Now()

	camera := NewCamera(r.scene.Plane)
	tracer := integrator.NewWhitted(r.scene, r.config.Integrator)
	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, threading)

	tileStats, err := renderTiles(tiles, NewTileRenderer(camera, tracer), fb)
	if err != nil {
		return RenderStats{}, fmt.Errorf("rendering tiles: %w", err)
	}

	stats := RenderStats{
		Width:     width,
		Height:    height,
		Threading: threading,
		Tiles:     tileStats,
		Duration:  time.Since(start),
	}

	r.framebuffer = fb
	r.stats = stats

	r.logger.Noticef("Rendered %d pixels in %s", stats.TotalPixels(), stats.Duration)
	return stats, nil
}

// Framebuffer returns the result of the last successful render, or nil
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.framebuffer
}

// Stats returns the statistics of the last successful render
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// Scene returns the scene being rendered
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}
