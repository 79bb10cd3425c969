package cmd

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneFlags are shared by every command that builds the box scene.
var SceneFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 640,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 640,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "threads, t",
		Value: 4,
		Usage: "number of render workers (1, 2, 4, 8 or 16)",
	},
	cli.StringFlag{
		Name:  "view",
		Value: "front",
		Usage: "view direction (front, back, top, bottom, left, right)",
	},
	cli.StringFlag{
		Name:  "bv",
		Value: "aabb",
		Usage: "bounding volume around the detailed mesh (none, aabb, oobb)",
	},
	cli.BoolTFlag{
		Name:  "show-bv",
		Usage: "draw the bounding volume",
	},
	cli.StringFlag{
		Name:  "mesh",
		Usage: "load the detailed mesh from an .obj or .ply file",
	},
	cli.Float64Flag{
		Name:  "oobb-step",
		Value: bounds.DefaultOOBBConfig().AngleStep,
		Usage: "angle step in degrees of the oriented bounding box search",
	},
}

// sceneConfig turns the scene flags into a box scene configuration.
func sceneConfig(ctx *cli.Context) (scene.BoxSceneConfig, error) {
	cfg := scene.DefaultBoxSceneConfig()
	cfg.Width = ctx.Int("width")
	cfg.Height = ctx.Int("height")
	cfg.Threading = ctx.Int("threads")
	cfg.ShowBoundingVolume = ctx.BoolT("show-bv")
	cfg.OOBB.AngleStep = ctx.Float64("oobb-step")

	view, err := scene.ParseView(ctx.String("view"))
	if err != nil {
		return cfg, err
	}
	cfg.View = view

	kind, err := bounds.ParseKind(ctx.String("bv"))
	if err != nil {
		return cfg, err
	}
	cfg.BoundingVolume = kind

	if _, err := renderer.ParseThreading(cfg.Threading); err != nil {
		return cfg, err
	}

	if path := ctx.String("mesh"); path != "" {
		data, err := loaders.LoadMesh(path)
		if err != nil {
			return cfg, err
		}
		cfg.DetailedModel = &scene.Model{Vertices: data.Vertices, Faces: data.Faces}
		logger.Infof("Loaded detailed mesh %s: %d vertices, %d triangles", path, len(data.Vertices), len(data.Faces))
	}

	return cfg, nil
}

// buildScene creates the box scene described by the command flags.
func buildScene(ctx *cli.Context) (*scene.Scene, error) {
	cfg, err := sceneConfig(ctx)
	if err != nil {
		return nil, err
	}

	s, err := scene.NewBoxScene(cfg)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	return s, nil
}

// checkWorkers warns when more workers are requested than there are logical cores.
func checkWorkers(workers int) {
	cores, err := cpu.Counts(true)
	if err != nil {
		logger.Debugf("could not count cpu cores: %v", err)
		return
	}

	logger.Infof("Host has %d logical cores", cores)
	if workers > cores {
		logger.Warningf("%d workers requested but only %d logical cores available", workers, cores)
	}
}
