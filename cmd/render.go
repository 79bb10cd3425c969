package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// RenderFlags extend the scene flags with the tracer and output settings.
var RenderFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "depth",
		Value: renderer.DefaultConfig().Integrator.MaxDepth,
		Usage: "maximum recursion depth for reflected and transmitted rays",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame",
	},
}, SceneFlags...)

// Render a still frame of the box scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := buildScene(ctx)
	if err != nil {
		return err
	}
	checkWorkers(s.Threading)

	cfg := renderer.DefaultConfig()
	cfg.Integrator.MaxDepth = ctx.Int("depth")

	r := renderer.NewRenderer(s, cfg)
	stats, err := r.Render()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame statistics\n%s", buf.String())

	out := ctx.String("out")
	if err := writePNG(out, r.Framebuffer()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)
	return nil
}

func writePNG(path string, fb *renderer.Framebuffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
