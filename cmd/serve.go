package cmd

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/web/server"
)

// ServeFlags extend the scene flags with the listen port.
var ServeFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "port, p",
		Value: 8080,
		Usage: "port to listen on",
	},
	cli.IntFlag{
		Name:  "depth",
		Value: renderer.DefaultConfig().Integrator.MaxDepth,
		Usage: "maximum recursion depth for reflected and transmitted rays",
	},
}, SceneFlags...)

// Serve the interactive box scene over HTTP.
func Serve(ctx *cli.Context) error {
	// Log lines also go to the web console. SetSink resets the level, so
	// the verbosity flags are applied afterwards.
	console := server.NewConsole(0)
	log.SetSink(io.MultiWriter(os.Stdout, console))
	setupLogging(ctx)

	s, err := buildScene(ctx)
	if err != nil {
		return err
	}
	checkWorkers(s.Threading)

	cfg := renderer.DefaultConfig()
	cfg.Integrator.MaxDepth = ctx.Int("depth")

	return server.NewServer(ctx.Int("port"), s, cfg, console).Start()
}
