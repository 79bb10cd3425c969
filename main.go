package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

func newApp() *cli.App {
	// The default version flag claims -v, which is the verbose flag here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted-raytracer"
	app.Usage = "render a closed box scene with recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render the box scene once and write it to a PNG file. The per-tile timing
table is logged when the frame completes.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:  "serve",
			Usage: "serve an interactive view of the scene",
			Description: `
Start a web server that shows the last rendered frame. Lights, the bounding
volume, the view direction and the worker count can be changed from the page;
every change triggers a new render.`,
			Flags:  cmd.ServeFlags,
			Action: cmd.Serve,
		},
		{
			Name:  "bounds",
			Usage: "print the bounding volumes of the detailed mesh",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "candidates",
					Usage: "also print every orientation tried by the oriented box search",
				},
			}, cmd.SceneFlags...),
			Action: cmd.PrintBounds,
		},
	}
	return app
}

// run executes the app and returns the process exit code
func run(args []string) int {
	if err := newApp().Run(args); err != nil {
		log.New("raytracer").Errorf("%v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args))
}
