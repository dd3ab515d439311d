package main

import (
	"os"

	"github.com/JulianGoede/rtracer/cmd"
	"github.com/JulianGoede/rtracer/pkg/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

var logger = log.New("rtracer")

func newApp() *cli.App {
	// The default version flag claims "version, v"; the global -v flag
	// below needs the short name for verbose logging.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rtracer"
	app.Usage = "render scenes with a progressive path tracer"
	app.Version = "0.2.0"
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
			Usage: "render a single frame of a built-in scene",
			Description: `
Render one frame and write it to disk. Flags left at zero fall back to
the scene's suggested settings; the output format follows the file
extension of --out (.png or .ppm).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "default",
					Usage:  "scene to render (see the scenes command)",
					EnvVar: "RTRACER_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Usage:  "frame width, 0 uses the scene default",
					EnvVar: "RTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Usage:  "frame height, 0 derives it from the scene aspect ratio",
					EnvVar: "RTRACER_HEIGHT",
				},
				cli.IntFlag{
					Name:   "samples",
					Usage:  "samples per pixel, 0 uses the scene default",
					EnvVar: "RTRACER_SAMPLES",
				},
				cli.IntFlag{
					Name:   "depth",
					Usage:  "maximum ray bounces, 0 uses the scene default",
					EnvVar: "RTRACER_DEPTH",
				},
				cli.IntFlag{
					Name:   "workers",
					Usage:  "render workers, 0 uses one per CPU",
					EnvVar: "RTRACER_WORKERS",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Usage:  "tile edge length in pixels, 0 uses the default",
					EnvVar: "RTRACER_TILE_SIZE",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  1,
					Usage:  "seed for scene generation and sampling",
					EnvVar: "RTRACER_SEED",
				},
				cli.StringFlag{
					Name:   "out, o",
					Usage:  "output file, defaults to output/<scene>/render_<timestamp>.png",
					EnvVar: "RTRACER_OUT",
				},
				cli.IntFlag{
					Name:   "thumbnail",
					Usage:  "also write a thumbnail scaled to this width",
					EnvVar: "RTRACER_THUMBNAIL",
				},
				cli.BoolFlag{
					Name:   "upload",
					Usage:  "publish the frame to S3 after rendering",
					EnvVar: "RTRACER_UPLOAD",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the progressive preview UI",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "port, p",
					Value:  8080,
					Usage:  "port to listen on",
					EnvVar: "RTRACER_PORT",
				},
			},
			Action: cmd.Serve,
		},
	}
	return app
}

func main() {
	// Flag EnvVar bindings read the environment, so load .env first.
	// A missing file is fine.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
