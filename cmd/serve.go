package cmd

import (
	"fmt"

	"github.com/JulianGoede/rtracer/web/server"
	"github.com/urfave/cli"
)

// Serve starts the progressive preview web server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	addr := fmt.Sprintf(":%d", ctx.Int("port"))
	logger.Noticef("serving progressive previews on http://localhost%s", addr)
	return server.New().ListenAndServe(addr)
}
