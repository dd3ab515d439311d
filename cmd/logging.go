package cmd

import (
	"github.com/JulianGoede/rtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("rtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
