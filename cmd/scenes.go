package cmd

import (
	"bytes"
	"fmt"

	"github.com/JulianGoede/rtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scene registry with the suggested
// render settings for each scene.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Aspect", "Width", "Samples", "Depth", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%.3f", info.NativeAspect),
			fmt.Sprintf("%d", info.Width),
			fmt.Sprintf("%d", info.SamplesPerPixel),
			fmt.Sprintf("%d", info.MaxDepth),
			info.Description,
		})
	}
	table.Render()

	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}
