package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math/rand"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/JulianGoede/rtracer/pkg/output"
	"github.com/JulianGoede/rtracer/pkg/renderer"
	"github.com/JulianGoede/rtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFrame renders a single frame of a built-in scene and writes it
// to disk. Flags left at zero fall back to the scene's suggested
// settings.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	info, err := scene.Lookup(name)
	if err != nil {
		return err
	}
	width, height, aspect := info.FrameSize(ctx.Int("width"), ctx.Int("height"))

	samples := ctx.Int("samples")
	if samples <= 0 {
		samples = info.SamplesPerPixel
	}
	depth := ctx.Int("depth")
	if depth <= 0 {
		depth = info.MaxDepth
	}

	seed := ctx.Int64("seed")
	sceneObj, err := scene.Create(name, aspect, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	options := renderer.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        depth,
		NumWorkers:      ctx.Int("workers"),
		TileSize:        ctx.Int("tile-size"),
		Seed:            seed,
	}
	frameRenderer, err := renderer.NewRenderer(sceneObj, options)
	if err != nil {
		return err
	}

	logger.Noticef("rendering %s at %dx%d, %d samples per pixel, depth %d",
		name, width, height, samples, depth)

	start := time.Now()
	img, stats, err := frameRenderer.Render(context.Background())
	if err != nil {
		return err
	}
	displayRenderStats(stats, time.Since(start))

	outPath := ctx.String("out")
	if outPath == "" {
		outPath = defaultOutputPath(name, time.Now())
	}
	if err := output.Save(outPath, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", outPath)

	if thumbWidth := ctx.Int("thumbnail"); thumbWidth > 0 {
		thumbPath := thumbnailPath(outPath)
		if err := output.Save(thumbPath, output.Thumbnail(img, uint(thumbWidth))); err != nil {
			return err
		}
		logger.Noticef("wrote %s", thumbPath)
	}

	if ctx.Bool("upload") {
		url, err := uploadFrame(context.Background(), name, outPath, img)
		if err != nil {
			return err
		}
		logger.Noticef("published %s", url)
	}

	return nil
}

// defaultOutputPath places frames under output/<scene>/ with a
// timestamped filename.
func defaultOutputPath(sceneName string, now time.Time) string {
	filename := fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))
	return filepath.Join("output", sceneName, filename)
}

// thumbnailPath derives the thumbnail filename from the frame path,
// keeping the extension.
func thumbnailPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + "_thumb" + ext
}

func uploadFrame(ctx context.Context, sceneName, outPath string, img image.Image) (string, error) {
	config, err := output.S3ConfigFromEnv()
	if err != nil {
		return "", err
	}
	publisher, err := output.NewPublisher(config)
	if err != nil {
		return "", err
	}

	// Uploads are always PNG regardless of the local format.
	base := filepath.Base(outPath)
	key := path.Join("renders", sceneName, strings.TrimSuffix(base, filepath.Ext(base))+".png")
	return publisher.Publish(ctx, img, key)
}

func displayRenderStats(stats renderer.RenderStats, elapsed time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Avg samples", "Avg luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%.4f", stats.AverageLuminance),
		elapsed.Round(time.Millisecond).String(),
	})
	table.Render()

	logger.Noticef("frame statistics\n%s", buf.String())
}
