package cmd

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JulianGoede/rtracer/pkg/log"
	"github.com/JulianGoede/rtracer/pkg/output"
	"github.com/JulianGoede/rtracer/pkg/renderer"
	"github.com/JulianGoede/rtracer/pkg/scene"
	"github.com/urfave/cli"
)

// renderContext builds a cli context with the render command's flag set
// and the given overrides applied.
func renderContext(t *testing.T, args map[string]string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.String("scene", "default", "")
	set.Int("width", 0, "")
	set.Int("height", 0, "")
	set.Int("samples", 0, "")
	set.Int("depth", 0, "")
	set.Int("workers", 0, "")
	set.Int("tile-size", 0, "")
	set.Int64("seed", 1, "")
	set.String("out", "", "")
	set.Int("thumbnail", 0, "")
	set.Bool("upload", false, "")
	for name, value := range args {
		if err := set.Set(name, value); err != nil {
			t.Fatalf("Failed to set --%s=%s: %v", name, value, err)
		}
	}
	return cli.NewContext(nil, set, nil)
}

func TestRenderFrame_WritesFrame(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "frame.png")
	ctx := renderContext(t, map[string]string{
		"width":   "32",
		"samples": "2",
		"depth":   "4",
		"out":     outPath,
	})

	if err := RenderFrame(ctx); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	file, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Expected frame at %s: %v", outPath, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Expected a decodable PNG, got %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 18 {
		t.Errorf("Expected 32x18 frame from the 16:9 default scene, got %v", img.Bounds())
	}
}

func TestRenderFrame_WritesThumbnail(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "frame.png")
	ctx := renderContext(t, map[string]string{
		"width":     "32",
		"samples":   "1",
		"depth":     "2",
		"out":       outPath,
		"thumbnail": "16",
	})

	if err := RenderFrame(ctx); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	file, err := os.Open(filepath.Join(filepath.Dir(outPath), "frame_thumb.png"))
	if err != nil {
		t.Fatalf("Expected thumbnail next to the frame: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Expected a decodable thumbnail, got %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("Expected thumbnail width 16, got %d", img.Bounds().Dx())
	}
}

func TestRenderFrame_UnknownScene(t *testing.T) {
	ctx := renderContext(t, map[string]string{"scene": "cornell-box"})

	if err := RenderFrame(ctx); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRenderFrame_UploadWithoutConfig(t *testing.T) {
	t.Setenv("RTRACER_S3_ACCESS_KEY", "")
	t.Setenv("RTRACER_S3_SECRET_KEY", "")
	t.Setenv("RTRACER_S3_BUCKET", "")

	ctx := renderContext(t, map[string]string{
		"width":   "16",
		"height":  "16",
		"samples": "1",
		"depth":   "2",
		"out":     filepath.Join(t.TempDir(), "frame.png"),
		"upload":  "true",
	})

	if err := RenderFrame(ctx); !errors.Is(err, output.ErrMissingS3Config) {
		t.Errorf("Expected ErrMissingS3Config, got %v", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2021, 2, 13, 9, 30, 5, 0, time.UTC)

	expected := filepath.Join("output", "random-spheres", "render_20210213_093005.png")
	if got := defaultOutputPath("random-spheres", now); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestThumbnailPath(t *testing.T) {
	tests := []struct {
		outPath  string
		expected string
	}{
		{"output/default/render.png", "output/default/render_thumb.png"},
		{"frame.ppm", "frame_thumb.ppm"},
	}

	for _, tt := range tests {
		if got := thumbnailPath(tt.outPath); got != tt.expected {
			t.Errorf("Expected %q for %q, got %q", tt.expected, tt.outPath, got)
		}
	}
}

func TestDisplayRenderStats(t *testing.T) {
	defer func() {
		log.SetSink(os.Stderr)
		log.SetLevel(log.Notice)
	}()
	var buf bytes.Buffer
	log.SetSink(&buf)

	stats := renderer.RenderStats{
		TotalPixels:      4,
		TotalSamples:     16,
		AverageSamples:   4.0,
		AverageLuminance: 0.25,
	}
	displayRenderStats(stats, 1500*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"Avg samples", "4.0", "0.2500", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected stats output to contain %q, got %q", want, out)
		}
	}
}
