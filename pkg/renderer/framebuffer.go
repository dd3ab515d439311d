package renderer

import (
	"image"
	"image/color"

	"github.com/JulianGoede/rtracer/pkg/core"
)

// PixelStats tracks accumulated samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Sum of linear color samples
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(sample core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(sample)
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.NewVec3(0, 0, 0)
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Framebuffer accumulates color samples per pixel across render passes.
// Row 0 is the top row of the image. Samples stay linear; gamma
// correction happens at image extraction.
type Framebuffer struct {
	width  int
	height int
	pixels [][]PixelStats
}

// NewFramebuffer creates an empty framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	pixels := make([][]PixelStats, height)
	for y := range pixels {
		pixels[y] = make([]PixelStats, width)
	}
	return &Framebuffer{width: width, height: height, pixels: pixels}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// AddSample accumulates a linear color sample at pixel (x, y).
// Concurrent calls are safe as long as no two goroutines touch the
// same pixel, which the disjoint tile bounds guarantee.
func (fb *Framebuffer) AddSample(x, y int, sample core.Vec3) {
	fb.pixels[y][x].AddSample(sample)
}

// SampleCount returns the number of samples taken at pixel (x, y)
func (fb *Framebuffer) SampleCount(x, y int) int {
	return fb.pixels[y][x].SampleCount
}

// ColorAt returns the averaged linear color at pixel (x, y)
func (fb *Framebuffer) ColorAt(x, y int) core.Vec3 {
	return fb.pixels[y][x].Color()
}

// ToImage converts the accumulated samples to an 8-bit RGBA image,
// applying gamma correction and clamping
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, colorToRGBA(fb.pixels[y][x].Color()))
		}
	}
	return img
}

// Stats summarizes the accumulated samples against the given per-pixel
// target
func (fb *Framebuffer) Stats(targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: fb.width * fb.height,
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	luminanceSum := 0.0
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			pixel := &fb.pixels[y][x]
			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
			luminanceSum += pixel.Color().Luminance()
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
		stats.AverageLuminance = luminanceSum / float64(stats.TotalPixels)
	}
	return stats
}

// colorToRGBA converts a linear color to an 8-bit pixel with gamma 2.0.
// Components clamp to just under 1 so a full-bright channel maps to 255
// rather than wrapping.
func colorToRGBA(colorVec core.Vec3) color.RGBA {
	corrected := colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)
	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}
