package renderer

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"runtime"

	"github.com/JulianGoede/rtracer/pkg/core"
)

// DefaultTileSize is the tile edge length used when Options.TileSize is zero
const DefaultTileSize = 64

// Options configures a render
type Options struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Rays traced per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel workers; 0 selects the CPU count
	TileSize        int   // Tile edge length; 0 selects DefaultTileSize
	Seed            int64 // Base seed for the per-tile random streams
}

// withDefaults fills zero values with their defaults
func (o Options) withDefaults() Options {
	if o.NumWorkers == 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if o.TileSize == 0 {
		o.TileSize = DefaultTileSize
	}
	return o
}

// Validate checks that the options describe a renderable image
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, o.SamplesPerPixel)
	}
	if o.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, o.MaxDepth)
	}
	if o.NumWorkers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, o.NumWorkers)
	}
	if o.TileSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTileSize, o.TileSize)
	}
	return nil
}

// Scene supplies the renderer with geometry, sky colors and camera placement
type Scene interface {
	GetWorld() Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetCameraConfig() CameraConfig
}

// Renderer traces a scene into a framebuffer using a pool of tile
// workers. A Renderer renders one frame; create a new one for the next.
type Renderer struct {
	scene      Scene
	camera     *Camera
	integrator *Integrator
	options    Options
	frame      *Framebuffer
	tiles      []*Tile
	workerPool *WorkerPool
}

// NewRenderer validates the options, builds the camera and prepares the
// tile grid
func NewRenderer(scene Scene, options Options) (*Renderer, error) {
	options = options.withDefaults()
	if err := options.Validate(); err != nil {
		return nil, err
	}

	camera, err := NewCamera(scene.GetCameraConfig())
	if err != nil {
		return nil, err
	}

	topColor, bottomColor := scene.GetBackgroundColors()

	r := &Renderer{
		scene:      scene,
		camera:     camera,
		integrator: NewIntegrator(scene.GetWorld(), topColor, bottomColor),
		options:    options,
		frame:      NewFramebuffer(options.Width, options.Height),
		tiles:      NewTileGrid(options.Width, options.Height, options.TileSize, options.Seed),
	}
	r.workerPool = newWorkerPool(r, options.NumWorkers, len(r.tiles))
	return r, nil
}

// Options returns the effective options after defaults were applied
func (r *Renderer) Options() Options {
	return r.options
}

// Render traces the full sample budget in a single pass and returns the
// finished image together with its render statistics
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	r.workerPool.Start()
	defer r.workerPool.Stop()

	stats, err := r.renderPass(ctx, r.options.SamplesPerPixel)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return r.frame.ToImage(), stats, nil
}

// renderPass brings every pixel up to the cumulative target sample
// count. All tiles are submitted up front and every result is drained
// before returning, so a failed pass leaves no stray tasks behind.
func (r *Renderer) renderPass(ctx context.Context, targetSamples int) (RenderStats, error) {
	for _, tile := range r.tiles {
		r.workerPool.SubmitTask(TileTask{Ctx: ctx, Tile: tile, TargetSamples: targetSamples})
	}

	var firstErr error
	for range r.tiles {
		result, ok := r.workerPool.GetResult()
		if !ok {
			return RenderStats{}, fmt.Errorf("worker pool closed before the pass finished")
		}
		if result.Err != nil && firstErr == nil {
			firstErr = result.Err
		}
	}
	if firstErr != nil {
		return RenderStats{}, firstErr
	}

	return r.frame.Stats(targetSamples), nil
}

// renderTile traces every pixel in the tile's bounds up to the target
// sample count, writing into the shared framebuffer. Tiles never
// overlap, so no locking is needed.
func (r *Renderer) renderTile(task TileTask) {
	bounds := task.Tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r.samplePixel(x, y, task.TargetSamples, task.Tile.Random)
		}
	}
}

// samplePixel tops the pixel up to targetSamples, jittering every
// camera ray within the pixel footprint. Pixels already at the target
// from an earlier pass take no new samples.
func (r *Renderer) samplePixel(x, y, targetSamples int, random *rand.Rand) {
	width := float64(r.options.Width)
	height := float64(r.options.Height)

	for r.frame.SampleCount(x, y) < targetSamples {
		s := (float64(x) + random.Float64()) / width
		t := (float64(r.options.Height-1-y) + random.Float64()) / height

		ray := r.camera.GetRay(s, t, random)
		r.frame.AddSample(x, y, r.integrator.RayColor(ray, r.options.MaxDepth, random))
	}
}
