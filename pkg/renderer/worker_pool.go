package renderer

import (
	"context"
	"image"
	"math/rand"
	"sync"
)

// Tile is a rectangular region of the image rendered as a unit
type Tile struct {
	ID     int             // Position in the grid, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-local generator, persists across passes
}

// NewTile creates a tile whose random stream derives from the render
// seed and the tile's position in the grid. Tying the stream to the
// tile rather than the worker keeps output independent of the worker
// count.
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid covers the image with tileSize x tileSize tiles, clipping
// the last row and column at the image edge
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	var tiles []*Tile
	tileID := 0
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}
	return tiles
}

// TileTask represents a tile rendering task for the worker pool.
// The context rides along so workers can skip tiles once a render is
// cancelled mid-pass.
type TileTask struct {
	Ctx           context.Context
	Tile          *Tile
	TargetSamples int // Cumulative per-pixel sample target
}

// TileResult reports a finished or skipped tile
type TileResult struct {
	TileID int
	Err    error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	renderer    *Renderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// newWorkerPool creates a pool of workers rendering tiles for the given
// renderer. The queues are buffered for queueDepth tasks so a full pass
// can be submitted without blocking.
func newWorkerPool(renderer *Renderer, numWorkers, queueDepth int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueDepth),
		resultQueue: make(chan TileResult, queueDepth),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := task.Ctx.Err(); err != nil {
			w.resultQueue <- TileResult{TileID: task.Tile.ID, Err: err}
			continue
		}

		w.renderer.renderTile(task)
		w.resultQueue <- TileResult{TileID: task.Tile.ID}
	}
}
