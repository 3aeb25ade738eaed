package renderer

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowTask represents a band of scanlines for the worker pool
type RowTask struct {
	Bounds image.Rectangle
	TaskID int // For deterministic ordering
}

// RowResult contains the result from rendering a band
type RowResult struct {
	TaskID int
	Stats  RenderStats
}

// NewRowTasks splits a width x height image into bands of rowsPerTask
// scanlines. The last band may be shorter.
func NewRowTasks(width, height, rowsPerTask int) []RowTask {
	if rowsPerTask <= 0 {
		rowsPerTask = 1
	}

	tasks := make([]RowTask, 0, (height+rowsPerTask-1)/rowsPerTask)
	for y := 0; y < height; y += rowsPerTask {
		tasks = append(tasks, RowTask{
			Bounds: image.Rect(0, y, width, min(y+rowsPerTask, height)),
			TaskID: len(tasks),
		})
	}
	return tasks
}

// WorkerPool renders row bands in parallel with a fixed number of workers
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every task into frame and returns results in TaskID order.
// Tasks must cover disjoint bounds: workers write the frame without locks.
// Run returns once all started tasks finish; if ctx ends first it returns
// ctx's error and the frame is incomplete.
func (wp *WorkerPool) Run(ctx context.Context, frame *Frame, tasks []RowTask) ([]RowResult, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	results := make([]RowResult, len(tasks))
	for i, task := range tasks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stats := wp.raytracer.RenderBounds(task.Bounds, frame)
			results[i] = RowResult{TaskID: task.TaskID, Stats: stats}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Tasks skipped after cancellation leave no error in the group
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
