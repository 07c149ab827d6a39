package renderer

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TileFunc renders a single tile
type TileFunc func(ctx context.Context, tile *Tile) (RenderStats, error)

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile with fn and returns the merged statistics.
// The first error cancels the remaining tiles and is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, fn TileFunc) (RenderStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan *Tile)

	var mu sync.Mutex
	var total RenderStats

	g.Go(func() error {
		defer close(taskQueue)
		for _, tile := range tiles {
			select {
			case taskQueue <- tile:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for tile := range taskQueue {
				stats, err := fn(ctx, tile)
				if err != nil {
					return err
				}

				mu.Lock()
				total.merge(stats)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}
	total.NumWorkers = wp.numWorkers
	return total, nil
}
