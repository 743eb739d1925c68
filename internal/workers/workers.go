package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers as one unit.
type Workers struct {
	workers []Worker
}

// New groups the given workers. Nil workers are skipped.
func New(ws ...Worker) *Workers {
	group := &Workers{workers: make([]Worker, 0, len(ws))}
	for _, w := range ws {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Run starts every worker in its own goroutine and blocks until all have
// returned. The first worker to fail cancels the others; its error is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

// Len returns the number of workers in the group.
func (w *Workers) Len() int {
	return len(w.workers)
}
