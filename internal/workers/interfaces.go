// Package workers provides abstractions for managing and running the
// long-lived loops of a memfill run.
// It defines the Worker interface and a Workers aggregate that runs several
// workers concurrently and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal way to stop.
//
// Example implementation:
//
//	type ticker struct{ every time.Duration }
//
//	func (w *ticker) Run(ctx context.Context) error {
//	    t := time.NewTicker(w.every)
//	    defer t.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return nil
//	        case <-t.C:
//	            // periodic work
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts an ordinary function to the Worker interface.
type Func func(ctx context.Context) error

// Run implements Worker.
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
