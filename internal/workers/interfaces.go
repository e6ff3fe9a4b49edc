// Package workers runs the background jobs of the steward CLI.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns once it is running; the job keeps
// going until ctx is cancelled or Stop is called. Stop blocks until the job
// has exited and is a no-op on a stopped worker.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) error {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	    return nil
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
