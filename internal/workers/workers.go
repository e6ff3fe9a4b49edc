package workers

import (
	"context"
	"fmt"
)

type Workers struct {
	workers []Worker
	started []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker in order. When one fails the workers already
// started are stopped again.
func (w *Workers) Start(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("start worker %d: %w", i, err)
		}
		w.started = append(w.started, worker)
	}
	return nil
}

// Stop stops the started workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.started) - 1; i >= 0; i-- {
		w.started[i].Stop()
	}
	w.started = nil
}
