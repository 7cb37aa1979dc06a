package workers

import (
	"context"
	"errors"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Shutdown stops every worker and joins their errors.
func (w *Workers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
