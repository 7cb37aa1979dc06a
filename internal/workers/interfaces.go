// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/resume-shortlister/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and must not block. Shutdown stops accepting work and
// waits for in-flight work until ctx is done.
type Worker interface {
	Run()
	Shutdown(ctx context.Context) error
}

// ScoringDispatcher sends scoring notifications in the background.
type ScoringDispatcher interface {
	Worker

	// Dispatch schedules a notification for req, authenticated with token.
	// It returns at once; delivery failures are only logged.
	Dispatch(ctx context.Context, req models.ScoringRequest, token string)
}
