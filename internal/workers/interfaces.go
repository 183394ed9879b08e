// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens on
// goroutines owned by the worker until ctx is cancelled or Stop is called.
// Stop blocks until those goroutines have exited and is safe to call more
// than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// ExpiredSessionRemover deletes sessions that outlived the expiry window.
// service.SessionService satisfies it.
type ExpiredSessionRemover interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}
