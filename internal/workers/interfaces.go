// Package workers manages the client's background jobs.
//
// It defines the Worker contract and a Workers aggregate that starts and
// stops a set of workers as one unit, so the client runtime does not deal
// with individual jobs.
package workers

import "context"

// Worker is a long-running background job owned by the client process.
//
// Run starts the worker; implementations are expected to spawn their own
// goroutines and return immediately. Shutdown blocks until the worker's
// goroutines have exited.
type Worker interface {
	Run(ctx context.Context)
	Shutdown()
}
