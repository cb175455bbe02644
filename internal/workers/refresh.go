package workers

import (
	"context"
	"time"

	"github.com/azgeda96/secure-pass-vault/internal/config"
	"github.com/azgeda96/secure-pass-vault/internal/service"
)

// RefreshWorker periodically reloads the client's record set through the
// refresh job in the service layer. A zero interval disables the worker
// entirely.
type RefreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration
}

func NewRefreshWorker(job service.ClientRefreshJob, cfg config.ClientWorkers) *RefreshWorker {
	return &RefreshWorker{
		job:      job,
		interval: cfg.RefreshInterval,
	}
}

func (w *RefreshWorker) Run(ctx context.Context) {
	if w.interval == 0 {
		return
	}
	w.job.Start(ctx, w.interval)
}

func (w *RefreshWorker) Shutdown() {
	w.job.Stop()
}
