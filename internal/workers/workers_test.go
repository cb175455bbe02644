package workers

import (
	"context"
	"testing"
	"time"

	"github.com/azgeda96/secure-pass-vault/internal/config"
	"github.com/azgeda96/secure-pass-vault/internal/service"
)

func newTestRefreshWorker(job service.ClientRefreshJob, interval time.Duration) *RefreshWorker {
	return NewRefreshWorker(job, config.ClientWorkers{RefreshInterval: interval})
}

// mockWorker tracks Run and Shutdown calls and records its id into a shared
// slice so ordering can be asserted.
type mockWorker struct {
	id        int
	runCount  int
	stopCount int
	order     *[]int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Shutdown() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, -m.id)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Shutdown()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&mockWorker{id: 1, order: &order},
		&mockWorker{id: 2, order: &order},
		&mockWorker{id: 3, order: &order},
	)
	ws.Run(context.Background())

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Shutdown_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&mockWorker{id: 1, order: &order},
		&mockWorker{id: 2, order: &order},
	)
	ws.Run(context.Background())
	ws.Shutdown()

	expected := []int{1, 2, -2, -1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// fakeRefreshJob implements service.ClientRefreshJob for RefreshWorker tests.
type fakeRefreshJob struct {
	started  int
	stopped  int
	interval time.Duration
}

func (f *fakeRefreshJob) Start(_ context.Context, interval time.Duration) {
	f.started++
	f.interval = interval
}

func (f *fakeRefreshJob) Stop() { f.stopped++ }

func TestRefreshWorker_StartsJobWithConfiguredInterval(t *testing.T) {
	job := &fakeRefreshJob{}
	w := newTestRefreshWorker(job, time.Minute)

	w.Run(context.Background())

	if job.started != 1 {
		t.Fatalf("expected job started once, got %d", job.started)
	}
	if job.interval != time.Minute {
		t.Errorf("expected interval 1m, got %v", job.interval)
	}
}

func TestRefreshWorker_ZeroIntervalDisables(t *testing.T) {
	job := &fakeRefreshJob{}
	w := newTestRefreshWorker(job, 0)

	w.Run(context.Background())
	w.Shutdown()

	if job.started != 0 {
		t.Errorf("expected job never started, got %d starts", job.started)
	}
}

func TestRefreshWorker_ShutdownStopsJob(t *testing.T) {
	job := &fakeRefreshJob{}
	w := newTestRefreshWorker(job, time.Minute)

	w.Run(context.Background())
	w.Shutdown()

	if job.stopped != 1 {
		t.Errorf("expected job stopped once, got %d", job.stopped)
	}
}
