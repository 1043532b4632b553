package touch

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickrun/internal/kv"
)

const writeTimeout = 3 * time.Second

// writer applies store writes on a background goroutine, in submission
// order, so the frame loop never waits on disk. Failures are logged.
type writer struct {
	logger *log.Logger
	jobs   chan func(context.Context) error
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func newWriter(logger *log.Logger) *writer {
	w := &writer{
		logger: logger,
		jobs:   make(chan func(context.Context) error, 16),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *writer) run() {
	defer w.wg.Done()
	for job := range w.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := job(ctx); err != nil {
			w.logger.Warn("store write failed", "error", err)
		}
		cancel()
	}
}

func (w *writer) submit(job func(context.Context) error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.jobs <- job
}

func (w *writer) set(store kv.Store, key, value string) {
	w.submit(func(ctx context.Context) error {
		return store.Set(ctx, key, value)
	})
}

func (w *writer) remove(store kv.Store, key string) {
	w.submit(func(ctx context.Context) error {
		return store.Remove(ctx, key)
	})
}

// close stops accepting writes and waits for the queued ones.
func (w *writer) close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.jobs)
	w.mu.Unlock()
	w.wg.Wait()
}
