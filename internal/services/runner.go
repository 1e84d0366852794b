package services

import (
	"context"
	"sync"
	"time"

	"flowstate/internal/logging"
)

// TickFunc is called once per interval while a Runner is running
type TickFunc func(ctx context.Context)

// Runner calls a TickFunc on a fixed interval from its own goroutine.
// Late ticks are not compensated.
type Runner struct {
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
	mu       sync.Mutex
	tick     TickFunc
}

// NewRunner creates a stopped Runner; interval <= 0 means one second
func NewRunner(interval time.Duration, tick TickFunc) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{interval: interval, tick: tick}
}

// Start launches the tick loop. Returns false if it is already running.
func (r *Runner) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(ctx, r.done)
	logging.Logger.Debug("Runner started", "interval", r.interval)
	return true
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A Stop racing with the ticker must win
			if ctx.Err() != nil {
				return
			}
			r.tick(ctx)
		}
	}
}

// Stop cancels the loop and waits for an in-flight tick to return
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logging.Logger.Debug("Runner stopped")
}

// Running reports whether the loop is active
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}
