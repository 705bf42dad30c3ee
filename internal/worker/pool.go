// Package worker runs background tasks on a fixed set of goroutines fed by a
// bounded queue.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrQueueFull is returned by Submit when the queue has no free slot.
	ErrQueueFull = errors.New("worker: queue full")
	// ErrStopped is returned by Submit after Shutdown has been called.
	ErrStopped = errors.New("worker: pool stopped")
)

// Task outcomes reported to the TaskRecorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePanic   = "panic"
	OutcomeDropped = "dropped"
)

// Config holds pool sizing.
type Config struct {
	Workers     int
	QueueSize   int
	TaskTimeout time.Duration
}

// TaskRecorder observes task outcomes. It may be nil.
type TaskRecorder interface {
	WorkerTask(outcome string)
}

type task struct {
	name string
	fn   func(ctx context.Context) error
}

// Pool is a fixed-size worker pool.
type Pool struct {
	log *slog.Logger
	cfg Config
	rec TaskRecorder

	tasks chan task

	mu      sync.RWMutex
	stopped bool

	startOnce sync.Once
	wg        sync.WaitGroup

	// baseCtx is cancelled when Shutdown gives up waiting, aborting running tasks.
	baseCtx    context.Context
	cancelBase context.CancelFunc
}

// New creates a pool. Call Start to launch the workers.
func New(log *slog.Logger, cfg Config, rec TaskRecorder) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		log:        log.With("component", "worker"),
		cfg:        cfg,
		rec:        rec,
		tasks:      make(chan task, cfg.QueueSize),
		baseCtx:    ctx,
		cancelBase: cancel,
	}
}

// Start launches the workers. Subsequent calls are no-ops.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		for i := 0; i < p.cfg.Workers; i++ {
			p.wg.Add(1)
			go p.run(i)
		}
		p.log.Info("worker pool started",
			slog.Int("workers", p.cfg.Workers),
			slog.Int("queue_size", p.cfg.QueueSize),
		)
	})
}

// Submit enqueues fn without blocking.
func (p *Pool) Submit(name string, fn func(ctx context.Context) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		p.record(OutcomeDropped)
		return ErrStopped
	}

	select {
	case p.tasks <- task{name: name, fn: fn}:
		return nil
	default:
		p.record(OutcomeDropped)
		return ErrQueueFull
	}
}

// Shutdown stops accepting tasks and waits for queued and running tasks to
// finish. If ctx expires first, running tasks are cancelled and ctx's error
// is returned.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.tasks)
	}
	p.mu.Unlock()

	// Workers that were never started still need to drain the queue.
	p.Start()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancelBase()
		p.log.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		p.cancelBase()
		p.log.Warn("worker pool shutdown timed out", slog.Int("abandoned", len(p.tasks)))
		return ctx.Err()
	}
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for t := range p.tasks {
		p.execute(id, t)
	}
}

func (p *Pool) execute(id int, t task) {
	ctx := p.baseCtx
	if p.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.TaskTimeout)
		defer cancel()
	}

	start := time.Now()
	err := p.safeCall(ctx, t)
	elapsed := time.Since(start)

	var pe *panicError
	switch {
	case errors.As(err, &pe):
		p.record(OutcomePanic)
		p.log.Error("worker task panicked",
			slog.Int("worker", id),
			slog.String("task", t.name),
			slog.String("panic", fmt.Sprint(pe.value)),
		)
	case err != nil:
		p.record(OutcomeFailure)
		p.log.Warn("worker task failed",
			slog.Int("worker", id),
			slog.String("task", t.name),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
	default:
		p.record(OutcomeSuccess)
		p.log.Debug("worker task done",
			slog.Int("worker", id),
			slog.String("task", t.name),
			slog.Duration("elapsed", elapsed),
		)
	}
}

type panicError struct {
	value any
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }

func (p *Pool) safeCall(ctx context.Context, t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return t.fn(ctx)
}

func (p *Pool) record(outcome string) {
	if p.rec != nil {
		p.rec.WorkerTask(outcome)
	}
}
