// Package tasks provides the in-process runner behind the BackgroundRunner
// domain service.
package tasks

import (
	"context"
	"log/slog"
	"sync"

	"referral/config"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type queued struct {
	name string
	task service.Task
}

// runner executes deferred work on a fixed pool of workers fed by a bounded
// queue. Failures are logged with the task name and otherwise dropped.
type runner struct {
	queue   chan queued
	logger  *slog.Logger
	workers int

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// Params holds dependencies for the runner, injected by Fx.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// NewRunner constructs the runner and ties its worker pool to the Fx
// lifecycle. On shutdown the queue is closed and drained before the hook
// returns, so accepted tasks still run.
func NewRunner(params Params) service.BackgroundRunner {
	r := &runner{
		queue:   make(chan queued, params.Config.Tasks.QueueSize),
		logger:  params.Logger,
		workers: params.Config.Tasks.Workers,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.start()

			return nil
		},
		OnStop: func(context.Context) error {
			r.stop()

			return nil
		},
	})

	return r
}

// Enqueue accepts a task without blocking. A full queue is an error, never a
// stall on the request path.
func (r *runner) Enqueue(name string, task service.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.Wrap(domainerrors.ErrTaskQueueFull, "runner is shut down")
	}

	select {
	case r.queue <- queued{name: name, task: task}:
		r.logger.Debug("Task enqueued", slog.String("task", name))

		return nil
	default:
		r.logger.Warn("Task queue full, rejecting task", slog.String("task", name))

		return errors.Wrap(domainerrors.ErrTaskQueueFull, name)
	}
}

func (r *runner) start() {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.work()
	}
}

func (r *runner) stop() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *runner) work() {
	defer r.wg.Done()

	for item := range r.queue {
		r.run(item)
	}
}

func (r *runner) run(item queued) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Background task panicked",
				slog.String("task", item.name),
				slog.Any("panic", rec))
		}
	}()

	// Tasks outlive the originating request, so they never inherit its context.
	if err := item.task(context.Background()); err != nil {
		r.logger.Error("Background task failed",
			slog.String("task", item.name),
			slog.Any("error", err))

		return
	}

	r.logger.Debug("Background task completed", slog.String("task", item.name))
}
