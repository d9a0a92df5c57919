package service

import "context"

// Task is a unit of deferred work executed off the request path.
type Task func(ctx context.Context) error

// BackgroundRunner defines the interface for dispatching fire-and-forget work.
// The HTTP response is returned before an enqueued task completes, so callers
// must not assume immediate consistency. Once dispatched a task runs to
// completion; failures are logged by the runner, never surfaced to the
// original request.
type BackgroundRunner interface {
	// Enqueue hands a named task to the runner. It returns an error only when
	// the task could not be accepted (e.g. the queue is full).
	Enqueue(name string, task Task) error
}
