// Package threadpool implements the engine's cooperative worker-thread
// pool: task queue with dependencies and thread-type affinity, exception
// evacuation.
package threadpool

import (
	"context"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"
)

// TaskResult is what a task body returns to tell the pool what happened:
// a restriction of the task state set {QUEUED, RUNNING, PAUSED,
// COMPLETED, FAILED} to the outcomes a task body can report (QUEUED and
// RUNNING are pool-managed, not body-reported).
type TaskResult int

const (
	TaskCompleted TaskResult = iota
	TaskPaused
	TaskFailed
)

// TaskState is a task's externally observable lifecycle state.
type TaskState int

const (
	TaskQueued TaskState = iota
	TaskRunning
	TaskStatePaused
	TaskStateCompleted
	TaskStateFailed
)

// TaskFunc is a task body. It returns TaskPaused to reschedule itself to
// the queue tail, TaskCompleted on success, or TaskFailed with a non-nil
// exception.
type TaskFunc func(ctx context.Context) (TaskResult, *diag.Exception)

// TaskID is a unique monotonic task identifier.
type TaskID uint64

// Task is a user-supplied callable plus its scheduling metadata: a unique
// monotonic id, a set of prerequisite task ids, an optional set of
// thread-types to which it is restricted, and a state.
type Task struct {
	ID TaskID
	Dependencies []TaskID
	ThreadTypes []string

	fn TaskFunc
	state TaskState
	err *diag.Exception
}

// State returns the task's current lifecycle state.
func (t *Task) State() TaskState { return t.state }

// Err returns the exception recorded if the task failed.
func (t *Task) Err() *diag.Exception { return t.err }

// wrapFunc0 adapts the zero-argument, no-result lambda form into a
// canonical TaskFunc.
func wrapFunc0(fn func()) TaskFunc {
	return func(context.Context) (TaskResult, *diag.Exception) {
		fn()
		return TaskCompleted, nil
	}
}

// wrapFuncErr adapts a no-argument, error-returning lambda.
func wrapFuncErr(fn func() error) TaskFunc {
	return func(context.Context) (TaskResult, *diag.Exception) {
		if err := fn(); err != nil {
			return TaskFailed, diag.NewExceptionText(err.Error())
		}
		return TaskCompleted, nil
	}
}

// wrapFuncCtx adapts a context-accepting, no-result lambda.
func wrapFuncCtx(fn func(ctx context.Context)) TaskFunc {
	return func(ctx context.Context) (TaskResult, *diag.Exception) {
		fn(ctx)
		return TaskCompleted, nil
	}
}

// wrapFuncCtxResult adapts the canonical context-accepting,
// (TaskResult, *diag.Exception)-returning lambda, allowing a task body to
// report PAUSED for itself.
func wrapFuncCtxResult(fn TaskFunc) TaskFunc { return fn }
