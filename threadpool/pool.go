package threadpool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/logger"
	"golang.org/x/sync/errgroup"
)

// ErrPoolFailed is returned by Run, WaitIdle, EvacuateThreads and the
// Schedule* methods once a worker has recorded an exception or the pool
// has evacuated (Run also evacuates first). Rather than silently dropping an
// exception raised on a non-owning thread, the pool surfaces it through
// this sentinel and keeps the originating *diag.Exception available via
// LastError.
var ErrPoolFailed = errors.New("threadpool: a worker failed and the pool evacuated")

// ThreadDescription configures a worker spawned by AddThread.
type ThreadDescription struct {
	ThreadType string
	ThreadBegin func()
	ThreadEnd func()
}

type worker struct {
	id int
	desc ThreadDescription
	state *fastState
	exit atomic.Bool
	joined chan struct{}
}

// ThreadPool is the engine's cooperative worker pool: a dependency- and
// affinity-aware task queue serviced by N worker goroutines.
type ThreadPool struct {
	owner uint64

	mu sync.Mutex
	cond *sync.Cond
	workers map[int]*worker
	nextWorker int
	queue []*Task
	tasks map[TaskID]*Task
	nextTaskID TaskID
	lastErr *diag.Exception
	evacuated bool
	shuttingDown bool
}

// New constructs an empty pool. The constructing goroutine becomes the
// pool's "main thread" for the purposes of main-thread-only
// invariants.
func New() *ThreadPool {
	p := &ThreadPool{
		owner: goroutineID(),
		workers: make(map[int]*worker),
		tasks: make(map[TaskID]*Task),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *ThreadPool) assertMainThread(what string) {
	if goroutineID() != p.owner {
		panic("threadpool: " + what + " is only permitted from the thread that constructed the pool")
	}
}

// AddThreads spawns n workers running desc via AddThread, defaulting n
// to runtime.GOMAXPROCS(0) when n <= 0 (the worker count an
// automaxprocs-adjusted process would use). It stops and returns the
// first error encountered, along with the ids of the workers
// successfully added before it.
func (p *ThreadPool) AddThreads(n int, desc ThreadDescription) ([]int, error) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		id, err := p.AddThread(desc)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AddThread spawns a worker running desc. It is main-thread only,
// busy-waits until the worker leaves WorkerUninitialized, and evacuates +
// re-raises on initialization failure.
func (p *ThreadPool) AddThread(desc ThreadDescription) (int, error) {
	p.assertMainThread("AddThread")

	p.mu.Lock()
	id := p.nextWorker
	p.nextWorker++
	w := &worker{id: id, desc: desc, state: newFastState(WorkerUninitialized), joined: make(chan struct{})}
	p.workers[id] = w
	p.mu.Unlock()

	go p.runWorker(w)

	for w.state.Load() == WorkerUninitialized {
		time.Sleep(time.Microsecond)
	}

	if w.state.Load() == WorkerError {
		_ = p.EvacuateThreads(context.Background())
		cause := p.lastErr
		e := diag.NewExceptionText("worker failed to initialize")
		e.Chain(cause)
		return id, e
	}

	return id, nil
}

// RemoveThread stops and joins worker id. It is main-thread only and
// requires the task queue to be empty (asserted).
func (p *ThreadPool) RemoveThread(id int) {
	p.assertMainThread("RemoveThread")

	p.mu.Lock()
	if len(p.queue) != 0 {
		p.mu.Unlock()
		panic("threadpool: RemoveThread requires an empty task queue")
	}
	w, ok := p.workers[id]
	p.mu.Unlock()
	if !ok {
		return
	}

	w.exit.Store(true)
	p.cond.Broadcast()
	<-w.joined

	p.mu.Lock()
	delete(p.workers, id)
	p.mu.Unlock()
}

// ScheduleTask enqueues fn with no dependencies or affinity and returns
// its id. It returns ErrPoolFailed, doing nothing else, if the pool has
// already evacuated or recorded a worker exception.
func (p *ThreadPool) ScheduleTask(fn TaskFunc) (TaskID, error) {
	return p.schedule(fn, nil, nil)
}

// ScheduleTaskWithDependencies enqueues fn gated on deps all reaching
// TaskStateCompleted.
func (p *ThreadPool) ScheduleTaskWithDependencies(fn TaskFunc, deps ...TaskID) (TaskID, error) {
	return p.schedule(fn, deps, nil)
}

// ScheduleTaskToThreadType restricts fn to workers whose ThreadDescription.
// ThreadType is in threadTypes.
func (p *ThreadPool) ScheduleTaskToThreadType(fn TaskFunc, threadTypes ...string) (TaskID, error) {
	return p.schedule(fn, nil, threadTypes)
}

func (p *ThreadPool) schedule(fn TaskFunc, deps []TaskID, threadTypes []string) (TaskID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shuttingDown {
		panic("threadpool: cannot schedule a task while the pool is shutting down")
	}
	if p.evacuated || p.lastErr != nil {
		return 0, ErrPoolFailed
	}

	id := p.nextTaskID
	p.nextTaskID++
	t := &Task{ID: id, Dependencies: deps, ThreadTypes: threadTypes, fn: fn, state: TaskQueued}
	p.tasks[id] = t
	p.queue = append(p.queue, t)
	p.cond.Broadcast()
	return id, nil
}

// findWork pops the first queued task whose dependencies are satisfied
// and whose affinity, if any, includes w's thread type. Caller must hold
// p.mu.
func (p *ThreadPool) findWork(w *worker) *Task {
	for i, t := range p.queue {
		if t.state != TaskQueued {
			continue
		}
		if !p.dependenciesSatisfied(t) {
			continue
		}
		if len(t.ThreadTypes) > 0 && !contains(t.ThreadTypes, w.desc.ThreadType) {
			continue
		}
		p.queue = append(p.queue[:i:i], p.queue[i+1:]...)
		return t
	}
	return nil
}

func (p *ThreadPool) dependenciesSatisfied(t *Task) bool {
	for _, depID := range t.Dependencies {
		dep, ok := p.tasks[depID]
		if !ok || dep.state != TaskStateCompleted {
			return false
		}
	}
	return true
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func (p *ThreadPool) runWorker(w *worker) {
	if w.desc.ThreadBegin != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.mu.Lock()
					w.state.Store(WorkerError)
					p.lastErr = diag.NewExceptionText(fmt.Sprintf("threadpool: worker thread %d panicked during ThreadBegin: %v", w.id, r))
					p.mu.Unlock()
				}
			}()
			w.desc.ThreadBegin()
		}()
	}

	if w.state.Load() != WorkerError {
		w.state.Store(WorkerRunning)
	}

	defer func() {
		if w.desc.ThreadEnd != nil {
			w.desc.ThreadEnd()
		}
		if w.state.Load() != WorkerError {
			w.state.Store(WorkerExited)
		}
		close(w.joined)
	}()

	if w.state.Load() == WorkerError {
		return
	}

	ctx := context.Background()
	for {
		p.mu.Lock()
		var task *Task
		for {
			if w.exit.Load() {
				p.mu.Unlock()
				return
			}
			task = p.findWork(w)
			if task != nil {
				break
			}
			p.cond.Wait()
		}
		task.state = TaskRunning
		p.mu.Unlock()

		result, exc := p.runTask(ctx, task, w.id)

		p.mu.Lock()
		switch result {
		case TaskPaused:
			task.state = TaskQueued
			p.queue = append(p.queue, task)
		case TaskFailed:
			task.state = TaskStateFailed
			task.err = exc
			if p.lastErr == nil {
				wrapped := diag.NewExceptionText(fmt.Sprintf("threadpool: worker thread %d raised an exception", w.id))
				wrapped.Chain(exc)
				p.lastErr = wrapped
			}
		default:
			task.state = TaskStateCompleted
		}
		p.cond.Broadcast()
		p.mu.Unlock()
	}
}

func (p *ThreadPool) runTask(ctx context.Context, t *Task, workerID int) (result TaskResult, exc *diag.Exception) {
	defer func() {
		if r := recover(); r != nil {
			result = TaskFailed
			exc = diag.NewExceptionText(fmt.Sprintf("task panicked on worker thread %d: %v", workerID, r))
		}
	}()
	return t.fn(ctx)
}

// WaitIdle blocks until the task queue is empty and no task is running,
// waking every worker on each iteration. It returns ErrPoolFailed as soon
// as a worker has recorded an exception, rather than waiting for tasks
// that can now never drain.
func (p *ThreadPool) WaitIdle() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		p.cond.Broadcast()
		if p.lastErr != nil {
			return ErrPoolFailed
		}
		busy := false
		for _, t := range p.tasks {
			if t.state == TaskQueued || t.state == TaskRunning {
				busy = true
				break
			}
		}
		if !busy {
			return nil
		}
		p.cond.Wait()
	}
}

// Run wakes every worker waiting on new work, then checks the pool's
// exception state. If a worker has recorded an exception, Run evacuates
// every thread and returns ErrPoolFailed; LastError holds the full
// chained exception.
func (p *ThreadPool) Run() error {
	p.mu.Lock()
	p.cond.Broadcast()
	failed := p.lastErr != nil
	p.mu.Unlock()

	if !failed {
		return nil
	}
	return p.EvacuateThreads(context.Background())
}

// Shutdown marks the pool as no longer accepting new tasks, drains
// outstanding work if nothing has failed yet, logs any pending exception
// at CriticalError, then evacuates and joins every worker. It is
// main-thread only, mirroring AddThread/RemoveThread.
func (p *ThreadPool) Shutdown(ctx context.Context, log *logger.Logger) error {
	p.assertMainThread("Shutdown")

	p.mu.Lock()
	p.shuttingDown = true
	p.mu.Unlock()

	if p.LastError() == nil {
		_ = p.WaitIdle()
	}

	if err := p.LastError(); err != nil && log != nil {
		log.LogException(logger.CriticalError, err)
	}

	return p.EvacuateThreads(ctx)
}

// LastError returns the first exception recorded by any worker, if any.
func (p *ThreadPool) LastError() *diag.Exception {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// EvacuateThreads signals every worker to exit and joins them using
// errgroup, replacing a manual ready-to-join poll loop with
// errgroup.Wait.
func (p *ThreadPool) EvacuateThreads(ctx context.Context) error {
	p.mu.Lock()
	p.evacuated = true
	workers := make([]*worker, 0, len(p.workers))
	for _, w := range p.workers {
		w.exit.Store(true)
		workers = append(workers, w)
	}
	p.cond.Broadcast()
	p.mu.Unlock()

	g, _ := errgroup.WithContext(ctx)
	for _, w := range workers {
		w := w
		g.Go(func() error {
			<-w.joined
			if w.state.Load() == WorkerError {
				return ErrPoolFailed
			}
			return nil
		})
	}
	err := g.Wait()

	p.mu.Lock()
	for _, w := range workers {
		delete(p.workers, w.id)
	}
	p.mu.Unlock()

	if p.LastError() != nil {
		return ErrPoolFailed
	}
	return err
}
