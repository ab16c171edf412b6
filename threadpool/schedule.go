package threadpool

import "context"

// Convenience scheduling entry points accepting the four lambda shapes a
// task body can take, each adapted into the canonical TaskFunc via the
// wrap* helpers in task.go.

func (p *ThreadPool) Schedule(fn func()) (TaskID, error) { return p.ScheduleTask(wrapFunc0(fn)) }

func (p *ThreadPool) ScheduleErr(fn func() error) (TaskID, error) {
	return p.ScheduleTask(wrapFuncErr(fn))
}

func (p *ThreadPool) ScheduleCtx(fn func(ctx context.Context)) (TaskID, error) {
	return p.ScheduleTask(wrapFuncCtx(fn))
}

func (p *ThreadPool) ScheduleCtxResult(fn TaskFunc) (TaskID, error) {
	return p.ScheduleTask(wrapFuncCtxResult(fn))
}
