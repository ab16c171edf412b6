package threadpool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadPool_RunsScheduledTask(t *testing.T) {
	t.Parallel()

	p := New()
	id, err := p.AddThread(ThreadDescription{})
	require.NoError(t, err)

	var ran atomic.Bool
	_, err = p.Schedule(func() { ran.Store(true) })
	require.NoError(t, err)

	require.NoError(t, p.WaitIdle())
	assert.True(t, ran.Load())

	p.RemoveThread(id)
}

func TestThreadPool_DependenciesGateExecution(t *testing.T) {
	t.Parallel()

	p := New()
	id, err := p.AddThread(ThreadDescription{})
	require.NoError(t, err)

	var order []int
	var mu sync.Mutex
	first, err := p.ScheduleTask(func(context.Context) (TaskResult, *diag.Exception) {
		mu.Lock()
		order = append(order, 1)
		mu.Unlock()
		return TaskCompleted, nil
	})
	require.NoError(t, err)
	_, err = p.ScheduleTaskWithDependencies(func(context.Context) (TaskResult, *diag.Exception) {
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		return TaskCompleted, nil
	}, first)
	require.NoError(t, err)

	require.NoError(t, p.WaitIdle())
	assert.Equal(t, []int{1, 2}, order)

	p.RemoveThread(id)
}

func TestThreadPool_PausedTaskIsRescheduled(t *testing.T) {
	t.Parallel()

	p := New()
	id, err := p.AddThread(ThreadDescription{})
	require.NoError(t, err)

	var attempts atomic.Int32
	_, err = p.ScheduleTask(func(context.Context) (TaskResult, *diag.Exception) {
		if attempts.Add(1) < 3 {
			return TaskPaused, nil
		}
		return TaskCompleted, nil
	})
	require.NoError(t, err)

	require.NoError(t, p.WaitIdle())
	assert.EqualValues(t, 3, attempts.Load())

	p.RemoveThread(id)
}

func TestThreadPool_ThreadTypeAffinity(t *testing.T) {
	t.Parallel()

	p := New()
	workerID, err := p.AddThread(ThreadDescription{ThreadType: "io"})
	require.NoError(t, err)

	var ran atomic.Bool
	_, err = p.ScheduleTaskToThreadType(func(context.Context) (TaskResult, *diag.Exception) {
		ran.Store(true)
		return TaskCompleted, nil
	}, "io")
	require.NoError(t, err)

	require.NoError(t, p.WaitIdle())
	assert.True(t, ran.Load())

	p.RemoveThread(workerID)
}

func TestThreadPool_EvacuateThreadsPropagatesFailure(t *testing.T) {
	t.Parallel()

	p := New()
	_, err := p.AddThread(ThreadDescription{})
	require.NoError(t, err)

	_, err = p.ScheduleTask(func(context.Context) (TaskResult, *diag.Exception) {
		return TaskFailed, diag.NewExceptionText("boom")
	})
	require.NoError(t, err)

	// give the worker a moment to pick up and fail the task
	deadline := time.Now().Add(time.Second)
	for p.LastError() == nil && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	require.NotNil(t, p.LastError())
	assert.Contains(t, p.LastError().Error(), "boom")

	err = p.EvacuateThreads(context.Background())
	assert.ErrorIs(t, err, ErrPoolFailed)
	assert.NotNil(t, p.LastError())

	_, err = p.ScheduleTask(func(context.Context) (TaskResult, *diag.Exception) {
		return TaskCompleted, nil
	})
	assert.ErrorIs(t, err, ErrPoolFailed)
}

func TestThreadPool_RunSurfacesWorkerFailureWithThreadID(t *testing.T) {
	t.Parallel()

	p := New()
	id, err := p.AddThread(ThreadDescription{})
	require.NoError(t, err)

	_, err = p.ScheduleTask(func(context.Context) (TaskResult, *diag.Exception) {
		return TaskFailed, diag.NewExceptionText("boom")
	})
	require.NoError(t, err)

	deadline := time.Now().Add(time.Second)
	for p.LastError() == nil && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	err = p.Run()
	assert.ErrorIs(t, err, ErrPoolFailed)

	require.NotNil(t, p.LastError())
	msg := p.LastError().Error()
	assert.Contains(t, msg, fmt.Sprintf("worker thread %d", id))
	assert.Contains(t, msg, "boom")
}

func TestThreadPool_ShutdownDrainsThenEvacuates(t *testing.T) {
	t.Parallel()

	p := New()
	_, err := p.AddThread(ThreadDescription{})
	require.NoError(t, err)

	var ran atomic.Bool
	_, err = p.Schedule(func() { ran.Store(true) })
	require.NoError(t, err)

	log := logger.New(logger.LoggerCreateInfo{Disabled: true})
	require.NoError(t, p.Shutdown(context.Background(), log))
	assert.True(t, ran.Load())
	assert.Nil(t, p.LastError())
}
