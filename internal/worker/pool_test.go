package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenPlanner_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	wg       *sync.WaitGroup
}

func (j *testJob) Process(ctx context.Context) error {
	defer j.wg.Done()
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	var wg sync.WaitGroup
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed, wg: &wg}
	wg.Add(TestExpectedJobCount)
	for i := 0; i < TestExpectedJobCount; i++ {
		require.NoError(t, pool.Submit(context.Background(), job))
	}
	wg.Wait()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_FailingAndPanickingJobs(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	done := make(chan struct{})
	require.NoError(t, pool.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})))
	require.NoError(t, pool.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
		panic("boom")
	})))
	require.NoError(t, pool.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
		close(done)
		return nil
	})))

	select {
	case <-done:
	case <-time.After(TestWorkerProcessWaitTime * time.Millisecond * 10):
		t.Fatal("worker did not survive a failing job")
	}
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	err := pool.Submit(context.Background(), JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_SubmitHonoursContext(t *testing.T) {
	// no workers are started, so the unbuffered queue never drains
	pool := NewPool(1, 0)
	defer pool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), TestWorkerProcessWaitTime*time.Millisecond)
	defer cancel()

	err := pool.Submit(ctx, JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_StopLeavesNoWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start()

		var wg sync.WaitGroup
		wg.Add(1)
		require.NoError(t, pool.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
			wg.Done()
			return nil
		})))
		wg.Wait()

		pool.Stop()
	})
}
