package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/GardenPlanner_Go/internal/logger"
)

// ErrPoolStopped is returned when a job is submitted after Stop
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

type queued struct {
	ctx context.Context
	job Job
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan queued
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan queued, queueSize),
		quit:     make(chan struct{}),
	}
}

// Workers is the number of worker goroutines
func (p *Pool) Workers() int {
	return p.workers
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case q := <-p.jobQueue:
			p.run(q)
		case <-p.quit:
			return
		}
	}
}

// run processes one job. A panicking job is logged and does not take the
// worker down.
func (p *Pool) run(q queued) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(q.ctx).Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
		}
	}()
	if err := q.job.Process(q.ctx); err != nil {
		logger.FromContext(q.ctx).Debug(LogMsgWorkerJobFailed, "error", err)
	}
}

// Submit queues job, blocking while the queue is full. The job runs with ctx
// and is expected to check it.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobQueue <- queued{ctx: ctx, job: job}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers and waits for running jobs to finish. Jobs still
// queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
