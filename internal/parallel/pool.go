// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Job is one unit of work.
type Job func(ctx context.Context) error

// Pool runs jobs on a fixed number of workers. Each worker owns a queue
// and takes from the other queues once its own is empty.
//
// A Pool is used for one Run call at a time; it has no goroutines between
// calls.
type Pool struct {
	workers int
}

// NewPool creates a pool. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes every job and waits for them to finish. The first error
// cancels the context passed to the remaining jobs and is returned.
// Jobs not yet started when ctx is done are skipped.
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	if len(jobs) == 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := min(p.workers, len(jobs))
	queues := make([]chan Job, n)
	for i := range queues {
		queues[i] = make(chan Job, len(jobs)/n+1)
	}
	// Round-robin before the workers start so every queue is complete.
	for i, job := range jobs {
		queues[i%n] <- job
	}
	for _, q := range queues {
		close(q)
	}

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(n)
	for id := range n {
		go func() {
			defer wg.Done()
			for job := range next(queues, id) {
				if ctx.Err() != nil {
					fail(ctx.Err())
					continue
				}
				if err := job(ctx); err != nil {
					fail(err)
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// next yields the jobs of queue id, then the leftovers of the others.
func next(queues []chan Job, id int) func(yield func(Job) bool) {
	return func(yield func(Job) bool) {
		for i := range queues {
			for job := range queues[(id+i)%len(queues)] {
				if !yield(job) {
					return
				}
			}
		}
	}
}
