// Copyright 2025 The go-parallel Authors. SPDX-License-Identifier: Apache-2.0

// Package threadpool provides a persistent, reusable worker-pool
// executor for the par substrate. Unlike per-call goroutine spawning,
// a Pool is created once and reused across many algorithm invocations,
// eliminating allocation and spawn overhead on hot paths.
//
// Usage:
//
//	pool := threadpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	_, err := algo.ForEach(par.Par.On(pool), par.Begin(data), par.End(data), body)
//
// A Pool satisfies par.Executor. Do not invoke a blocking algorithm
// from inside a task already running on the same pool: with every
// worker occupied the nested invocation cannot make progress.
package threadpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/automaxprocs/maxprocs"
)

// Pool is a persistent worker pool. Workers are spawned once at
// creation and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of scheduled work.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the specified number of workers, spawned
// immediately. If numWorkers <= 0 the container-aware processor count
// is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

var procsOnce sync.Once

// defaultWorkers aligns GOMAXPROCS with the container CPU quota before
// reading it, so pools sized by default do not oversubscribe limited
// cgroups.
func defaultWorkers() int {
	procsOnce.Do(func() {
		_, _ = maxprocs.Set()
	})
	return runtime.GOMAXPROCS(0)
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		if item.barrier != nil {
			item.barrier.Done()
		}
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.numWorkers }

// Close shuts down the pool. All pending work completes. Calling
// Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Spawn schedules fn on the pool. On a closed pool fn runs inline.
func (p *Pool) Spawn(fn func()) {
	if p.closed.Load() {
		fn()
		return
	}
	p.workC <- workItem{fn: fn}
}

// Bulk schedules n indexed tasks distributed across the workers by
// atomic stealing and calls done after the last task returns. On a
// closed pool the tasks run inline, in order.
func (p *Pool) Bulk(n int, task func(i int), done func()) {
	if n <= 0 {
		done()
		return
	}

	if p.closed.Load() {
		for i := range n {
			task(i)
		}
		done()
		return
	}

	workers := min(p.numWorkers, n)

	var next atomic.Int64
	var pending atomic.Int64
	pending.Store(int64(workers))

	runner := func() {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				break
			}
			task(i)
		}
		if pending.Add(-1) == 0 {
			done()
		}
	}

	for range workers {
		p.workC <- workItem{fn: runner}
	}
}

// ParallelFor executes fn over [0, n) in contiguous per-worker ranges
// and blocks until all work completes. fn receives (start, end) and
// should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than items.
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}

	wg.Wait()
}
