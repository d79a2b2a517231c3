// Copyright 2025 go-parallel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package par

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Executor is the scheduling capability the substrate consumes. Any
// conforming implementation is acceptable; par/threadpool provides a
// persistent pool. Cancellation is cooperative: an executor may stop
// accepting tasks, but in-flight tasks run to completion.
type Executor interface {
	// Workers returns the executor's degree of parallelism. The
	// partitioner derives chunk counts from it.
	Workers() int

	// Spawn schedules fn. It may run fn inline.
	Spawn(fn func())

	// Bulk schedules n indexed tasks, each called exactly once, and
	// calls done after the last one returns. Ordering between tasks
	// is not guaranteed.
	Bulk(n int, task func(i int), done func())
}

// executorBox keeps the stored type uniform across swaps.
type executorBox struct {
	ex Executor
}

var defaultExecutor atomic.Value // executorBox

// DefaultExecutor returns the executor used by policies without an
// explicit binding. Unless overridden it spawns plain goroutines with
// GOMAXPROCS-wide work distribution.
func DefaultExecutor() Executor {
	if box, ok := defaultExecutor.Load().(executorBox); ok && box.ex != nil {
		return box.ex
	}
	return goExecutor{}
}

// SetDefaultExecutor replaces the package default executor. Passing
// nil restores the built-in goroutine executor.
func SetDefaultExecutor(ex Executor) {
	defaultExecutor.Store(executorBox{ex: ex})
}

// goExecutor is the zero-configuration executor: fresh goroutines,
// atomic work distribution, no persistent state.
type goExecutor struct{}

func (goExecutor) Workers() int { return runtime.GOMAXPROCS(0) }

func (goExecutor) Spawn(fn func()) { go fn() }

func (g goExecutor) Bulk(n int, task func(i int), done func()) {
	if n <= 0 {
		done()
		return
	}
	workers := min(g.Workers(), n)
	if workers == 1 {
		for i := range n {
			task(i)
		}
		done()
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				task(i)
			}
		}()
	}
	go func() {
		wg.Wait()
		done()
	}()
}
