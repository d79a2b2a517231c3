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

// Package par is the execution substrate for policy-driven parallel
// algorithms over iterator ranges.
//
// It provides the four execution policies (Seq, Par, Unseq, ParUnseq)
// together with their combinators, the iterator/sentinel taxonomy,
// the executor capability that schedules work, single-shot futures for
// asynchronous invocations, reduction handles, and the partitioner that
// turns a range plus a policy into chunked tasks.
//
// Algorithms built on this substrate live in par/algo. A typical call
// site looks like:
//
//	pool := threadpool.New(0)
//	defer pool.Close()
//
//	sum := 0
//	err := algo.ForLoopReduce(par.Par.On(pool), par.Begin(data), par.End(data),
//	    par.ReductionPlus(&sum),
//	    func(it par.SliceIter[int], sum *int) { *sum += it.Value() })
//
// Policies are immutable values: every combinator returns a new policy.
//
//	par.Par.Task()                          // asynchronous variant
//	par.Par.With(par.StaticChunkSize(512))  // fixed chunk size
//	par.Par.On(pool)                        // bind a specific executor
//
// User callables signal failure by panicking. Under Seq and Par the
// substrate recovers per chunk and surfaces the first failure in source
// order as a *CallableError. Under Unseq and ParUnseq panics are not
// recovered: a panic in a chunk running on a worker goroutine
// terminates the process, and one raised on the calling goroutine
// (Unseq, a single-chunk run, or the sequential fallback for an
// unsized range) propagates to the caller as an ordinary panic.
package par
