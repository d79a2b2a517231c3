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

// Kind selects the execution variant of a policy.
type Kind uint8

const (
	// SeqKind executes on the calling goroutine, in order.
	SeqKind Kind = iota

	// ParKind executes chunks on parallel workers.
	ParKind

	// UnseqKind executes on the calling goroutine with vectorised
	// inner loops.
	UnseqKind

	// ParUnseqKind executes chunks on parallel workers with
	// vectorised inner loops.
	ParUnseqKind
)

// String returns the policy kind's conventional name.
func (k Kind) String() string {
	switch k {
	case SeqKind:
		return "seq"
	case ParKind:
		return "par"
	case UnseqKind:
		return "unseq"
	case ParUnseqKind:
		return "par_unseq"
	}
	return "unknown"
}

// ChunkMode selects how the partitioner sizes chunks.
type ChunkMode uint8

const (
	// ChunkAuto derives the chunk count from the worker count.
	ChunkAuto ChunkMode = iota

	// ChunkStatic uses a caller-supplied fixed chunk size.
	ChunkStatic

	// ChunkDynamic uses small batches balanced across workers.
	ChunkDynamic
)

// Chunking is the chunk-sizing strategy carried by a policy.
type Chunking struct {
	mode ChunkMode
	size int
}

// AutoChunkSize derives chunk sizes from the worker count.
func AutoChunkSize() Chunking { return Chunking{mode: ChunkAuto} }

// StaticChunkSize fixes the chunk size at n elements. A size of zero
// or less behaves like AutoChunkSize.
func StaticChunkSize(n int) Chunking { return Chunking{mode: ChunkStatic, size: n} }

// DynamicChunkSize requests small batches balanced across workers at
// run time.
func DynamicChunkSize() Chunking { return Chunking{mode: ChunkDynamic} }

// Mode returns the chunking mode.
func (c Chunking) Mode() ChunkMode { return c.mode }

// Size returns the static chunk size; meaningful only for ChunkStatic.
func (c Chunking) Size() int { return c.size }

// Policy is an execution policy: a tagged record of variant, task
// mode, chunking strategy and optional executor binding. Policies are
// immutable; combinators return new values.
type Policy struct {
	kind  Kind
	task  bool
	chunk Chunking
	exec  Executor
}

// The four policy constructors.
var (
	// Seq requests sequential execution on the calling goroutine.
	Seq = Policy{kind: SeqKind}

	// Par requests parallel execution on the bound executor.
	Par = Policy{kind: ParKind}

	// Unseq requests vectorised execution on the calling goroutine.
	Unseq = Policy{kind: UnseqKind}

	// ParUnseq requests parallel execution with vectorised inner
	// loops.
	ParUnseq = Policy{kind: ParUnseqKind}
)

// Task returns the asynchronous variant of p. Algorithms invoked with
// a task policy return futures instead of blocking.
func (p Policy) Task() Policy {
	p.task = true
	return p
}

// With returns a copy of p using the given chunking strategy.
func (p Policy) With(c Chunking) Policy {
	p.chunk = c
	return p
}

// On returns a copy of p bound to a specific executor.
func (p Policy) On(ex Executor) Policy {
	p.exec = ex
	return p
}

// Kind returns the policy's execution variant.
func (p Policy) Kind() Kind { return p.kind }

// IsTask reports whether p is in asynchronous (future-returning) mode.
func (p Policy) IsTask() bool { return p.task }

// Chunking returns the policy's chunk-sizing strategy.
func (p Policy) Chunking() Chunking { return p.chunk }

// Parallel reports whether p schedules chunks on parallel workers.
func (p Policy) Parallel() bool { return p.kind == ParKind || p.kind == ParUnseqKind }

// Vectorized reports whether p requests vectorised inner loops. Under
// a vectorised policy, panics from user callables are not recovered.
func (p Policy) Vectorized() bool { return p.kind == UnseqKind || p.kind == ParUnseqKind }

// Catches reports whether failures from user callables are collected
// rather than left to terminate the process.
func (p Policy) Catches() bool { return !p.Vectorized() }

// Executor returns the bound executor, or the package default when the
// policy carries no binding.
func (p Policy) Executor() Executor {
	if p.exec != nil {
		return p.exec
	}
	return DefaultExecutor()
}

// Same reports nominal equality: two policies are the same when they
// name the same variant, regardless of chunking or executor binding.
func (p Policy) Same(q Policy) bool { return p.kind == q.kind }

// blocking returns p with task mode cleared.
func (p Policy) blocking() Policy {
	p.task = false
	return p
}

// Combine merges two policies. The variants promote: combining Unseq
// with Par yields ParUnseq. Task mode is preserved if either operand
// carries it; non-default chunking and executor bindings are taken
// from a first, then b.
func Combine(a, b Policy) Policy {
	out := Policy{kind: promote(a.kind, b.kind), task: a.task || b.task}
	out.chunk = a.chunk
	if out.chunk.mode == ChunkAuto && b.chunk.mode != ChunkAuto {
		out.chunk = b.chunk
	}
	out.exec = a.exec
	if out.exec == nil {
		out.exec = b.exec
	}
	return out
}

func promote(a, b Kind) Kind {
	par := a == ParKind || a == ParUnseqKind || b == ParKind || b == ParUnseqKind
	unseq := a == UnseqKind || a == ParUnseqKind || b == UnseqKind || b == ParUnseqKind
	switch {
	case par && unseq:
		return ParUnseqKind
	case par:
		return ParKind
	case unseq:
		return UnseqKind
	}
	return SeqKind
}

// RequireBlocking validates that p is not in task mode. Blocking
// facades call it at the boundary, before any work starts.
func RequireBlocking(p Policy, op string) error {
	if p.task {
		return &PolicyError{Op: op, Reason: "task-mode policy passed to a blocking call; use the Async form"}
	}
	return nil
}
