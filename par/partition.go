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

// The partitioner turns an element count plus a policy into spans,
// runs one task per span on the policy's executor, and hands partial
// results back in submission order. Submission order equals source
// order, which is what makes non-commutative folds and scans safe.

// oversubscription is the factor of spans per worker under automatic
// chunking. More spans than workers smooths out uneven chunk cost.
const oversubscription = 4

// dynamicBatching further divides spans under dynamic chunking so
// that idle workers can steal smaller batches.
const dynamicBatching = 4

// Span is a half-open sub-range [Lo, Hi) with its source-order index.
type Span struct {
	Index int
	Lo    int
	Hi    int
}

// Len returns the number of elements covered by the span.
func (s Span) Len() int { return s.Hi - s.Lo }

// Plan computes the spans for n elements under pol. The result is
// ordered by Lo and covers [0, n) exactly; it is empty when n <= 0.
func Plan(pol Policy, n int) []Span {
	if n <= 0 {
		return nil
	}
	workers := max(pol.Executor().Workers(), 1)
	if !pol.Parallel() {
		workers = 1
	}

	var size int
	switch c := pol.chunk; c.mode {
	case ChunkStatic:
		size = c.size
		if size <= 0 {
			size = autoChunkSize(n, workers)
		}
	case ChunkDynamic:
		size = max(1, n/(workers*oversubscription*dynamicBatching))
	default:
		size = autoChunkSize(n, workers)
	}

	k := (n + size - 1) / size
	spans := make([]Span, 0, k)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, Span{Index: len(spans), Lo: lo, Hi: min(lo+size, n)})
	}
	return spans
}

func autoChunkSize(n, workers int) int {
	k := min(n, workers*oversubscription)
	return (n + k - 1) / k
}

// SpanStarts positions one iterator at the start of each span. For
// random-access iterators each start is computed in constant time; for
// forward iterators the range is pre-walked once, in order.
func SpanStarts[I Stepper[I]](first I, spans []Span) []I {
	starts := make([]I, len(spans))
	if st, ok := any(first).(Strider[I]); ok {
		for k, sp := range spans {
			starts[k] = st.Advance(sp.Lo)
		}
		return starts
	}
	it := first
	pos := 0
	for k, sp := range spans {
		for pos < sp.Lo {
			it = it.Next()
			pos++
		}
		starts[k] = it
	}
	return starts
}

// Run executes body once per span on the policy's executor and blocks
// until all spans complete. Under a policy that catches failures, a
// panic from body is recovered per span and the first failing span in
// source order is returned as a *CallableError; later spans still run
// to completion. Under a vectorised policy panics are not recovered.
func Run(pol Policy, op string, spans []Span, body func(sp Span)) error {
	switch len(spans) {
	case 0:
		return nil
	case 1:
		return Protect(pol, op, func() { body(spans[0]) })
	}

	faults := make([]any, len(spans))
	task := func(i int) {
		if pol.Catches() {
			defer func() {
				if r := recover(); r != nil {
					faults[i] = r
				}
			}()
		}
		body(spans[i])
	}

	done := make(chan struct{})
	pol.Executor().Bulk(len(spans), task, func() { close(done) })
	<-done

	for i, f := range faults {
		if f != nil {
			return &CallableError{Op: op, Chunk: i, Value: f}
		}
	}
	return nil
}

// Protect runs fn on the calling goroutine, recovering a panic into a
// *CallableError when the policy catches failures. Sequential kernels
// run under it so that failure semantics match the parallel path.
func Protect(pol Policy, op string, fn func()) (err error) {
	if pol.Catches() {
		defer func() {
			if r := recover(); r != nil {
				err = &CallableError{Op: op, Chunk: 0, Value: r}
			}
		}()
	}
	fn()
	return nil
}
