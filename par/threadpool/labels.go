// Copyright 2025 The go-parallel Authors. SPDX-License-Identifier: Apache-2.0

package threadpool

import (
	"sync"

	"github.com/petermattis/goid"
)

// Task labels give a scheduled body a name it can observe while it
// runs, mirroring the thread descriptions of annotated functions in
// HPC runtimes. The registry is keyed by goroutine id so labels follow
// the body whichever worker picks it up.

var labels sync.Map // goroutine id -> string

// WithLabel wraps fn so that CurrentLabel reports label for the
// duration of the call.
func WithLabel(label string, fn func()) func() {
	return func() {
		id := goid.Get()
		labels.Store(id, label)
		defer labels.Delete(id)
		fn()
	}
}

// Labeled wraps a unary body so that CurrentLabel reports label while
// the body runs. The wrapper composes with any algorithm facade that
// accepts a func(T).
func Labeled[T any](label string, fn func(T)) func(T) {
	return func(v T) {
		id := goid.Get()
		labels.Store(id, label)
		defer labels.Delete(id)
		fn(v)
	}
}

// CurrentLabel returns the label of the body running on the calling
// goroutine, or the empty string when the body was not labelled.
func CurrentLabel() string {
	if v, ok := labels.Load(goid.Get()); ok {
		return v.(string)
	}
	return ""
}
