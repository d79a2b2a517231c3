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
	"fmt"

	"github.com/pkg/errors"
)

// ShapeError reports a malformed range or mismatched input sizes,
// detected at the facade boundary before any work starts.
type ShapeError struct {
	Op     string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("par: %s: %s", e.Op, e.Reason)
}

// NewShapeError builds a ShapeError for the given operation.
func NewShapeError(op, format string, args ...any) error {
	return &ShapeError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// PolicyError reports combinator or policy misuse, detected at the
// facade boundary before any work starts.
type PolicyError struct {
	Op     string
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("par: %s: %s", e.Op, e.Reason)
}

// CallableError carries a failure recovered from a user callable. The
// partitioner keeps the first failing chunk in source order; exactly
// one CallableError surfaces per invocation.
type CallableError struct {
	// Op names the algorithm that was running.
	Op string

	// Chunk is the source-order index of the failing chunk.
	Chunk int

	// Value is the recovered panic value.
	Value any
}

func (e *CallableError) Error() string {
	return fmt.Sprintf("par: %s: user callable failed in chunk %d: %v", e.Op, e.Chunk, e.Value)
}

// Unwrap exposes the recovered value when it was itself an error.
func (e *CallableError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ExecutorError reports a task spawn rejected by the executor. The
// Executor interface has no way to reject a spawn, so no facade or
// partitioner path returns an ExecutorError; the type and
// WrapExecutorError are available to callers that build one.
type ExecutorError struct {
	Op  string
	Err error
}

func (e *ExecutorError) Error() string {
	return fmt.Sprintf("par: %s: executor failure: %v", e.Op, e.Err)
}

func (e *ExecutorError) Unwrap() error { return e.Err }

// WrapExecutorError annotates err with the failing operation.
func WrapExecutorError(op string, err error) error {
	return &ExecutorError{Op: op, Err: errors.WithStack(err)}
}
