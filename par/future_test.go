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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAsyncSeqResolvesOnCallingGoroutine(t *testing.T) {
	f := Async(Seq.Task(), func(Policy) (int, error) { return 42, nil })

	// Sequential task policies resolve before Async returns.
	require.True(t, f.Ready())

	v, err := f.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAsyncParDeliversValue(t *testing.T) {
	f := Async(Par.Task(), func(p Policy) (string, error) {
		require.False(t, p.IsTask())
		return "done", nil
	})

	v, err := f.Wait()
	require.NoError(t, err)
	require.Equal(t, "done", v)

	// Awaiting after completion is a no-op.
	v, err = f.Wait()
	require.NoError(t, err)
	require.Equal(t, "done", v)
	require.True(t, f.Ready())
}

func TestAsyncCarriesError(t *testing.T) {
	boom := errors.New("boom")
	f := Async(Par.Task(), func(Policy) (int, error) { return 0, boom })

	_, err := f.Wait()
	require.ErrorIs(t, err, boom)
}

func TestFutureDoneChannel(t *testing.T) {
	f := Async(Par.Task(), func(Policy) (int, error) { return 7, nil })
	<-f.Done()
	require.True(t, f.Ready())
}

func TestWaitAll(t *testing.T) {
	boom := errors.New("boom")
	ok := Async(Par.Task(), func(Policy) (int, error) { return 1, nil })
	bad := Async(Par.Task(), func(Policy) (int, error) { return 0, boom })
	also := Async(Par.Task(), func(Policy) (int, error) { return 0, errors.New("later") })

	err := WaitAll(ok, bad, also)
	require.ErrorIs(t, err, boom)
	require.NoError(t, WaitAll(ok))
}
