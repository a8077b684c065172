// Copyright 2024 the taskpar authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package future

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhenAllEmpty(t *testing.T) {
	w := WhenAll[int]()

	require.True(t, w.IsReady())
	require.Empty(t, w.Get())
}

func TestWhenAllSequence(t *testing.T) {
	const n = 100

	futures := make([]Future[int], n)
	for i := 0; i < n; i++ {
		i := i
		futures[i] = Async(func() int { return i }, DefaultPool(), LaunchAsync)
	}

	w := WhenAll(futures...)
	got := w.Get()

	require.Len(t, got, n)
	for i, f := range got {
		require.True(t, f.IsReady())
		require.Equal(t, i, f.Get())
	}
}

func TestWhenAllValuesSequence(t *testing.T) {
	const n = 100

	futures := make([]Future[int], n)
	for i := 0; i < n; i++ {
		i := i
		futures[i] = Async(func() int { return i }, DefaultPool(), LaunchAsync)
	}

	vals := WhenAllValues(futures...).Get()

	require.Len(t, vals, n)
	for i, v := range vals {
		require.Equal(t, i, v)
	}
}

func TestWhenAllMixedReadiness(t *testing.T) {
	release := make(chan struct{})
	slow := Async(func() int {
		<-release
		return 2
	}, DefaultPool(), LaunchAsync)

	w := WhenAll(MakeReadyFuture(1), slow, MakeReadyFuture(3))

	require.False(t, w.IsReady())
	close(release)

	got := w.Get()
	require.Equal(t, 1, got[0].Get())
	require.Equal(t, 2, got[1].Get())
	require.Equal(t, 3, got[2].Get())
}

func TestWhenAllDoesNotShortCircuitOnFailure(t *testing.T) {
	release := make(chan struct{})
	failed := Async(func() int { panic("element") }, DefaultPool(), LaunchAsync)
	slow := Async(func() int {
		<-release
		return 9
	}, DefaultPool(), LaunchAsync)

	w := WhenAll(failed, slow)

	// the aggregate resolves only when all inputs are resolved, failed or
	// not.
	failed.Wait()
	require.False(t, w.IsReady())
	close(release)

	got := w.Get()
	require.Error(t, got[0].Err())
	require.Equal(t, 9, got[1].Get())
}

func TestWhenAllValuesFailedElement(t *testing.T) {
	failed := Async(func() int { panic("element") }, DefaultPool(), LaunchAsync)
	w := WhenAllValues(MakeReadyFuture(1), failed)

	// collapsing to values adopts the element failure as the aggregate's
	require.Error(t, w.Err())
}

func TestWhenAllDeferredInputs(t *testing.T) {
	// inputs that no scheduler will ever run; the aggregate waiter drives
	// them inline through the producer's walk.
	a := Async(func() int { return 1 }, nullScheduler{}, LaunchDeferred)
	b := Async(func() int { return 2 }, nullScheduler{}, LaunchDeferred)

	w := WhenAll(a, b)
	got := w.Get()

	require.Equal(t, 1, got[0].Get())
	require.Equal(t, 2, got[1].Get())
}

func TestWhenAll2Heterogeneous(t *testing.T) {
	a := Async(func() int { return 1 }, DefaultPool(), LaunchAsync)
	b := Async(func() string { return "x" }, DefaultPool(), LaunchAsync)

	pair := WhenAll2(a, b).Get()

	require.Equal(t, 1, pair.First.Get())
	require.Equal(t, "x", pair.Second.Get())
}

func TestWhenAll3Heterogeneous(t *testing.T) {
	a := Async(func() int { return 1 }, DefaultPool(), LaunchAsync)
	b := Async(func() string { return "x" }, DefaultPool(), LaunchAsync)
	c := Async(func() float64 { return 3.5 }, DefaultPool(), LaunchAsync)

	triple := WhenAll3(a, b, c).Get()

	require.Equal(t, 1, triple.First.Get())
	require.Equal(t, "x", triple.Second.Get())
	require.Equal(t, 3.5, triple.Third.Get())
}

func TestWhenAll4Heterogeneous(t *testing.T) {
	a := MakeReadyFuture(1)
	b := MakeReadyFuture("x")
	c := MakeReadyFuture(3.5)
	d := MakeReadyFuture(true)

	quad := WhenAll4(a, b, c, d).Get()

	require.Equal(t, 1, quad.First.Get())
	require.Equal(t, "x", quad.Second.Get())
	require.Equal(t, 3.5, quad.Third.Get())
	require.True(t, quad.Fourth.Get())
}

func TestWhenAllReadyInputs(t *testing.T) {
	// every fan-in continuation runs synchronously during construction, so
	// the aggregate's producer fires before WhenAll returns.
	w := WhenAll(MakeReadyFuture(1), MakeReadyFuture(2))

	require.True(t, w.IsReady())
	got := w.Get()
	require.Equal(t, 1, got[0].Get())
	require.Equal(t, 2, got[1].Get())
}
