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

package cevent

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	stateStart uint32 = iota
	stateMid
	stateDone
)

func TestMakeAndLoad(t *testing.T) {
	e := Make(stateStart)
	require.Equal(t, stateStart, e.Load())
}

func TestCompareAndSwap(t *testing.T) {
	e := Make(stateStart)

	require.True(t, e.CompareAndSwap(stateStart, stateMid))
	require.Equal(t, stateMid, e.Load())

	// a stale expectation must fail and leave the cell alone
	require.False(t, e.CompareAndSwap(stateStart, stateDone))
	require.Equal(t, stateMid, e.Load())
}

func TestNotifyWakesAllWaiters(t *testing.T) {
	e := Make(stateStart)

	const waiters = 16
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			e.Wait(stateDone)
			if got := e.Load(); got != stateDone {
				t.Errorf("Load() = %v after Wait, want: %v", got, stateDone)
			}
		}()
	}

	e.Notify(stateDone)
	wg.Wait()
}

func TestWaitReturnsImmediatelyWhenReached(t *testing.T) {
	e := MakeReady(stateDone)
	e.Wait(stateDone)
	require.Equal(t, stateDone, e.Load())
}

func TestWaitForTimesOut(t *testing.T) {
	e := Make(stateStart)

	require.False(t, e.WaitFor(stateDone, time.Millisecond))
	require.False(t, e.WaitFor(stateDone, 0))
	require.False(t, e.WaitFor(stateDone, -time.Second))
}

func TestWaitForSucceeds(t *testing.T) {
	e := Make(stateStart)

	go func() {
		time.Sleep(5 * time.Millisecond)
		e.Notify(stateDone)
	}()

	require.True(t, e.WaitFor(stateDone, time.Minute))
}

func TestWaitUntil(t *testing.T) {
	e := Make(stateStart)
	require.False(t, e.WaitUntil(stateDone, time.Now().Add(time.Millisecond)))

	e.Notify(stateDone)
	require.True(t, e.WaitUntil(stateDone, time.Now().Add(-time.Second)))
}

func TestMakeReadySharesNoAllocation(t *testing.T) {
	// ready events must be waitable and timed-waitable without a Notify
	e := MakeReady(stateDone)
	require.Equal(t, closedChan, e.done)

	require.True(t, e.WaitFor(stateDone, 0))
	require.True(t, e.WaitUntil(stateDone, time.Now()))
}
