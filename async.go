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
	"runtime"
	"sync"

	"github.com/taskpar/future/pool"
)

// Launch is the set of scheduling policy bits accepted by Async and Then.
type Launch uint8

const (
	// LaunchAsync forces the scheduler to enqueue the producer, disabling
	// any inline-run optimization the scheduler has.
	LaunchAsync Launch = 1 << iota

	// LaunchDeferred permits a waiter to run the producer on its own
	// goroutine, when no scheduler has started it by the time the waiter
	// arrives.
	LaunchDeferred
)

// Async wraps the producer fn in a new future and submits its run to sched.
//
// The policy bits combine freely: LaunchAsync forces queuing on the
// scheduler, LaunchDeferred additionally allows any waiter to execute fn
// inline. With neither bit set, the scheduler decides whether the run is
// queued or executed on the submitting goroutine.
//
// If sched is a *TaskSet or *ConcurrentTaskSet, its outstanding counter is
// bumped before submission and wired into the future, which decrements it
// once ready; the set's Wait then implies readiness of this future.
//
// It panics if fn or sched is nil.
func Async[T any](fn func() T, sched Schedulable, policy Launch) Future[T] {
	if fn == nil {
		panic(nilProducerPanicMsg)
	}
	if sched == nil {
		panic(nilSchedulerPanicMsg)
	}

	core := newCore(fn, policy&LaunchDeferred != 0, outstandingOf(sched))
	if core.outstanding != nil {
		core.outstanding.Inc()
	}
	submit(sched, core.run, policy)
	return Future[T]{core: core}
}

// Go runs fn on the default pool, with the LaunchAsync policy, and returns
// the future of its value.
func Go[T any](fn func() T) Future[T] {
	return Async(fn, DefaultPool(), LaunchAsync)
}

// submit hands the run closure to sched, as a forced-queue submission when
// the policy asks for async.
func submit(sched Schedulable, run func(), policy Launch) {
	if policy&LaunchAsync != 0 {
		sched.ScheduleQueued(run)
	} else {
		sched.Schedule(run)
	}
}

var (
	defPoolOnce sync.Once
	defPool     *pool.Pool
)

// DefaultPool returns the process-wide pool used by Go and by callers that
// don't carry their own scheduler.
// It's created on first use, with one worker per available CPU.
func DefaultPool() *pool.Pool {
	defPoolOnce.Do(func() {
		defPool = pool.New(&pool.Config{Workers: runtime.GOMAXPROCS(0)})
	})
	return defPool
}
