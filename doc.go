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

// Package future provides a fast, lock-free, one-shot future implementation
// for task-parallel code.
//
// A Future is a handle to a value that's produced exactly once, by a
// producer function that can run on a worker pool, on the waiter's own
// goroutine, or on whichever goroutine completes an upstream future.
// Waiters observe the production through the status of the shared state,
// and continuations installed with Then race freely with completion while
// still running exactly once.
//
// A future's status is in exactly one of three values, at any time, and
// only ever advances:
// NotStarted: no goroutine has claimed the producer yet.
// Running: one goroutine claimed the producer and is executing it.
// Ready: the value (or the captured producer panic) is published, finally.
//
// General notes:-
//
// * Once a future is Ready, its value will not change, and every Get call
// returns it (or re-raises the captured panic) without blocking.
//
// * The producer is claimed through a single compare-and-swap, so it runs
// at most once, no matter how many schedulers, waiters, and continuations
// race for it.
//
// * A timed wait that times out doesn't affect the future; the producer is
// still eligible to complete, and the wait can simply be retried. Like Wait,
// a timed wait on a LaunchDeferred future that no one has started runs the
// producer inline to completion first.
//
// * There is no cancellation. Dropping every handle before the producer
// runs doesn't stop the scheduled work; the scheduled run keeps the shared
// state alive until the producer finishes.
//
// Scheduling:-
//
// * Anything with the two submission methods of Schedulable can execute
// futures: the bundled pool, the task set types, Immediate (run on the
// submitting goroutine), or Goroutine (one goroutine per submission).
//
// * The LaunchAsync policy forces the scheduler to enqueue, disabling any
// inline-run shortcut. The LaunchDeferred policy allows a waiter to claim
// and run the producer on its own goroutine, which composes with schedulers
// that never run anything at all.
//
// Composition:-
//
// * WhenAll, WhenAll2/3/4, and WhenAllValues aggregate futures without
// blocking any goroutine on installation: each input carries a fan-in
// continuation, and the last one to complete fires the aggregate's
// producer.
package future
