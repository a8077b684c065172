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

// Schedulable is the only capability the future core needs from an executor:
// accept a one-shot callable, and invoke it exactly once.
//
// Schedule leaves the executor free to run fn on the submitting goroutine.
// ScheduleQueued must hand fn to another goroutine, never running it inline;
// it's what the LaunchAsync policy forces.
type Schedulable interface {
	Schedule(fn func())
	ScheduleQueued(fn func())
}

// immediateInvoker runs every submission synchronously on the submitting
// goroutine, including force-queued ones.
type immediateInvoker struct{}

func (immediateInvoker) Schedule(fn func())       { fn() }
func (immediateInvoker) ScheduleQueued(fn func()) { fn() }

// Immediate is the invoker that runs callables synchronously on the
// submitting goroutine.
// A continuation installed with it executes on whichever goroutine publishes
// the input future's readiness; the WhenAll operators use it for their
// fan-in continuations.
var Immediate Schedulable = immediateInvoker{}

// goroutineInvoker spawns a goroutine per submission.
type goroutineInvoker struct{}

func (goroutineInvoker) Schedule(fn func())       { go fn() }
func (goroutineInvoker) ScheduleQueued(fn func()) { go fn() }

// Goroutine is the invoker that runs every callable on its own, newly
// spawned goroutine, bypassing any pool.
var Goroutine Schedulable = goroutineInvoker{}

// interceptionInvoker doesn't run or enqueue anything: it stores the
// submitted callable in its saved slot, for the caller to transfer
// elsewhere.
// The WhenAll operators construct their output future against it, so that
// the output's scheduled run is captured instead of started, and can be
// fired later by the last fan-in continuation.
type interceptionInvoker struct {
	saved func()
}

func (ii *interceptionInvoker) Schedule(fn func())       { ii.saved = fn }
func (ii *interceptionInvoker) ScheduleQueued(fn func()) { ii.saved = fn }
