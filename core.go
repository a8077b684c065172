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
	"time"

	"go.uber.org/atomic"

	"github.com/taskpar/future/internal/cevent"
)

// the status values held in the core's completion event cell.
// the status only ever advances, notStarted -> running -> ready.
const (
	notStarted uint32 = iota
	running
	ready
)

// futureCore is the shared state of one future.
//
// It's reachable from every handle copied from the original, from the run
// closure submitted to the scheduler, and from every continuation installed
// on it, and it stays alive until the last of them drops it.
type futureCore[T any] struct {
	// event holds the status cell, and provides the blocking-wait support
	// for the wait methods.
	event cevent.Event

	// chain is the head of the LIFO stack of continuations to be fired once
	// the status becomes ready.
	chain atomic.Pointer[thenNode]

	// outstanding points to the task set counter this core is attached to,
	// or nil.
	// it's decremented for one time, after the status becomes ready, so that
	// a task set wait implies readiness of every future attached to it.
	outstanding *atomic.Int32

	// allowInline permits a waiter to consume the producer and run it on its
	// own goroutine, when no scheduler has started it yet.
	allowInline bool

	// fn is the producer of this future's value.
	// it's consumed, exactly once, by the goroutine that wins the
	// notStarted -> running transition.
	fn func() T

	// val is the result slot.
	// written by the producer's goroutine only, before the status is
	// published as ready, and immutable afterwards.
	val T

	// failure is the failure slot, holding the recovered producer panic.
	// it's mutually exclusive with a meaningful val.
	failure *PanicError
}

// thenNode is one continuation in a core's then-chain.
//
// The node is owned by its installer until the publishing CAS succeeds, then
// by the chain until a drain takes the whole list, and each drained node is
// fired exactly once.
type thenNode struct {
	next   *thenNode
	sched  Schedulable
	queued bool

	// target submits the downstream core's run to the node's scheduler.
	target func()
}

// fire submits the node's target on the scheduler chosen at install time.
func (n *thenNode) fire() {
	if n.queued {
		n.sched.ScheduleQueued(n.target)
	} else {
		n.sched.Schedule(n.target)
	}
}

// newCore creates a not-started core around the producer fn.
func newCore[T any](fn func() T, allowInline bool, outstanding *atomic.Int32) *futureCore[T] {
	return &futureCore[T]{
		event:       cevent.Make(notStarted),
		outstanding: outstanding,
		allowInline: allowInline,
		fn:          fn,
	}
}

// newReadyCore creates a core that's born ready, holding val.
// no ordering is needed, as no observer can exist before the constructor
// returns.
func newReadyCore[T any](val T) *futureCore[T] {
	return &futureCore[T]{
		event: cevent.MakeReady(ready),
		val:   val,
	}
}

// ready reports whether the core's status is ready.
func (c *futureCore[T]) ready() bool {
	return c.event.Load() == ready
}

// run is the core's scheduled entry point, submitted to schedulers and fired
// by continuations.
// After the first call, it's a no-op.
func (c *futureCore[T]) run() {
	c.tryRun(c.event.Load())
}

// tryRun attempts the notStarted -> running transition, starting from the
// pre-loaded status s.
// The winner invokes the producer, publishes the result with the ready
// notification, signals the task set counter, and drains the then-chain.
// It returns false if another goroutine won the transition, or the core was
// already past notStarted.
func (c *futureCore[T]) tryRun(s uint32) bool {
	for s == notStarted {
		if c.event.CompareAndSwap(notStarted, running) {
			c.produce()
			c.event.Notify(ready)
			if c.outstanding != nil {
				c.outstanding.Dec()
			}
			c.drainChain()
			return true
		}
		s = c.event.Load()
	}
	return false
}

// produce consumes the producer and fills the result slot, or the failure
// slot if the producer panicked.
// It must be called exactly once, by the tryRun winner, before the ready
// notification.
func (c *futureCore[T]) produce() {
	defer func() {
		if v := recover(); v != nil {
			c.failure = &PanicError{V: v}
		}
	}()

	fn := c.fn
	c.fn = nil
	c.val = fn()
}

// wait blocks until the core is ready.
// If the core allows inline execution and no scheduler has started the
// producer, wait consumes it and runs it on the calling goroutine instead.
func (c *futureCore[T]) wait() {
	if c.waitCommon(c.allowInline) {
		return
	}
	c.event.Wait(ready)
}

// waitFor is like wait, but gives up after at least duration d.
func (c *futureCore[T]) waitFor(d time.Duration) WaitStatus {
	if c.waitCommon(c.allowInline) || c.event.WaitFor(ready, d) {
		return StatusReady
	}
	return StatusTimeout
}

// waitUntil is like wait, but gives up once the time t passes.
func (c *futureCore[T]) waitUntil(t time.Time) WaitStatus {
	if c.waitCommon(c.allowInline) || c.event.WaitUntil(ready, t) {
		return StatusReady
	}
	return StatusTimeout
}

func (c *futureCore[T]) waitCommon(allowInline bool) bool {
	s := c.event.Load()
	return s == ready || (allowInline && c.tryRun(s))
}

// pushThen installs the continuation node n on this core.
//
// The install protocol, which is free to race with completion:
//  1. if the core is already ready, fire n directly, without insertion.
//  2. otherwise, publish n as the new chain head with a CAS loop.
//  3. re-check the status; completion might have drained the chain between
//     steps 1 and 2, so a ready status here requires draining again to make
//     sure n is not left behind.
func (c *futureCore[T]) pushThen(n *thenNode) {
	if c.event.Load() == ready {
		n.fire()
		return
	}

	for {
		head := c.chain.Load()
		n.next = head
		if c.chain.CompareAndSwap(head, n) {
			break
		}
	}

	if c.event.Load() == ready {
		c.drainChain()
	}
}

// drainChain takes the whole then-chain, for one time per non-empty chain,
// and fires every node on it.
// It's called by the tryRun winner after publishing ready, and by any
// installer that published a node after the winner's drain.
// The walk is iterative, so a long chain doesn't grow the stack.
func (c *futureCore[T]) drainChain() {
	for {
		head := c.chain.Load()
		if head == nil {
			return
		}
		if c.chain.CompareAndSwap(head, nil) {
			for n := head; n != nil; n = n.next {
				n.fire()
			}
		}
	}
}
