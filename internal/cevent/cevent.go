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

// Package cevent provides the completion event primitive backing the future
// core: an atomic 32-bit state cell, plus a broadcast channel that lets any
// number of goroutines wait, with or without a deadline, for the cell to
// reach its terminal value.
//
// The cell's value is owned by the caller; this package only requires that
// the value is monotonically increasing, and that Notify is called at most
// once per event, with the largest value the cell will ever hold.
package cevent

import (
	"time"

	"go.uber.org/atomic"
)

// Event couples the state cell with its wait primitive.
//
// The zero value is not usable; create events with Make or MakeReady.
type Event struct {
	// state is read and updated atomically, by the event owner (through
	// CompareAndSwap and Notify) and by any number of readers.
	state atomic.Uint32

	// done is closed by Notify, for one time, after the terminal value is
	// stored in the cell.
	// it has one writer (the goroutine that completes the event), but can
	// have multiple readers (the waiting goroutines).
	done chan struct{}
}

// closedChan is shared between all events created ready, so that they don't
// allocate a channel that would never be waited on.
var closedChan = make(chan struct{})

func init() {
	close(closedChan)
}

// Make returns an Event holding the provided initial state.
func Make(initial uint32) Event {
	e := Event{done: make(chan struct{})}
	e.state.Store(initial)
	return e
}

// MakeReady returns an Event that's already notified with the provided
// terminal state, without allocating a channel.
// No ordering is published by MakeReady; it must be called before the event
// is shared with any other goroutine.
func MakeReady(terminal uint32) Event {
	e := Event{done: closedChan}
	e.state.Store(terminal)
	return e
}

// Load returns the current value of the state cell.
func (e *Event) Load() uint32 {
	return e.state.Load()
}

// CompareAndSwap atomically replaces old with new in the state cell, and
// reports whether it did.
func (e *Event) CompareAndSwap(old, new uint32) bool {
	return e.state.CompareAndSwap(old, new)
}

// Notify stores v in the state cell and wakes all current and future
// waiters.
// It must be called at most once per event.
func (e *Event) Notify(v uint32) {
	e.state.Store(v)
	close(e.done)
}

// Wait blocks until the state cell holds at least v.
func (e *Event) Wait(v uint32) {
	if e.state.Load() >= v {
		return
	}
	<-e.done
}

// WaitFor blocks until the state cell holds at least v, or until at least
// duration d has passed, and reports whether v was reached.
func (e *Event) WaitFor(v uint32, d time.Duration) bool {
	if e.state.Load() >= v {
		return true
	}
	if d <= 0 {
		return false
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-e.done:
		return true
	case <-timer.C:
		// re-check, as the event might have been notified between the timer
		// firing and this select choosing its case.
		return e.state.Load() >= v
	}
}

// WaitUntil blocks until the state cell holds at least v, or until the time
// t has passed, and reports whether v was reached.
func (e *Event) WaitUntil(v uint32, t time.Time) bool {
	return e.WaitFor(v, time.Until(t))
}
