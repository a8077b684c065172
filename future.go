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

import "time"

// WaitStatus is the outcome of a timed wait.
type WaitStatus uint8

const (
	// StatusReady reports that the future became ready within the wait.
	StatusReady WaitStatus = iota

	// StatusTimeout reports that the wait gave up before the future became
	// ready. The producer stays eligible to complete afterwards, and the
	// wait may simply be retried.
	StatusTimeout
)

func (s WaitStatus) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusTimeout:
		return "timeout"
	default:
		return "<UnknownWaitStatus>"
	}
}

// Future is a handle to a one-shot asynchronous value of type T.
//
// Handles are small and freely copyable; all copies share the same
// underlying state, which stays alive until the last handle, scheduled run,
// and continuation referencing it are gone.
//
// The zero Future is invalid; using it panics. Futures are created by Async,
// Go, the MakeReady constructors, Then, and the WhenAll operators.
type Future[T any] struct {
	core *futureCore[T]
}

// Valid reports whether this handle refers to a future.
// It returns false only for the zero Future.
func (f Future[T]) Valid() bool {
	return f.core != nil
}

// IsReady reports whether the future's value (or failure) is available.
// Once it returns true, Get is guaranteed to return without blocking.
func (f Future[T]) IsReady() bool {
	assertValid(f.core != nil)
	return f.core.ready()
}

// Wait blocks until the future is ready.
//
// If the future was created with LaunchDeferred and no scheduler has started
// its producer, Wait runs the producer on the calling goroutine instead of
// blocking.
func (f Future[T]) Wait() {
	assertValid(f.core != nil)
	f.core.wait()
}

// WaitFor waits like Wait, but gives up after at least duration d.
// A timeout doesn't affect the future; its producer remains eligible to
// complete asynchronously.
func (f Future[T]) WaitFor(d time.Duration) WaitStatus {
	assertValid(f.core != nil)
	return f.core.waitFor(d)
}

// WaitUntil waits like Wait, but gives up once the time t passes.
func (f Future[T]) WaitUntil(t time.Time) WaitStatus {
	assertValid(f.core != nil)
	return f.core.waitUntil(t)
}

// Get waits for the future to be ready and returns its value.
//
// If the producer panicked, Get re-panics with the captured *PanicError, on
// this and every later call.
func (f Future[T]) Get() T {
	assertValid(f.core != nil)
	f.core.wait()
	if pe := f.core.failure; pe != nil {
		panic(pe)
	}
	return f.core.val
}

// Err waits for the future to be ready and returns the captured producer
// failure, or nil if the producer returned normally.
// Unlike Get, it never panics on a failed future, which makes it the way a
// continuation inspects its input.
func (f Future[T]) Err() error {
	assertValid(f.core != nil)
	f.core.wait()
	if pe := f.core.failure; pe != nil {
		return pe
	}
	return nil
}
