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

// Then chains fn behind the future f: once f is ready, fn receives the
// completed handle and its return value resolves the returned future.
//
// It's a free function rather than a method only because the result type R
// is independent of T, and Go methods can't introduce type parameters.
//
// fn always receives a ready handle, so its Get never blocks; a failure in
// f doesn't propagate implicitly, and fn is free to inspect it through Err
// or observe the re-panic of Get.
//
// The continuation races freely with f's completion: installed before f is
// ready, its producer is submitted to sched by whichever goroutine publishes
// readiness; installed after, it's submitted synchronously by the installing
// goroutine. Either way it runs exactly once. The policy bits apply to the
// returned future the same way they do in Async.
//
// It panics if fn or sched is nil, or if f is invalid.
func Then[T, R any](f Future[T], sched Schedulable, policy Launch, fn func(Future[T]) R) Future[R] {
	if fn == nil {
		panic(nilProducerPanicMsg)
	}
	if sched == nil {
		panic(nilSchedulerPanicMsg)
	}
	assertValid(f.core != nil)

	producer := func() R {
		f.Wait()
		return fn(f)
	}
	core := newCore(producer, policy&LaunchDeferred != 0, outstandingOf(sched))
	if core.outstanding != nil {
		core.outstanding.Inc()
	}

	f.core.pushThen(&thenNode{
		sched:  sched,
		queued: policy&LaunchAsync != 0,
		target: core.run,
	})
	return Future[R]{core: core}
}
