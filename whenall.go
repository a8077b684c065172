package future

import "go.uber.org/atomic"

// whenAllShared is the state shared between a sequence aggregate's fan-in
// continuations and its output producer.
type whenAllShared[T any] struct {
	// futures is the copied input slice; it becomes the aggregate's value.
	futures []Future[T]

	// remaining counts the inputs that are not ready yet.
	// the decrements are not relied on for ordering; the ordering needed to
	// read a completed input is provided by the wait inside the output
	// producer.
	remaining atomic.Int32

	// fire is the output future's captured run, transferred out of the
	// interception invoker before any continuation is installed, so it's
	// fully in place before the last input could complete.
	fire func()
}

// WhenAll returns a future that resolves once every input future is ready.
//
// Its value is the slice of the input handles themselves, each of them ready
// by then, so a failed element doesn't fail the aggregate: the aggregate
// always resolves, and each element's own Get reports its value or failure.
//
// With no inputs, the returned future is immediately ready with an empty
// slice.
func WhenAll[T any](futures ...Future[T]) Future[[]Future[T]] {
	if len(futures) == 0 {
		return MakeReadyFuture([]Future[T]{})
	}

	shared := &whenAllShared[T]{futures: append([]Future[T](nil), futures...)}
	shared.remaining.Store(int32(len(shared.futures)))

	whenComplete := func() []Future[T] {
		for _, f := range shared.futures {
			// once the counter hits zero every input is known ready, and
			// the rest of the waits can be skipped.
			if shared.remaining.Load() == 0 {
				break
			}
			f.Wait()
		}
		return shared.futures
	}

	// construct the output against an interception invoker, so its run is
	// captured instead of scheduled, then move the captured run into the
	// shared state before any input can possibly fire it.
	// LaunchDeferred lets a waiter on the aggregate drive the walk, and
	// through it any deferred inputs, on its own goroutine.
	interceptor := new(interceptionInvoker)
	res := Async(whenComplete, interceptor, LaunchDeferred)
	shared.fire = interceptor.saved

	for _, f := range shared.futures {
		Then(f, Immediate, 0, func(Future[T]) Void {
			if shared.remaining.Dec() == 0 {
				shared.fire()
			}
			return Void{}
		})
	}

	return res
}

// WhenAllValues is WhenAll collapsed to the element values: its future
// resolves to the Get of every input, in input order.
// Unlike WhenAll, a failed element surfaces through the aggregate: the
// element's captured panic re-raises inside the aggregate's producer and
// becomes the aggregate's own failure.
func WhenAllValues[T any](futures ...Future[T]) Future[[]T] {
	all := WhenAll(futures...)
	return Then(all, Immediate, LaunchDeferred, func(all Future[[]Future[T]]) []T {
		ready := all.Get()
		vals := make([]T, len(ready))
		for i, f := range ready {
			vals[i] = f.Get()
		}
		return vals
	})
}
