package future

import "go.uber.org/atomic"

// Tuple2 is the value of a two-way heterogeneous aggregate: the two input
// handles, both ready once the aggregate resolves.
type Tuple2[A, B any] struct {
	First  Future[A]
	Second Future[B]
}

// Tuple3 is the value of a three-way heterogeneous aggregate.
type Tuple3[A, B, C any] struct {
	First  Future[A]
	Second Future[B]
	Third  Future[C]
}

// Tuple4 is the value of a four-way heterogeneous aggregate.
type Tuple4[A, B, C, D any] struct {
	First  Future[A]
	Second Future[B]
	Third  Future[C]
	Fourth Future[D]
}

// whenAllTuple carries the fixed-arity aggregate's fan-in state; the tuple
// itself lives in the producer closure, typed per arity.
type whenAllTuple struct {
	remaining atomic.Int32
	fire      func()
}

// attach installs the fan-in continuation on one input, through the
// immediate invoker, so the decrement runs on whichever goroutine publishes
// that input's readiness.
func attach[T any](shared *whenAllTuple, f Future[T]) {
	Then(f, Immediate, 0, func(Future[T]) Void {
		if shared.remaining.Dec() == 0 {
			shared.fire()
		}
		return Void{}
	})
}

// WhenAll2 returns a future that resolves to the pair of the two input
// handles once both are ready.
// As with WhenAll, element failures stay on the elements; the aggregate
// itself always resolves.
func WhenAll2[A, B any](a Future[A], b Future[B]) Future[Tuple2[A, B]] {
	shared := new(whenAllTuple)
	shared.remaining.Store(2)

	whenComplete := func() Tuple2[A, B] {
		// the unrolled walk over the tuple, short-circuiting like the
		// sequence walk once the counter reports everything ready.
		if shared.remaining.Load() != 0 {
			a.Wait()
		}
		if shared.remaining.Load() != 0 {
			b.Wait()
		}
		return Tuple2[A, B]{First: a, Second: b}
	}

	interceptor := new(interceptionInvoker)
	res := Async(whenComplete, interceptor, LaunchDeferred)
	shared.fire = interceptor.saved

	attach(shared, a)
	attach(shared, b)
	return res
}

// WhenAll3 returns a future that resolves to the triple of the three input
// handles once all are ready.
func WhenAll3[A, B, C any](a Future[A], b Future[B], c Future[C]) Future[Tuple3[A, B, C]] {
	shared := new(whenAllTuple)
	shared.remaining.Store(3)

	whenComplete := func() Tuple3[A, B, C] {
		if shared.remaining.Load() != 0 {
			a.Wait()
		}
		if shared.remaining.Load() != 0 {
			b.Wait()
		}
		if shared.remaining.Load() != 0 {
			c.Wait()
		}
		return Tuple3[A, B, C]{First: a, Second: b, Third: c}
	}

	interceptor := new(interceptionInvoker)
	res := Async(whenComplete, interceptor, LaunchDeferred)
	shared.fire = interceptor.saved

	attach(shared, a)
	attach(shared, b)
	attach(shared, c)
	return res
}

// WhenAll4 returns a future that resolves to the quadruple of the four
// input handles once all are ready.
func WhenAll4[A, B, C, D any](a Future[A], b Future[B], c Future[C], d Future[D]) Future[Tuple4[A, B, C, D]] {
	shared := new(whenAllTuple)
	shared.remaining.Store(4)

	whenComplete := func() Tuple4[A, B, C, D] {
		if shared.remaining.Load() != 0 {
			a.Wait()
		}
		if shared.remaining.Load() != 0 {
			b.Wait()
		}
		if shared.remaining.Load() != 0 {
			c.Wait()
		}
		if shared.remaining.Load() != 0 {
			d.Wait()
		}
		return Tuple4[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}
	}

	interceptor := new(interceptionInvoker)
	res := Async(whenComplete, interceptor, LaunchDeferred)
	shared.fire = interceptor.saved

	attach(shared, a)
	attach(shared, b)
	attach(shared, c)
	attach(shared, d)
	return res
}
