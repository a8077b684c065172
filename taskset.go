package future

import (
	"runtime"

	"go.uber.org/atomic"
)

// taskSetCore carries what both task set flavors share: the scheduler that
// receives the actual submissions, and the outstanding counter.
//
// The counter is bumped by Async/Then before a future's run is submitted,
// and decremented by the future core after its status becomes ready. The
// decrement ordering is what makes Wait imply per-future readiness.
type taskSetCore struct {
	sched       Schedulable
	outstanding atomic.Int32
}

// counterSchedulable is how Async and Then recognize a task-set-like
// scheduler.
// It's a private interface, which can only be implemented by the task set
// types of this module.
type counterSchedulable interface {
	Schedulable
	counter() *atomic.Int32
}

// outstandingOf returns sched's outstanding counter, or nil when sched isn't
// task-set-like.
func outstandingOf(sched Schedulable) *atomic.Int32 {
	if cs, ok := sched.(counterSchedulable); ok {
		return cs.counter()
	}
	return nil
}

func (ts *taskSetCore) Schedule(fn func())       { ts.sched.Schedule(fn) }
func (ts *taskSetCore) ScheduleQueued(fn func()) { ts.sched.ScheduleQueued(fn) }

func (ts *taskSetCore) counter() *atomic.Int32 { return &ts.outstanding }

func (ts *taskSetCore) wait() {
	// don't block on a primitive here: the attached futures may resolve on
	// any scheduler, including inline on a waiter, so just hand the
	// processor to other goroutines until the last decrement lands.
	for ts.outstanding.Load() != 0 {
		runtime.Gosched()
	}
}

// TaskSet groups futures so they can be awaited together.
//
// Futures join a set by being constructed with it as their scheduler; the
// set merely counts them and delegates the submissions to the scheduler it
// wraps.
//
// A TaskSet's futures must all be constructed from the same goroutine; use
// ConcurrentTaskSet when multiple goroutines construct futures against the
// same set.
type TaskSet struct {
	taskSetCore
}

// NewTaskSet returns a TaskSet submitting to sched.
func NewTaskSet(sched Schedulable) *TaskSet {
	if sched == nil {
		panic(nilSchedulerPanicMsg)
	}
	return &TaskSet{taskSetCore{sched: sched}}
}

// Wait blocks until every future constructed against this set is ready.
func (ts *TaskSet) Wait() {
	ts.wait()
}

// ConcurrentTaskSet is a TaskSet whose futures may be constructed
// concurrently, from any number of goroutines.
type ConcurrentTaskSet struct {
	taskSetCore
}

// NewConcurrentTaskSet returns a ConcurrentTaskSet submitting to sched.
func NewConcurrentTaskSet(sched Schedulable) *ConcurrentTaskSet {
	if sched == nil {
		panic(nilSchedulerPanicMsg)
	}
	return &ConcurrentTaskSet{taskSetCore{sched: sched}}
}

// Wait blocks until every future constructed against this set is ready.
func (ts *ConcurrentTaskSet) Wait() {
	ts.wait()
}
