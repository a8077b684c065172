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

// Package pool provides the fixed-size worker pool that executes future
// runs in the background.
//
// The pool deliberately knows nothing about futures: it accepts one-shot
// callables through two submission paths, a default path that may fall back
// to running the callable on the submitting goroutine, and a forced-queue
// path that always hands it to a worker.
package pool

import (
	"runtime"
	"sync"
)

type Config struct {
	// Workers is the number of worker goroutines the pool runs.
	// If it's 0 or less, one worker per available CPU is used.
	Workers int

	// QueueSize is the capacity of the submission queue.
	// If it's 0 or less, a default proportional to Workers is used.
	// Once the queue is full, Schedule runs callables on the submitting
	// goroutine, while ScheduleQueued blocks until a slot frees up.
	QueueSize int
}

// Pool is a fixed set of worker goroutines draining a bounded queue.
type Pool struct {
	queue chan func()

	closeOnce sync.Once
	workersWG sync.WaitGroup
}

// New creates and starts a Pool.
func New(c ...*Config) *Pool {
	workers := 0
	queueSize := 0
	if len(c) != 0 && c[0] != nil {
		workers = c[0].Workers
		queueSize = c[0].QueueSize
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if queueSize <= 0 {
		queueSize = workers * 64
	}

	p := &Pool{queue: make(chan func(), queueSize)}

	p.workersWG.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.workersWG.Done()
	for fn := range p.queue {
		fn()
	}
}

// Schedule submits fn for execution, running it on the calling goroutine
// when the queue is full.
// The inline fallback keeps submission non-blocking; callers that can't
// tolerate inline execution use ScheduleQueued.
func (p *Pool) Schedule(fn func()) {
	select {
	case p.queue <- fn:
	default:
		fn()
	}
}

// ScheduleQueued submits fn for execution by a worker, never running it on
// the calling goroutine.
// It blocks while the queue is full.
func (p *Pool) ScheduleQueued(fn func()) {
	p.queue <- fn
}

// Close stops accepting submissions and waits for the workers to finish
// the queued callables.
// Submitting to a closed pool panics.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})
	p.workersWG.Wait()
}
