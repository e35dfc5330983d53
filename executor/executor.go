// SPDX-License-Identifier: MIT
// Package executor implements the fatigue-priority worker pool: a
// fixed-size pool of worker.Worker values, dispatched always to the
// minimum-fatigue idle worker, with bulk barrier submission
// (SubmitAll) and poison-pill Shutdown.
//
// Dispatch is a container/heap pop keyed by (fatigue, id). Fatigue rises
// with cumulative busy time, so steady-state load per worker is inversely
// proportional to its fatigueFactor — a natural weighted round-robin.
package executor

import (
	"container/heap"
	"math/rand"
	"sync"

	"github.com/katalvlaran/fatiguemat/worker"
)

// Executor is a fixed-size pool of workers with an ordered idle set, an
// in-flight task counter, and a completion-signal condition guarding
// both.
type Executor struct {
	mu       sync.Mutex
	cond     *sync.Cond
	idle     idleHeap
	inFlight int
	workers  []*worker.Worker

	shutdownOnce sync.Once
}

// New constructs an Executor with n workers, each assigned a uniformly
// random fatigueFactor in [0.5, 1.5). Fails with ErrInvalidArgument when
// n <= 0.
func New(n int) (*Executor, error) {
	if n <= 0 {
		return nil, ErrInvalidArgument
	}

	rng := rand.New(rand.NewSource(rand.Int63()))
	factors := make([]float64, n)
	for i := range factors {
		factors[i] = 0.5 + rng.Float64() // [0.5, 1.5)
	}

	return newExecutor(factors)
}

// NewWithFactors constructs an Executor with one worker per entry in
// factors, each assigned that exact fatigueFactor. This is the
// deterministic-testing alternative to New's randomised factors — the
// visible dispatch policy (least-fatigue-first) is unchanged. Fails with
// ErrInvalidArgument when factors is empty.
func NewWithFactors(factors []float64) (*Executor, error) {
	if len(factors) == 0 {
		return nil, ErrInvalidArgument
	}

	return newExecutor(factors)
}

func newExecutor(factors []float64) (*Executor, error) {
	e := &Executor{}
	e.cond = sync.NewCond(&e.mu)

	for i, f := range factors {
		w := worker.New(uint64(i), f)
		e.workers = append(e.workers, w)
		e.idle = append(e.idle, w)
	}
	heap.Init(&e.idle)

	return e, nil
}

// Submit dispatches a single task to the minimum-fatigue idle worker,
// blocking until one is available, and returns once the task has been
// handed off (not once it has finished — pair with SubmitAll, or wait on
// your own completion channel, to observe completion of a single task).
func (e *Executor) Submit(task worker.Task) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.submitLocked(task)
}

// SubmitAll is the bulk barrier: it submits every task in order and
// blocks until all of them have finished. Submission and the wait happen
// under one held lock, so there is no window in which every task could
// complete (and broadcast) before the waiter starts waiting.
func (e *Executor) SubmitAll(tasks []worker.Task) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, task := range tasks {
		if err := e.submitLocked(task); err != nil {
			return err
		}
	}

	for e.inFlight > 0 {
		e.cond.Wait()
	}

	return nil
}

// submitLocked assumes e.mu is already held. It pops the least-fatigue
// idle worker (waiting on the condition if none are idle), increments
// inFlight *before* offering the wrapped task — so a task that finishes
// between the offer and the increment can never drive the counter
// negative — and offers the wrapped task to the worker.
func (e *Executor) submitLocked(task worker.Task) error {
	for len(e.idle) == 0 {
		e.cond.Wait()
	}

	w := heap.Pop(&e.idle).(*worker.Worker)
	e.inFlight++

	wrapped := func() {
		task()

		e.mu.Lock()
		heap.Push(&e.idle, w)
		e.inFlight--
		e.cond.Broadcast()
		e.mu.Unlock()
	}

	if err := w.Offer(wrapped); err != nil {
		// Should not happen under the protocol (w was just popped idle),
		// but roll back cleanly if it ever does.
		e.inFlight--
		heap.Push(&e.idle, w)

		return err
	}

	return nil
}

// Shutdown waits for all in-flight tasks to finish, delivers a poison
// pill to every worker, and joins every worker goroutine. Idempotent and
// safe to call once per Executor (repeated calls after the first return
// immediately).
func (e *Executor) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.mu.Lock()
		for e.inFlight > 0 {
			e.cond.Wait()
		}
		e.mu.Unlock()

		for _, w := range e.workers {
			w.Shutdown()
		}
		for _, w := range e.workers {
			w.Join()
		}
	})
}
