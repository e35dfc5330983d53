// SPDX-License-Identifier: MIT
// Package worker provides the long-lived execution context used by the
// fatigue-priority executor: a single-slot handoff queue, a cumulative
// busy-time counter, and a total, deterministic ordering by fatigue.
//
// States: IDLE -> BUSY -> IDLE -> ... -> DEAD. A Worker is comparable by
// fatigue — see Less — which the executor's idle set uses to always
// dispatch to the least-tired worker.
package worker

import (
	"sync/atomic"
	"time"
)

// Task is one unit of work a Worker runs to completion without ever
// yielding to the scheduler. A nil Task is the poison pill: the run loop
// exits instead of invoking it.
type Task func()

// Worker is a long-lived execution context with a single-slot handoff
// queue and a cumulative busy-time counter.
//
// fatigueFactor is immutable after construction and drawn once; busyNanos
// is written only by the worker's own run loop, and only ever by the
// owning goroutine, which is the cross-thread visibility contract readers
// of BusyNanos/Fatigue/IsBusy rely on.
type Worker struct {
	id            uint64
	fatigueFactor float64
	busyNanos     int64 // atomic; written only by run()
	busy          int32 // atomic bool
	handoff       chan Task
	done          chan struct{}
}

// New constructs and starts a Worker with the given id and fatigueFactor.
// The run loop begins immediately in its own goroutine.
func New(id uint64, fatigueFactor float64) *Worker {
	w := &Worker{
		id:            id,
		fatigueFactor: fatigueFactor,
		handoff:       make(chan Task, 1),
		done:          make(chan struct{}),
	}

	go w.run()

	return w
}

// ID returns the worker's immutable identity, used to break fatigue ties.
func (w *Worker) ID() uint64 {
	return w.id
}

// FatigueFactor returns the worker's immutable per-worker multiplier.
func (w *Worker) FatigueFactor() float64 {
	return w.fatigueFactor
}

// BusyNanos returns the worker's cumulative busy time. Safe to call from
// any goroutine; the run loop only ever extends it.
func (w *Worker) BusyNanos() int64 {
	return atomic.LoadInt64(&w.busyNanos)
}

// Fatigue returns fatigueFactor * cumulativeBusyNanos, the score the
// executor's idle set orders workers by.
func (w *Worker) Fatigue() float64 {
	return w.fatigueFactor * float64(atomic.LoadInt64(&w.busyNanos))
}

// IsBusy reports whether the worker is currently executing a task. An
// observer that sees IsBusy() == false is guaranteed to see the final
// BusyNanos for the just-finished task (busyNanos is updated before the
// busy flag clears — see run).
func (w *Worker) IsBusy() bool {
	return atomic.LoadInt32(&w.busy) == 1
}

// Less implements the worker ordering contract: (fatigue, id) ascending,
// id breaking ties for determinism. It never reads a live clock — only
// the stored busyNanos — so it is total and deterministic.
func (w *Worker) Less(other *Worker) bool {
	wf, of := w.Fatigue(), other.Fatigue()
	if wf != of {
		return wf < of
	}

	return w.id < other.id
}

// Offer publishes task to the worker's handoff slot, non-blocking. It
// succeeds only if the slot is currently empty; under the executor's
// protocol this is always the case, since the executor only offers to a
// worker it has just removed from the idle set.
func (w *Worker) Offer(task Task) error {
	select {
	case w.handoff <- task:
		return nil
	default:
		return ErrNotReady
	}
}

// Shutdown marks the worker for exit and reliably delivers the poison
// pill via a blocking publish, guaranteeing it is picked up even if the
// slot happens to be momentarily busy with an in-flight offer race (there
// is none under the executor's protocol, but the blocking send makes
// delivery unconditional regardless).
func (w *Worker) Shutdown() {
	w.handoff <- nil
}

// Join blocks until the worker's run loop has exited.
func (w *Worker) Join() {
	<-w.done
}

// run is the worker's single long-lived goroutine: take one task, run it
// to completion, record busy time, repeat until the poison pill arrives.
func (w *Worker) run() {
	defer close(w.done)

	for {
		task := <-w.handoff
		if task == nil {
			return
		}

		atomic.StoreInt32(&w.busy, 1)
		start := time.Now()

		task()

		elapsed := time.Since(start)
		// busyNanos must be updated before the busy flag clears: this
		// ordering is the cross-thread visibility contract documented on
		// IsBusy.
		atomic.AddInt64(&w.busyNanos, int64(elapsed))
		atomic.StoreInt32(&w.busy, 0)
	}
}
