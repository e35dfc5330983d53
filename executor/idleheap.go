// SPDX-License-Identifier: MIT
package executor

import "github.com/katalvlaran/fatiguemat/worker"

// idleHeap is a container/heap-backed priority queue of idle workers,
// ordered by worker.Worker.Less — i.e. ascending (fatigue, id). Popping
// it always yields the least-tired idle worker, which is the dispatch
// primitive the whole executor is built around.
type idleHeap []*worker.Worker

func (h idleHeap) Len() int { return len(h) }

func (h idleHeap) Less(i, j int) bool { return h[i].Less(h[j]) }

func (h idleHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *idleHeap) Push(x any) {
	*h = append(*h, x.(*worker.Worker))
}

func (h *idleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
