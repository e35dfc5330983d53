// SPDX-License-Identifier: MIT
package eval

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/fatiguemat/exprtree"
	"github.com/katalvlaran/fatiguemat/vector"
	"github.com/katalvlaran/fatiguemat/worker"
)

// computeTranspose stages the operand into M1, then dispatches one task
// per output row. Every task reads its own column out of every input row
// vector (each read takes only a brief read lock on that vector, so tasks
// never block one another) and writes into a private output buffer. A shared atomic counter tracks
// remaining tasks; whichever task observes it reach zero installs the
// buffer into M1 under a small critical section — there is exactly one
// such observer, since the decrement-to-zero happens exactly once.
func (e *Evaluator) computeTranspose(node *exprtree.Node) error {
	children := node.Children()
	if len(children) != 1 {
		return ErrInvalidArgument
	}

	if err := e.m1.LoadRowMajor(children[0].Matrix().ReadRowMajor()); err != nil {
		return err
	}

	rows := e.m1.Rows()
	cols := e.m1.Cols()

	if rows == 0 || cols == 0 {
		return e.m1.LoadRowMajor([][]float64{})
	}

	inputRows := make([]*vector.Vector, rows)
	for i := 0; i < rows; i++ {
		v, err := e.m1.Get(i)
		if err != nil {
			return err
		}
		inputRows[i] = v
	}

	out := make([][]float64, cols)
	for c := range out {
		out[c] = make([]float64, rows)
	}

	remaining := int64(cols)
	var installMu sync.Mutex

	tasks := make([]worker.Task, cols)
	for c := range tasks {
		c := c
		tasks[c] = func() {
			for r := 0; r < rows; r++ {
				val, _ := inputRows[r].At(c)
				out[c][r] = val
			}

			if atomic.AddInt64(&remaining, -1) == 0 {
				installMu.Lock()
				_ = e.m1.LoadRowMajor(out)
				installMu.Unlock()
			}
		}
	}

	return e.exec.SubmitAll(tasks)
}
