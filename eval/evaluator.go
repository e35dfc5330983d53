// SPDX-License-Identifier: MIT
// Package eval drives an exprtree.Node to a single resolved matrix.Matrix,
// staging each operator's operands into two long-lived matrix.Matrix slots
// (M1, M2) and fanning the row-level work out across an executor.Executor.
package eval

import (
	"github.com/katalvlaran/fatiguemat/executor"
	"github.com/katalvlaran/fatiguemat/exprtree"
	"github.com/katalvlaran/fatiguemat/matrix"
	"github.com/katalvlaran/fatiguemat/worker"
)

// Evaluator owns two staging matrices and the worker pool that computes
// each operator's row-level work. Not safe for concurrent Run calls — an
// Evaluator is single-use per Run (see Run's deferred Shutdown).
type Evaluator struct {
	m1   *matrix.Matrix
	m2   *matrix.Matrix
	exec *executor.Executor
}

// NewEvaluator constructs an Evaluator backed by an n-worker executor.
// Fails with whatever error executor.New returns for a non-positive n.
func NewEvaluator(threads int) (*Evaluator, error) {
	exec, err := executor.New(threads)
	if err != nil {
		return nil, err
	}

	return &Evaluator{m1: matrix.New(), m2: matrix.New(), exec: exec}, nil
}

// Run collapses root to a single Literal, repeatedly finding the deepest
// resolvable node, staging and computing it via the worker pool, and
// resolving it to a Literal, until root itself is Literal. The executor is
// always shut down before Run returns, success or failure.
func (e *Evaluator) Run(root *exprtree.Node) (*matrix.Matrix, error) {
	defer e.exec.Shutdown()

	if root.Kind() == exprtree.Literal {
		return root.Matrix(), nil
	}

	root.AssociativeNesting()

	for root.Kind() != exprtree.Literal {
		node := exprtree.FindResolvable(root)
		if node == nil {
			return nil, ErrInvalidState
		}

		if err := e.loadAndCompute(node); err != nil {
			return nil, err
		}

		result := matrix.New()
		if err := result.LoadRowMajor(e.m1.ReadRowMajor()); err != nil {
			return nil, err
		}

		node.Resolve(result)
	}

	return root.Matrix(), nil
}

// loadAndCompute stages node's operands into M1/M2 and dispatches its
// row-level work to the executor. On return, M1 holds the operator's
// result in row-major form.
func (e *Evaluator) loadAndCompute(node *exprtree.Node) error {
	for _, c := range node.Children() {
		if c.Kind() != exprtree.Literal {
			return ErrInvalidState
		}
	}

	switch node.Kind() {
	case exprtree.Add:
		return e.computeAdd(node)
	case exprtree.Multiply:
		return e.computeMultiply(node)
	case exprtree.Negate:
		return e.computeNegate(node)
	case exprtree.Transpose:
		return e.computeTranspose(node)
	default:
		return ErrInvalidState
	}
}

func (e *Evaluator) computeAdd(node *exprtree.Node) error {
	children := node.Children()
	if len(children) != 2 {
		return ErrInvalidArgument
	}

	if err := e.m1.LoadRowMajor(children[0].Matrix().ReadRowMajor()); err != nil {
		return err
	}
	if err := e.m2.LoadRowMajor(children[1].Matrix().ReadRowMajor()); err != nil {
		return err
	}

	if e.m1.Rows() != e.m2.Rows() || e.m1.Cols() != e.m2.Cols() {
		return matrix.ErrDimensionMismatch
	}

	rows := e.m1.Rows()
	tasks := make([]worker.Task, rows)
	for i := range tasks {
		i := i
		tasks[i] = func() {
			row, _ := e.m1.Get(i)
			other, _ := e.m2.Get(i)
			_ = row.Add(other) // dimensions already validated above
		}
	}

	return e.exec.SubmitAll(tasks)
}

func (e *Evaluator) computeMultiply(node *exprtree.Node) error {
	children := node.Children()
	if len(children) != 2 {
		return ErrInvalidArgument
	}

	if err := e.m1.LoadRowMajor(children[0].Matrix().ReadRowMajor()); err != nil {
		return err
	}
	if err := e.m2.LoadColumnMajor(children[1].Matrix().ReadRowMajor()); err != nil {
		return err
	}

	if e.m1.Cols() != e.m2.Rows() {
		return matrix.ErrDimensionMismatch
	}

	rows := e.m1.Rows()
	tasks := make([]worker.Task, rows)
	for i := range tasks {
		i := i
		tasks[i] = func() {
			row, _ := e.m1.Get(i)
			_ = row.VecMatMul(e.m2) // dimensions already validated above
		}
	}

	return e.exec.SubmitAll(tasks)
}

func (e *Evaluator) computeNegate(node *exprtree.Node) error {
	children := node.Children()
	if len(children) != 1 {
		return ErrInvalidArgument
	}

	if err := e.m1.LoadRowMajor(children[0].Matrix().ReadRowMajor()); err != nil {
		return err
	}

	rows := e.m1.Rows()
	tasks := make([]worker.Task, rows)
	for i := range tasks {
		i := i
		tasks[i] = func() {
			row, _ := e.m1.Get(i)
			row.Negate()
		}
	}

	return e.exec.SubmitAll(tasks)
}
