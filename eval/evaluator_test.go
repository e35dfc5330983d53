// Package eval_test exercises the evaluator end to end against literal
// expression trees.
package eval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/fatiguemat/eval"
	"github.com/katalvlaran/fatiguemat/exprtree"
	"github.com/katalvlaran/fatiguemat/matrix"
	"github.com/stretchr/testify/require"
)

func lit(t *testing.T, rows [][]float64) *exprtree.Node {
	t.Helper()

	m := matrix.New()
	require.NoError(t, m.LoadRowMajor(rows))

	return exprtree.NewLiteral(m)
}

func runEval(t *testing.T, threads int, root *exprtree.Node) [][]float64 {
	t.Helper()

	e, err := eval.NewEvaluator(threads)
	require.NoError(t, err)

	result, err := e.Run(root)
	require.NoError(t, err)

	return result.ReadRowMajor()
}

func TestRunLiteralPassthrough(t *testing.T) {
	root := lit(t, [][]float64{{1, 2}, {3, 4}})

	e, err := eval.NewEvaluator(2)
	require.NoError(t, err)

	result, err := e.Run(root)
	require.NoError(t, err)
	require.Same(t, root.Matrix(), result)
}

func TestRunAdd(t *testing.T) {
	a := lit(t, [][]float64{{1, 2}, {3, 4}})
	b := lit(t, [][]float64{{10, 20}, {30, 40}})
	root, err := exprtree.NewOperator(exprtree.Add, a, b)
	require.NoError(t, err)

	got := runEval(t, 3, root)
	want := [][]float64{{11, 22}, {33, 44}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunAddNAryLeftAssociative(t *testing.T) {
	a := lit(t, [][]float64{{1}})
	b := lit(t, [][]float64{{2}})
	c := lit(t, [][]float64{{3}})
	d := lit(t, [][]float64{{4}})
	root, err := exprtree.NewOperator(exprtree.Add, a, b, c, d)
	require.NoError(t, err)

	got := runEval(t, 4, root)
	want := [][]float64{{10}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunMultiply(t *testing.T) {
	l := lit(t, [][]float64{{1, 2}, {3, 4}})
	r := lit(t, [][]float64{{5, 6}, {7, 8}})
	root, err := exprtree.NewOperator(exprtree.Multiply, l, r)
	require.NoError(t, err)

	got := runEval(t, 2, root)
	want := [][]float64{{19, 22}, {43, 50}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunNegate(t *testing.T) {
	x := lit(t, [][]float64{{1, -2}, {-3, 4}})
	root, err := exprtree.NewOperator(exprtree.Negate, x)
	require.NoError(t, err)

	got := runEval(t, 2, root)
	want := [][]float64{{-1, 2}, {3, -4}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunTransposeSingleThreaded(t *testing.T) {
	x := lit(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	root, err := exprtree.NewOperator(exprtree.Transpose, x)
	require.NoError(t, err)

	got := runEval(t, 1, root)
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunTransposeConcurrent(t *testing.T) {
	x := lit(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	root, err := exprtree.NewOperator(exprtree.Transpose, x)
	require.NoError(t, err)

	got := runEval(t, 8, root)
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunNestedExpression(t *testing.T) {
	a := lit(t, [][]float64{{1, 0}, {0, 1}})
	b := lit(t, [][]float64{{2, 0}, {0, 2}})
	add, err := exprtree.NewOperator(exprtree.Add, a, b)
	require.NoError(t, err)
	root, err := exprtree.NewOperator(exprtree.Negate, add)
	require.NoError(t, err)

	got := runEval(t, 2, root)
	want := [][]float64{{-3, 0}, {0, -3}}
	require.Empty(t, cmp.Diff(want, got))
}

func TestRunAddDimensionMismatch(t *testing.T) {
	a := lit(t, [][]float64{{1, 2}})
	b := lit(t, [][]float64{{1, 2, 3}})
	root, err := exprtree.NewOperator(exprtree.Add, a, b)
	require.NoError(t, err)

	e, err := eval.NewEvaluator(2)
	require.NoError(t, err)

	_, err = e.Run(root)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRunMultiplyDimensionMismatch(t *testing.T) {
	l := lit(t, [][]float64{{1, 2, 3}})
	r := lit(t, [][]float64{{1, 2}})
	root, err := exprtree.NewOperator(exprtree.Multiply, l, r)
	require.NoError(t, err)

	e, err := eval.NewEvaluator(2)
	require.NoError(t, err)

	_, err = e.Run(root)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewRejectsNonPositiveThreads(t *testing.T) {
	_, err := eval.NewEvaluator(0)
	require.Error(t, err)
}
