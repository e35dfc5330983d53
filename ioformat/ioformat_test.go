// Package ioformat_test exercises JSON parsing and serialisation.
package ioformat_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/fatiguemat/exprtree"
	"github.com/katalvlaran/fatiguemat/ioformat"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionBareLiteral(t *testing.T) {
	node, err := ioformat.ParseExpression(strings.NewReader(`[[1,2],[3,4]]`))
	require.NoError(t, err)
	require.Equal(t, exprtree.Literal, node.Kind())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, node.Matrix().ReadRowMajor())
}

func TestParseExpressionOperatorTree(t *testing.T) {
	doc := `{"operator":"+","operands":[[[1,2]],[[3,4]]]}`
	node, err := ioformat.ParseExpression(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, exprtree.Add, node.Kind())
	require.Len(t, node.Children(), 2)
}

func TestParseExpressionNestedOperators(t *testing.T) {
	doc := `{"operator":"-","operands":[{"operator":"T","operands":[[[1,2,3],[4,5,6]]]}]}`
	node, err := ioformat.ParseExpression(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, exprtree.Negate, node.Kind())
	require.Equal(t, exprtree.Transpose, node.Children()[0].Kind())
}

func TestParseExpressionNaryOperands(t *testing.T) {
	doc := `{"operator":"+","operands":[[[1]],[[2]],[[3]]]}`
	node, err := ioformat.ParseExpression(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, node.Children(), 3)
}

func TestParseExpressionUnknownOperator(t *testing.T) {
	_, err := ioformat.ParseExpression(strings.NewReader(`{"operator":"/","operands":[[[1]]]}`))
	require.ErrorIs(t, err, ioformat.ErrInvalidArgument)
}

func TestParseExpressionMalformedDocument(t *testing.T) {
	_, err := ioformat.ParseExpression(strings.NewReader(`not json`))
	require.ErrorIs(t, err, ioformat.ErrInvalidArgument)
}

func TestParseExpressionArityMismatch(t *testing.T) {
	_, err := ioformat.ParseExpression(strings.NewReader(`{"operator":"-","operands":[[[1]],[[2]]]}`))
	require.ErrorIs(t, err, exprtree.ErrInvalidArgument)
}

func TestParseExpressionNonFiniteLiteral(t *testing.T) {
	node, err := ioformat.ParseExpression(strings.NewReader(`[["NaN","Infinity","-Infinity"]]`))
	require.NoError(t, err)

	got := node.Matrix().ReadRowMajor()[0]
	require.True(t, got[0] != got[0]) // NaN != NaN
	require.True(t, got[1] > 1e300)
	require.True(t, got[2] < -1e300)
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteResult(&buf, [][]float64{{1, 2}, {3, 4}}))
	require.JSONEq(t, `{"result":[[1,2],[3,4]]}`, buf.String())
}

func TestWriteResultNonFinite(t *testing.T) {
	var buf bytes.Buffer
	nan := 0.0
	nan = nan / nan
	require.NoError(t, ioformat.WriteResult(&buf, [][]float64{{nan}}))
	require.Equal(t, `{"result":[["NaN"]]}`, buf.String())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteError(&buf, errors.New("boom")))
	require.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestWriteErrorNilFallsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteError(&buf, nil))
	require.JSONEq(t, `{"error":"unknown error"}`, buf.String())
}
