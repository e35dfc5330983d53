// SPDX-License-Identifier: MIT
// Package ioformat is the JSON boundary: it builds an exprtree.Node from
// an input document and serialises a result (or an error) back out. A
// node is either a bare 2-D number array (a literal) or an operator object
// of the shape {"operator": "+"|"*"|"-"|"T", "operands": [...]}, recursively.
package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/fatiguemat/exprtree"
	"github.com/katalvlaran/fatiguemat/matrix"
)

// cell decodes one matrix entry. Besides ordinary JSON numbers it accepts
// the quoted sentinels "NaN", "Infinity", "-Infinity" — the same three
// strings the output writer emits for non-finite values — so a result
// written by this package round-trips back through ParseExpression.
type cell float64

func (c *cell) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case `"NaN"`:
		*c = cell(math.NaN())
		return nil
	case `"Infinity"`:
		*c = cell(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*c = cell(math.Inf(-1))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = cell(f)

	return nil
}

type operatorDoc struct {
	Operator string            `json:"operator"`
	Operands []json.RawMessage `json:"operands"`
}

// ParseExpression reads an entire JSON document from r and builds the
// expression tree it describes. Fails with ErrIOFailure if r cannot be
// fully read, or ErrInvalidArgument if the document is malformed. A ragged
// literal row fails with matrix.ErrInvalidArgument and a wrong operand
// count with exprtree.ErrInvalidArgument.
func ParseExpression(r io.Reader) (*exprtree.Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return parseNode(raw)
}

func parseNode(raw json.RawMessage) (*exprtree.Node, error) {
	var grid [][]cell
	if err := json.Unmarshal(raw, &grid); err == nil {
		rows := make([][]float64, len(grid))
		for i, row := range grid {
			rows[i] = make([]float64, len(row))
			for j, v := range row {
				rows[i][j] = float64(v)
			}
		}

		m := matrix.New()
		if err := m.LoadRowMajor(rows); err != nil {
			return nil, err
		}

		return exprtree.NewLiteral(m), nil
	}

	var doc operatorDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	kind, ok := operatorKind(doc.Operator)
	if !ok {
		return nil, ErrInvalidArgument
	}

	children := make([]*exprtree.Node, len(doc.Operands))
	for i, operand := range doc.Operands {
		child, err := parseNode(operand)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	return exprtree.NewOperator(kind, children...)
}

func operatorKind(op string) (exprtree.Kind, bool) {
	switch op {
	case "+":
		return exprtree.Add, true
	case "*":
		return exprtree.Multiply, true
	case "-":
		return exprtree.Negate, true
	case "T":
		return exprtree.Transpose, true
	default:
		return 0, false
	}
}
