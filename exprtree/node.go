// SPDX-License-Identifier: MIT
// Package exprtree implements the expression-tree node: a tagged variant
// over {Literal(matrix), Add(children...), Multiply(children...),
// Negate(child), Transpose(child)}.
//
// The evaluator mutates a tree in place, repeatedly collapsing the
// deepest ready operator node into a Literal, until the root itself is a
// Literal. There are no cycles: AssociativeNesting and Resolve only ever
// rewrite a node's own payload or insert new intermediate nodes below it,
// never introduce a back-edge.
package exprtree

import "github.com/katalvlaran/fatiguemat/matrix"

// Kind tags a Node's variant.
type Kind int

const (
	// Literal nodes carry a resolved matrix and have no children.
	Literal Kind = iota
	// Add is n-ary element-wise addition.
	Add
	// Multiply is n-ary, left-associative matrix multiplication.
	Multiply
	// Negate is unary negation.
	Negate
	// Transpose is unary transpose.
	Transpose
)

// String renders a Kind for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Add:
		return "Add"
	case Multiply:
		return "Multiply"
	case Negate:
		return "Negate"
	case Transpose:
		return "Transpose"
	default:
		return "Unknown"
	}
}

// Node is a tagged variant: operator nodes carry children and no matrix;
// Literal nodes carry a matrix and no children.
type Node struct {
	kind     Kind
	matrix   *matrix.Matrix
	children []*Node
}

// NewLiteral returns a Literal node carrying m.
func NewLiteral(m *matrix.Matrix) *Node {
	return &Node{kind: Literal, matrix: m}
}

// NewOperator returns an operator node of the given kind over children.
// Fails with ErrInvalidArgument when kind is not one of
// Add/Multiply/Negate/Transpose, or when the arity contract is violated:
// Add/Multiply require at least 2 children; Negate/Transpose require
// exactly 1.
func NewOperator(kind Kind, children ...*Node) (*Node, error) {
	switch kind {
	case Add, Multiply:
		if len(children) < 2 {
			return nil, ErrInvalidArgument
		}
	case Negate, Transpose:
		if len(children) != 1 {
			return nil, ErrInvalidArgument
		}
	default:
		return nil, ErrInvalidArgument
	}

	owned := make([]*Node, len(children))
	copy(owned, children)

	return &Node{kind: kind, children: owned}, nil
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// Children returns the node's operand subtrees. Empty for Literal nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Matrix returns the node's resolved matrix. Only meaningful when
// Kind() == Literal.
func (n *Node) Matrix() *matrix.Matrix {
	return n.matrix
}

// IsReady reports whether n is an operator node whose children are all
// Literal — the next candidate for evaluation.
func (n *Node) IsReady() bool {
	if n.kind == Literal {
		return false
	}

	for _, c := range n.children {
		if c.kind != Literal {
			return false
		}
	}

	return true
}
