// SPDX-License-Identifier: MIT
package eval

import "errors"

var (
	// ErrInvalidArgument indicates an operator node violated its arity
	// contract after associative nesting (e.g. an Add built with a
	// single operand).
	ErrInvalidArgument = errors.New("eval: invalid argument")

	// ErrInvalidState indicates the tree was exhausted without ever
	// yielding a Literal root, or an operator was staged with an
	// unresolved (non-Literal) child.
	ErrInvalidState = errors.New("eval: invalid state")
)
