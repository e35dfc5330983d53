// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors returned by Vector
// operations. Algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on a caller-triggered condition.
package vector

import "errors"

// Sentinel errors for vector package operations.
var (
	// ErrInvalidArgument indicates a nil or otherwise malformed input.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrOutOfBounds indicates an index outside [0, length).
	ErrOutOfBounds = errors.New("vector: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOrientation indicates an operation required a specific
	// orientation (e.g. VecMatMul requires ROW) that the receiver lacks.
	ErrOrientation = errors.New("vector: wrong orientation")
)
