// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidArgument indicates a nil or ragged input 2-D array.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfBounds indicates an index outside [0, length).
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
