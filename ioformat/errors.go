// SPDX-License-Identifier: MIT
package ioformat

import "errors"

var (
	// ErrInvalidArgument indicates malformed input JSON: an unknown
	// operator string, or a document that is neither a 2-D array nor an
	// operator object. A ragged literal row surfaces as
	// matrix.ErrInvalidArgument and a wrong operand count as
	// exprtree.ErrInvalidArgument, returned unwrapped.
	ErrInvalidArgument = errors.New("ioformat: invalid argument")

	// ErrIOFailure indicates the underlying reader or writer returned an
	// error.
	ErrIOFailure = errors.New("ioformat: i/o failure")
)
