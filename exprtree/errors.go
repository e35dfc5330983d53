// SPDX-License-Identifier: MIT
package exprtree

import "errors"

// ErrInvalidArgument indicates a malformed operator node: an unknown kind,
// or an arity violating the operator's contract (Add/Multiply need >= 2
// children, Negate/Transpose need exactly 1).
var ErrInvalidArgument = errors.New("exprtree: invalid argument")
