// SPDX-License-Identifier: MIT
package executor

import "errors"

// ErrInvalidArgument indicates the executor was asked to construct a
// non-positive number of workers, or was given an empty factors slice.
var ErrInvalidArgument = errors.New("executor: invalid argument")
