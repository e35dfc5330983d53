// SPDX-License-Identifier: MIT
package worker

import "errors"

// ErrNotReady indicates Offer was called on a worker whose handoff slot
// already holds a task. Under the executor's protocol — it only offers to
// a worker it has just removed from the idle set — this should never
// happen; it is retained as a defensive sentinel, not a recoverable path.
var ErrNotReady = errors.New("worker: not ready to accept a task")
