// Package fatiguemat evaluates trees of linear-algebra expressions —
// element-wise addition, matrix multiplication, negation, transpose —
// over dense float64 matrices, fanning each operator's row-level work
// out across a fatigue-priority worker pool.
//
// 🚀 What is fatiguemat?
//
//	A thread-safe evaluation core that brings together:
//
//	  • vector/matrix primitives: locked, lock-ordered, copy-on-load
//	  • exprtree: an in-place-mutating tagged-variant expression tree
//	  • worker/executor: a fixed-size pool dispatched by cumulative fatigue
//	  • eval: the bottom-up resolver driving a tree to a single result
//
// Everything is organized under its own subpackage:
//
//	vector/    — dense reader-writer-locked float64 vectors
//	matrix/    — ordered vector sequences, row/column-major conversion
//	exprtree/  — the tagged-variant expression tree and its rewrites
//	worker/    — the long-lived execution context and fatigue score
//	executor/  — the fatigue-priority pool and its barrier/shutdown
//	eval/      — the evaluator driving a tree to a resolved matrix
//	ioformat/  — JSON input parsing and result/error serialisation
//	cmd/fatiguemat/ — the CLI front end
//
// See SPEC_FULL.md and DESIGN.md for the full design and its grounding.
package fatiguemat
