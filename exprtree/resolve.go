// SPDX-License-Identifier: MIT
package exprtree

import "github.com/katalvlaran/fatiguemat/matrix"

// FindResolvable performs a deepest-first search for the first node whose
// children are all Literal (see Node.IsReady). Ties at equal depth are
// broken by depth-first, left-to-right traversal order — the first such
// node encountered wins. Returns nil only when root is already Literal.
func FindResolvable(root *Node) *Node {
	var best *Node
	bestDepth := -1

	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n.kind == Literal {
			return
		}

		if n.IsReady() {
			if depth > bestDepth {
				best = n
				bestDepth = depth
			}

			return
		}

		for _, c := range n.children {
			walk(c, depth+1)
		}
	}

	walk(root, 0)

	return best
}

// Resolve replaces an operator node's payload with a Literal carrying m,
// discarding its children. Call this on the exact node returned by
// FindResolvable — it mutates n in place, so the rewrite is visible to
// whatever parent node (or the evaluator's root variable) holds the same
// pointer.
func (n *Node) Resolve(m *matrix.Matrix) {
	n.kind = Literal
	n.matrix = m
	n.children = nil
}
