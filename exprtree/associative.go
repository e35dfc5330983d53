// SPDX-License-Identifier: MIT
package exprtree

// AssociativeNesting rewrites every Add/Multiply node of arity > 2 into a
// left-associative binary chain: op(a,b,c,d) becomes
// op(op(op(a,b),c),d). It recurses into every child first, so nested
// n-ary operators are flattened bottom-up. Negate and Transpose are
// unary and untouched (beyond recursing into their single child).
//
// All numerical kernels in package eval operate on exactly two operands
// (or one, for unary) — the evaluator only ever stages M1 and M2 — so
// this rewrite is what makes every operator node binary-or-unary by the
// time the evaluator walks the tree.
func (n *Node) AssociativeNesting() {
	if n.kind == Literal {
		return
	}

	for _, c := range n.children {
		c.AssociativeNesting()
	}

	if (n.kind == Add || n.kind == Multiply) && len(n.children) > 2 {
		acc := n.children[0]
		last := n.children[len(n.children)-1]

		for i := 1; i < len(n.children)-1; i++ {
			acc = &Node{kind: n.kind, children: []*Node{acc, n.children[i]}}
		}

		n.children = []*Node{acc, last}
	}
}
