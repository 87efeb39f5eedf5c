// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

// Node is the closed tagged union of RenderProgram variants. Every concrete
// type in this package implements it; the unexported isNode method seals
// the set against implementations outside the package, the same pattern a
// Go "sum type" is commonly expressed with.
type Node interface {
	isNode()

	// Children returns this node's direct operands, in the order
	// WithChildren expects them back.
	Children() []Node
	// WithChildren returns a copy of this node with its children replaced;
	// len(cs) must equal len(n.Children()).
	WithChildren(cs []Node) Node
	// Equals reports structural equality (used by the Simplify idempotence
	// property, not for comparing evaluated colors).
	Equals(other Node) bool
	// Transformed returns a copy of this node with m applied to any
	// embedded geometry (gradient endpoints, centers, radii).
	Transformed(m Matrix) Node
	// Simplify applies each node type's rewrite rules bottom-up, given a
	// pathTest a PathBoolean node can use to statically resolve which
	// branch it reduces to.
	Simplify(pathTest func(pathID int) bool) Node
	// Evaluate computes this node's color in ctx.
	Evaluate(ctx *EvalContext) Vec4
	// WriteInstructions appends this node's instruction-stream encoding
	// (children first, then this node's opcode) to w.
	WriteInstructions(w *InstructionWriter)

	// NeedsFace/NeedsArea/NeedsCentroid declare what EvalContext fields
	// this node or any of its descendants requires to Evaluate.
	NeedsFace() bool
	NeedsArea() bool
	NeedsCentroid() bool
}

func childrenEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func withChildrenSimplified(cs []Node, pathTest func(int) bool) []Node {
	out := make([]Node, len(cs))
	for i, c := range cs {
		out[i] = c.Simplify(pathTest)
	}
	return out
}

func transformChildren(cs []Node, m Matrix) []Node {
	out := make([]Node, len(cs))
	for i, c := range cs {
		out[i] = c.Transformed(m)
	}
	return out
}
