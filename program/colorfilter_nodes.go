// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

// premultiplyColor converts a straight-alpha color to premultiplied form.
func premultiplyColor(c Vec4) Vec4 {
	return Vec4{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// unpremultiplyColor converts a premultiplied color back to straight alpha,
// leaving fully-transparent input untouched (0/0 would otherwise be NaN).
func unpremultiplyColor(c Vec4) Vec4 {
	if c.A == 0 {
		return c
	}
	inv := 1 / c.A
	return Vec4{R: c.R * inv, G: c.G * inv, B: c.B * inv, A: c.A}
}

// PremultiplyNode converts its child's evaluated color from straight to
// premultiplied alpha, the representation ComposeNode operates in
// internally.
type PremultiplyNode struct {
	Child Node
}

func (n PremultiplyNode) isNode()          {}
func (n PremultiplyNode) Children() []Node { return []Node{n.Child} }

func (n PremultiplyNode) WithChildren(cs []Node) Node {
	if len(cs) != 1 {
		panic("program: PremultiplyNode.WithChildren expects exactly one child")
	}
	return PremultiplyNode{Child: cs[0]}
}

func (n PremultiplyNode) Equals(other Node) bool {
	o, ok := other.(PremultiplyNode)
	return ok && n.Child.Equals(o.Child)
}

func (n PremultiplyNode) Transformed(m Matrix) Node {
	return PremultiplyNode{Child: n.Child.Transformed(m)}
}

func (n PremultiplyNode) Simplify(pathTest func(int) bool) Node {
	child := n.Child.Simplify(pathTest)
	if u, ok := child.(UnpremultiplyNode); ok {
		return u.Child
	}
	return PremultiplyNode{Child: child}
}

func (n PremultiplyNode) Evaluate(ctx *EvalContext) Vec4 {
	return premultiplyColor(n.Child.Evaluate(ctx))
}

func (n PremultiplyNode) WriteInstructions(w *InstructionWriter) {
	n.Child.WriteInstructions(w)
	w.EmitOp(OpPremultiply)
}

func (n PremultiplyNode) NeedsFace() bool     { return n.Child.NeedsFace() }
func (n PremultiplyNode) NeedsArea() bool     { return n.Child.NeedsArea() }
func (n PremultiplyNode) NeedsCentroid() bool { return n.Child.NeedsCentroid() }

// UnpremultiplyNode converts its child's evaluated color from premultiplied
// back to straight alpha.
type UnpremultiplyNode struct {
	Child Node
}

func (n UnpremultiplyNode) isNode()          {}
func (n UnpremultiplyNode) Children() []Node { return []Node{n.Child} }

func (n UnpremultiplyNode) WithChildren(cs []Node) Node {
	if len(cs) != 1 {
		panic("program: UnpremultiplyNode.WithChildren expects exactly one child")
	}
	return UnpremultiplyNode{Child: cs[0]}
}

func (n UnpremultiplyNode) Equals(other Node) bool {
	o, ok := other.(UnpremultiplyNode)
	return ok && n.Child.Equals(o.Child)
}

func (n UnpremultiplyNode) Transformed(m Matrix) Node {
	return UnpremultiplyNode{Child: n.Child.Transformed(m)}
}

func (n UnpremultiplyNode) Simplify(pathTest func(int) bool) Node {
	child := n.Child.Simplify(pathTest)
	if p, ok := child.(PremultiplyNode); ok {
		return p.Child
	}
	return UnpremultiplyNode{Child: child}
}

func (n UnpremultiplyNode) Evaluate(ctx *EvalContext) Vec4 {
	return unpremultiplyColor(n.Child.Evaluate(ctx))
}

func (n UnpremultiplyNode) WriteInstructions(w *InstructionWriter) {
	n.Child.WriteInstructions(w)
	w.EmitOp(OpUnpremultiply)
}

func (n UnpremultiplyNode) NeedsFace() bool     { return n.Child.NeedsFace() }
func (n UnpremultiplyNode) NeedsArea() bool     { return n.Child.NeedsArea() }
func (n UnpremultiplyNode) NeedsCentroid() bool { return n.Child.NeedsCentroid() }

// ColorMatrix is a 4x4 linear color transform applied by FilterNode, row-major
// against the channel vector (R,G,B,A).
type ColorMatrix [4][4]float64

// IdentityColorMatrix returns the color matrix that leaves every channel
// unchanged.
func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m ColorMatrix) apply(c Vec4, bias Vec4) Vec4 {
	v := [4]float64{c.R, c.G, c.B, c.A}
	var out [4]float64
	for row := 0; row < 4; row++ {
		sum := 0.0
		for col := 0; col < 4; col++ {
			sum += m[row][col] * v[col]
		}
		out[row] = sum
	}
	return Vec4{R: out[0] + bias.R, G: out[1] + bias.G, B: out[2] + bias.B, A: out[3] + bias.A}
}

// FilterNode applies an affine color-matrix transform (Matrix*channels+Bias)
// to its child's evaluated color, the general linear filter primitive
// (saturation, channel mixing, hue rotation and the like reduce to a choice
// of Matrix).
type FilterNode struct {
	Child  Node
	Matrix ColorMatrix
	Bias   Vec4
}

func (n FilterNode) isNode()          {}
func (n FilterNode) Children() []Node { return []Node{n.Child} }

func (n FilterNode) WithChildren(cs []Node) Node {
	if len(cs) != 1 {
		panic("program: FilterNode.WithChildren expects exactly one child")
	}
	return FilterNode{Child: cs[0], Matrix: n.Matrix, Bias: n.Bias}
}

func (n FilterNode) Equals(other Node) bool {
	o, ok := other.(FilterNode)
	return ok && n.Matrix == o.Matrix && n.Bias == o.Bias && n.Child.Equals(o.Child)
}

func (n FilterNode) Transformed(m Matrix) Node {
	return FilterNode{Child: n.Child.Transformed(m), Matrix: n.Matrix, Bias: n.Bias}
}

// Simplify drops a FilterNode whose Matrix is the identity and whose Bias is
// zero, since it would otherwise be a no-op wrapper surviving forever.
func (n FilterNode) Simplify(pathTest func(int) bool) Node {
	child := n.Child.Simplify(pathTest)
	if n.Matrix == IdentityColorMatrix() && n.Bias == (Vec4{}) {
		return child
	}
	return FilterNode{Child: child, Matrix: n.Matrix, Bias: n.Bias}
}

func (n FilterNode) Evaluate(ctx *EvalContext) Vec4 {
	return n.Matrix.apply(n.Child.Evaluate(ctx), n.Bias)
}

func (n FilterNode) WriteInstructions(w *InstructionWriter) {
	n.Child.WriteInstructions(w)
	w.EmitOp(OpFilter)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			w.EmitFloat32(float32(n.Matrix[row][col]))
		}
	}
	w.EmitFloat32(float32(n.Bias.R))
	w.EmitFloat32(float32(n.Bias.G))
	w.EmitFloat32(float32(n.Bias.B))
	w.EmitFloat32(float32(n.Bias.A))
}

func (n FilterNode) NeedsFace() bool     { return n.Child.NeedsFace() }
func (n FilterNode) NeedsArea() bool     { return n.Child.NeedsArea() }
func (n FilterNode) NeedsCentroid() bool { return n.Child.NeedsCentroid() }

// NormalizeNode clamps its child's evaluated color to the representable
// [0,1] range per channel, sanitizing values a FilterNode or an out-of-gamut
// color-space conversion may have pushed outside it before the tree's
// result reaches the rasterizer's accumulator.
type NormalizeNode struct {
	Child Node
}

func (n NormalizeNode) isNode()          {}
func (n NormalizeNode) Children() []Node { return []Node{n.Child} }

func (n NormalizeNode) WithChildren(cs []Node) Node {
	if len(cs) != 1 {
		panic("program: NormalizeNode.WithChildren expects exactly one child")
	}
	return NormalizeNode{Child: cs[0]}
}

func (n NormalizeNode) Equals(other Node) bool {
	o, ok := other.(NormalizeNode)
	return ok && n.Child.Equals(o.Child)
}

func (n NormalizeNode) Transformed(m Matrix) Node {
	return NormalizeNode{Child: n.Child.Transformed(m)}
}

func (n NormalizeNode) Simplify(pathTest func(int) bool) Node {
	child := n.Child.Simplify(pathTest)
	if c, ok := child.(ColorNode); ok {
		return ColorNode{Color: clampColor(c.Color)}
	}
	return NormalizeNode{Child: child}
}

func (n NormalizeNode) Evaluate(ctx *EvalContext) Vec4 {
	return clampColor(n.Child.Evaluate(ctx))
}

func clampColor(c Vec4) Vec4 {
	return Vec4{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func (n NormalizeNode) WriteInstructions(w *InstructionWriter) {
	n.Child.WriteInstructions(w)
	w.EmitOp(OpNormalize)
}

func (n NormalizeNode) NeedsFace() bool     { return n.Child.NeedsFace() }
func (n NormalizeNode) NeedsArea() bool     { return n.Child.NeedsArea() }
func (n NormalizeNode) NeedsCentroid() bool { return n.Child.NeedsCentroid() }
