// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "math"

// BlendMode names one of the W3C separable pixel-blend functions BlendNode
// mixes its two operands' colors with, before compositing the result over
// the backdrop with the standard source-over rule.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
)

func blendChannel(mode BlendMode, backdrop, source float64) float64 {
	switch mode {
	case BlendMultiply:
		return backdrop * source
	case BlendScreen:
		return backdrop + source - backdrop*source
	case BlendOverlay:
		return hardLightChannel(source, backdrop)
	case BlendDarken:
		return math.Min(backdrop, source)
	case BlendLighten:
		return math.Max(backdrop, source)
	case BlendColorDodge:
		if backdrop == 0 {
			return 0
		}
		if source == 1 {
			return 1
		}
		return math.Min(1, backdrop/(1-source))
	case BlendColorBurn:
		if backdrop == 1 {
			return 1
		}
		if source == 0 {
			return 0
		}
		return 1 - math.Min(1, (1-backdrop)/source)
	case BlendHardLight:
		return hardLightChannel(backdrop, source)
	case BlendSoftLight:
		return softLightChannel(backdrop, source)
	case BlendDifference:
		return math.Abs(backdrop - source)
	case BlendExclusion:
		return backdrop + source - 2*backdrop*source
	default: // BlendNormal
		return source
	}
}

func hardLightChannel(backdrop, source float64) float64 {
	if source <= 0.5 {
		return 2 * backdrop * source
	}
	return 1 - 2*(1-backdrop)*(1-source)
}

func softLightChannel(backdrop, source float64) float64 {
	if source <= 0.5 {
		return backdrop - (1-2*source)*backdrop*(1-backdrop)
	}
	var d float64
	if backdrop <= 0.25 {
		d = ((16*backdrop-12)*backdrop + 4) * backdrop
	} else {
		d = math.Sqrt(backdrop)
	}
	return backdrop + (2*source-1)*(d-backdrop)
}

// blendOver mixes cs (source) over cb (backdrop) with mode, combining the
// separable blend function with standard source-over alpha compositing per
// the CSS Compositing and Blending formula.
func blendOver(cb, cs Vec4, mode BlendMode) Vec4 {
	ab, as := cb.A, cs.A
	ao := as + ab*(1-as)
	if ao == 0 {
		return Transparent
	}
	mix := func(bc, sc float64) float64 {
		blended := blendChannel(mode, bc, sc)
		return ((1-as)*ab*bc + (1-ab)*as*sc + ab*as*blended) / ao
	}
	return Vec4{R: mix(cb.R, cs.R), G: mix(cb.G, cs.G), B: mix(cb.B, cs.B), A: ao}
}

// BlendNode mixes B's color over A's using a W3C separable blend function,
// per Mode.
type BlendNode struct {
	A, B Node
	Mode BlendMode
}

func (n BlendNode) isNode()          {}
func (n BlendNode) Children() []Node { return []Node{n.A, n.B} }

func (n BlendNode) WithChildren(cs []Node) Node {
	if len(cs) != 2 {
		panic("program: BlendNode.WithChildren expects exactly two children")
	}
	return BlendNode{A: cs[0], B: cs[1], Mode: n.Mode}
}

func (n BlendNode) Equals(other Node) bool {
	o, ok := other.(BlendNode)
	return ok && n.Mode == o.Mode && n.A.Equals(o.A) && n.B.Equals(o.B)
}

func (n BlendNode) Transformed(m Matrix) Node {
	return BlendNode{A: n.A.Transformed(m), B: n.B.Transformed(m), Mode: n.Mode}
}

func (n BlendNode) Simplify(pathTest func(int) bool) Node {
	return BlendNode{A: n.A.Simplify(pathTest), B: n.B.Simplify(pathTest), Mode: n.Mode}
}

func (n BlendNode) Evaluate(ctx *EvalContext) Vec4 {
	return blendOver(n.A.Evaluate(ctx), n.B.Evaluate(ctx), n.Mode)
}

func (n BlendNode) WriteInstructions(w *InstructionWriter) {
	n.B.WriteInstructions(w)
	n.A.WriteInstructions(w)
	w.EmitOp(OpBlend)
	w.Emit(uint32(n.Mode))
}

func (n BlendNode) NeedsFace() bool     { return n.A.NeedsFace() || n.B.NeedsFace() }
func (n BlendNode) NeedsArea() bool     { return n.A.NeedsArea() || n.B.NeedsArea() }
func (n BlendNode) NeedsCentroid() bool { return n.A.NeedsCentroid() || n.B.NeedsCentroid() }

// CompositeOp names one of the compositing operators (the twelve standard
// Porter-Duff operators plus ComposePlus) ComposeNode applies to its two
// (already-colored) operands.
type CompositeOp int

const (
	ComposeClear CompositeOp = iota
	ComposeSource
	ComposeOver
	ComposeIn
	ComposeOut
	ComposeAtop
	ComposeDest
	ComposeDestOver
	ComposeDestIn
	ComposeDestOut
	ComposeDestAtop
	ComposeXor
	ComposePlus
)

// porterDuffFactors returns the (Fa, Fb) source/destination weights op
// applies to the two operands' premultiplied colors, given their alphas.
func porterDuffFactors(op CompositeOp, aa, ba float64) (fa, fb float64) {
	switch op {
	case ComposeClear:
		return 0, 0
	case ComposeSource:
		return 1, 0
	case ComposeOver:
		return 1, 1 - aa
	case ComposeIn:
		return ba, 0
	case ComposeOut:
		return 1 - ba, 0
	case ComposeAtop:
		return ba, 1 - aa
	case ComposeDest:
		return 0, 1
	case ComposeDestOver:
		return 1 - ba, 1
	case ComposeDestIn:
		return 0, aa
	case ComposeDestOut:
		return 0, 1 - aa
	case ComposeDestAtop:
		return 1 - ba, aa
	case ComposeXor:
		return 1 - ba, 1 - aa
	case ComposePlus:
		return 1, 1
	default:
		return 1, 1 - aa
	}
}

// ComposeNode combines A (the source) and B (the destination) using one of
// the Porter-Duff compositing algebra operators, working in premultiplied
// space internally and returning a straight-alpha result.
type ComposeNode struct {
	A, B Node
	Op   CompositeOp
}

func (n ComposeNode) isNode()          {}
func (n ComposeNode) Children() []Node { return []Node{n.A, n.B} }

func (n ComposeNode) WithChildren(cs []Node) Node {
	if len(cs) != 2 {
		panic("program: ComposeNode.WithChildren expects exactly two children")
	}
	return ComposeNode{A: cs[0], B: cs[1], Op: n.Op}
}

func (n ComposeNode) Equals(other Node) bool {
	o, ok := other.(ComposeNode)
	return ok && n.Op == o.Op && n.A.Equals(o.A) && n.B.Equals(o.B)
}

func (n ComposeNode) Transformed(m Matrix) Node {
	return ComposeNode{A: n.A.Transformed(m), B: n.B.Transformed(m), Op: n.Op}
}

func (n ComposeNode) Simplify(pathTest func(int) bool) Node {
	return ComposeNode{A: n.A.Simplify(pathTest), B: n.B.Simplify(pathTest), Op: n.Op}
}

func (n ComposeNode) Evaluate(ctx *EvalContext) Vec4 {
	a := premultiplyColor(n.A.Evaluate(ctx))
	b := premultiplyColor(n.B.Evaluate(ctx))
	fa, fb := porterDuffFactors(n.Op, a.A, b.A)
	out := Vec4{
		R: a.R*fa + b.R*fb,
		G: a.G*fa + b.G*fb,
		B: a.B*fa + b.B*fb,
		A: a.A*fa + b.A*fb,
	}
	return unpremultiplyColor(out)
}

func (n ComposeNode) WriteInstructions(w *InstructionWriter) {
	n.B.WriteInstructions(w)
	n.A.WriteInstructions(w)
	w.EmitOp(OpCompose)
	w.Emit(uint32(n.Op))
}

func (n ComposeNode) NeedsFace() bool     { return n.A.NeedsFace() || n.B.NeedsFace() }
func (n ComposeNode) NeedsArea() bool     { return n.A.NeedsArea() || n.B.NeedsArea() }
func (n ComposeNode) NeedsCentroid() bool { return n.A.NeedsCentroid() || n.B.NeedsCentroid() }

// StackBlendNode composites Layers in order (Layers[0] at the bottom) using
// standard source-over, collapsing a z-ordered stack of sub-programs into a
// single color the way a layered document's flattened output is computed.
type StackBlendNode struct {
	Layers []Node
}

func (n StackBlendNode) isNode()          {}
func (n StackBlendNode) Children() []Node { return n.Layers }

func (n StackBlendNode) WithChildren(cs []Node) Node {
	out := make([]Node, len(cs))
	copy(out, cs)
	return StackBlendNode{Layers: out}
}

func (n StackBlendNode) Equals(other Node) bool {
	o, ok := other.(StackBlendNode)
	return ok && childrenEqual(n.Layers, o.Layers)
}

func (n StackBlendNode) Transformed(m Matrix) Node {
	return StackBlendNode{Layers: transformChildren(n.Layers, m)}
}

// Simplify drops any layer fully hidden by a later fully-opaque constant
// layer (nothing underneath it can ever show through) and flattens an empty
// or single-layer stack.
func (n StackBlendNode) Simplify(pathTest func(int) bool) Node {
	layers := withChildrenSimplified(n.Layers, pathTest)
	opaqueFrom := 0
	for i, l := range layers {
		if c, ok := l.(ColorNode); ok && c.Color.A >= 1 {
			opaqueFrom = i
		}
	}
	layers = layers[opaqueFrom:]
	if len(layers) == 0 {
		return ColorNode{Color: Transparent}
	}
	if len(layers) == 1 {
		return layers[0]
	}
	return StackBlendNode{Layers: layers}
}

func (n StackBlendNode) Evaluate(ctx *EvalContext) Vec4 {
	out := Transparent
	for _, l := range n.Layers {
		out = blendOver(out, l.Evaluate(ctx), BlendNormal)
	}
	return out
}

func (n StackBlendNode) WriteInstructions(w *InstructionWriter) {
	for i := len(n.Layers) - 1; i >= 0; i-- {
		n.Layers[i].WriteInstructions(w)
	}
	w.EmitOp(OpStackBlend)
	w.Emit(uint32(len(n.Layers)))
}

func (n StackBlendNode) NeedsFace() bool {
	for _, l := range n.Layers {
		if l.NeedsFace() {
			return true
		}
	}
	return false
}

func (n StackBlendNode) NeedsArea() bool {
	for _, l := range n.Layers {
		if l.NeedsArea() {
			return true
		}
	}
	return false
}

func (n StackBlendNode) NeedsCentroid() bool {
	for _, l := range n.Layers {
		if l.NeedsCentroid() {
			return true
		}
	}
	return false
}
