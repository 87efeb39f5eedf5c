// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "math"

// BarycentricPerspectiveBlendNode is BarycentricBlendNode's perspective-
// correct counterpart: P0/P1/P2 carry a homogeneous W alongside their
// screen-space position, so interpolation accounts for foreshortening the
// way a perspective-projected triangle's attributes must be.
type BarycentricPerspectiveBlendNode struct {
	P0, P1, P2 Vector2
	W0, W1, W2 float64
	C0, C1, C2 Vec4
}

func (n BarycentricPerspectiveBlendNode) isNode()          {}
func (n BarycentricPerspectiveBlendNode) Children() []Node { return nil }

func (n BarycentricPerspectiveBlendNode) WithChildren(cs []Node) Node {
	if len(cs) != 0 {
		panic("program: BarycentricPerspectiveBlendNode.WithChildren expects no children")
	}
	return n
}

func (n BarycentricPerspectiveBlendNode) Equals(other Node) bool {
	o, ok := other.(BarycentricPerspectiveBlendNode)
	return ok && n.P0 == o.P0 && n.P1 == o.P1 && n.P2 == o.P2 &&
		n.W0 == o.W0 && n.W1 == o.W1 && n.W2 == o.W2 &&
		n.C0 == o.C0 && n.C1 == o.C1 && n.C2 == o.C2
}

func (n BarycentricPerspectiveBlendNode) Transformed(m Matrix) Node {
	return BarycentricPerspectiveBlendNode{
		P0: m.TransformPoint(n.P0), P1: m.TransformPoint(n.P1), P2: m.TransformPoint(n.P2),
		W0: n.W0, W1: n.W1, W2: n.W2,
		C0: n.C0, C1: n.C1, C2: n.C2,
	}
}

func (n BarycentricPerspectiveBlendNode) Simplify(pathTest func(int) bool) Node {
	if n.C0.Equal(n.C1) && n.C1.Equal(n.C2) {
		return ColorNode{Color: n.C0}
	}
	return n
}

func (n BarycentricPerspectiveBlendNode) Evaluate(ctx *EvalContext) Vec4 {
	p := ctx.Centroid
	if !ctx.HasCentroid {
		p = Vector2{X: (ctx.Bounds.MinX + ctx.Bounds.MaxX) / 2, Y: (ctx.Bounds.MinY + ctx.Bounds.MaxY) / 2}
	}
	w0, w1, w2 := barycentricWeights(n.P0, n.P1, n.P2, p)
	iw0, iw1, iw2 := safeInv(n.W0), safeInv(n.W1), safeInv(n.W2)
	denom := w0*iw0 + w1*iw1 + w2*iw2
	if denom == 0 {
		return n.C0
	}
	mix := func(c0, c1, c2 float64) float64 {
		return (w0*iw0*c0 + w1*iw1*c1 + w2*iw2*c2) / denom
	}
	return Vec4{
		R: mix(n.C0.R, n.C1.R, n.C2.R),
		G: mix(n.C0.G, n.C1.G, n.C2.G),
		B: mix(n.C0.B, n.C1.B, n.C2.B),
		A: mix(n.C0.A, n.C1.A, n.C2.A),
	}
}

func safeInv(w float64) float64 {
	if w == 0 {
		return 0
	}
	return 1 / w
}

func (n BarycentricPerspectiveBlendNode) WriteInstructions(w *InstructionWriter) {
	w.EmitOp(OpBarycentricPerspectiveBlend)
	for _, p := range [...]Vector2{n.P0, n.P1, n.P2} {
		w.EmitFloat32(float32(p.X))
		w.EmitFloat32(float32(p.Y))
	}
	for _, ww := range [...]float64{n.W0, n.W1, n.W2} {
		w.EmitFloat32(float32(ww))
	}
	for _, c := range [...]Vec4{n.C0, n.C1, n.C2} {
		w.EmitFloat32(float32(c.R))
		w.EmitFloat32(float32(c.G))
		w.EmitFloat32(float32(c.B))
		w.EmitFloat32(float32(c.A))
	}
}

func (n BarycentricPerspectiveBlendNode) NeedsFace() bool     { return false }
func (n BarycentricPerspectiveBlendNode) NeedsArea() bool     { return false }
func (n BarycentricPerspectiveBlendNode) NeedsCentroid() bool { return true }

// LinearBlendNode blends Zero and One by how far the evaluation point lies
// along Normal past Offset: t = dot(p, Normal) - Offset, clamped to [0,1].
// Unlike LinearGradientNode (which interpolates a fixed stop table), the two
// endpoints are themselves sub-programs, so arbitrary trees can be ramped
// together across a line.
type LinearBlendNode struct {
	Normal    Vector2
	Offset    float64
	Accuracy  Accuracy
	Zero, One Node
}

func (n LinearBlendNode) isNode()          {}
func (n LinearBlendNode) Children() []Node { return []Node{n.Zero, n.One} }

func (n LinearBlendNode) WithChildren(cs []Node) Node {
	if len(cs) != 2 {
		panic("program: LinearBlendNode.WithChildren expects exactly two children")
	}
	return LinearBlendNode{Normal: n.Normal, Offset: n.Offset, Accuracy: n.Accuracy, Zero: cs[0], One: cs[1]}
}

func (n LinearBlendNode) Equals(other Node) bool {
	o, ok := other.(LinearBlendNode)
	return ok && n.Normal == o.Normal && n.Offset == o.Offset && n.Accuracy == o.Accuracy &&
		n.Zero.Equals(o.Zero) && n.One.Equals(o.One)
}

// Transformed maps the line dot(p,Normal)=Offset through m by carrying a
// point known to lie on it and re-deriving Normal/Offset from the image,
// translating the ramp exactly; like SweepGradientNode's angular
// parameterization, rotation/shear of the ramp direction itself is an
// approximation rather than an exact transform of the line equation.
func (n LinearBlendNode) Transformed(m Matrix) Node {
	var p1 Vector2
	switch {
	case n.Normal.X != 0:
		p1 = Vector2{X: n.Offset / n.Normal.X}
	case n.Normal.Y != 0:
		p1 = Vector2{Y: n.Offset / n.Normal.Y}
	}
	tp1 := m.TransformPoint(p1)
	newNormal := Vector2{
		X: m.A*n.Normal.X + m.C*n.Normal.Y,
		Y: m.B*n.Normal.X + m.D*n.Normal.Y,
	}
	newOffset := newNormal.X*tp1.X + newNormal.Y*tp1.Y
	return LinearBlendNode{
		Normal:   newNormal,
		Offset:   newOffset,
		Accuracy: n.Accuracy,
		Zero:     n.Zero.Transformed(m),
		One:      n.One.Transformed(m),
	}
}

func (n LinearBlendNode) Simplify(pathTest func(int) bool) Node {
	zero, one := n.Zero.Simplify(pathTest), n.One.Simplify(pathTest)
	if zero.Equals(one) {
		return zero
	}
	return LinearBlendNode{Normal: n.Normal, Offset: n.Offset, Accuracy: n.Accuracy, Zero: zero, One: one}
}

func (n LinearBlendNode) linearBlendRatio(ctx *EvalContext) float64 {
	p := ctx.Centroid
	if !ctx.HasCentroid {
		p = Vector2{X: (ctx.Bounds.MinX + ctx.Bounds.MaxX) / 2, Y: (ctx.Bounds.MinY + ctx.Bounds.MaxY) / 2}
	}
	t := n.Normal.X*p.X + n.Normal.Y*p.Y - n.Offset
	return clamp01(t)
}

func (n LinearBlendNode) Evaluate(ctx *EvalContext) Vec4 {
	t := n.linearBlendRatio(ctx)
	zero, one := n.Zero.Evaluate(ctx), n.One.Evaluate(ctx)
	return Vec4{
		R: zero.R + t*(one.R-zero.R),
		G: zero.G + t*(one.G-zero.G),
		B: zero.B + t*(one.B-zero.B),
		A: zero.A + t*(one.A-zero.A),
	}
}

func (n LinearBlendNode) WriteInstructions(w *InstructionWriter) {
	n.One.WriteInstructions(w)
	n.Zero.WriteInstructions(w)
	w.EmitOp(OpComputeAxisBlendRatio)
	w.Emit(axisBlendKindLinear)
	w.EmitFloat32(float32(n.Normal.X))
	w.EmitFloat32(float32(n.Normal.Y))
	w.EmitFloat32(float32(n.Offset))
}

func (n LinearBlendNode) NeedsFace() bool { return n.Zero.NeedsFace() || n.One.NeedsFace() }
func (n LinearBlendNode) NeedsArea() bool { return n.Zero.NeedsArea() || n.One.NeedsArea() }
func (n LinearBlendNode) NeedsCentroid() bool {
	return true
}

// RadialBlendNode blends Zero and One by normalized distance from the
// origin of Transform's coordinate system, ramping from R0 to R1 (Accurate
// evaluation area-averages the distance via Face.AverageDistanceTransformedToOrigin,
// the same technique RadialGradientNode uses).
type RadialBlendNode struct {
	Transform Matrix
	R0, R1    float64
	Accuracy  Accuracy
	Zero, One Node
}

func (n RadialBlendNode) isNode()          {}
func (n RadialBlendNode) Children() []Node { return []Node{n.Zero, n.One} }

func (n RadialBlendNode) WithChildren(cs []Node) Node {
	if len(cs) != 2 {
		panic("program: RadialBlendNode.WithChildren expects exactly two children")
	}
	return RadialBlendNode{Transform: n.Transform, R0: n.R0, R1: n.R1, Accuracy: n.Accuracy, Zero: cs[0], One: cs[1]}
}

func (n RadialBlendNode) Equals(other Node) bool {
	o, ok := other.(RadialBlendNode)
	return ok && n.Transform == o.Transform && n.R0 == o.R0 && n.R1 == o.R1 && n.Accuracy == o.Accuracy &&
		n.Zero.Equals(o.Zero) && n.One.Equals(o.One)
}

func (n RadialBlendNode) Transformed(m Matrix) Node {
	return RadialBlendNode{
		Transform: n.Transform.Multiply(m),
		R0:        n.R0, R1: n.R1, Accuracy: n.Accuracy,
		Zero: n.Zero.Transformed(m), One: n.One.Transformed(m),
	}
}

func (n RadialBlendNode) Simplify(pathTest func(int) bool) Node {
	zero, one := n.Zero.Simplify(pathTest), n.One.Simplify(pathTest)
	if zero.Equals(one) {
		return zero
	}
	return RadialBlendNode{Transform: n.Transform, R0: n.R0, R1: n.R1, Accuracy: n.Accuracy, Zero: zero, One: one}
}

func (n RadialBlendNode) radialBlendRatio(ctx *EvalContext) float64 {
	var dist float64
	if n.Accuracy == AccuracyAccurate && ctx.HasFace {
		dist = ctx.Face.AverageDistanceTransformedToOrigin(n.Transform)
	} else {
		p := ctx.Centroid
		if !ctx.HasCentroid {
			p = Vector2{X: (ctx.Bounds.MinX + ctx.Bounds.MaxX) / 2, Y: (ctx.Bounds.MinY + ctx.Bounds.MaxY) / 2}
		}
		tp := n.Transform.TransformPoint(p)
		dist = math.Hypot(tp.X, tp.Y)
	}
	if n.R1 == n.R0 {
		return 0
	}
	return clamp01((dist - n.R0) / (n.R1 - n.R0))
}

func (n RadialBlendNode) Evaluate(ctx *EvalContext) Vec4 {
	t := n.radialBlendRatio(ctx)
	zero, one := n.Zero.Evaluate(ctx), n.One.Evaluate(ctx)
	return Vec4{
		R: zero.R + t*(one.R-zero.R),
		G: zero.G + t*(one.G-zero.G),
		B: zero.B + t*(one.B-zero.B),
		A: zero.A + t*(one.A-zero.A),
	}
}

func (n RadialBlendNode) WriteInstructions(w *InstructionWriter) {
	n.One.WriteInstructions(w)
	n.Zero.WriteInstructions(w)
	w.EmitOp(OpComputeAxisBlendRatio)
	w.Emit(axisBlendKindRadial)
	w.EmitFloat32(float32(n.R0))
	w.EmitFloat32(float32(n.R1))
}

// NeedsFace is false: like RadialGradientNode, accurate face-averaged
// distance is used opportunistically when ctx.HasFace is already true, not
// required (the centroid fallback keeps Evaluate total either way).
func (n RadialBlendNode) NeedsFace() bool { return n.Zero.NeedsFace() || n.One.NeedsFace() }
func (n RadialBlendNode) NeedsArea() bool { return n.Zero.NeedsArea() || n.One.NeedsArea() }
func (n RadialBlendNode) NeedsCentroid() bool {
	return true
}

const (
	axisBlendKindLinear uint32 = iota
	axisBlendKindRadial
)
