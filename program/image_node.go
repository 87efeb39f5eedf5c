// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

// ImageSource samples a raster image in its own normalized [0,1]x[0,1] UV
// space. program depends only on this interface (the same pattern
// ColorSpaceConverter uses) so it never needs to import a concrete image
// decoding/storage package.
type ImageSource interface {
	// Sample returns the straight-alpha color at normalized coordinate
	// (u, v); u/v outside [0,1] are the caller's responsibility to fold
	// per the node's ExtendX/ExtendY before calling.
	Sample(u, v float64) Vec4
	// Size returns the image's pixel dimensions. ImageNode does not call
	// it.
	Size() (width, height int)
}

// ResampleMode names how a color is reconstructed between an ImageSource's
// discrete samples. ImageNode.Evaluate calls Sample the same way for every
// mode; the mode is carried into the instruction stream.
type ResampleMode int

const (
	ResampleNearest ResampleMode = iota
	ResampleBilinear
)

// ImageNode samples Source through Transform (mapping evaluation-space
// points into the image's UV space), folding out-of-range coordinates per
// ExtendX/ExtendY the same way gradient nodes fold their ramp parameter.
type ImageNode struct {
	Transform        Matrix
	Source           ImageSource
	ExtendX, ExtendY ExtendMode
	Resample         ResampleMode
}

func (n ImageNode) isNode()          {}
func (n ImageNode) Children() []Node { return nil }

func (n ImageNode) WithChildren(cs []Node) Node {
	if len(cs) != 0 {
		panic("program: ImageNode.WithChildren expects no children")
	}
	return n
}

func (n ImageNode) Equals(other Node) bool {
	o, ok := other.(ImageNode)
	return ok && n.Transform == o.Transform && n.Source == o.Source &&
		n.ExtendX == o.ExtendX && n.ExtendY == o.ExtendY && n.Resample == o.Resample
}

func (n ImageNode) Transformed(m Matrix) Node {
	// Transform maps evaluation space into UV space, so composing an
	// additional outer transform m on evaluation-space points is applying
	// m first: UV = Transform(m(p)) = (Transform*m)(p).
	return ImageNode{Transform: n.Transform.Multiply(m), Source: n.Source, ExtendX: n.ExtendX, ExtendY: n.ExtendY, Resample: n.Resample}
}

func (n ImageNode) Simplify(pathTest func(int) bool) Node { return n }

func (n ImageNode) Evaluate(ctx *EvalContext) Vec4 {
	if n.Source == nil {
		return Transparent
	}
	p := ctx.Centroid
	if !ctx.HasCentroid {
		p = Vector2{X: (ctx.Bounds.MinX + ctx.Bounds.MaxX) / 2, Y: (ctx.Bounds.MinY + ctx.Bounds.MaxY) / 2}
	}
	uv := n.Transform.TransformPoint(p)
	u := applyExtendMode(uv.X, n.ExtendX)
	v := applyExtendMode(uv.Y, n.ExtendY)
	return n.Source.Sample(u, v)
}

func (n ImageNode) WriteInstructions(w *InstructionWriter) {
	w.EmitOp(OpImageSample)
	w.EmitFloat32(float32(n.Transform.A))
	w.EmitFloat32(float32(n.Transform.B))
	w.EmitFloat32(float32(n.Transform.C))
	w.EmitFloat32(float32(n.Transform.D))
	w.EmitFloat32(float32(n.Transform.E))
	w.EmitFloat32(float32(n.Transform.F))
	w.Emit(uint32(n.ExtendX))
	w.Emit(uint32(n.ExtendY))
	w.Emit(uint32(n.Resample))
}

func (n ImageNode) NeedsFace() bool     { return false }
func (n ImageNode) NeedsArea() bool     { return false }
func (n ImageNode) NeedsCentroid() bool { return true }
