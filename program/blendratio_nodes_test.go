// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "testing"

func TestBarycentricPerspectiveBlendNode_VertexReturnsItsOwnColor(t *testing.T) {
	n := BarycentricPerspectiveBlendNode{
		P0: Vector2{X: 0, Y: 0}, P1: Vector2{X: 1, Y: 0}, P2: Vector2{X: 0, Y: 1},
		W0: 1, W1: 1, W2: 1,
		C0: Vec4{R: 1, A: 1}, C1: Vec4{G: 1, A: 1}, C2: Vec4{B: 1, A: 1},
	}
	ctx := &EvalContext{Centroid: Vector2{X: 0, Y: 0}, HasCentroid: true}
	got := n.Evaluate(ctx)
	if got.R != 1 || got.G != 0 || got.B != 0 {
		t.Errorf("Evaluate at P0 = %#v, want C0", got)
	}
}

func TestBarycentricPerspectiveBlendNode_Simplify_FoldsEqualVertexColors(t *testing.T) {
	same := Vec4{R: 0.2, G: 0.4, B: 0.6, A: 1}
	n := BarycentricPerspectiveBlendNode{
		P0: Vector2{X: 0, Y: 0}, P1: Vector2{X: 1, Y: 0}, P2: Vector2{X: 0, Y: 1},
		W0: 1, W1: 1, W2: 1,
		C0: same, C1: same, C2: same,
	}
	got := n.Simplify(nil)
	if !got.Equals(ColorNode{Color: same}) {
		t.Errorf("Simplify(uniform-color triangle) = %#v, want ColorNode(%#v)", got, same)
	}
}

func TestLinearBlendNode_Evaluate_ClampsBeforeAndAfterSegment(t *testing.T) {
	n := LinearBlendNode{
		Normal: Vector2{X: 1, Y: 0}, Offset: 0,
		Zero: ColorNode{Color: Vec4{R: 1, A: 1}},
		One:  ColorNode{Color: Vec4{B: 1, A: 1}},
	}
	before := n.Evaluate(&EvalContext{Centroid: Vector2{X: -5, Y: 0}, HasCentroid: true})
	if before.R != 1 || before.B != 0 {
		t.Errorf("Evaluate before ramp start = %#v, want Zero's color", before)
	}
	after := n.Evaluate(&EvalContext{Centroid: Vector2{X: 5, Y: 0}, HasCentroid: true})
	if after.B != 1 || after.R != 0 {
		t.Errorf("Evaluate past ramp end = %#v, want One's color", after)
	}
}

func TestLinearBlendNode_Simplify_EqualEndpointsCollapse(t *testing.T) {
	same := ColorNode{Color: Vec4{R: 0.5, A: 1}}
	n := LinearBlendNode{Normal: Vector2{X: 1, Y: 0}, Offset: 0, Zero: same, One: same}
	got := n.Simplify(nil)
	if !got.Equals(same) {
		t.Errorf("Simplify(LinearBlend with equal endpoints) = %#v, want %#v", got, same)
	}
}

func TestLinearBlendNode_Transformed_TranslatesOffset(t *testing.T) {
	n := LinearBlendNode{
		Normal: Vector2{X: 1, Y: 0}, Offset: 0,
		Zero: ColorNode{Color: Vec4{R: 1, A: 1}},
		One:  ColorNode{Color: Vec4{B: 1, A: 1}},
	}
	got, ok := n.Transformed(Matrix{A: 1, D: 1, E: 10, F: 0}).(LinearBlendNode)
	if !ok {
		t.Fatalf("Transformed result is %T, want LinearBlendNode", n.Transformed(Matrix{}))
	}
	// A point at the new ramp start (x=10) should evaluate like the
	// original ramp's start (x=0) did: Zero's color.
	ctx := &EvalContext{Centroid: Vector2{X: 10, Y: 0}, HasCentroid: true}
	gotColor := got.Evaluate(ctx)
	if gotColor.R != 1 || gotColor.B != 0 {
		t.Errorf("Evaluate at translated ramp start = %#v, want Zero's color", gotColor)
	}
}

func TestRadialBlendNode_Evaluate_OriginIsFirstEndpoint(t *testing.T) {
	n := RadialBlendNode{
		Transform: Matrix{A: 1, D: 1},
		R0:        0, R1: 10,
		Zero: ColorNode{Color: Vec4{R: 1, A: 1}},
		One:  ColorNode{Color: Vec4{B: 1, A: 1}},
	}
	ctx := &EvalContext{Centroid: Vector2{X: 0, Y: 0}, HasCentroid: true}
	got := n.Evaluate(ctx)
	if got.R != 1 || got.B != 0 {
		t.Errorf("Evaluate at origin = %#v, want Zero's color", got)
	}
}

func TestRadialBlendNode_Evaluate_PastR1IsSecondEndpoint(t *testing.T) {
	n := RadialBlendNode{
		Transform: Matrix{A: 1, D: 1},
		R0:        0, R1: 10,
		Zero: ColorNode{Color: Vec4{R: 1, A: 1}},
		One:  ColorNode{Color: Vec4{B: 1, A: 1}},
	}
	ctx := &EvalContext{Centroid: Vector2{X: 100, Y: 0}, HasCentroid: true}
	got := n.Evaluate(ctx)
	if got.B != 1 || got.R != 0 {
		t.Errorf("Evaluate past R1 = %#v, want One's color", got)
	}
}

func TestRadialBlendNode_Simplify_EqualEndpointsCollapse(t *testing.T) {
	same := ColorNode{Color: Vec4{G: 1, A: 1}}
	n := RadialBlendNode{Transform: Matrix{A: 1, D: 1}, R0: 0, R1: 10, Zero: same, One: same}
	got := n.Simplify(nil)
	if !got.Equals(same) {
		t.Errorf("Simplify(RadialBlend with equal endpoints) = %#v, want %#v", got, same)
	}
}
