// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "testing"

// solidImage is a test-only ImageSource that samples the same color
// everywhere, regardless of (u, v).
type solidImage struct {
	color Vec4
	w, h  int
}

func (s solidImage) Sample(u, v float64) Vec4 { return s.color }
func (s solidImage) Size() (int, int)         { return s.w, s.h }

func TestImageNode_Evaluate_SamplesSourceAtTransformedCentroid(t *testing.T) {
	n := ImageNode{
		Transform: Matrix{A: 1, D: 1},
		Source:    solidImage{color: Vec4{R: 1, A: 1}, w: 4, h: 4},
		ExtendX:   ExtendPad,
		ExtendY:   ExtendPad,
	}
	ctx := &EvalContext{Centroid: Vector2{X: 0.5, Y: 0.5}, HasCentroid: true}
	got := n.Evaluate(ctx)
	if got.R != 1 {
		t.Errorf("Evaluate(Image) = %#v, want source's color", got)
	}
}

func TestImageNode_Evaluate_NilSourceIsTransparent(t *testing.T) {
	n := ImageNode{Transform: Matrix{A: 1, D: 1}}
	got := n.Evaluate(constCtx())
	if got != Transparent {
		t.Errorf("Evaluate(Image with nil Source) = %#v, want transparent", got)
	}
}

func TestImageNode_Transformed_ComposesWithExisting(t *testing.T) {
	n := ImageNode{Transform: Matrix{A: 2, D: 2}, Source: solidImage{w: 1, h: 1}}
	got, ok := n.Transformed(Matrix{A: 1, D: 1, E: 1, F: 1}).(ImageNode)
	if !ok {
		t.Fatalf("Transformed result is %T, want ImageNode", n.Transformed(Matrix{}))
	}
	want := n.Transform.Multiply(Matrix{A: 1, D: 1, E: 1, F: 1})
	if got.Transform != want {
		t.Errorf("Transformed composed matrix = %#v, want %#v", got.Transform, want)
	}
}

func TestImageNode_Equals_ComparesSource(t *testing.T) {
	src := solidImage{color: Vec4{A: 1}, w: 2, h: 2}
	a := ImageNode{Transform: Matrix{A: 1, D: 1}, Source: src}
	b := ImageNode{Transform: Matrix{A: 1, D: 1}, Source: src}
	if !a.Equals(b) {
		t.Errorf("Equals with identical Source = false, want true")
	}
	c := ImageNode{Transform: Matrix{A: 1, D: 1}, Source: solidImage{color: Vec4{R: 1, A: 1}, w: 2, h: 2}}
	if a.Equals(c) {
		t.Errorf("Equals with differing Source value = true, want false")
	}
}
