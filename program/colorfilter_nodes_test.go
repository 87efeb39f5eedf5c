// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "testing"

func TestPremultiplyUnpremultiply_CancelEachOther(t *testing.T) {
	base := ColorNode{Color: Vec4{R: 0.5, G: 0.25, B: 0.75, A: 0.4}}
	n := UnpremultiplyNode{Child: PremultiplyNode{Child: base}}
	got := n.Simplify(nil)
	if !got.Equals(base) {
		t.Errorf("Simplify(Unpremultiply(Premultiply(x))) = %#v, want %#v", got, base)
	}

	m := PremultiplyNode{Child: UnpremultiplyNode{Child: base}}
	got2 := m.Simplify(nil)
	if !got2.Equals(base) {
		t.Errorf("Simplify(Premultiply(Unpremultiply(x))) = %#v, want %#v", got2, base)
	}
}

func TestPremultiplyNode_Evaluate_ScalesColorByAlpha(t *testing.T) {
	n := PremultiplyNode{Child: ColorNode{Color: Vec4{R: 1, G: 1, B: 1, A: 0.5}}}
	got := n.Evaluate(constCtx())
	want := Vec4{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	if got != want {
		t.Errorf("Evaluate(Premultiply) = %#v, want %#v", got, want)
	}
}

func TestUnpremultiplyNode_Evaluate_TransparentStaysZero(t *testing.T) {
	n := UnpremultiplyNode{Child: ColorNode{Color: Transparent}}
	got := n.Evaluate(constCtx())
	if got != Transparent {
		t.Errorf("Evaluate(Unpremultiply transparent) = %#v, want transparent, not NaN", got)
	}
}

func TestFilterNode_IdentityMatrixZeroBiasSimplifiesAway(t *testing.T) {
	base := ColorNode{Color: Vec4{R: 0.3, G: 0.6, B: 0.9, A: 1}}
	n := FilterNode{Child: base, Matrix: IdentityColorMatrix()}
	got := n.Simplify(nil)
	if !got.Equals(base) {
		t.Errorf("Simplify(identity Filter) = %#v, want %#v", got, base)
	}
}

func TestFilterNode_Evaluate_GrayscaleMatrix(t *testing.T) {
	var m ColorMatrix
	for row := 0; row < 3; row++ {
		m[row][0], m[row][1], m[row][2] = 0.33, 0.33, 0.34
	}
	m[3][3] = 1
	n := FilterNode{Child: ColorNode{Color: Vec4{R: 1, G: 0, B: 0, A: 1}}, Matrix: m}
	got := n.Evaluate(constCtx())
	if got.R != got.G || got.G != got.B {
		t.Errorf("Evaluate(grayscale Filter) = %#v, want equal R/G/B", got)
	}
}

func TestNormalizeNode_ClampsOutOfRangeChannels(t *testing.T) {
	n := NormalizeNode{Child: ColorNode{Color: Vec4{R: 1.5, G: -0.5, B: 0.5, A: 1}}}
	got := n.Evaluate(constCtx())
	want := Vec4{R: 1, G: 0, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Evaluate(Normalize) = %#v, want %#v", got, want)
	}
}

func TestNormalizeNode_Simplify_FoldsConstantChild(t *testing.T) {
	n := NormalizeNode{Child: ColorNode{Color: Vec4{R: 2, A: 1}}}
	got := n.Simplify(nil)
	want := ColorNode{Color: Vec4{R: 1, A: 1}}
	if !got.Equals(want) {
		t.Errorf("Simplify(Normalize const) = %#v, want %#v", got, want)
	}
}
