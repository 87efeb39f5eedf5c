// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "testing"

func TestExecuteInstructions_ConstColor(t *testing.T) {
	n := ColorNode{Color: Vec4{R: 0.1, G: 0.2, B: 0.3, A: 0.4}}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{}, nil)
	if !closeVec4(got, n.Color, 1e-6) {
		t.Errorf("ExecuteInstructions(ColorNode) = %#v, want %#v", got, n.Color)
	}
}

func TestExecuteInstructions_Alpha(t *testing.T) {
	n := AlphaNode{Child: ColorNode{Color: Vec4{R: 1, G: 1, B: 1, A: 1}}, Alpha: 0.5}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{}, nil)
	want := Vec4{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	if !closeVec4(got, want, 1e-6) {
		t.Errorf("ExecuteInstructions(AlphaNode) = %#v, want %#v", got, want)
	}
}

func TestExecuteInstructions_LinearGradientMidpoint(t *testing.T) {
	n := LinearGradientNode{
		Start:  Vector2{X: 0, Y: 0},
		End:    Vector2{X: 10, Y: 0},
		Stops:  []ColorStop{{Offset: 0, Color: Vec4{R: 1, A: 1}}, {Offset: 1, Color: Vec4{B: 1, A: 1}}},
		Extend: ExtendPad,
	}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{X: 5, Y: 0}, nil)
	if !closeFloat(got.R, 0.5, 1e-4) || !closeFloat(got.B, 0.5, 1e-4) {
		t.Errorf("ExecuteInstructions(LinearGradientNode) at midpoint = %#v, want R=B=0.5", got)
	}
}

func TestExecuteInstructions_RadialGradientAtCenter(t *testing.T) {
	n := RadialGradientNode{
		Center: Vector2{X: 0, Y: 0},
		Radius: 10,
		Stops:  []ColorStop{{Offset: 0, Color: Vec4{R: 1, A: 1}}, {Offset: 1, Color: Vec4{B: 1, A: 1}}},
	}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{X: 0, Y: 0}, nil)
	if got.R != 1 || got.B != 0 {
		t.Errorf("ExecuteInstructions(RadialGradientNode) at center = %#v, want first stop", got)
	}
}

func TestExecuteInstructions_BarycentricBlend(t *testing.T) {
	n := BarycentricBlendNode{
		P0: Vector2{X: 0, Y: 0}, P1: Vector2{X: 1, Y: 0}, P2: Vector2{X: 0, Y: 1},
		C0: Vec4{R: 1, A: 1}, C1: Vec4{G: 1, A: 1}, C2: Vec4{B: 1, A: 1},
	}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{X: 1, Y: 0}, nil)
	if got.G != 1 {
		t.Errorf("ExecuteInstructions(BarycentricBlendNode) at P1 = %#v, want C1", got)
	}
}

func TestExecuteInstructions_PathBooleanOneSided(t *testing.T) {
	n := PathBooleanNode{Path: 0, Inside: ColorNode{Color: Vec4{R: 1, A: 1}}}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{}, nil)
	if got.R != 1 {
		t.Errorf("ExecuteInstructions(one-sided PathBoolean) = %#v, want inside color", got)
	}
}

func TestExecuteInstructions_PathBooleanTwoSidedReturnsInside(t *testing.T) {
	n := PathBooleanNode{
		Path:    0,
		Inside:  ColorNode{Color: Vec4{R: 1, A: 1}},
		Outside: ColorNode{Color: Vec4{G: 1, A: 1}},
	}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{}, nil)
	if got.R != 1 || got.G != 0 {
		t.Errorf("ExecuteInstructions(two-sided PathBoolean) = %#v, want inside color (no oracle)", got)
	}
}

type doublingConverter struct{}

func (doublingConverter) Convert(kind ColorSpaceKind, c Vec4) Vec4 { return c.Scale(2) }

func TestExecuteInstructions_ColorSpaceMatrixUsesConverter(t *testing.T) {
	n := ColorSpaceConvertNode{Child: ColorNode{Color: Vec4{R: 0.25, A: 0.25}}, Kind: SRGBToLinearSRGB}
	w := NewInstructionWriter()
	n.WriteInstructions(w)
	got := ExecuteInstructions(w.Words(), Vector2{}, doublingConverter{})
	if got.R != 0.5 {
		t.Errorf("ExecuteInstructions(ColorSpaceConvertNode) = %#v, want R doubled to 0.5", got)
	}
}

func closeFloat(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func closeVec4(a, b Vec4, eps float64) bool {
	return closeFloat(a.R, b.R, eps) && closeFloat(a.G, b.G, eps) &&
		closeFloat(a.B, b.B, eps) && closeFloat(a.A, b.A, eps)
}
