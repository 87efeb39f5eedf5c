// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "testing"

func TestBlendNode_NormalModeIsSourceOver(t *testing.T) {
	n := BlendNode{
		A:    ColorNode{Color: Vec4{R: 1, A: 1}},
		B:    ColorNode{Color: Vec4{B: 1, A: 1}},
		Mode: BlendNormal,
	}
	got := n.Evaluate(constCtx())
	want := Vec4{B: 1, A: 1}
	if got != want {
		t.Errorf("Evaluate(Blend normal) = %#v, want %#v", got, want)
	}
}

func TestBlendNode_MultiplyBlackYieldsBlack(t *testing.T) {
	n := BlendNode{
		A:    ColorNode{Color: Vec4{R: 1, G: 1, B: 1, A: 1}},
		B:    ColorNode{Color: Vec4{A: 1}},
		Mode: BlendMultiply,
	}
	got := n.Evaluate(constCtx())
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Evaluate(Blend multiply white,black) = %#v, want black", got)
	}
}

func TestBlendNode_TransparentOperandsStayTransparent(t *testing.T) {
	n := BlendNode{A: ColorNode{Color: Transparent}, B: ColorNode{Color: Transparent}, Mode: BlendScreen}
	got := n.Evaluate(constCtx())
	if got.A != 0 {
		t.Errorf("Evaluate(Blend of two transparent operands) = %#v, want alpha 0", got)
	}
}

func TestComposeNode_SourceOverMatchesBlendNormal(t *testing.T) {
	a := ColorNode{Color: Vec4{R: 1, A: 0.5}}
	b := ColorNode{Color: Vec4{B: 1, A: 1}}
	compose := ComposeNode{A: a, B: b, Op: ComposeOver}
	blend := BlendNode{A: b, B: a, Mode: BlendNormal}
	got, want := compose.Evaluate(constCtx()), blend.Evaluate(constCtx())
	if (got.R-want.R) > 1e-9 || (want.R-got.R) > 1e-9 {
		t.Errorf("ComposeOver = %#v, want source-over result %#v", got, want)
	}
}

func TestComposeNode_ClearIsAlwaysTransparent(t *testing.T) {
	n := ComposeNode{A: ColorNode{Color: Vec4{R: 1, A: 1}}, B: ColorNode{Color: Vec4{B: 1, A: 1}}, Op: ComposeClear}
	got := n.Evaluate(constCtx())
	if got.A != 0 {
		t.Errorf("Evaluate(Compose clear) = %#v, want fully transparent", got)
	}
}

func TestComposeNode_SourceIgnoresDestination(t *testing.T) {
	a := ColorNode{Color: Vec4{R: 1, A: 1}}
	n := ComposeNode{A: a, B: ColorNode{Color: Vec4{B: 1, A: 1}}, Op: ComposeSource}
	got := n.Evaluate(constCtx())
	if got.R != 1 || got.B != 0 {
		t.Errorf("Evaluate(Compose source) = %#v, want operand A unchanged", got)
	}
}

func TestStackBlendNode_EmptyStackIsTransparent(t *testing.T) {
	n := StackBlendNode{}
	got := n.Simplify(nil)
	if !got.Equals(ColorNode{Color: Transparent}) {
		t.Errorf("Simplify(empty stack) = %#v, want transparent", got)
	}
}

func TestStackBlendNode_SingleLayerCollapses(t *testing.T) {
	only := ColorNode{Color: Vec4{R: 1, A: 0.5}}
	n := StackBlendNode{Layers: []Node{only}}
	got := n.Simplify(nil)
	if !got.Equals(only) {
		t.Errorf("Simplify(single-layer stack) = %#v, want %#v", got, only)
	}
}

func TestStackBlendNode_OpaqueLayerHidesEverythingBeneath(t *testing.T) {
	bottom := ColorNode{Color: Vec4{G: 1, A: 1}}
	opaque := ColorNode{Color: Vec4{R: 1, A: 1}}
	top := ColorNode{Color: Vec4{B: 1, A: 0.5}}
	n := StackBlendNode{Layers: []Node{bottom, opaque, top}}
	got := n.Simplify(nil)
	stack, ok := got.(StackBlendNode)
	if !ok {
		t.Fatalf("Simplify result is %T, want StackBlendNode", got)
	}
	if len(stack.Layers) != 2 || !stack.Layers[0].Equals(opaque) {
		t.Errorf("Simplify dropped-beneath-opaque = %#v, want [opaque, top]", stack.Layers)
	}
}

func TestStackBlendNode_Evaluate_BottomToTopOrder(t *testing.T) {
	n := StackBlendNode{Layers: []Node{
		ColorNode{Color: Vec4{R: 1, A: 1}},
		ColorNode{Color: Vec4{B: 1, A: 0.5}},
	}}
	got := n.Evaluate(constCtx())
	if got.B == 0 {
		t.Errorf("Evaluate(stack) = %#v, want top layer's blue to show through", got)
	}
}
