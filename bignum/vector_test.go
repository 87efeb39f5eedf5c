// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "testing"

func TestVec2Equal(t *testing.T) {
	a := NewVec2(1, 2)
	b := Vec2{X: New(2, 2), Y: New(4, 2)}
	if !a.Equal(b) {
		t.Errorf("expected %+v == %+v", a, b)
	}
}

func TestVec2Cross(t *testing.T) {
	a := NewVec2(1, 0)
	b := NewVec2(0, 1)
	got := a.Cross(b)
	if !got.Equal(NewInt(1)) {
		t.Errorf("Cross() = %+v, want 1", got)
	}
}

func TestVec2ToFloat64(t *testing.T) {
	v := Vec2{X: New(1, 2), Y: New(1, 4)}
	x, y := v.ToFloat64()
	if x != 0.5 || y != 0.25 {
		t.Errorf("ToFloat64() = (%v, %v), want (0.5, 0.25)", x, y)
	}
}
