// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "testing"

func TestQ128RoundTrip(t *testing.T) {
	r := New(7, 11)
	q := FromRat(r)
	got := q.ToRat()
	if !got.Equal(r) {
		t.Errorf("round trip = %+v, want %+v", got, r)
	}
}

func TestQ128Arithmetic(t *testing.T) {
	a := FromRat(New(1, 2))
	b := FromRat(New(1, 3))

	if got := a.Add(b).ToRat(); !got.Equal(New(5, 6)) {
		t.Errorf("Add() = %+v, want 5/6", got)
	}
	if got := a.Mul(b).ToRat(); !got.Equal(New(1, 6)) {
		t.Errorf("Mul() = %+v, want 1/6", got)
	}
}
