// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"math/rand/v2"
	"sort"
	"testing"
)

func intLess(a, b int) bool { return a < b }

func TestMergeSimple(t *testing.T) {
	a := []int{1, 3, 5, 7}
	b := []int{2, 4, 6, 8, 9}
	got := MergeSimple(a, b, intLess)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMergePath(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 22))
	a := make([]int, 200)
	b := make([]int, 233)
	for i := range a {
		a[i] = rng.IntN(1000)
	}
	for i := range b {
		b[i] = rng.IntN(1000)
	}
	sort.Ints(a)
	sort.Ints(b)

	got := MergePath(NewGoroutineExecutor(), a, b, intLess, 32)

	want := MergeSimple(a, b, intLess)
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMergePath_EmptySides(t *testing.T) {
	a := []int{1, 2, 3}
	got := MergePath(NewGoroutineExecutor(), a, nil, intLess, 4)
	for i := range a {
		if got[i] != a[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], a[i])
		}
	}
}
