// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"math/rand/v2"
	"sort"
	"testing"
)

func TestRadixSortUint32_Sorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	data := make([]uint32, 513)
	for i := range data {
		data[i] = rng.Uint32()
	}

	got := RadixSortUint32(NewGoroutineExecutor(), data, 64)

	want := make([]uint32, len(data))
	copy(want, data)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestRadixSortUint32_Stable sorts (key<<24 | index) values, where key takes
// only four distinct values and the original index sits in the low 24 bits,
// then confirms indices for equal keys come out ascending.
func TestRadixSortUint32_Stable(t *testing.T) {
	const n = 300
	tagged := make([]uint32, n)
	for i := 0; i < n; i++ {
		key := uint32(i % 4)
		tagged[i] = key<<24 | uint32(i)
	}

	got := RadixSortUint32(NewGoroutineExecutor(), tagged, 32)

	lastIndexForKey := make(map[uint32]int)
	for _, v := range got {
		key := v >> 24
		idx := int(v & 0xFFFFFF)
		if prev, ok := lastIndexForKey[key]; ok && idx < prev {
			t.Fatalf("stability violated for key %d: index %d came after %d", key, idx, prev)
		}
		lastIndexForKey[key] = idx
	}
}

func TestRadixSortUint32_Empty(t *testing.T) {
	got := RadixSortUint32(NewGoroutineExecutor(), nil, 32)
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}
