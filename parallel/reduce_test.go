// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"math/rand/v2"
	"testing"
)

func sumMonoid() Monoid[uint32] {
	return Monoid[uint32]{Identity: 0, Combine: func(a, b uint32) uint32 { return a + b }}
}

// =============================================================================
// Reduce correctness across both executors and all variants
// =============================================================================

func TestReduce_GoroutineExecutor(t *testing.T) {
	data := make([]uint32, 1000)
	var want uint32
	for i := range data {
		data[i] = uint32(i + 1)
		want += data[i]
	}

	for _, variant := range []ReduceVariant{ReduceVariantTree, ReduceVariantConvergent, ReduceVariantSerializedPrefix} {
		got := Reduce(NewGoroutineExecutor(), sumMonoid(), variant, data, 64)
		if got != want {
			t.Errorf("variant %d: Reduce() = %d, want %d", variant, got, want)
		}
	}
}

func TestReduce_Empty(t *testing.T) {
	got := Reduce(NewGoroutineExecutor(), sumMonoid(), ReduceVariantTree, nil, 64)
	if got != 0 {
		t.Errorf("Reduce(nil) = %d, want 0", got)
	}
}

func TestAtomicReduceUint32(t *testing.T) {
	data := make([]uint32, 500)
	var want uint32
	for i := range data {
		data[i] = uint32(i)
		want += data[i]
	}
	got := AtomicReduceUint32(NewGoroutineExecutor(), data, 32)
	if got != want {
		t.Errorf("AtomicReduceUint32() = %d, want %d", got, want)
	}
}

// TestReduce_PermutationInvariant checks that summing a random permutation of
// the same multiset under 10000 random seeds always produces the same total,
// across both the goroutine and cooperative executors.
func TestReduce_PermutationInvariant(t *testing.T) {
	const n = 64
	base := make([]uint32, n)
	var want uint32
	for i := range base {
		base[i] = uint32(i * 7 % 101)
		want += base[i]
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for seed := 0; seed < 10000; seed++ {
		data := make([]uint32, n)
		copy(data, base)
		rng.Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })

		ex := NewCooperativeExecutor(uint64(seed))
		got := Reduce(ex, sumMonoid(), ReduceVariantTree, data, 16)
		if got != want {
			t.Fatalf("seed %d: Reduce() = %d, want %d", seed, got, want)
		}
	}
}
