// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestCooperativeExecutor_AllThreadsRun(t *testing.T) {
	ex := NewCooperativeExecutor(1)
	var count atomic.Int64
	ex.Dispatch(3, 5, func(tc *ThreadContext) {
		count.Add(1)
	})
	if got := count.Load(); got != 15 {
		t.Errorf("count = %d, want 15", got)
	}
}

func TestCooperativeExecutor_BarrierOrdering(t *testing.T) {
	// Every thread writes its local id into a shared slot before the
	// barrier and reads every other thread's slot after; if the barrier
	// is broken some thread will observe a zero-valued slot that was
	// never written by its "owner" before the read.
	const workgroupSize = 8
	shared := make([]int32, workgroupSize)

	ex := NewCooperativeExecutor(99)
	var mismatches atomic.Int64
	ex.Dispatch(1, workgroupSize, func(tc *ThreadContext) {
		shared[tc.LocalID.X] = int32(tc.LocalID.X) + 1
		tc.WorkgroupBarrier()
		for i, v := range shared {
			if v != int32(i)+1 {
				mismatches.Add(1)
			}
		}
	})
	if got := mismatches.Load(); got != 0 {
		t.Errorf("observed %d stale reads across the barrier", got)
	}
}

func TestCooperativeExecutor_DeterministicPerSeed(t *testing.T) {
	var order1, order2 []int
	run := func(seed uint64) []int {
		var out []int
		var mu sync.Mutex
		ex := NewCooperativeExecutor(seed)
		ex.Dispatch(4, 4, func(tc *ThreadContext) {
			mu.Lock()
			out = append(out, int(tc.GlobalID.X))
			mu.Unlock()
		})
		return out
	}
	order1 = run(123)
	order2 = run(123)

	if len(order1) != len(order2) {
		t.Fatalf("len mismatch: %d vs %d", len(order1), len(order2))
	}
	for i := range order1 {
		if order1[i] != order2[i] {
			t.Errorf("same seed produced different order at %d: %d vs %d", i, order1[i], order2[i])
			break
		}
	}
}
