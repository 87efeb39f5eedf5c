// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "testing"

func TestSharedArray_GetSet(t *testing.T) {
	a := NewSharedArray[int](4)
	ex := NewGoroutineExecutor()
	ex.Dispatch(1, 4, func(tc *ThreadContext) {
		a.Set(tc, int(tc.LocalID.X), int(tc.LocalID.X)*10)
	})
	snap := a.Snapshot()
	want := []int{0, 10, 20, 30}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("snap[%d] = %d, want %d", i, snap[i], want[i])
		}
	}
}

func TestSharedArray_SameWorkgroupReadAfterWriteIsFine(t *testing.T) {
	a := NewSharedArray[int](1)
	ex := NewGoroutineExecutor()
	ex.Dispatch(1, 2, func(tc *ThreadContext) {
		if tc.LocalID.X == 0 {
			a.Set(tc, 0, 7)
		}
		tc.WorkgroupBarrier()
		if tc.LocalID.X == 1 {
			if got := a.Get(tc, 0); got != 7 {
				t.Errorf("Get() = %d, want 7", got)
			}
		}
	})
}

func TestSharedArray_CrossWorkgroupAccessPanics(t *testing.T) {
	a := NewSharedArray[int](1)
	ex := NewGoroutineExecutor()
	ex.Dispatch(1, 1, func(tc *ThreadContext) {
		a.Set(tc, 0, 1)
	})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic accessing an index a different workgroup wrote without ClearWriters")
		}
	}()
	ex.Dispatch(2, 1, func(tc *ThreadContext) {
		a.Get(tc, 0)
	})
}

func TestSharedArray_ClearWritersAllowsCrossWorkgroupAccess(t *testing.T) {
	a := NewSharedArray[int](1)
	ex := NewGoroutineExecutor()
	ex.Dispatch(1, 1, func(tc *ThreadContext) {
		a.Set(tc, 0, 1)
	})
	a.ClearWriters()
	ex.Dispatch(2, 1, func(tc *ThreadContext) {
		a.Get(tc, 0)
	})
}
