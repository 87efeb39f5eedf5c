// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"fmt"
	"sync"
)

// SharedArray is a fixed-length buffer visible to every thread of a
// dispatch, modeling a WGSL storage-class variable. Storage buffers are
// visible across workgroup boundaries only after a StorageBarrier; Get and
// Set record which workgroup last wrote each index and panic if another
// workgroup touches it first, since on real hardware that ordering is not
// guaranteed and the dispatch's result would be undefined.
type SharedArray[T any] struct {
	mu     sync.Mutex
	data   []T
	writer []writerID
}

type writerID struct {
	workgroup uint32
	valid     bool
}

// NewSharedArray allocates a SharedArray of the given length, zero-valued.
func NewSharedArray[T any](length int) *SharedArray[T] {
	return &SharedArray[T]{data: make([]T, length), writer: make([]writerID, length)}
}

// Get reads index i on behalf of tc. Under CooperativeExecutor it first
// yields to the scheduler, making every access a suspension point.
func (a *SharedArray[T]) Get(tc *ThreadContext, i int) T {
	if tc.sched != nil {
		tc.sched.yield(tc.fiberIdx)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkRace(tc, i)
	return a.data[i]
}

// Set writes value to index i on behalf of tc, recording tc as the last
// writer for subsequent race checks. Like Get, it yields to the scheduler
// first under CooperativeExecutor.
func (a *SharedArray[T]) Set(tc *ThreadContext, i int, value T) {
	if tc.sched != nil {
		tc.sched.yield(tc.fiberIdx)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkRace(tc, i)
	a.data[i] = value
	a.writer[i] = writerID{workgroup: tc.WorkgroupID.X, valid: true}
}

func (a *SharedArray[T]) checkRace(tc *ThreadContext, i int) {
	w := a.writer[i]
	if !w.valid {
		return
	}
	if w.workgroup != tc.WorkgroupID.X {
		panic(fmt.Sprintf("parallel: race on shared array index %d: workgroup %d accessed after workgroup %d wrote it with no storage barrier", i, tc.WorkgroupID.X, w.workgroup))
	}
}

// ClearWriters drops all recorded writer bookkeeping, after which any
// workgroup may access every index. Neither Executor calls it, and
// StorageBarrier leaves the records in place; this is the only way they
// are cleared.
func (a *SharedArray[T]) ClearWriters() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.writer {
		a.writer[i] = writerID{}
	}
}

// Snapshot copies out the current contents, for reading back a result after
// a dispatch completes.
func (a *SharedArray[T]) Snapshot() []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// Len returns the array's length.
func (a *SharedArray[T]) Len() int { return len(a.data) }
