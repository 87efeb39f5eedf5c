// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

// ThreadID identifies one thread's position in the dispatch grid. Only the
// X component of each triple is used by the primitives in this package —
// Y/Z exist so the type matches the GPU model's 3D globalId/localId/
// workgroupId exactly.
type ThreadID struct {
	X, Y, Z uint32
}

// ThreadContext is passed to a dispatched kernel function. It exposes the
// thread's position in the grid and the two barrier kinds from §5.
type ThreadContext struct {
	GlobalID    ThreadID
	LocalID     ThreadID
	WorkgroupID ThreadID

	wg *workgroupSync

	// sched and fiberIdx are set only under CooperativeExecutor; they let
	// barrier waits yield to the scheduler instead of blocking the
	// goroutine outright, since the scheduler only ever lets one fiber's
	// kernel code run at a time.
	sched    *coopScheduler
	fiberIdx int
}

// WorkgroupBarrier blocks until every thread in the calling thread's
// workgroup has reached this point. Reads/writes before the barrier become
// visible to the whole workgroup after it returns.
func (tc *ThreadContext) WorkgroupBarrier() {
	tc.wg.workgroupBarrier(tc)
}

// StorageBarrier blocks like WorkgroupBarrier. Neither Executor registers
// SharedArrays with a dispatch, so it does not clear their writer
// bookkeeping; SharedArray.ClearWriters does that.
func (tc *ThreadContext) StorageBarrier() {
	tc.wg.storageBarrier(tc)
}

// Executor drives a Kernel over a dispatch grid of numWorkgroups groups of
// workgroupSize threads each. Kernel is called once per thread; it must use
// the ThreadContext it is given (rather than closing over shared state
// directly) so WorkgroupBarrier/StorageBarrier calls cooperate correctly.
type Executor interface {
	Dispatch(numWorkgroups, workgroupSize int, kernel func(tc *ThreadContext))
}
