// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "sync/atomic"

// ReduceVariant selects the within-workgroup reduction strategy. All three
// compute the same fold over a workgroup's slice of the input; they differ
// in memory access pattern and in what they assume about Combine.
type ReduceVariant int

const (
	// ReduceVariantTree halves the active thread count each step using
	// sequential (conflict-free) addressing: with stride = ceil(n/2),
	// thread tid combines data[tid] and data[tid+stride] while
	// tid+stride < n, then n becomes stride. Requires a
	// commutative and associative Combine.
	ReduceVariantTree ReduceVariant = iota
	// ReduceVariantConvergent folds from both ends toward the middle:
	// thread tid combines data[tid] and data[n-1-tid] while tid < n/2.
	// Requires commutative and associative Combine.
	ReduceVariantConvergent
	// ReduceVariantSerializedPrefix runs on local id 0 alone, walking its
	// workgroup's slice strictly in order. Correct for non-commutative
	// Combine but gives up all intra-workgroup parallelism.
	ReduceVariantSerializedPrefix
)

// Reduce folds data down to a single value using m.Combine, dispatching
// numWorkgroups := ceil(len(data)/workgroupSize) workgroups of the given
// variant and then folding the per-workgroup partials sequentially (the
// partial count is small enough that this final step needn't be
// parallelized itself).
func Reduce[T any](ex Executor, m Monoid[T], variant ReduceVariant, data []T, workgroupSize int) T {
	if len(data) == 0 {
		return m.Identity
	}
	numWorkgroups := (len(data) + workgroupSize - 1) / workgroupSize
	partials := make([]T, numWorkgroups)
	for i := range partials {
		partials[i] = m.Identity
	}

	// Shared per-workgroup scratch, allocated once up front (not inside the
	// kernel) so every thread of a workgroup reads and writes the same
	// backing array rather than each thread getting its own copy.
	scratchByWG := make([][]T, numWorkgroups)
	for wg := 0; wg < numWorkgroups; wg++ {
		start := wg * workgroupSize
		end := start + workgroupSize
		if end > len(data) {
			end = len(data)
		}
		scratch := make([]T, end-start)
		copy(scratch, data[start:end])
		scratchByWG[wg] = scratch
	}

	ex.Dispatch(numWorkgroups, workgroupSize, func(tc *ThreadContext) {
		wgID := int(tc.WorkgroupID.X)
		scratch := scratchByWG[wgID]

		switch variant {
		case ReduceVariantSerializedPrefix:
			if tc.LocalID.X == 0 {
				partials[wgID] = m.combineAll(scratch)
			}
		default:
			reduceInWorkgroup(tc, m, variant, scratch)
			tc.WorkgroupBarrier()
			if tc.LocalID.X == 0 && len(scratch) > 0 {
				partials[wgID] = scratch[0]
			}
		}
	})

	return m.combineAll(partials)
}

// reduceInWorkgroup performs the tree or convergent fold of scratch down to
// scratch[0], in place. Every thread of the workgroup must call this with
// the same scratch slice and variant; only threads whose LocalID falls
// within the active range for a given step do any combining.
func reduceInWorkgroup[T any](tc *ThreadContext, m Monoid[T], variant ReduceVariant, scratch []T) {
	n := len(scratch)
	if n <= 1 {
		return
	}
	tid := int(tc.LocalID.X)

	switch variant {
	case ReduceVariantConvergent:
		for n > 1 {
			active := n / 2
			if tid < active {
				scratch[tid] = m.Combine(scratch[tid], scratch[n-1-tid])
			}
			tc.WorkgroupBarrier()
			n = (n + 1) / 2
		}
	default: // ReduceVariantTree
		for n > 1 {
			stride := (n + 1) / 2
			if tid < n-stride {
				scratch[tid] = m.Combine(scratch[tid], scratch[tid+stride])
			}
			tc.WorkgroupBarrier()
			n = stride
		}
	}
}

// AtomicReduceUint32 sums data using a single atomic accumulator shared by
// every thread across every workgroup, the simplest reduction variant but
// only valid for commutative operations on primitive types the platform can
// atomically add.
func AtomicReduceUint32(ex Executor, data []uint32, workgroupSize int) uint32 {
	if len(data) == 0 {
		return 0
	}
	var acc atomic.Uint32
	numWorkgroups := (len(data) + workgroupSize - 1) / workgroupSize
	ex.Dispatch(numWorkgroups, workgroupSize, func(tc *ThreadContext) {
		i := int(tc.GlobalID.X)
		if i < len(data) {
			acc.Add(data[i])
		}
	})
	return acc.Load()
}
