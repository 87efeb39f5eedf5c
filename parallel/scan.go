// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

// Scan computes the exclusive prefix sum of data under m.Combine, using a
// Hillis-Steele sweep within each workgroup and then a second pass that
// adds each workgroup's base (the combine of every prior workgroup's
// total) onto its elements — the reduce->scan->rescan ladder used when the
// input spans more than one workgroup.
func Scan(ex Executor, m Monoid[uint32], data []uint32, workgroupSize int) []uint32 {
	out := make([]uint32, len(data))
	if len(data) == 0 {
		return out
	}
	numWorkgroups := (len(data) + workgroupSize - 1) / workgroupSize
	totals := make([]uint32, numWorkgroups)

	// Shared per-workgroup scratch, allocated once up front so every
	// thread of a workgroup operates on the same backing arrays.
	scratchByWG := make([][]uint32, numWorkgroups)
	inclusiveByWG := make([][]uint32, numWorkgroups)
	for wg := 0; wg < numWorkgroups; wg++ {
		start := wg * workgroupSize
		end := start + workgroupSize
		if end > len(data) {
			end = len(data)
		}
		n := end - start
		scratch := make([]uint32, n)
		copy(scratch, data[start:end])
		scratchByWG[wg] = scratch
		inclusiveByWG[wg] = make([]uint32, n)
	}

	ex.Dispatch(numWorkgroups, workgroupSize, func(tc *ThreadContext) {
		wgID := int(tc.WorkgroupID.X)
		scratch := scratchByWG[wgID]
		n := len(scratch)
		if n == 0 {
			return
		}

		hillisSteeleExclusive(tc, m, scratch, inclusiveByWG[wgID])

		tc.WorkgroupBarrier()
		if tc.LocalID.X == 0 {
			start := wgID * workgroupSize
			copy(out[start:start+n], scratch)
			totals[wgID] = m.Combine(scratch[n-1], data[start+n-1])
		}
	})

	bases := make([]uint32, numWorkgroups)
	running := m.Identity
	for i, t := range totals {
		bases[i] = running
		running = m.Combine(running, t)
	}

	ex.Dispatch(numWorkgroups, workgroupSize, func(tc *ThreadContext) {
		wgID := int(tc.WorkgroupID.X)
		start := wgID * workgroupSize
		end := start + workgroupSize
		if end > len(data) {
			end = len(data)
		}
		i := start + int(tc.LocalID.X)
		if i < end {
			out[i] = m.Combine(bases[wgID], out[i])
		}
	})

	return out
}

// hillisSteeleExclusive turns scratch (one element per active thread, tid ==
// LocalID.X) into its exclusive prefix sum in place, using the classic
// doubling sweep: log2(n) steps, each thread adding the element offset
// steps behind it once offset <= tid. inclusive is workgroup-shared scratch
// space of the same length as scratch, owned entirely by this function.
func hillisSteeleExclusive(tc *ThreadContext, m Monoid[uint32], scratch, inclusive []uint32) {
	n := len(scratch)
	tid := int(tc.LocalID.X)

	if tid < n {
		inclusive[tid] = scratch[tid]
	}
	tc.WorkgroupBarrier()

	for offset := 1; offset < n; offset *= 2 {
		var v uint32
		has := tid < n && tid >= offset
		if has {
			v = m.Combine(inclusive[tid-offset], inclusive[tid])
		}
		tc.WorkgroupBarrier()
		if has {
			inclusive[tid] = v
		}
		tc.WorkgroupBarrier()
	}

	if tid < n {
		if tid == 0 {
			scratch[0] = m.Identity
		} else {
			scratch[tid] = inclusive[tid-1]
		}
	}
}

// ScanWithBase is Scan but every output element additionally has base
// folded in ahead of the workgroup's own contribution, for composing a scan
// across a result that is itself one chunk of a still larger sequence (the
// cross-workgroup rung of the raster-clip segmented reduction ladder).
func ScanWithBase(ex Executor, m Monoid[uint32], data []uint32, workgroupSize int, base uint32) []uint32 {
	out := Scan(ex, m, data, workgroupSize)
	for i := range out {
		out[i] = m.Combine(base, out[i])
	}
	return out
}
