// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "sync/atomic"

// Histogram buckets data into numBins counts, computing each workgroup's
// local histogram in shared memory first and then folding the per-workgroup
// histograms into a single total. RadixSortUint32 uses it for its binning
// pass.
func Histogram(ex Executor, data []uint32, numBins, workgroupSize int) (perWorkgroup [][]uint32, total []uint32) {
	total = make([]uint32, numBins)
	if len(data) == 0 {
		return nil, total
	}
	numWorkgroups := (len(data) + workgroupSize - 1) / workgroupSize

	bins := make([][]atomic.Uint32, numWorkgroups)
	for i := range bins {
		bins[i] = make([]atomic.Uint32, numBins)
	}

	ex.Dispatch(numWorkgroups, workgroupSize, func(tc *ThreadContext) {
		wgID := int(tc.WorkgroupID.X)
		i := wgID*workgroupSize + int(tc.LocalID.X)
		if i >= len(data) {
			return
		}
		bin := data[i]
		if int(bin) >= numBins {
			return
		}
		bins[wgID][bin].Add(1)
	})

	perWorkgroup = make([][]uint32, numWorkgroups)
	for wg := range bins {
		row := make([]uint32, numBins)
		for bin := range row {
			row[bin] = bins[wg][bin].Load()
			total[bin] += row[bin]
		}
		perWorkgroup[wg] = row
	}
	return perWorkgroup, total
}
