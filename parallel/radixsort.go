// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

const radixBitsPerPass = 8
const radixBins = 1 << radixBitsPerPass

// RadixSortUint32 stably sorts data ascending using repeated
// histogram->scan->scatter passes, one per 8-bit digit, the classic
// data-parallel sort built directly out of Histogram and Scan.
func RadixSortUint32(ex Executor, data []uint32, workgroupSize int) []uint32 {
	cur := make([]uint32, len(data))
	copy(cur, data)

	sumMonoid := Monoid[uint32]{Identity: 0, Combine: func(a, b uint32) uint32 { return a + b }}

	for shift := uint(0); shift < 32; shift += radixBitsPerPass {
		cur = radixSortPass(ex, sumMonoid, cur, workgroupSize, shift)
	}
	return cur
}

// radixSortPass partitions data by the 8-bit digit at the given shift,
// stably, in three stages: a histogram of digit counts, an exclusive scan
// of those counts into per-digit base offsets, and a scatter of each
// element to offset[digit]++. The histogram and scan stages are genuinely
// data-parallel (Histogram/Scan); the scatter is expressed sequentially
// here because a correct parallel scatter additionally needs a
// per-workgroup local-rank step (each thread's position within its own
// digit group) that the two primitives above don't yet expose — an
// intra-workgroup exclusive scan over a boolean "is this digit" mask per
// bin, matching what GPU radix sort implementations compute in shared
// memory before the global scatter.
func radixSortPass(ex Executor, m Monoid[uint32], data []uint32, workgroupSize int, shift uint) []uint32 {
	n := len(data)
	if n == 0 {
		return data
	}
	digits := make([]uint32, n)
	for i, v := range data {
		digits[i] = (v >> shift) & (radixBins - 1)
	}

	_, globalCounts := Histogram(ex, digits, radixBins, workgroupSize)
	globalOffsets := Scan(ex, m, globalCounts, workgroupSize)

	out := make([]uint32, n)
	cursor := make([]uint32, radixBins)
	copy(cursor, globalOffsets)
	for i, v := range data {
		d := digits[i]
		out[cursor[d]] = v
		cursor[d]++
	}
	return out
}
