// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "sort"

// Less reports whether a sorts before b, parameterizing MergeSimple and
// MergePath the same way sort.Interface parameterizes sort.Sort.
type Less[T any] func(a, b T) bool

// MergeSimple merges two already-sorted slices with a single sequential
// two-pointer walk. It exists as the baseline MergePath is checked against
// and as the within-tile merge MergePath itself delegates to once each
// thread's partition boundaries are known.
func MergeSimple[T any](a, b []T, less Less[T]) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// MergePath merges two sorted slices in parallel using the diagonal
// partitioning scheme (Green, McColl & Manzini): the calling goroutine
// binary-searches one diagonal of the conceptual merge-path grid per thread
// (O(log(len(a)+len(b))) comparisons each) to find non-overlapping (a,b)
// sub-ranges, then up to workgroupSize dispatched threads each merge their
// own sub-range sequentially with MergeSimple, O(total/numThreads) work per
// thread.
func MergePath[T any](ex Executor, a, b []T, less Less[T], workgroupSize int) []T {
	total := len(a) + len(b)
	out := make([]T, total)
	if total == 0 {
		return out
	}
	numThreads := workgroupSize
	if numThreads > total {
		numThreads = total
	}
	if numThreads == 0 {
		numThreads = 1
	}
	numWorkgroups := (numThreads + workgroupSize - 1) / workgroupSize

	// diagonal i covers output range [i*chunk, (i+1)*chunk).
	chunk := (total + numThreads - 1) / numThreads
	starts := make([][2]int, numThreads+1)
	for t := 0; t <= numThreads; t++ {
		d := t * chunk
		if d > total {
			d = total
		}
		starts[t] = mergePathPartition(a, b, less, d)
	}

	ex.Dispatch(numWorkgroups, workgroupSize, func(tc *ThreadContext) {
		t := int(tc.GlobalID.X)
		if t >= numThreads {
			return
		}
		aStart, bStart := starts[t][0], starts[t][1]
		aEnd, bEnd := starts[t+1][0], starts[t+1][1]
		outStart := aStart + bStart

		merged := MergeSimple(a[aStart:aEnd], b[bStart:bEnd], less)
		copy(out[outStart:outStart+len(merged)], merged)
	})

	return out
}

// mergePathPartition finds the (i, j) on the merge path with i+j == diag
// such that every a[:i] and b[:j] element would sort at or before position
// diag in the merged output, via binary search over the diagonal per
// Merrill & Garland's MergePath construction.
func mergePathPartition[T any](a, b []T, less Less[T], diag int) [2]int {
	lo := 0
	if diag-len(b) > lo {
		lo = diag - len(b)
	}
	hi := diag
	if len(a) < hi {
		hi = len(a)
	}

	i := sort.Search(hi-lo+1, func(k int) bool {
		i := lo + k
		j := diag - i
		if j == 0 || i == len(a) {
			return true
		}
		return less(b[j-1], a[i])
	}) + lo

	return [2]int{i, diag - i}
}
