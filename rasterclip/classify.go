package rasterclip

import "github.com/gogpu/alpenglow/parallel"

// uint32SumMonoid is the add-under-uint32 monoid Scan needs for computing
// scatter offsets from 0/1 classification flags.
var uint32SumMonoid = parallel.Monoid[uint32]{
	Identity: 0,
	Combine:  func(a, b uint32) uint32 { return a + b },
}

// ClassifyScatter splits a stream of RasterEdgeClip values into two
// contiguous output slices — reducible (edges still needing a further
// clip/reduce pass) and complete (edges ready to emit as-is) — using an
// exclusive prefix sum over each classification flag to compute every
// element's destination slot, rather than a sequential append. workgroupSize
// is forwarded to parallel.Scan.
//
// The relative order of elements within each output category is preserved
// (a stable partition), matching how the coarse pass's chunk boundaries
// (IsFirstEdge/IsLastEdge) must stay aligned with their originating chunk.
func ClassifyScatter(ex parallel.Executor, clips []RasterEdgeClip, workgroupSize int) (reducible, complete []RasterEdgeClip) {
	n := len(clips)
	if n == 0 {
		return nil, nil
	}

	reducibleFlags := make([]uint32, n)
	completeFlags := make([]uint32, n)
	for i, c := range clips {
		if c.Reducible {
			reducibleFlags[i] = 1
		} else {
			completeFlags[i] = 1
		}
	}

	reducibleOffsets := parallel.Scan(ex, uint32SumMonoid, reducibleFlags, workgroupSize)
	completeOffsets := parallel.Scan(ex, uint32SumMonoid, completeFlags, workgroupSize)

	numReducible := 0
	numComplete := 0
	for i := 0; i < n; i++ {
		if clips[i].Reducible {
			numReducible = int(reducibleOffsets[i]) + 1
		} else {
			numComplete = int(completeOffsets[i]) + 1
		}
	}

	reducible = make([]RasterEdgeClip, numReducible)
	complete = make([]RasterEdgeClip, numComplete)

	ex.Dispatch(1, n, func(tc *parallel.ThreadContext) {
		i := int(tc.LocalID.X)
		if i >= n {
			return
		}
		c := clips[i]
		if c.Reducible {
			reducible[reducibleOffsets[i]] = c
		} else {
			complete[completeOffsets[i]] = c
		}
	})

	return reducible, complete
}

// ClassifyAxisExtent reduces a chunk-tagged stream of per-edge axis values
// (e.g. every edge's min/max x, or min/max y) into one RasterChunkReduceQuad
// per input element via FromSingle, then folds the whole sequence down to a
// single segmented result through repeated Combine — equivalent to a
// segmented-scan reduce with no intermediate array materialized beyond the
// running accumulator, since Combine is associative and the chunk-index
// partitioning keeps non-matching runs from bleeding into each other.
func ClassifyAxisExtent(chunkIndices []uint32, values []float64) RasterChunkReduceQuad {
	if len(chunkIndices) == 0 {
		return RasterChunkReduceQuad{}
	}
	acc := FromSingle(RasterChunkReduceData{ChunkIndex: chunkIndices[0], Min: values[0], Max: values[0], Valid: true})
	for i := 1; i < len(chunkIndices); i++ {
		next := FromSingle(RasterChunkReduceData{ChunkIndex: chunkIndices[i], Min: values[i], Max: values[i], Valid: true})
		acc = acc.Combine(next)
	}
	return acc
}
