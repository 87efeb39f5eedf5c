package rasterclip

// PatchChunks flattens a complete (non-reducible) RasterEdgeClip stream into
// the final packed RasterEdge array, patches each chunk's EdgesOffset/
// NumEdges to the contiguous range it actually landed in, and emits a
// chunkIndices table recording, per chunk, the global edge index of its
// first and last edge (the values a later consumer needs to walk exactly
// one chunk's boundary without rescanning the whole edge array).
//
// clips must already be grouped by ChunkIndex in ascending order, which
// ClassifyScatter's stable partition guarantees as long as the input to
// classification was itself chunk-ordered (true of CoarsePass's output).
func PatchChunks(chunks []RasterChunk, clips []RasterEdgeClip) ([]RasterChunk, []RasterEdge, []uint32) {
	patched := make([]RasterChunk, len(chunks))
	copy(patched, chunks)

	var edges []RasterEdge
	chunkIndices := make([]uint32, 2*len(chunks))

	offsetByChunk := make(map[uint32]uint32)
	countByChunk := make(map[uint32]uint32)
	lastEdgeByChunk := make(map[uint32]uint32)

	for _, c := range clips {
		start := uint32(len(edges))
		if _, seen := offsetByChunk[c.ChunkIndex]; !seen {
			offsetByChunk[c.ChunkIndex] = start
		}
		for j := 0; j < c.NumEdges; j++ {
			isFirst := c.IsFirstEdge && j == 0
			isLast := c.IsLastEdge && j == c.NumEdges-1
			sx, sy := c.Edges[j].Start()
			ex, ey := c.Edges[j].End()
			edges = append(edges, PackRasterEdge(c.ChunkIndex, isFirst, isLast, sx, sy, ex, ey))
			countByChunk[c.ChunkIndex]++
			lastEdgeByChunk[c.ChunkIndex] = uint32(len(edges) - 1)
		}
	}

	for i := range patched {
		ci := uint32(i)
		off, count := offsetByChunk[ci], countByChunk[ci]
		patched[i].EdgesOffset = off
		patched[i].NumEdges = count
		chunkIndices[2*i] = off
		if count > 0 {
			chunkIndices[2*i+1] = lastEdgeByChunk[ci]
		} else {
			chunkIndices[2*i+1] = off
		}
	}

	return patched, edges, chunkIndices
}
