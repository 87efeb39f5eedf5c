package tileraster

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/alpenglow/clipface"
	"github.com/gogpu/alpenglow/parallel"
)

// CoarsePass clips every InitialFace against every tile of a
// widthPx x heightPx canvas, dispatched one workgroup per tile via exec so
// independent tiles can run concurrently under a GoroutineExecutor (or in
// randomized interleaving under a CooperativeExecutor, for tests). Returns
// every surviving (face, tile) pair; order is stable by tile then by the
// faces slice's own order within a tile, since each tile's goroutine
// appends to its own local slice before a final sequential merge.
func CoarsePass(faces []InitialFace, widthPx, heightPx int, exec parallel.Executor) []CoarseRenderableFace {
	widthInTiles := (widthPx + TileWidth - 1) / TileWidth
	heightInTiles := (heightPx + TileHeight - 1) / TileHeight
	numTiles := widthInTiles * heightInTiles
	if numTiles == 0 {
		return nil
	}

	perTile := make([][]CoarseRenderableFace, numTiles)
	var nextFaceIndex atomic.Int64
	var mu sync.Mutex // guards perTile[i] append only within a single tile's own goroutine normally, kept for safety under a cooperative executor's interleavings

	exec.Dispatch(numTiles, 1, func(tc *parallel.ThreadContext) {
		tileIdx := int(tc.GlobalID.X)
		if tileIdx >= numTiles {
			return
		}
		tx, ty := tileIdx%widthInTiles, tileIdx/widthInTiles
		bounds := tileBounds(tx, ty)

		var out []CoarseRenderableFace
		for _, inf := range faces {
			clipped := clipface.ClipToBounds(inf.Face, bounds)
			if clipped.Area() == 0 {
				continue
			}
			fi := int(nextFaceIndex.Add(1) - 1)
			out = append(out, CoarseRenderableFace{
				FaceIndex: fi,
				TileX:     tx,
				TileY:     ty,
				Clipped:   clipped,
				FullArea:  clipped.IsFullArea(bounds),
				Node:      inf.Node,
				PathTest:  inf.PathTest,
				Accuracy:  inf.Accuracy,
			})
		}

		mu.Lock()
		perTile[tileIdx] = out
		mu.Unlock()
	})

	var all []CoarseRenderableFace
	for _, tileFaces := range perTile {
		all = append(all, tileFaces...)
	}
	return all
}
