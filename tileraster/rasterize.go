package tileraster

import (
	"github.com/gogpu/alpenglow/outraster"
	"github.com/gogpu/alpenglow/parallel"
)

// Rasterize runs the full two-pass pipeline (CoarsePass then FinePass) over
// faces into a fresh widthPx x heightPx Accumulator resolved to colorSpace,
// and returns it already Resolve()d.
func Rasterize(faces []InitialFace, widthPx, heightPx int, exec parallel.Executor, colorSpace outraster.ColorSpace) *outraster.Accumulator {
	acc := outraster.NewAccumulator(widthPx, heightPx, colorSpace)
	renderable := CoarsePass(faces, widthPx, heightPx, exec)
	FinePass(renderable, acc, exec)
	acc.Resolve()
	return acc
}
