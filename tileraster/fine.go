package tileraster

import (
	"github.com/gogpu/alpenglow/clipface"
	"github.com/gogpu/alpenglow/outraster"
	"github.com/gogpu/alpenglow/parallel"
	"github.com/gogpu/alpenglow/program"
)

// FinePass walks every surviving CoarseRenderableFace bin-by-bin (1x1
// pixel), dispatched one workgroup per tile, and either writes a
// fully-covered opaque bin directly to acc or evaluates the face's
// RenderProgram analytically over the bin's clipped sub-polygon and
// accumulates a premultiplied, area-weighted partial contribution.
func FinePass(renderable []CoarseRenderableFace, acc *outraster.Accumulator, exec parallel.Executor) {
	byTile := make(map[[2]int][]CoarseRenderableFace)
	for _, rf := range renderable {
		key := [2]int{rf.TileX, rf.TileY}
		byTile[key] = append(byTile[key], rf)
	}
	keys := make([][2]int, 0, len(byTile))
	for k := range byTile {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return
	}

	exec.Dispatch(len(keys), 1, func(tc *parallel.ThreadContext) {
		i := int(tc.GlobalID.X)
		if i >= len(keys) {
			return
		}
		key := keys[i]
		tx, ty := key[0], key[1]
		for _, rf := range byTile[key] {
			rasterizeFaceBins(rf, tx, ty, acc)
		}
	})
}

func rasterizeFaceBins(rf CoarseRenderableFace, tx, ty int, acc *outraster.Accumulator) {
	x0, y0 := tx*TileWidth, ty*TileHeight
	for by := 0; by < TileHeight; by++ {
		for bx := 0; bx < TileWidth; bx++ {
			x, y := x0+bx, y0+by
			if x >= acc.Width() || y >= acc.Height() {
				continue
			}
			bounds := binBounds(x, y)
			binFace := clipface.ClipToBounds(rf.Clipped, bounds)
			area := binFace.Area()
			if area == 0 {
				continue
			}
			binArea := (bounds.MaxX - bounds.MinX) * (bounds.MaxY - bounds.MinY)
			weight := area / binArea

			ctx := &program.EvalContext{Bounds: bounds, Accuracy: rf.Accuracy, PathTest: rf.PathTest}
			if rf.Node.NeedsFace() {
				ctx.Face, ctx.HasFace = binFace, true
			}
			if rf.Node.NeedsArea() {
				ctx.Area, ctx.HasArea = area, true
			}
			if rf.Node.NeedsCentroid() {
				ctx.Centroid, ctx.HasCentroid = binFace.Centroid(), true
			}
			color := rf.Node.Evaluate(ctx)

			if weight >= 1-1e-9 && color.A >= 1-1e-9 {
				acc.AddClientFullPixel(color, x, y)
				continue
			}
			premult := program.Vec4{
				R: color.R * color.A * weight,
				G: color.G * color.A * weight,
				B: color.B * color.A * weight,
				A: color.A * weight,
			}
			acc.AddClientPartialPixel(premult, x, y)
		}
	}
}
