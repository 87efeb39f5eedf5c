package tileraster

import (
	"github.com/gogpu/alpenglow/clipface"
	"github.com/gogpu/alpenglow/program"
)

// InitialFace is one tagged output region of the arrangement paired with
// the RenderProgram that colors it: the unit of work pass 1 clips against
// every tile it overlaps.
type InitialFace struct {
	Face     clipface.PolygonalFace
	Node     program.Node
	PathTest func(pathID int) bool
	Accuracy program.Accuracy
}

// CoarseRenderableFace is one (InitialFace, tile) pair that survived pass
// 1's clip: a non-empty region confined to the tile's bounds, carrying
// everything pass 2 needs without re-reading the originating InitialFace.
type CoarseRenderableFace struct {
	FaceIndex int
	TileX     int
	TileY     int
	Clipped   clipface.EdgedFace
	FullArea  bool // Clipped exactly covers the tile: pass 2 can skip per-bin clipping
	Node      program.Node
	PathTest  func(pathID int) bool
	Accuracy  program.Accuracy
}

// tileBounds returns the pixel-space rectangle of tile (tx,ty).
func tileBounds(tx, ty int) program.Rect {
	return program.Rect{
		MinX: float64(tx * TileWidth), MinY: float64(ty * TileHeight),
		MaxX: float64((tx + 1) * TileWidth), MaxY: float64((ty + 1) * TileHeight),
	}
}

// binBounds returns the pixel-space rectangle of bin (x,y) (a single pixel).
func binBounds(x, y int) program.Rect {
	return program.Rect{MinX: float64(x), MinY: float64(y), MaxX: float64(x + 1), MaxY: float64(y + 1)}
}
