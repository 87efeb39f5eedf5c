package rasterclip

import "math"

// chunkIndexMask selects the 30-bit chunkIndex field packed into
// RasterEdge's first word; isFirstEdge and isLastEdge each take the
// remaining top bit. §6.3 flags the alternative 0x2fffffff mask seen in one
// source code path as almost certainly a typo for the natural 30-bit mask
// used here.
const chunkIndexMask = 0x3fffffff

// RasterChunk is the per-face header §6.1 names: which RenderProgram
// colors the chunk, the contiguous edge range describing its boundary, and
// the bookkeeping the fine pass needs to skip re-deriving cheap facts.
type RasterChunk struct {
	RenderProgramIndex int
	EdgesOffset         uint32
	NumEdges            uint32
	NeedsFace           bool
	IsFullArea          bool
	Area                float64
	Bounds              [4]float64 // minX, minY, maxX, maxY
	MinXCount           uint32
	MinYCount           uint32
	MaxXCount           uint32
	MaxYCount           uint32
}

// RasterEdge is one boundary segment of a chunk's clipped polygon, in its
// packed 5xu32 wire form: word0 bits 0-29 are chunkIndex, bit 30 is
// isFirstEdge, bit 31 is isLastEdge; words 1-4 are start.x, start.y, end.x,
// end.y as f32 bit patterns.
type RasterEdge struct {
	Words [5]uint32
}

// PackRasterEdge builds the packed wire form from its logical fields.
func PackRasterEdge(chunkIndex uint32, isFirst, isLast bool, startX, startY, endX, endY float32) RasterEdge {
	w0 := chunkIndex & chunkIndexMask
	if isFirst {
		w0 |= 1 << 30
	}
	if isLast {
		w0 |= 1 << 31
	}
	return RasterEdge{Words: [5]uint32{
		w0,
		math.Float32bits(startX),
		math.Float32bits(startY),
		math.Float32bits(endX),
		math.Float32bits(endY),
	}}
}

// ChunkIndex unpacks the 30-bit chunk index.
func (e RasterEdge) ChunkIndex() uint32 { return e.Words[0] & chunkIndexMask }

// IsFirstEdge unpacks bit 30.
func (e RasterEdge) IsFirstEdge() bool { return e.Words[0]&(1<<30) != 0 }

// IsLastEdge unpacks bit 31.
func (e RasterEdge) IsLastEdge() bool { return e.Words[0]&(1<<31) != 0 }

// Start unpacks the edge's start point.
func (e RasterEdge) Start() (x, y float32) {
	return math.Float32frombits(e.Words[1]), math.Float32frombits(e.Words[2])
}

// End unpacks the edge's end point.
func (e RasterEdge) End() (x, y float32) {
	return math.Float32frombits(e.Words[3]), math.Float32frombits(e.Words[4])
}

// RasterCompleteEdge is a RasterEdge that needs no further reduction: it is
// ready to emit straight into its chunk's final edge list.
type RasterCompleteEdge = RasterEdge

// RasterEdgeClip is the up-to-three-sub-edge result of clipping one input
// edge against a grid cell: 0, 1, 2, or 3 non-degenerate pieces, the first
// of which is tagged IsFirstEdge and the source chunk's final piece tagged
// IsLastEdge so chunk boundaries survive the scatter.
type RasterEdgeClip struct {
	ChunkIndex  uint32
	IsFirstEdge bool
	IsLastEdge  bool
	Reducible   bool
	Edges       [3]RasterEdge
	NumEdges    int
}

// RasterChunkReduceData is one chunk-interval's partial reduction: the
// minimum and maximum values seen on one axis, tagged with the chunk index
// they belong to so the segmented combine below only merges matching
// intervals.
type RasterChunkReduceData struct {
	ChunkIndex uint32
	Min, Max   float64
	Valid      bool
}

func combineReduceData(a, b RasterChunkReduceData) RasterChunkReduceData {
	if !a.Valid {
		return b
	}
	if !b.Valid {
		return a
	}
	if a.ChunkIndex != b.ChunkIndex {
		// Segmented reduction: intervals from different chunks never merge.
		return b
	}
	return RasterChunkReduceData{ChunkIndex: a.ChunkIndex, Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max), Valid: true}
}

// RasterChunkReduceQuad tracks, for a range of clip intervals, the reduced
// min/max value of the maximal same-chunk run starting at the range's left
// end (LeftMin/LeftMax) and the maximal same-chunk run ending at its right
// end (RightMin/RightMax). Single additionally records whether the whole
// range belongs to one chunk, so Combine can tell an open run that may
// still extend across a merge from one that is already capped inside a or
// b — the standard flag-based segmented-scan technique, applied to both
// the min and the max counters at once.
type RasterChunkReduceQuad struct {
	LeftMin, LeftMax, RightMin, RightMax RasterChunkReduceData
	Single                               bool
}

// FromSingle builds a quad from a single clip interval's reduce data: left
// and right collapse to the same value, and the range trivially belongs to
// one chunk.
func FromSingle(d RasterChunkReduceData) RasterChunkReduceQuad {
	return RasterChunkReduceQuad{LeftMin: d, LeftMax: d, RightMin: d, RightMax: d, Single: true}
}

// Combine merges a (preceding) with b (following) in interval order. The
// touching boundary (a's rightmost run against b's leftmost run) is folded
// together only when their chunk indices agree; whether that merge
// propagates out to the result's own LeftMin/LeftMax or RightMin/RightMax
// depends on whether a (respectively b) was itself a single uniform chunk,
// i.e. whether its boundary run could still be open.
func (a RasterChunkReduceQuad) Combine(b RasterChunkReduceQuad) RasterChunkReduceQuad {
	boundaryMatches := a.RightMin.Valid && b.LeftMin.Valid && a.RightMin.ChunkIndex == b.LeftMin.ChunkIndex

	leftMin, leftMax := a.LeftMin, a.LeftMax
	if a.Single && boundaryMatches {
		leftMin = combineReduceData(a.LeftMin, b.LeftMin)
		leftMax = combineReduceData(a.LeftMax, b.LeftMax)
	}
	rightMin, rightMax := b.RightMin, b.RightMax
	if b.Single && boundaryMatches {
		rightMin = combineReduceData(a.RightMin, b.RightMin)
		rightMax = combineReduceData(a.RightMax, b.RightMax)
	}

	if a.Single && b.Single && boundaryMatches {
		return RasterChunkReduceQuad{LeftMin: leftMin, LeftMax: leftMax, RightMin: leftMin, RightMax: leftMax, Single: true}
	}
	return RasterChunkReduceQuad{LeftMin: leftMin, LeftMax: leftMax, RightMin: rightMin, RightMax: rightMax, Single: false}
}
