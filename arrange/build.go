// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arrange

import (
	"log/slog"
	"sort"
)

// Options configures Build.
type Options struct {
	// GridBits sets the target integer precision of the grid snap (see
	// GridSnapper); 20 matches the default used throughout the pipeline.
	GridBits uint
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.GridBits == 0 {
		o.GridBits = 20
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Build runs the full arrangement pipeline: grid snap, spatial sort,
// exact intersection, split, global sort+dedup, boundary tracing, hole
// nesting, and winding BFS.
func Build(paths []InputPath, opts Options) *Arrangement {
	opts = opts.withDefaults()
	snapper := NewGridSnapper(paths, opts.GridBits)

	var integerEdges []*integerEdge
	for _, p := range paths {
		snapped := snapper.SnapPath(p)
		n := len(snapped)
		if n < 2 {
			continue
		}
		ccw := signedAreaSign(snapped)
		for i := 0; i < n; i++ {
			p0 := snapped[i]
			p1 := snapped[(i+1)%n]
			if p0.Equal(p1) {
				continue
			}
			integerEdges = append(integerEdges, &integerEdge{p0: p0, p1: p1, pathID: p.PathID, ccwSign: ccw})
		}
	}

	spatialSort(integerEdges)
	findAllIntersections(integerEdges)

	halfEdges := splitEdges(integerEdges)
	halfEdges = mergeDuplicates(halfEdges)

	opts.Logger.Debug("arrangement built half-edges", "count", len(halfEdges))

	linkNextPointers(halfEdges)
	boundaries := traceBoundaries(halfEdges)

	arr := &Arrangement{Edges: halfEdges, Boundaries: boundaries}
	faces, boundaryFace := buildFaces(arr)
	arr.Faces = faces
	arr.BoundaryFace = boundaryFace

	return arr
}

// signedAreaSign returns +1 if poly winds counter-clockwise, -1 if
// clockwise, using the cached float projections (exact sign isn't needed
// here, only which of the two the path is).
func signedAreaSign[P pointLike](poly []P) int {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		x0, y0 := poly[i].ToFloat64()
		x1, y1 := poly[(i+1)%n].ToFloat64()
		sum += x0*y1 - x1*y0
	}
	if sum < 0 {
		return -1
	}
	return 1
}

// pointLike is satisfied by bignum.Vec2's ToFloat64 method; declared
// locally so signedAreaSign doesn't need to import bignum just to name the
// parameter type precisely.
type pointLike interface {
	ToFloat64() (float64, float64)
}

// spatialSort orders edges by the Hilbert-curve index of their bounding-box
// center, improving cache/bounds-tree locality for the intersection pass.
func spatialSort(edges []*integerEdge) {
	if len(edges) == 0 {
		return
	}
	minX, minY := edges[0].p0.X.ToFloat(), edges[0].p0.Y.ToFloat()
	maxX, maxY := minX, minY
	for _, e := range edges {
		for _, v := range []struct{ x, y float64 }{
			{e.p0.X.ToFloat(), e.p0.Y.ToFloat()},
			{e.p1.X.ToFloat(), e.p1.Y.ToFloat()},
		} {
			if v.x < minX {
				minX = v.x
			}
			if v.x > maxX {
				maxX = v.x
			}
			if v.y < minY {
				minY = v.y
			}
			if v.y > maxY {
				maxY = v.y
			}
		}
	}
	spanX := int64(maxX-minX) + 1
	spanY := int64(maxY-minY) + 1

	keys := make([]uint64, len(edges))
	for i, e := range edges {
		cx := (e.p0.X.ToFloat() + e.p1.X.ToFloat()) / 2
		cy := (e.p0.Y.ToFloat() + e.p1.Y.ToFloat()) / 2
		hx := clampToHilbertGrid(int64(cx-minX), spanX)
		hy := clampToHilbertGrid(int64(cy-minY), spanY)
		keys[i] = hilbertIndex(hx, hy)
	}

	sort.Sort(&hilbertSortable{edges: edges, keys: keys})
}

type hilbertSortable struct {
	edges []*integerEdge
	keys  []uint64
}

func (h *hilbertSortable) Len() int { return len(h.edges) }
func (h *hilbertSortable) Less(i, j int) bool {
	return h.keys[i] < h.keys[j]
}
func (h *hilbertSortable) Swap(i, j int) {
	h.edges[i], h.edges[j] = h.edges[j], h.edges[i]
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
}
