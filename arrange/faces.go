// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arrange

import (
	"sort"

	"github.com/gogpu/alpenglow/bignum"
)

// linkNextPointers establishes, for every half-edge, the next half-edge
// continuing around the same face: at each vertex the outgoing half-edges
// are sorted into cyclic (angular) order, and an edge's next is the
// immediate CCW predecessor of its reverse in that order — the standard
// planar-subdivision construction that keeps a bounded region to the left
// of every directed edge along its traced boundary.
func linkNextPointers(edges []RationalHalfEdge) {
	outgoing := make(map[bignum.Vec2][]int)
	for i := range edges {
		outgoing[edges[i].P0] = append(outgoing[edges[i].P0], i)
	}
	for v, idxs := range outgoing {
		sort.Slice(idxs, func(i, j int) bool {
			return edgeSortKey(&edges[idxs[i]]).less(edgeSortKey(&edges[idxs[j]]))
		})
		outgoing[v] = idxs
	}

	for i := range edges {
		rev := edges[i].ReverseIdx
		v := edges[i].P1 // vertex the reverse edge starts from
		ring := outgoing[v]
		pos := -1
		for k, idx := range ring {
			if idx == rev {
				pos = k
				break
			}
		}
		if pos < 0 {
			continue
		}
		prev := ring[(pos-1+len(ring))%len(ring)]
		edges[i].NextIdx = prev
	}
}

// traceBoundaries walks every unvisited half-edge's next-chain to recover
// closed boundary loops, classifying each as outer (positive signed area)
// or a hole (negative).
func traceBoundaries(edges []RationalHalfEdge) []Boundary {
	var boundaries []Boundary
	for start := range edges {
		if edges[start].Visited || edges[start].NextIdx < 0 {
			continue
		}
		var loop []int
		cur := start
		for {
			if edges[cur].Visited {
				break
			}
			edges[cur].Visited = true
			loop = append(loop, cur)
			cur = edges[cur].NextIdx
			if cur == start {
				break
			}
		}
		if len(loop) == 0 {
			continue
		}
		area := shoelaceArea(edges, loop)
		bIdx := len(boundaries)
		boundaries = append(boundaries, Boundary{EdgeIdxs: loop, Area: area, Outer: area > 0})
		for _, idx := range loop {
			edges[idx].Boundary = bIdx
		}
	}
	return boundaries
}

func shoelaceArea(edges []RationalHalfEdge, loop []int) float64 {
	var sum float64
	for _, idx := range loop {
		e := &edges[idx]
		x0, y0 := e.p0f.X, e.p0f.Y
		x1, y1 := e.p1f.X, e.p1f.Y
		sum += x0*y1 - x1*y0
	}
	return sum / 2
}

// buildFaces nests hole boundaries inside their innermost enclosing outer
// boundary, computes the BFS winding assignment starting from the unbounded
// face, and returns both the faces and a boundary->face index for callers
// that need to look up which face owns a given boundary.
func buildFaces(arr *Arrangement) (faces []Face, boundaryFace []int) {
	n := len(arr.Boundaries)
	boundaryFace = make([]int, n)
	for i := range boundaryFace {
		boundaryFace[i] = -1
	}

	var outers, holes []int
	for i, b := range arr.Boundaries {
		if b.Outer {
			outers = append(outers, i)
		} else {
			holes = append(holes, i)
		}
	}

	faces = append(faces, Face{Outer: -1, Winding: WindingMap{}}) // unbounded face, index 0
	outerFaceIdx := make(map[int]int, len(outers))
	for _, o := range outers {
		faces = append(faces, Face{Outer: o})
		faceIdx := len(faces) - 1
		outerFaceIdx[o] = faceIdx
		boundaryFace[o] = faceIdx
	}

	for _, h := range holes {
		innermost := -1
		for _, o := range outers {
			if !boundaryContains(arr.Edges, arr.Boundaries[o], arr.Boundaries[h]) {
				continue
			}
			if innermost < 0 || boundaryContains(arr.Edges, arr.Boundaries[innermost], arr.Boundaries[o]) {
				innermost = o
			}
		}
		if innermost < 0 {
			// Hole not contained by any outer boundary: attach to the
			// unbounded face, mirroring how a top-level outer's own hole
			// list works for the outermost region.
			faces[0].Holes = append(faces[0].Holes, h)
			boundaryFace[h] = 0
			continue
		}
		fi := outerFaceIdx[innermost]
		faces[fi].Holes = append(faces[fi].Holes, h)
		boundaryFace[h] = fi
	}

	for _, o := range outers {
		enclosedByAny := false
		for _, other := range outers {
			if other == o {
				continue
			}
			if boundaryContains(arr.Edges, arr.Boundaries[other], arr.Boundaries[o]) {
				enclosedByAny = true
				break
			}
		}
		if !enclosedByAny {
			faces[0].Holes = append(faces[0].Holes, o)
		}
	}

	assignWinding(arr.Edges, arr.Boundaries, faces, boundaryFace)
	return faces, boundaryFace
}

// boundaryContains reports whether every vertex of hole lies inside outer,
// tested via a winding-number point test at the hole's lexicographically
// minimal vertex.
func boundaryContains(edges []RationalHalfEdge, outer, hole Boundary) bool {
	if len(hole.EdgeIdxs) == 0 || len(outer.EdgeIdxs) == 0 {
		return false
	}
	minIdx := hole.EdgeIdxs[0]
	for _, idx := range hole.EdgeIdxs {
		if edges[idx].P0.X.CompareCrossMul(edges[minIdx].P0.X) < 0 ||
			(edges[idx].P0.X.Equal(edges[minIdx].P0.X) && edges[idx].P0.Y.CompareCrossMul(edges[minIdx].P0.Y) < 0) {
			minIdx = idx
		}
	}
	p := edges[minIdx].P0
	return windingNumberAt(edges, outer, p) != 0
}

// windingNumberAt computes the winding number of boundary b around point p
// using the standard signed-crossing-count algorithm, exact in rationals.
func windingNumberAt(edges []RationalHalfEdge, b Boundary, p bignum.Vec2) int {
	wn := 0
	for _, idx := range b.EdgeIdxs {
		e := &edges[idx]
		if e.P0.Y.CompareCrossMul(p.Y) <= 0 {
			if e.P1.Y.CompareCrossMul(p.Y) > 0 && isLeft(e.P0, e.P1, p) > 0 {
				wn++
			}
		} else {
			if e.P1.Y.CompareCrossMul(p.Y) <= 0 && isLeft(e.P0, e.P1, p) < 0 {
				wn--
			}
		}
	}
	return wn
}

// isLeft returns >0 if p is left of the line p0->p1, <0 if right, 0 if on it.
func isLeft(p0, p1, p bignum.Vec2) int {
	d1 := bignum.Vec2{X: p1.X.Sub(p0.X), Y: p1.Y.Sub(p0.Y)}
	d2 := bignum.Vec2{X: p.X.Sub(p0.X), Y: p.Y.Sub(p0.Y)}
	return d1.Cross(d2).Sign()
}

// assignWinding runs the BFS from the unbounded face (winding zero on
// every path), flipping each crossed edge's own winding contribution as it
// propagates outward across the arrangement.
func assignWinding(edges []RationalHalfEdge, boundaries []Boundary, faces []Face, boundaryFace []int) {
	visited := make([]bool, len(faces))
	queue := []int{0}
	visited[0] = true

	for len(queue) > 0 {
		fi := queue[0]
		queue = queue[1:]
		f := &faces[fi]

		boundaryIdxs := append([]int{}, f.Holes...)
		if f.Outer >= 0 {
			boundaryIdxs = append(boundaryIdxs, f.Outer)
		}
		// The unbounded face's own "outer" is conceptually everything
		// outside every top-level boundary; its Holes list already
		// records the boundaries bordering it.

		for _, bIdx := range boundaryIdxs {
			for _, eIdx := range boundaries[bIdx].EdgeIdxs {
				rev := edges[eIdx].ReverseIdx
				otherB := edges[rev].Boundary
				if otherB < 0 {
					continue
				}
				otherF := boundaryFace[otherB]
				if otherF < 0 || visited[otherF] {
					continue
				}
				faces[otherF].Winding = f.Winding.Add(edges[eIdx].Winding.Negate())
				visited[otherF] = true
				queue = append(queue, otherF)
			}
		}
	}
}

// FaceTag is an arbitrary label a GetFaceData callback attaches to a Face
// based on its WindingMap, e.g. "union", "intersection", "aOnly".
type FaceTag any

// GetFaceData maps a face's winding numbers to an application-defined tag.
type GetFaceData func(w WindingMap) FaceTag

// IsFaceDataCompatible reports whether two adjacent faces' tags should be
// merged into one output region.
type IsFaceDataCompatible func(a, b FaceTag) bool

// TaggedFace is one merged, tagged output region: a set of faces whose tags
// were found compatible, flattened to the (possibly several, if the merge
// produced disjoint components) outer boundaries plus their holes.
type TaggedFace struct {
	Tag    FaceTag
	Outers []Boundary
	Holes  []Boundary
}

// TagFaces computes a tag per face via getTag, then greedily merges
// adjacent faces (faces sharing a boundary edge) whose tags compatible
// reports compatible, returning one TaggedFace per merged group. Boolean
// operations (union/intersection/difference) are thin wrappers that supply
// particular getTag/compatible functions over the winding maps of the two
// input shapes.
func TagFaces(arr *Arrangement, boundaryFace []int, getTag GetFaceData, compatible IsFaceDataCompatible) []TaggedFace {
	n := len(arr.Faces)
	tags := make([]FaceTag, n)
	for i, f := range arr.Faces {
		tags[i] = getTag(f.Winding)
	}

	group := make([]int, n)
	for i := range group {
		group[i] = i
	}
	find := func(x int) int {
		for group[x] != x {
			x = group[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			group[ra] = rb
		}
	}

	for i, f := range arr.Faces {
		boundaryIdxs := append([]int{}, f.Holes...)
		if f.Outer >= 0 {
			boundaryIdxs = append(boundaryIdxs, f.Outer)
		}
		for _, bIdx := range boundaryIdxs {
			for _, eIdx := range arr.Boundaries[bIdx].EdgeIdxs {
				rev := arr.Edges[eIdx].ReverseIdx
				otherB := arr.Edges[rev].Boundary
				if otherB < 0 {
					continue
				}
				j := boundaryFace[otherB]
				if j < 0 || j == i {
					continue
				}
				if compatible(tags[i], tags[j]) {
					union(i, j)
				}
			}
		}
	}

	byGroup := make(map[int][]int)
	for i := 0; i < n; i++ {
		if i == 0 {
			continue // skip the unbounded face as an output region
		}
		r := find(i)
		byGroup[r] = append(byGroup[r], i)
	}

	var out []TaggedFace
	for _, members := range byGroup {
		tf := TaggedFace{Tag: tags[members[0]]}
		for _, fi := range members {
			f := arr.Faces[fi]
			if f.Outer >= 0 {
				tf.Outers = append(tf.Outers, arr.Boundaries[f.Outer])
			}
			for _, h := range f.Holes {
				tf.Holes = append(tf.Holes, arr.Boundaries[h])
			}
		}
		out = append(out, tf)
	}
	return out
}
