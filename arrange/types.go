// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arrange builds the exact-rational planar arrangement of a set of
// input paths: grid-snapped integer edges, their pairwise intersections
// solved exactly, the resulting half-edge graph, and the face/winding
// structure traced over it. It corresponds to components B (integer edge
// arrangement) and C (face/winding engine).
package arrange

import "github.com/gogpu/alpenglow/bignum"

// Vector2 is a float64 point (internal copy to avoid an import cycle with
// the root package, which depends on this one).
type Vector2 struct {
	X, Y float64
}

// InputPath is one closed contour contributing winding +1 per counter-
// clockwise traversal (−1 clockwise) to whichever output path index it is
// tagged with; FillRule interpretation of the resulting winding numbers is
// the caller's concern, not this package's.
type InputPath struct {
	PathID int
	Points []Vector2
}

// WindingMap tracks, per input path id, the net winding contributed by
// crossing a half-edge or accumulated at a face.
type WindingMap map[int]int

// Add returns the elementwise sum of w and other, omitting any path id whose
// sum is zero.
func (w WindingMap) Add(other WindingMap) WindingMap {
	out := make(WindingMap, len(w)+len(other))
	for k, v := range w {
		out[k] += v
	}
	for k, v := range other {
		out[k] += v
	}
	for k, v := range out {
		if v == 0 {
			delete(out, k)
		}
	}
	return out
}

// IsZero reports whether every path's contribution is zero.
func (w WindingMap) IsZero() bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}

// Negate returns the elementwise negation of w.
func (w WindingMap) Negate() WindingMap {
	out := make(WindingMap, len(w))
	for k, v := range w {
		out[k] = -v
	}
	return out
}

// RationalHalfEdge is one directed sub-segment of the snapped, intersected
// arrangement. Forward/reverse pairs are linked through ReverseIdx; after
// the global sort they are not in general adjacent in the owning
// Arrangement's Edges slice.
type RationalHalfEdge struct {
	P0, P1     bignum.Vec2
	Winding    WindingMap
	ReverseIdx int
	NextIdx    int // set during boundary tracing; -1 until then
	Visited    bool
	Boundary   int // index into Arrangement.Boundaries once traced, else -1

	p0f, p1f Vector2 // cached float projections for fast area/orientation work
}

// Direction returns the (non-exact) float direction vector computed from the
// cached float projections. The sorting and vertex-local ordering in this
// package compare exact rational directions and do not call it.
func (e *RationalHalfEdge) Direction() Vector2 {
	return Vector2{X: e.p1f.X - e.p0f.X, Y: e.p1f.Y - e.p0f.Y}
}

// Boundary is a traced cycle of half-edge indices, oriented so that Area > 0
// means an outer boundary and Area < 0 an inner (hole) boundary.
type Boundary struct {
	EdgeIdxs []int
	Area     float64
	Outer    bool
}

// Face is one region of the arrangement: an outer boundary plus the hole
// boundaries nested directly inside it, and the net winding contributed by
// every path enclosing it.
type Face struct {
	Outer   int   // index into Arrangement.Boundaries, or -1 for the unbounded face
	Holes   []int // indices into Arrangement.Boundaries
	Winding WindingMap
}

// Arrangement is the output of Build: the full half-edge graph plus its
// traced boundaries and faces.
type Arrangement struct {
	Edges        []RationalHalfEdge
	Boundaries   []Boundary
	Faces        []Face
	BoundaryFace []int // index into Faces for each Boundaries entry
}
