// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arrange

import "github.com/gogpu/alpenglow/bignum"

// integerEdge is one whole snapped input segment before splitting at its
// intersections.
type integerEdge struct {
	p0, p1  bignum.Vec2
	pathID  int
	ccwSign int // +1 if this edge runs counter-clockwise around its path, -1 if clockwise

	// intersections accumulates (t, point) pairs found against every other
	// edge whose bounding box overlaps this one's, t in (0,1) exclusive.
	intersections []edgeSplit
}

type edgeSplit struct {
	t     bignum.Rat
	point bignum.Vec2
}

func (e *integerEdge) minX() int64 { return minI64(e.p0.X.Num/e.p0.X.Den, e.p1.X.Num/e.p1.X.Den) }

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// aabbOverlap reports whether the bounding boxes of a and b overlap, using
// the open-interval rule from the spec: strict inequality unless a segment
// is axis-aligned, in which case equality on that axis is allowed (so a
// vertical/horizontal edge lying exactly on the border of a neighboring
// box is still tested).
func aabbOverlap(a, b *integerEdge) bool {
	aMinX, aMaxX := minMaxRat(a.p0.X, a.p1.X)
	aMinY, aMaxY := minMaxRat(a.p0.Y, a.p1.Y)
	bMinX, bMaxX := minMaxRat(b.p0.X, b.p1.X)
	bMinY, bMaxY := minMaxRat(b.p0.Y, b.p1.Y)

	axisAligned := a.p0.X.Equal(a.p1.X) || a.p0.Y.Equal(a.p1.Y) ||
		b.p0.X.Equal(b.p1.X) || b.p0.Y.Equal(b.p1.Y)

	if axisAligned {
		return aMinX.CompareCrossMul(bMaxX) <= 0 && bMinX.CompareCrossMul(aMaxX) <= 0 &&
			aMinY.CompareCrossMul(bMaxY) <= 0 && bMinY.CompareCrossMul(aMaxY) <= 0
	}
	return aMinX.CompareCrossMul(bMaxX) < 0 && bMinX.CompareCrossMul(aMaxX) < 0 &&
		aMinY.CompareCrossMul(bMaxY) < 0 && bMinY.CompareCrossMul(aMaxY) < 0
}

func minMaxRat(a, b bignum.Rat) (bignum.Rat, bignum.Rat) {
	if a.CompareCrossMul(b) <= 0 {
		return a, b
	}
	return b, a
}

// intersectExact solves the segment-segment intersection of a and b exactly
// in rationals. Endpoints are excluded: only t, u strictly in (0,1) count.
// Parallel (including collinear-overlapping) segments report no
// intersection — the arrangement treats exactly-coincident collinear input
// edges through the global sort + winding-sum dedup step instead.
func intersectExact(a, b *integerEdge) (t, u bignum.Rat, point bignum.Vec2, ok bool) {
	d1 := bignum.Vec2{X: a.p1.X.Sub(a.p0.X), Y: a.p1.Y.Sub(a.p0.Y)}
	d2 := bignum.Vec2{X: b.p1.X.Sub(b.p0.X), Y: b.p1.Y.Sub(b.p0.Y)}
	denom := d1.Cross(d2)
	if denom.Sign() == 0 {
		return bignum.Rat{}, bignum.Rat{}, bignum.Vec2{}, false
	}

	diff := bignum.Vec2{X: b.p0.X.Sub(a.p0.X), Y: b.p0.Y.Sub(a.p0.Y)}
	t = diff.Cross(d2).Div(denom)
	u = diff.Cross(d1).Div(denom)

	if t.Sign() <= 0 || u.Sign() <= 0 {
		return bignum.Rat{}, bignum.Rat{}, bignum.Vec2{}, false
	}
	one := bignum.NewInt(1)
	if t.CompareCrossMul(one) >= 0 || u.CompareCrossMul(one) >= 0 {
		return bignum.Rat{}, bignum.Rat{}, bignum.Vec2{}, false
	}

	px := a.p0.X.Add(t.Mul(d1.X))
	py := a.p0.Y.Add(t.Mul(d1.Y))
	return t, u, bignum.Vec2{X: px, Y: py}, true
}

// findAllIntersections runs the all-pairs intersection pass (bounds-checked
// per pair to avoid exact arithmetic on AABBs that don't overlap) and
// records each hit into both participating edges' intersections lists.
func findAllIntersections(edges []*integerEdge) {
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			if !aabbOverlap(a, b) {
				continue
			}
			t, u, pt, ok := intersectExact(a, b)
			if !ok {
				continue
			}
			a.intersections = append(a.intersections, edgeSplit{t: t, point: pt})
			b.intersections = append(b.intersections, edgeSplit{t: u, point: pt})
		}
	}
}
